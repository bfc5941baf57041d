package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zaryabali001/roommate/internal/models"
)

func loadLostAndFound(ctx context.Context, q querier) ([]models.LostAndFound, error) {
	return queryAll(ctx, q, "lost and found", `
		SELECT id, title, description, type, date, posted_by, resolved
		FROM lost_and_found
		ORDER BY position
	`, func(rows *sql.Rows) (models.LostAndFound, error) {
		var l models.LostAndFound
		var date int64
		err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Type, &date, &l.PostedBy, &l.Resolved)
		l.Date = fromUnix(date)
		return l, err
	})
}

func loadNotices(ctx context.Context, q querier) ([]models.Notice, error) {
	return queryAll(ctx, q, "notices", `
		SELECT id, title, content, posted_by, date, priority
		FROM notices
		ORDER BY position
	`, func(rows *sql.Rows) (models.Notice, error) {
		var n models.Notice
		var date int64
		err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.PostedBy, &date, &n.Priority)
		n.Date = fromUnix(date)
		return n, err
	})
}

func loadDocuments(ctx context.Context, q querier) ([]models.Document, error) {
	return queryAll(ctx, q, "documents", `
		SELECT id, name, type, url, uploaded_by, uploaded_at
		FROM documents
		ORDER BY position
	`, func(rows *sql.Rows) (models.Document, error) {
		var d models.Document
		var uploaded int64
		err := rows.Scan(&d.ID, &d.Name, &d.Type, &d.URL, &d.UploadedBy, &uploaded)
		d.UploadedAt = fromUnix(uploaded)
		return d, err
	})
}

func loadBillReminders(ctx context.Context, q querier) ([]models.BillReminder, error) {
	return queryAll(ctx, q, "bill reminders", `
		SELECT id, title, amount, due_date, type, recurring, paid
		FROM bill_reminders
		ORDER BY position
	`, func(rows *sql.Rows) (models.BillReminder, error) {
		var b models.BillReminder
		var due int64
		err := rows.Scan(&b.ID, &b.Title, &b.Amount, &due, &b.Type, &b.Recurring, &b.Paid)
		b.DueDate = fromUnix(due)
		return b, err
	})
}

// saveBoard writes lost-and-found reports, notices, documents and bill reminders.
func saveBoard(ctx context.Context, q querier, seed *models.Seed) error {
	for i, l := range seed.LostAndFound {
		_, err := q.ExecContext(ctx, `
			INSERT INTO lost_and_found (id, position, title, description, type, date, posted_by, resolved)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, l.ID, i, l.Title, l.Description, l.Type, toUnix(l.Date), l.PostedBy, l.Resolved)
		if err != nil {
			return fmt.Errorf("failed to insert lost and found %s: %w", l.ID, err)
		}
	}

	for i, n := range seed.Notices {
		_, err := q.ExecContext(ctx, `
			INSERT INTO notices (id, position, title, content, posted_by, date, priority)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, n.ID, i, n.Title, n.Content, n.PostedBy, toUnix(n.Date), n.Priority)
		if err != nil {
			return fmt.Errorf("failed to insert notice %s: %w", n.ID, err)
		}
	}

	for i, d := range seed.Documents {
		_, err := q.ExecContext(ctx, `
			INSERT INTO documents (id, position, name, type, url, uploaded_by, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, d.ID, i, d.Name, d.Type, d.URL, d.UploadedBy, toUnix(d.UploadedAt))
		if err != nil {
			return fmt.Errorf("failed to insert document %s: %w", d.ID, err)
		}
	}

	for i, b := range seed.BillReminders {
		_, err := q.ExecContext(ctx, `
			INSERT INTO bill_reminders (id, position, title, amount, due_date, type, recurring, paid)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, b.ID, i, b.Title, b.Amount, toUnix(b.DueDate), b.Type, b.Recurring, b.Paid)
		if err != nil {
			return fmt.Errorf("failed to insert bill reminder %s: %w", b.ID, err)
		}
	}
	return nil
}
