package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// childRow is one row of an ordered child table keyed by its parent's ID.
type childRow[T any] struct {
	parentID string
	value    T
}

// groupChildren buckets child rows by parent ID, preserving row order.
func groupChildren[T any](rows []childRow[T]) map[string][]T {
	out := make(map[string][]T)
	for _, r := range rows {
		out[r.parentID] = append(out[r.parentID], r.value)
	}
	return out
}

func loadTodos(ctx context.Context, q querier) ([]models.Todo, error) {
	todos, err := queryAll(ctx, q, "todos", `
		SELECT id, title, description, due_date, priority, completed, group_id, created_by
		FROM todos
		ORDER BY position
	`, func(rows *sql.Rows) (models.Todo, error) {
		var t models.Todo
		var due sql.NullInt64
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &due, &t.Priority, &t.Completed, &t.GroupID, &t.CreatedBy)
		t.DueDate = fromNullUnix(due)
		return t, err
	})
	if err != nil {
		return nil, err
	}

	assignees, err := queryAll(ctx, q, "todo assignees",
		"SELECT todo_id, user_id FROM todo_assignees ORDER BY todo_id, position",
		func(rows *sql.Rows) (childRow[string], error) {
			var r childRow[string]
			err := rows.Scan(&r.parentID, &r.value)
			return r, err
		},
	)
	if err != nil {
		return nil, err
	}

	reminders, err := queryAll(ctx, q, "todo reminders",
		"SELECT todo_id, remind_at FROM todo_reminders ORDER BY todo_id, position",
		func(rows *sql.Rows) (childRow[time.Time], error) {
			var r childRow[time.Time]
			var at int64
			err := rows.Scan(&r.parentID, &at)
			r.value = fromUnix(at)
			return r, err
		},
	)
	if err != nil {
		return nil, err
	}

	byTodo := groupChildren(assignees)
	remindersByTodo := groupChildren(reminders)
	for i := range todos {
		todos[i].AssignedTo = byTodo[todos[i].ID]
		todos[i].Reminders = remindersByTodo[todos[i].ID]
	}
	return todos, nil
}

func saveTodos(ctx context.Context, q querier, todos []models.Todo) error {
	for i, t := range todos {
		_, err := q.ExecContext(ctx, `
			INSERT INTO todos (id, position, title, description, due_date, priority, completed, group_id, created_by)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, i, t.Title, t.Description, toNullUnix(t.DueDate), t.Priority, t.Completed, t.GroupID, t.CreatedBy)
		if err != nil {
			return fmt.Errorf("failed to insert todo %s: %w", t.ID, err)
		}

		for j, userID := range t.AssignedTo {
			_, err = q.ExecContext(ctx,
				"INSERT INTO todo_assignees (todo_id, position, user_id) VALUES (?, ?, ?)",
				t.ID, j, userID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert todo assignee: %w", err)
			}
		}
		for j, at := range t.Reminders {
			_, err = q.ExecContext(ctx,
				"INSERT INTO todo_reminders (todo_id, position, remind_at) VALUES (?, ?, ?)",
				t.ID, j, toUnix(at),
			)
			if err != nil {
				return fmt.Errorf("failed to insert todo reminder: %w", err)
			}
		}
	}
	return nil
}

func loadExpenses(ctx context.Context, q querier) ([]models.Expense, error) {
	expenses, err := queryAll(ctx, q, "expenses", `
		SELECT id, title, amount, category, receipt, split_type, paid_by, group_id, date, settled
		FROM expenses
		ORDER BY position
	`, func(rows *sql.Rows) (models.Expense, error) {
		var e models.Expense
		var date int64
		err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Receipt, &e.SplitType, &e.PaidBy, &e.GroupID, &date, &e.Settled)
		e.Date = fromUnix(date)
		return e, err
	})
	if err != nil {
		return nil, err
	}

	splits, err := queryAll(ctx, q, "expense splits", `
		SELECT expense_id, user_id, amount, paid, paid_date, proof
		FROM expense_splits
		ORDER BY expense_id, position
	`, func(rows *sql.Rows) (childRow[models.ExpenseSplit], error) {
		var r childRow[models.ExpenseSplit]
		var paidDate sql.NullInt64
		err := rows.Scan(&r.parentID, &r.value.UserID, &r.value.Amount, &r.value.Paid, &paidDate, &r.value.Proof)
		r.value.PaidDate = fromNullUnix(paidDate)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	byExpense := groupChildren(splits)
	for i := range expenses {
		expenses[i].SplitDetails = byExpense[expenses[i].ID]
	}
	return expenses, nil
}

func saveExpenses(ctx context.Context, q querier, expenses []models.Expense) error {
	for i, e := range expenses {
		_, err := q.ExecContext(ctx, `
			INSERT INTO expenses (id, position, title, amount, category, receipt, split_type, paid_by, group_id, date, settled)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.ID, i, e.Title, e.Amount, e.Category, e.Receipt, e.SplitType, e.PaidBy, e.GroupID, toUnix(e.Date), e.Settled)
		if err != nil {
			return fmt.Errorf("failed to insert expense %s: %w", e.ID, err)
		}

		for j, s := range e.SplitDetails {
			_, err = q.ExecContext(ctx, `
				INSERT INTO expense_splits (expense_id, position, user_id, amount, paid, paid_date, proof)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, e.ID, j, s.UserID, s.Amount, s.Paid, toNullUnix(s.PaidDate), s.Proof)
			if err != nil {
				return fmt.Errorf("failed to insert expense split: %w", err)
			}
		}
	}
	return nil
}

func loadShoppingItems(ctx context.Context, q querier) ([]models.ShoppingItem, error) {
	return queryAll(ctx, q, "shopping items", `
		SELECT id, name, purchased, purchased_by, purchased_date, group_id, added_by, converted_to_expense
		FROM shopping_items
		ORDER BY position
	`, func(rows *sql.Rows) (models.ShoppingItem, error) {
		var item models.ShoppingItem
		var purchasedDate sql.NullInt64
		err := rows.Scan(&item.ID, &item.Name, &item.Purchased, &item.PurchasedBy, &purchasedDate, &item.GroupID, &item.AddedBy, &item.ConvertedToExpense)
		item.PurchasedDate = fromNullUnix(purchasedDate)
		return item, err
	})
}

func saveShoppingItems(ctx context.Context, q querier, items []models.ShoppingItem) error {
	for i, item := range items {
		_, err := q.ExecContext(ctx, `
			INSERT INTO shopping_items (id, position, name, purchased, purchased_by, purchased_date, group_id, added_by, converted_to_expense)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, i, item.Name, item.Purchased, item.PurchasedBy, toNullUnix(item.PurchasedDate), item.GroupID, item.AddedBy, item.ConvertedToExpense)
		if err != nil {
			return fmt.Errorf("failed to insert shopping item %s: %w", item.ID, err)
		}
	}
	return nil
}

// loadCleaningDuty returns the stored duty, or nil when there is none.
func loadCleaningDuty(ctx context.Context, q querier) (*models.CleaningDuty, error) {
	d := &models.CleaningDuty{}
	var lastCleaned sql.NullInt64
	err := q.QueryRowContext(ctx,
		"SELECT id, group_id, frequency, current_turn, last_cleaned_date FROM cleaning_duties LIMIT 1",
	).Scan(&d.ID, &d.GroupID, &d.Frequency, &d.CurrentTurn, &lastCleaned)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cleaning duty: %w", err)
	}
	d.LastCleanedDate = fromNullUnix(lastCleaned)

	d.Members, err = queryAll(ctx, q, "cleaning members",
		"SELECT user_id FROM cleaning_members WHERE duty_id = ? ORDER BY position",
		func(rows *sql.Rows) (string, error) {
			var userID string
			err := rows.Scan(&userID)
			return userID, err
		},
		d.ID,
	)
	if err != nil {
		return nil, err
	}

	d.History, err = queryAll(ctx, q, "cleaning history",
		"SELECT date, user_id, status FROM cleaning_history WHERE duty_id = ? ORDER BY position",
		func(rows *sql.Rows) (models.CleaningHistory, error) {
			var h models.CleaningHistory
			var date int64
			err := rows.Scan(&date, &h.UserID, &h.Status)
			h.Date = fromUnix(date)
			return h, err
		},
		d.ID,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func saveCleaningDuty(ctx context.Context, q querier, d *models.CleaningDuty) error {
	if d == nil {
		return nil
	}
	_, err := q.ExecContext(ctx,
		"INSERT INTO cleaning_duties (id, group_id, frequency, current_turn, last_cleaned_date) VALUES (?, ?, ?, ?, ?)",
		d.ID, d.GroupID, d.Frequency, d.CurrentTurn, toNullUnix(d.LastCleanedDate),
	)
	if err != nil {
		return fmt.Errorf("failed to insert cleaning duty: %w", err)
	}

	for i, userID := range d.Members {
		_, err = q.ExecContext(ctx,
			"INSERT INTO cleaning_members (duty_id, position, user_id) VALUES (?, ?, ?)",
			d.ID, i, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cleaning member: %w", err)
		}
	}
	for i, h := range d.History {
		_, err = q.ExecContext(ctx,
			"INSERT INTO cleaning_history (duty_id, position, date, user_id, status) VALUES (?, ?, ?, ?, ?)",
			d.ID, i, toUnix(h.Date), h.UserID, h.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cleaning history: %w", err)
		}
	}
	return nil
}
