package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zaryabali001/roommate/internal/models"
)

func loadUsers(ctx context.Context, q querier) ([]models.User, error) {
	query := `
		SELECT id, name, email, phone, room_number, hostel_name, profile_picture, presence_status, role
		FROM users
		ORDER BY position
	`
	return queryAll(ctx, q, "users", query, func(rows *sql.Rows) (models.User, error) {
		var u models.User
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Phone,
			&u.RoomNumber,
			&u.HostelName,
			&u.ProfilePicture,
			&u.PresenceStatus,
			&u.Role,
		)
		return u, err
	})
}

func saveUsers(ctx context.Context, q querier, users []models.User) error {
	query := `
		INSERT INTO users (id, position, name, email, phone, room_number, hostel_name, profile_picture, presence_status, role)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, u := range users {
		_, err := q.ExecContext(ctx, query,
			u.ID,
			i,
			u.Name,
			u.Email,
			u.Phone,
			u.RoomNumber,
			u.HostelName,
			u.ProfilePicture,
			u.PresenceStatus,
			u.Role,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
		}
	}
	return nil
}

// loadGroup returns the stored group, or nil when there is none.
func loadGroup(ctx context.Context, q querier) (*models.Group, error) {
	g := &models.Group{}
	err := q.QueryRowContext(ctx,
		"SELECT id, name, invite_code, created_by FROM groups LIMIT 1",
	).Scan(&g.ID, &g.Name, &g.InviteCode, &g.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	g.Members, err = queryAll(ctx, q, "group members",
		"SELECT user_id, role, joined_at FROM group_members WHERE group_id = ? ORDER BY position",
		func(rows *sql.Rows) (models.GroupMember, error) {
			var m models.GroupMember
			var joined int64
			err := rows.Scan(&m.UserID, &m.Role, &joined)
			m.JoinedAt = fromUnix(joined)
			return m, err
		},
		g.ID,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func saveGroup(ctx context.Context, q querier, g *models.Group) error {
	if g == nil {
		return nil
	}
	_, err := q.ExecContext(ctx,
		"INSERT INTO groups (id, name, invite_code, created_by) VALUES (?, ?, ?, ?)",
		g.ID, g.Name, g.InviteCode, g.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i, m := range g.Members {
		_, err = q.ExecContext(ctx,
			"INSERT INTO group_members (group_id, user_id, position, role, joined_at) VALUES (?, ?, ?, ?, ?)",
			g.ID, m.UserID, i, m.Role, toUnix(m.JoinedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}
