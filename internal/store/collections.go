package store

import (
	"context"
	"time"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

// AddTodo prepends a new todo, so the newest todo comes first.
func (s *Store) AddTodo(ctx context.Context, fields models.NewTodo) {
	s.mutate(ctx, OpAddTodo, func(time.Time) (string, bool) {
		todo := models.CloneTodo(models.Todo{
			ID:          s.ids.NewID("todo"),
			Title:       fields.Title,
			Description: fields.Description,
			DueDate:     fields.DueDate,
			Priority:    fields.Priority,
			Completed:   fields.Completed,
			AssignedTo:  fields.AssignedTo,
			GroupID:     fields.GroupID,
			CreatedBy:   fields.CreatedBy,
			Reminders:   fields.Reminders,
		})
		s.state.Todos = prepend(s.state.Todos, todo)
		return todo.ID, true
	})
}

// ToggleTodo flips the completed flag of the todo with the given ID.
func (s *Store) ToggleTodo(ctx context.Context, id string) {
	s.mutate(ctx, OpToggleTodo, func(time.Time) (string, bool) {
		return id, updateByID(s.state.Todos, id, todoID, func(t models.Todo) models.Todo {
			t.Completed = !t.Completed
			return t
		})
	})
}

// RemoveTodo deletes the todo with the given ID.
func (s *Store) RemoveTodo(ctx context.Context, id string) {
	s.mutate(ctx, OpRemoveTodo, func(time.Time) (string, bool) {
		var removed bool
		s.state.Todos, removed = removeByID(s.state.Todos, id, todoID)
		return id, removed
	})
}

// AddExpense prepends a new expense. The splits are taken as given; the
// settled flag is derived from them.
func (s *Store) AddExpense(ctx context.Context, fields models.NewExpense) {
	s.mutate(ctx, OpAddExpense, func(time.Time) (string, bool) {
		expense := models.CloneExpense(models.Expense{
			ID:           s.ids.NewID("expense"),
			Title:        fields.Title,
			Amount:       fields.Amount,
			Category:     fields.Category,
			Receipt:      fields.Receipt,
			SplitType:    fields.SplitType,
			SplitDetails: fields.SplitDetails,
			PaidBy:       fields.PaidBy,
			GroupID:      fields.GroupID,
			Date:         fields.Date,
		})
		expense.Settled = calculator.AllSplitsPaid(expense.SplitDetails)
		s.state.Expenses = prepend(s.state.Expenses, expense)
		return expense.ID, true
	})
}

// SettleExpense marks userID's split of the expense paid and recomputes the settled flag.
func (s *Store) SettleExpense(ctx context.Context, expenseID, userID string) {
	s.mutate(ctx, OpSettleExpense, func(now time.Time) (string, bool) {
		for i, e := range s.state.Expenses {
			if e.ID != expenseID {
				continue
			}
			settled, found := calculator.SettleSplit(e, userID, now)
			if !found {
				return expenseID, false
			}
			expenses := make([]models.Expense, len(s.state.Expenses))
			copy(expenses, s.state.Expenses)
			expenses[i] = settled
			s.state.Expenses = expenses
			return expenseID, true
		}
		return expenseID, false
	})
}

// RemoveExpense deletes the expense with the given ID.
func (s *Store) RemoveExpense(ctx context.Context, id string) {
	s.mutate(ctx, OpRemoveExpense, func(time.Time) (string, bool) {
		var removed bool
		s.state.Expenses, removed = removeByID(s.state.Expenses, id, expenseID)
		return id, removed
	})
}

// AddShoppingItem appends a new item, so the list stays oldest first.
// The item is attributed to the current user and group, or "" when absent.
func (s *Store) AddShoppingItem(ctx context.Context, name string) {
	s.mutate(ctx, OpAddShoppingItem, func(time.Time) (string, bool) {
		item := models.ShoppingItem{
			ID:      s.ids.NewID("shop"),
			Name:    name,
			AddedBy: s.state.CurrentUserID(),
		}
		if s.state.Group != nil {
			item.GroupID = s.state.Group.ID
		}
		items := make([]models.ShoppingItem, 0, len(s.state.ShoppingItems)+1)
		items = append(items, s.state.ShoppingItems...)
		s.state.ShoppingItems = append(items, item)
		return item.ID, true
	})
}

// ToggleShoppingItem flips the purchased flag, recording or clearing who bought it and when.
func (s *Store) ToggleShoppingItem(ctx context.Context, id string) {
	s.mutate(ctx, OpToggleShoppingItem, func(now time.Time) (string, bool) {
		userID := s.state.CurrentUserID()
		return id, updateByID(s.state.ShoppingItems, id, shoppingItemID, func(item models.ShoppingItem) models.ShoppingItem {
			return calculator.TogglePurchase(item, userID, now)
		})
	})
}

// RemoveShoppingItem deletes the item with the given ID.
func (s *Store) RemoveShoppingItem(ctx context.Context, id string) {
	s.mutate(ctx, OpRemoveShoppingItem, func(time.Time) (string, bool) {
		var removed bool
		s.state.ShoppingItems, removed = removeByID(s.state.ShoppingItems, id, shoppingItemID)
		return id, removed
	})
}

// MarkCleaningComplete advances the cleaning turn and records the current
// user as having cleaned. It needs both a cleaning duty and a current user.
func (s *Store) MarkCleaningComplete(ctx context.Context) {
	s.mutate(ctx, OpMarkCleaning, func(now time.Time) (string, bool) {
		if s.state.CleaningDuty == nil || s.state.CurrentUser == nil {
			return "", false
		}
		duty := calculator.CompleteCleaning(*models.CloneCleaningDuty(s.state.CleaningDuty), s.state.CurrentUser.ID, now)
		s.state.CleaningDuty = &duty
		return duty.ID, true
	})
}

// AddLostAndFound prepends a new report. A zero date is filled with the current time.
func (s *Store) AddLostAndFound(ctx context.Context, fields models.NewLostAndFound) {
	s.mutate(ctx, OpAddLostAndFound, func(now time.Time) (string, bool) {
		item := models.LostAndFound{
			ID:          s.ids.NewID("lf"),
			Title:       fields.Title,
			Description: fields.Description,
			Type:        fields.Type,
			Date:        orNow(fields.Date, now),
			PostedBy:    fields.PostedBy,
			Resolved:    fields.Resolved,
		}
		s.state.LostAndFound = prepend(s.state.LostAndFound, item)
		return item.ID, true
	})
}

// ResolveLostAndFound marks a report resolved.
func (s *Store) ResolveLostAndFound(ctx context.Context, id string) {
	s.mutate(ctx, OpResolveLostAndFound, func(time.Time) (string, bool) {
		return id, updateByID(s.state.LostAndFound, id, lostAndFoundID, func(item models.LostAndFound) models.LostAndFound {
			item.Resolved = true
			return item
		})
	})
}

// RemoveLostAndFound deletes the report with the given ID.
func (s *Store) RemoveLostAndFound(ctx context.Context, id string) {
	s.mutate(ctx, OpRemoveLostAndFound, func(time.Time) (string, bool) {
		var removed bool
		s.state.LostAndFound, removed = removeByID(s.state.LostAndFound, id, lostAndFoundID)
		return id, removed
	})
}

// AddNotice prepends a new notice. A zero date is filled with the current time.
func (s *Store) AddNotice(ctx context.Context, fields models.NewNotice) {
	s.mutate(ctx, OpAddNotice, func(now time.Time) (string, bool) {
		notice := models.Notice{
			ID:       s.ids.NewID("notice"),
			Title:    fields.Title,
			Content:  fields.Content,
			PostedBy: fields.PostedBy,
			Date:     orNow(fields.Date, now),
			Priority: fields.Priority,
		}
		s.state.Notices = prepend(s.state.Notices, notice)
		return notice.ID, true
	})
}

// RemoveNotice deletes the notice with the given ID.
func (s *Store) RemoveNotice(ctx context.Context, id string) {
	s.mutate(ctx, OpRemoveNotice, func(time.Time) (string, bool) {
		var removed bool
		s.state.Notices, removed = removeByID(s.state.Notices, id, noticeID)
		return id, removed
	})
}

// AddBillReminder prepends a new unpaid bill reminder.
func (s *Store) AddBillReminder(ctx context.Context, fields models.NewBillReminder) {
	s.mutate(ctx, OpAddBillReminder, func(time.Time) (string, bool) {
		bill := models.BillReminder{
			ID:        s.ids.NewID("bill"),
			Title:     fields.Title,
			Amount:    fields.Amount,
			DueDate:   fields.DueDate,
			Type:      fields.Type,
			Recurring: fields.Recurring,
		}
		s.state.BillReminders = prepend(s.state.BillReminders, bill)
		return bill.ID, true
	})
}

// MarkBillPaid marks a bill reminder paid.
func (s *Store) MarkBillPaid(ctx context.Context, id string) {
	s.mutate(ctx, OpMarkBillPaid, func(time.Time) (string, bool) {
		return id, updateByID(s.state.BillReminders, id, billID, func(b models.BillReminder) models.BillReminder {
			b.Paid = true
			return b
		})
	})
}

func todoID(t models.Todo) string                 { return t.ID }
func expenseID(e models.Expense) string           { return e.ID }
func shoppingItemID(i models.ShoppingItem) string { return i.ID }
func lostAndFoundID(l models.LostAndFound) string { return l.ID }
func noticeID(n models.Notice) string             { return n.ID }
func billID(b models.BillReminder) string         { return b.ID }

// prepend returns a new slice with v in front of in.
func prepend[T any](in []T, v T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, v)
	return append(out, in...)
}

// updateByID replaces, in place, the first element whose key is id.
// Callers own the slice; snapshots never share it.
func updateByID[T any](in []T, id string, key func(T) string, fn func(T) T) bool {
	for i := range in {
		if key(in[i]) == id {
			in[i] = fn(in[i])
			return true
		}
	}
	return false
}

// removeByID returns in without the element whose key is id.
func removeByID[T any](in []T, id string, key func(T) string) ([]T, bool) {
	for i := range in {
		if key(in[i]) == id {
			out := make([]T, 0, len(in)-1)
			out = append(out, in[:i]...)
			return append(out, in[i+1:]...), true
		}
	}
	return in, false
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
