package calculator

import (
	"math"
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// NextTurn advances the cleaning ring by one position:
// nextIndex = (indexOf(current) + 1) mod len(members).
// A current turn that is not in members restarts the ring at the first member.
// The boolean is false when members is empty.
func NextTurn(members []string, current string) (string, bool) {
	if len(members) == 0 {
		return "", false
	}
	idx := -1
	for i, m := range members {
		if m == current {
			idx = i
			break
		}
	}
	return members[(idx+1)%len(members)], true
}

// CompleteCleaning returns the duty after userID marks it complete at now:
// the turn advances, LastCleanedDate is set and a Completed entry is prepended
// to the history. The entry records userID, whoever's turn it was.
func CompleteCleaning(duty models.CleaningDuty, userID string, now time.Time) models.CleaningDuty {
	next, ok := NextTurn(duty.Members, duty.CurrentTurn)
	if ok {
		duty.CurrentTurn = next
	}
	cleanedAt := now
	duty.LastCleanedDate = &cleanedAt

	history := make([]models.CleaningHistory, 0, len(duty.History)+1)
	history = append(history, models.CleaningHistory{Date: now, UserID: userID, Status: models.CleaningCompleted})
	duty.History = append(history, duty.History...)
	return duty
}

// TogglePurchase flips an item's purchased flag.
// Marking it purchased records userID and now; unmarking clears both.
func TogglePurchase(item models.ShoppingItem, userID string, now time.Time) models.ShoppingItem {
	if item.Purchased {
		item.Purchased = false
		item.PurchasedBy = ""
		item.PurchasedDate = nil
		return item
	}
	purchasedAt := now
	item.Purchased = true
	item.PurchasedBy = userID
	item.PurchasedDate = &purchasedAt
	return item
}

// CompletionRate is completed/total × 100, and 0 for no todos.
func CompletionRate(todos []models.Todo) float64 {
	if len(todos) == 0 {
		return 0
	}
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(todos)) * 100
}

// PartitionTodos splits todos into personal (no group) and group tasks, preserving order.
func PartitionTodos(todos []models.Todo) (personal, group []models.Todo) {
	for _, t := range todos {
		if t.IsGroupTask() {
			group = append(group, t)
		} else {
			personal = append(personal, t)
		}
	}
	return personal, group
}

// FilterTodos keeps the todos whose Completed flag equals completed.
func FilterTodos(todos []models.Todo, completed bool) []models.Todo {
	var out []models.Todo
	for _, t := range todos {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// IsOverdue reports whether due lies before now and the thing is not done.
func IsOverdue(due *time.Time, done bool, now time.Time) bool {
	return due != nil && due.Before(now) && !done
}

// OverdueTodos returns incomplete todos whose due date has passed.
func OverdueTodos(todos []models.Todo, now time.Time) []models.Todo {
	var out []models.Todo
	for _, t := range todos {
		if IsOverdue(t.DueDate, t.Completed, now) {
			out = append(out, t)
		}
	}
	return out
}

// PendingBills returns the unpaid bill reminders.
func PendingBills(bills []models.BillReminder) []models.BillReminder {
	var out []models.BillReminder
	for _, b := range bills {
		if !b.Paid {
			out = append(out, b)
		}
	}
	return out
}

// BillsTotal sums the amounts of bills.
func BillsTotal(bills []models.BillReminder) float64 {
	var total float64
	for _, b := range bills {
		total += b.Amount
	}
	return total
}

// OverdueBills returns unpaid bills whose due date has passed.
func OverdueBills(bills []models.BillReminder, now time.Time) []models.BillReminder {
	var out []models.BillReminder
	for _, b := range bills {
		due := b.DueDate
		if IsOverdue(&due, b.Paid, now) {
			out = append(out, b)
		}
	}
	return out
}

// DaysUntilDue rounds the time left until due up to whole days; negative when past due.
func DaysUntilDue(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// PendingShoppingItems returns the items not yet purchased.
func PendingShoppingItems(items []models.ShoppingItem) []models.ShoppingItem {
	return filterItems(items, false)
}

// PurchasedShoppingItems returns the items already purchased.
func PurchasedShoppingItems(items []models.ShoppingItem) []models.ShoppingItem {
	return filterItems(items, true)
}

func filterItems(items []models.ShoppingItem, purchased bool) []models.ShoppingItem {
	var out []models.ShoppingItem
	for _, item := range items {
		if item.Purchased == purchased {
			out = append(out, item)
		}
	}
	return out
}

// CleaningCompletionRate is the share of Completed history entries × 100, and 0 for no history.
func CleaningCompletionRate(history []models.CleaningHistory) float64 {
	if len(history) == 0 {
		return 0
	}
	counts := CleaningStatusCounts(history)
	return float64(counts[models.CleaningCompleted]) / float64(len(history)) * 100
}

// CleaningStatusCounts tallies history entries per status.
func CleaningStatusCounts(history []models.CleaningHistory) map[models.CleaningStatus]int {
	counts := make(map[models.CleaningStatus]int, len(models.CleaningStatuses))
	for _, s := range models.CleaningStatuses {
		counts[s] = 0
	}
	for _, h := range history {
		counts[h.Status]++
	}
	return counts
}

// PresentMembers counts users whose presence status is Present.
func PresentMembers(users []models.User) int {
	n := 0
	for _, u := range users {
		if u.PresenceStatus == models.PresencePresent {
			n++
		}
	}
	return n
}
