package seed

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

// ErrInvalidSeed is returned (wrapped) for any seed that breaks a data model invariant.
var ErrInvalidSeed = errors.New("invalid seed")

// Validate checks the invariants a seed must satisfy before a store is built from it.
// All problems are reported together.
func Validate(seed *models.Seed) error {
	if seed == nil {
		return fmt.Errorf("%w: seed is nil", ErrInvalidSeed)
	}

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	userIDs := make(map[string]bool, len(seed.Users))
	for _, u := range seed.Users {
		if u.ID == "" {
			fail("user %q has no id", u.Name)
			continue
		}
		if userIDs[u.ID] {
			fail("duplicate user id %q", u.ID)
		}
		userIDs[u.ID] = true
		if !u.PresenceStatus.Valid() {
			fail("user %q: unknown presence status %q", u.ID, u.PresenceStatus)
		}
		if u.Role != "" && !u.Role.Valid() {
			fail("user %q: unknown role %q", u.ID, u.Role)
		}
	}
	if seed.CurrentUserID != "" && !userIDs[seed.CurrentUserID] {
		fail("current user %q is not among the users", seed.CurrentUserID)
	}

	if g := seed.Group; g != nil {
		for _, m := range g.Members {
			if !userIDs[m.UserID] {
				fail("group member %q is not among the users", m.UserID)
			}
		}
	}

	errs = append(errs, uniqueIDs("todo", seed.Todos, func(t models.Todo) string { return t.ID })...)
	for _, t := range seed.Todos {
		if !t.Priority.Valid() {
			fail("todo %q: unknown priority %q", t.ID, t.Priority)
		}
	}

	errs = append(errs, uniqueIDs("expense", seed.Expenses, func(e models.Expense) string { return e.ID })...)
	for _, e := range seed.Expenses {
		if e.Amount <= 0 {
			fail("expense %q: amount must be positive, got %v", e.ID, e.Amount)
		}
		if !calculator.SplitsMatchAmount(e.SplitDetails, e.Amount) {
			fail("expense %q: splits sum to %.2f, amount is %.2f", e.ID, calculator.SplitTotal(e.SplitDetails), e.Amount)
		}
		if e.Settled != calculator.AllSplitsPaid(e.SplitDetails) {
			fail("expense %q: settled flag disagrees with its splits", e.ID)
		}
	}

	errs = append(errs, uniqueIDs("shopping item", seed.ShoppingItems, func(i models.ShoppingItem) string { return i.ID })...)
	for _, item := range seed.ShoppingItems {
		if !item.Purchased && (item.PurchasedBy != "" || item.PurchasedDate != nil) {
			fail("shopping item %q: purchase details set on an unpurchased item", item.ID)
		}
	}

	if d := seed.CleaningDuty; d != nil {
		if len(d.Members) == 0 {
			fail("cleaning duty %q has no members", d.ID)
		} else if !slices.Contains(d.Members, d.CurrentTurn) {
			fail("cleaning duty %q: current turn %q is not a member", d.ID, d.CurrentTurn)
		}
	}

	errs = append(errs, uniqueIDs("lost and found", seed.LostAndFound, func(l models.LostAndFound) string { return l.ID })...)
	errs = append(errs, uniqueIDs("notice", seed.Notices, func(n models.Notice) string { return n.ID })...)
	errs = append(errs, uniqueIDs("document", seed.Documents, func(d models.Document) string { return d.ID })...)
	errs = append(errs, uniqueIDs("bill reminder", seed.BillReminders, func(b models.BillReminder) string { return b.ID })...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, errors.Join(errs...))
	}
	return nil
}

func uniqueIDs[T any](kind string, items []T, id func(T) string) []error {
	var errs []error
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := id(item)
		if key == "" {
			errs = append(errs, fmt.Errorf("%s with empty id", kind))
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate %s id %q", kind, key))
		}
		seen[key] = true
	}
	return errs
}
