// Package calculator holds the pure functions behind the store's invariants
// and the aggregates the views display. Nothing here mutates its inputs.
package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// splitTolerance is the rounding slack allowed when comparing split sums.
const splitTolerance = 0.01

// EqualSplit divides amount equally among participants.
// The payer's own split is marked paid at now, so it never counts as owed.
func EqualSplit(amount float64, participants []string, payerID string, now time.Time) ([]models.ExpenseSplit, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}

	share := amount / float64(len(participants))
	splits := make([]models.ExpenseSplit, 0, len(participants))
	seen := make(map[string]bool, len(participants))
	for _, userID := range participants {
		if seen[userID] {
			return nil, fmt.Errorf("duplicate participant: %s", userID)
		}
		seen[userID] = true

		split := models.ExpenseSplit{UserID: userID, Amount: share}
		if userID == payerID {
			paidAt := now
			split.Paid = true
			split.PaidDate = &paidAt
		}
		splits = append(splits, split)
	}
	return splits, nil
}

// PercentageSplit turns shares whose Amount holds a percentage of amount into
// currency amounts rounded to cents. The percentages must add up to 100; the
// last share takes the rounding remainder so the splits sum to amount.
func PercentageSplit(amount float64, shares []models.ExpenseSplit) ([]models.ExpenseSplit, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if len(shares) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}
	if total := SplitTotal(shares); math.Abs(total-100) > splitTolerance {
		return nil, fmt.Errorf("percentages add up to %.2f, want 100", total)
	}

	splits := make([]models.ExpenseSplit, len(shares))
	var assigned float64
	for i, share := range shares {
		if share.Amount < 0 {
			return nil, fmt.Errorf("negative percentage for %s", share.UserID)
		}
		if i == len(shares)-1 {
			share.Amount = math.Round((amount-assigned)*100) / 100
		} else {
			share.Amount = math.Round(amount*share.Amount) / 100
			assigned += share.Amount
		}
		splits[i] = share
	}
	return splits, nil
}

// SplitTotal sums the split amounts.
func SplitTotal(splits []models.ExpenseSplit) float64 {
	var total float64
	for _, s := range splits {
		total += s.Amount
	}
	return total
}

// SplitsMatchAmount reports whether the splits add up to amount within rounding tolerance.
func SplitsMatchAmount(splits []models.ExpenseSplit, amount float64) bool {
	return math.Abs(SplitTotal(splits)-amount) <= splitTolerance
}

// AllSplitsPaid is the settled rule: an expense is settled iff every split is paid.
func AllSplitsPaid(splits []models.ExpenseSplit) bool {
	for _, s := range splits {
		if !s.Paid {
			return false
		}
	}
	return true
}

// MarkSplitPaid returns a copy of splits with userID's split marked paid at now.
// The boolean is false when userID has no split.
func MarkSplitPaid(splits []models.ExpenseSplit, userID string, now time.Time) ([]models.ExpenseSplit, bool) {
	out := make([]models.ExpenseSplit, len(splits))
	copy(out, splits)
	found := false
	for i := range out {
		if out[i].UserID != userID {
			continue
		}
		paidAt := now
		out[i].Paid = true
		out[i].PaidDate = &paidAt
		found = true
	}
	return out, found
}

// SettleSplit applies a payment by userID to the expense and recomputes Settled.
// It returns the updated expense and whether a split was found.
func SettleSplit(expense models.Expense, userID string, now time.Time) (models.Expense, bool) {
	splits, found := MarkSplitPaid(expense.SplitDetails, userID, now)
	if !found {
		return expense, false
	}
	expense.SplitDetails = splits
	expense.Settled = AllSplitsPaid(splits)
	return expense, true
}

// PendingSplits counts the unpaid splits of an expense.
func PendingSplits(expense models.Expense) int {
	n := 0
	for _, s := range expense.SplitDetails {
		if !s.Paid {
			n++
		}
	}
	return n
}

// FindSplit returns userID's split of the expense.
func FindSplit(expense models.Expense, userID string) (models.ExpenseSplit, bool) {
	for _, s := range expense.SplitDetails {
		if s.UserID == userID {
			return s, true
		}
	}
	return models.ExpenseSplit{}, false
}
