package calculator

import (
	"sort"

	"github.com/zaryabali001/roommate/internal/models"
)

// MemberBalance represents the balance information for one roommate.
type MemberBalance struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	OwedToUser float64 `json:"owedToUser"` // unpaid shares of others on expenses this user paid
	OwedByUser float64 `json:"owedByUser"` // this user's unpaid shares on expenses others paid
	NetBalance float64 `json:"netBalance"` // Positive = owed money, Negative = owes money
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string  `json:"from"` // Person who owes
	To     string  `json:"to"`   // Person who is owed
	Amount float64 `json:"amount"`
}

// OwedToUser sums, over every expense userID paid, the unpaid splits of the other participants.
func OwedToUser(expenses []models.Expense, userID string) float64 {
	var total float64
	for _, e := range expenses {
		if e.PaidBy != userID {
			continue
		}
		for _, s := range e.SplitDetails {
			if !s.Paid && s.UserID != userID {
				total += s.Amount
			}
		}
	}
	return total
}

// OwedByUser sums userID's unpaid splits on expenses somebody else paid.
// A payer's own split never counts, even if it is marked unpaid.
func OwedByUser(expenses []models.Expense, userID string) float64 {
	var total float64
	for _, e := range expenses {
		if e.PaidBy == userID {
			continue
		}
		if s, ok := FindSplit(e, userID); ok && !s.Paid {
			total += s.Amount
		}
	}
	return total
}

// NetBalance is what userID is owed minus what userID owes.
func NetBalance(expenses []models.Expense, userID string) float64 {
	return OwedToUser(expenses, userID) - OwedByUser(expenses, userID)
}

// MemberBalances computes a balance for every user, sorted from most owed to most owing.
// Ties keep the order of users.
func MemberBalances(users []models.User, expenses []models.Expense) []MemberBalance {
	balances := make([]MemberBalance, 0, len(users))
	for _, u := range users {
		owed := OwedToUser(expenses, u.ID)
		owing := OwedByUser(expenses, u.ID)
		balances = append(balances, MemberBalance{
			UserID:     u.ID,
			Name:       u.Name,
			OwedToUser: owed,
			OwedByUser: owing,
			NetBalance: owed - owing,
		})
	}
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].NetBalance > balances[j].NetBalance
	})
	return balances
}

// SimplifyDebts turns net balances into a short list of suggested payments.
//
// Algorithm:
// - Creditors (positive net) and debtors (negative net) are each sorted by size
// - Greedy: match the largest debt with the largest credit, settle the minimum
// - Amounts below one cent are treated as floating point noise
func SimplifyDebts(balances []MemberBalance) []DebtEdge {
	var creditors, debtors []MemberBalance
	for _, bal := range balances {
		if bal.NetBalance > splitTolerance {
			creditors = append(creditors, bal)
		} else if bal.NetBalance < -splitTolerance {
			debtors = append(debtors, bal)
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].NetBalance > creditors[j].NetBalance })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].NetBalance < debtors[j].NetBalance })

	debtorBalance := make([]float64, len(debtors))
	for i, d := range debtors {
		debtorBalance[i] = -d.NetBalance // Make positive
	}
	creditorBalance := make([]float64, len(creditors))
	for j, c := range creditors {
		creditorBalance[j] = c.NetBalance
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := debtorBalance[i]
		if creditorBalance[j] < amount {
			amount = creditorBalance[j]
		}

		if amount > splitTolerance {
			edges = append(edges, DebtEdge{
				From:   debtors[i].UserID,
				To:     creditors[j].UserID,
				Amount: amount,
			})
		}

		debtorBalance[i] -= amount
		creditorBalance[j] -= amount

		// Move to next debtor/creditor if fully settled
		if debtorBalance[i] < splitTolerance {
			i++
		}
		if creditorBalance[j] < splitTolerance {
			j++
		}
	}
	return edges
}
