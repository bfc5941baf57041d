package views

import (
	"time"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

// SplitLine is one participant's share on an expense card.
type SplitLine struct {
	User     *UserRef   `json:"user,omitempty"`
	UserID   string     `json:"userId"`
	Amount   float64    `json:"amount"`
	Paid     bool       `json:"paid"`
	PaidDate *time.Time `json:"paidDate,omitempty"`
}

// ExpenseCard is an expense as seen by the current user.
type ExpenseCard struct {
	models.Expense
	PaidByUser   *UserRef    `json:"paidByUser,omitempty"`
	PaidByMe     bool        `json:"paidByMe"`
	MySplit      *SplitLine  `json:"mySplit,omitempty"`
	PendingCount int         `json:"pendingCount"`
	Splits       []SplitLine `json:"splits"`

	// CanSettle is true when the current user has an unpaid share on someone else's expense.
	CanSettle bool `json:"canSettle"`
}

// ExpensesModel is the expenses page.
type ExpensesModel struct {
	MyBalance float64 `json:"myBalance"`
	OwedToMe  float64 `json:"owedToMe"`
	IOwe      float64 `json:"iOwe"`

	// Balances is every roommate's net position, largest creditor first.
	Balances []calculator.MemberBalance `json:"balances"`

	// SuggestedSettlements is a minimal set of payments that clears all balances.
	SuggestedSettlements []calculator.DebtEdge `json:"suggestedSettlements"`

	Pending []ExpenseCard `json:"pending"`
	Settled []ExpenseCard `json:"settled"`
	Total   int           `json:"total"`
}

// ExpensesView renders expenses, balances and settlements.
type ExpensesView struct{}

func (ExpensesView) Page() Page { return PageExpenses }

func (ExpensesView) Render(snap models.Snapshot, _ time.Time) any {
	dir := newDirectory(snap.Users)
	me := snap.CurrentUserID()
	balances := calculator.MemberBalances(snap.Users, snap.Expenses)

	m := ExpensesModel{
		OwedToMe:             calculator.OwedToUser(snap.Expenses, me),
		IOwe:                 calculator.OwedByUser(snap.Expenses, me),
		MyBalance:            calculator.NetBalance(snap.Expenses, me),
		Balances:             balances,
		SuggestedSettlements: calculator.SimplifyDebts(balances),
		Pending:              []ExpenseCard{},
		Settled:              []ExpenseCard{},
		Total:                len(snap.Expenses),
	}

	for _, e := range snap.Expenses {
		card := expenseCard(e, me, dir)
		if e.Settled {
			m.Settled = append(m.Settled, card)
		} else {
			m.Pending = append(m.Pending, card)
		}
	}
	return m
}

func expenseCard(e models.Expense, me string, dir directory) ExpenseCard {
	card := ExpenseCard{
		Expense:      e,
		PaidByUser:   dir.ref(e.PaidBy),
		PaidByMe:     me != "" && e.PaidBy == me,
		PendingCount: calculator.PendingSplits(e),
		Splits:       make([]SplitLine, 0, len(e.SplitDetails)),
	}
	for _, s := range e.SplitDetails {
		line := SplitLine{
			User:     dir.ref(s.UserID),
			UserID:   s.UserID,
			Amount:   s.Amount,
			Paid:     s.Paid,
			PaidDate: s.PaidDate,
		}
		card.Splits = append(card.Splits, line)
		if s.UserID == me && me != "" {
			mine := line
			card.MySplit = &mine
		}
	}
	card.CanSettle = card.MySplit != nil && !card.MySplit.Paid && !card.PaidByMe
	return card
}
