package views

import (
	"time"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

const (
	dashboardTodoLimit    = 5
	dashboardExpenseLimit = 5
)

// ExpenseSummary is a one-line expense as shown on the dashboard.
type ExpenseSummary struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	PaidBy *UserRef  `json:"paidBy,omitempty"`

	// MyShare is the current user's split amount, absent when they are not a participant.
	MyShare *float64 `json:"myShare,omitempty"`
	MyPaid  bool     `json:"myPaid"`
}

// DashboardModel is the overview page.
type DashboardModel struct {
	CurrentUser *UserRef `json:"currentUser,omitempty"`

	NetBalance float64 `json:"netBalance"`
	OwedToMe   float64 `json:"owedToMe"`
	IOwe       float64 `json:"iOwe"`

	PendingTodos  int        `json:"pendingTodos"`
	UpcomingTodos []TodoCard `json:"upcomingTodos"`

	UnpurchasedItems int `json:"unpurchasedItems"`

	PendingBills       int     `json:"pendingBills"`
	PendingBillsAmount float64 `json:"pendingBillsAmount"`

	CleaningTurn *UserRef   `json:"cleaningTurn,omitempty"`
	IsMyTurn     bool       `json:"isMyTurn"`
	LastCleaned  *time.Time `json:"lastCleaned,omitempty"`

	PresentMembers int `json:"presentMembers"`
	TotalMembers   int `json:"totalMembers"`

	CompletionRate float64          `json:"completionRate"`
	RecentExpenses []ExpenseSummary `json:"recentExpenses"`
}

// DashboardView summarizes every area of the household.
type DashboardView struct{}

func (DashboardView) Page() Page { return PageDashboard }

func (DashboardView) Render(snap models.Snapshot, now time.Time) any {
	dir := newDirectory(snap.Users)
	me := snap.CurrentUserID()

	personal, group := calculator.PartitionTodos(snap.Todos)
	pending := append(calculator.FilterTodos(personal, false), calculator.FilterTodos(group, false)...)
	bills := calculator.PendingBills(snap.BillReminders)

	m := DashboardModel{
		CurrentUser:        dir.ref(me),
		OwedToMe:           calculator.OwedToUser(snap.Expenses, me),
		IOwe:               calculator.OwedByUser(snap.Expenses, me),
		NetBalance:         calculator.NetBalance(snap.Expenses, me),
		PendingTodos:       len(pending),
		UpcomingTodos:      todoCards(firstN(pending, dashboardTodoLimit), dir, now),
		UnpurchasedItems:   len(calculator.PendingShoppingItems(snap.ShoppingItems)),
		PendingBills:       len(bills),
		PendingBillsAmount: calculator.BillsTotal(bills),
		PresentMembers:     calculator.PresentMembers(snap.Users),
		TotalMembers:       len(snap.Users),
		CompletionRate:     calculator.CompletionRate(snap.Todos),
		RecentExpenses:     make([]ExpenseSummary, 0, dashboardExpenseLimit),
	}

	if d := snap.CleaningDuty; d != nil {
		m.CleaningTurn = dir.ref(d.CurrentTurn)
		m.IsMyTurn = me != "" && d.CurrentTurn == me
		m.LastCleaned = d.LastCleanedDate
	}

	for _, e := range firstN(snap.Expenses, dashboardExpenseLimit) {
		s := ExpenseSummary{
			ID:     e.ID,
			Title:  e.Title,
			Amount: e.Amount,
			Date:   e.Date,
			PaidBy: dir.ref(e.PaidBy),
		}
		if split, ok := calculator.FindSplit(e, me); ok {
			share := split.Amount
			s.MyShare = &share
			s.MyPaid = split.Paid
		}
		m.RecentExpenses = append(m.RecentExpenses, s)
	}
	return m
}
