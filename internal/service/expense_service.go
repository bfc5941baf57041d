package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/store"
)

type AddExpenseRequest struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	// Category defaults to Food.
	Category string `json:"category,omitempty"`
	Receipt  string `json:"receipt,omitempty"`
	// SplitType defaults to Equal.
	SplitType string `json:"splitType,omitempty"`
	// Participants share an Equal split; empty means every user.
	Participants []string `json:"participants,omitempty"`
	// SplitDetails carries Custom and Percentage splits. For Custom the amounts
	// are currency and must add up to Amount; for Percentage they are percents
	// of Amount that must add up to 100.
	SplitDetails []models.ExpenseSplit `json:"splitDetails,omitempty"`
	// Date defaults to now.
	Date *time.Time `json:"date,omitempty"`
}

type SettleExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
	// UserID defaults to the current user.
	UserID string `json:"userId,omitempty"`
}

type ExpenseIDRequest struct {
	ID string `json:"id"`
}

type ListExpensesRequest struct{}

type ExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	OwedToMe    float64                    `json:"owedToMe"`
	IOwe        float64                    `json:"iOwe"`
	Net         float64                    `json:"net"`
	Balances    []calculator.MemberBalance `json:"balances"`
	Settlements []calculator.DebtEdge      `json:"settlements"`
}

// ExpenseService records shared expenses and their settlement.
type ExpenseService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewExpenseService creates a new ExpenseService backed by st.
func NewExpenseService(st *store.Store, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{store: st, logger: logger}
}

// NewExpenseServiceHandler builds the HTTP handler serving ExpenseService.
func NewExpenseServiceHandler(svc *ExpenseService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(ExpenseServiceName, opts)
	handle(h, "AddExpense", svc.AddExpense)
	handle(h, "SettleExpense", svc.SettleExpense)
	handle(h, "RemoveExpense", svc.RemoveExpense)
	handle(h, "ListExpenses", svc.ListExpenses)
	handle(h, "GetBalances", svc.GetBalances)
	return h.path, h
}

// AddExpense records an expense paid by the current user.
// The payer's own share is marked paid.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[ExpensesResponse], error) {
	s.logger.Info("AddExpense request received",
		"title", req.Msg.Title,
		"amount", req.Msg.Amount,
		"split_type", req.Msg.SplitType,
		"participants_count", len(req.Msg.Participants),
	)

	expense, err := s.buildExpense(req.Msg)
	if err != nil {
		s.logger.Warn("AddExpense failed", "error", err)
		return nil, err
	}

	s.store.AddExpense(ctx, expense)
	return s.expenses(), nil
}

func (s *ExpenseService) buildExpense(msg *AddExpenseRequest) (models.NewExpense, error) {
	if strings.TrimSpace(msg.Title) == "" {
		return models.NewExpense{}, invalidArgument(ErrTitleRequired)
	}
	if msg.Amount <= 0 {
		return models.NewExpense{}, invalidArgument(ErrAmountNotPositive)
	}

	category := models.CategoryFood
	if msg.Category != "" {
		c, err := models.ParseExpenseCategory(msg.Category)
		if err != nil {
			return models.NewExpense{}, invalidField("category", err)
		}
		category = c
	}
	splitType := models.SplitEqual
	if msg.SplitType != "" {
		t, err := models.ParseSplitType(msg.SplitType)
		if err != nil {
			return models.NewExpense{}, invalidField("splitType", err)
		}
		splitType = t
	}

	snap := s.store.Snapshot()
	now := s.store.Now()
	payer := snap.CurrentUserID()

	var splits []models.ExpenseSplit
	if splitType == models.SplitEqual {
		participants := msg.Participants
		if len(participants) == 0 {
			for _, u := range snap.Users {
				participants = append(participants, u.ID)
			}
		}
		if len(participants) == 0 {
			return models.NewExpense{}, invalidArgument(ErrNoParticipants)
		}
		var err error
		splits, err = calculator.EqualSplit(msg.Amount, participants, payer, now)
		if err != nil {
			return models.NewExpense{}, invalidArgument(err)
		}
	} else {
		if len(msg.SplitDetails) == 0 {
			return models.NewExpense{}, invalidArgument(ErrNoParticipants)
		}
		details := msg.SplitDetails
		if splitType == models.SplitPercentage {
			converted, err := calculator.PercentageSplit(msg.Amount, details)
			if err != nil {
				return models.NewExpense{}, invalidField("splitDetails", err)
			}
			details = converted
		}
		if !calculator.SplitsMatchAmount(details, msg.Amount) {
			return models.NewExpense{}, invalidArgument(ErrSplitMismatch)
		}
		splits, _ = calculator.MarkSplitPaid(details, payer, now)
	}

	expense := models.NewExpense{
		Title:        msg.Title,
		Amount:       msg.Amount,
		Category:     category,
		Receipt:      msg.Receipt,
		SplitType:    splitType,
		SplitDetails: splits,
		PaidBy:       payer,
		Date:         now,
	}
	if msg.Date != nil {
		expense.Date = *msg.Date
	}
	if snap.Group != nil {
		expense.GroupID = snap.Group.ID
	}
	return expense, nil
}

// SettleExpense marks one participant's share paid.
func (s *ExpenseService) SettleExpense(ctx context.Context, req *connect.Request[SettleExpenseRequest]) (*connect.Response[ExpensesResponse], error) {
	s.logger.Info("SettleExpense request received", "expense_id", req.Msg.ExpenseID, "user_id", req.Msg.UserID)
	if req.Msg.ExpenseID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}

	userID := req.Msg.UserID
	if userID == "" {
		if u, ok := s.store.CurrentUser(); ok {
			userID = u.ID
		}
	}
	s.store.SettleExpense(ctx, req.Msg.ExpenseID, userID)
	return s.expenses(), nil
}

// RemoveExpense deletes an expense.
func (s *ExpenseService) RemoveExpense(ctx context.Context, req *connect.Request[ExpenseIDRequest]) (*connect.Response[ExpensesResponse], error) {
	s.logger.Info("RemoveExpense request received", "expense_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.RemoveExpense(ctx, req.Msg.ID)
	return s.expenses(), nil
}

// ListExpenses returns every expense, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ExpensesResponse], error) {
	resp := s.expenses()
	s.logger.Info("ListExpenses successful", "count", len(resp.Msg.Expenses))
	return resp, nil
}

// GetBalances returns the current user's totals, every member's balance and
// the suggested settlements.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	s.logger.Info("GetBalances request received")

	snap := s.store.Snapshot()
	me := snap.CurrentUserID()
	balances := calculator.MemberBalances(snap.Users, snap.Expenses)

	return connect.NewResponse(&GetBalancesResponse{
		OwedToMe:    calculator.OwedToUser(snap.Expenses, me),
		IOwe:        calculator.OwedByUser(snap.Expenses, me),
		Net:         calculator.NetBalance(snap.Expenses, me),
		Balances:    balances,
		Settlements: calculator.SimplifyDebts(balances),
	}), nil
}

func (s *ExpenseService) expenses() *connect.Response[ExpensesResponse] {
	return connect.NewResponse(&ExpensesResponse{Expenses: s.store.Snapshot().Expenses})
}
