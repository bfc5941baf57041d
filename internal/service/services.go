package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/auth"
	"github.com/zaryabali001/roommate/internal/notify"
	"github.com/zaryabali001/roommate/internal/store"
	"github.com/zaryabali001/roommate/internal/views"
)

// Services groups every RPC service over one store.
type Services struct {
	Session  *SessionService
	Task     *TaskService
	Expense  *ExpenseService
	Shopping *ShoppingService
	Cleaning *CleaningService
	Board    *BoardService
	View     *ViewService
	Group    *GroupService
}

// NewServices wires all services to st. Login goes through a stub
// authenticator that accepts any email. A nil inviter drops invitations.
func NewServices(st *store.Store, jwtManager *auth.JWTManager, router *views.Router, inviter notify.Inviter, logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}
	if inviter == nil {
		inviter = notify.NoopNotifier{}
	}
	return &Services{
		Session:  NewSessionService(st, auth.NewStubAuthenticator(st), jwtManager, logger),
		Task:     NewTaskService(st, logger),
		Expense:  NewExpenseService(st, logger),
		Shopping: NewShoppingService(st, logger),
		Cleaning: NewCleaningService(st, logger),
		Board:    NewBoardService(st, logger),
		View:     NewViewService(st, router, logger),
		Group:    NewGroupService(st, router, inviter, logger),
	}
}

// Route is a mount path and the handler serving it.
type Route struct {
	Path    string
	Handler http.Handler
}

// Routes builds the handler of every service with the same options.
func (s *Services) Routes(opts ...connect.HandlerOption) []Route {
	var routes []Route
	add := func(path string, h http.Handler) {
		routes = append(routes, Route{Path: path, Handler: h})
	}
	add(NewSessionServiceHandler(s.Session, opts...))
	add(NewTaskServiceHandler(s.Task, opts...))
	add(NewExpenseServiceHandler(s.Expense, opts...))
	add(NewShoppingServiceHandler(s.Shopping, opts...))
	add(NewCleaningServiceHandler(s.Cleaning, opts...))
	add(NewBoardServiceHandler(s.Board, opts...))
	add(NewViewServiceHandler(s.View, opts...))
	add(NewGroupServiceHandler(s.Group, opts...))
	return routes
}
