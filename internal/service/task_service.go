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

type AddTodoRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	// Priority defaults to Medium.
	Priority string `json:"priority,omitempty"`
	// GroupTask files the todo under the current group; only group tasks keep AssignedTo.
	GroupTask  bool        `json:"groupTask,omitempty"`
	AssignedTo []string    `json:"assignedTo,omitempty"`
	Reminders  []time.Time `json:"reminders,omitempty"`
}

type TodoIDRequest struct {
	ID string `json:"id"`
}

type ListTodosRequest struct {
	// Completed filters by completion when set.
	Completed *bool `json:"completed,omitempty"`
}

type TodosResponse struct {
	Todos []models.Todo `json:"todos"`
}

// TaskService manages personal and group todos.
type TaskService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTaskService creates a new TaskService backed by st.
func NewTaskService(st *store.Store, logger *slog.Logger) *TaskService {
	return &TaskService{store: st, logger: logger}
}

// NewTaskServiceHandler builds the HTTP handler serving TaskService.
func NewTaskServiceHandler(svc *TaskService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(TaskServiceName, opts)
	handle(h, "AddTodo", svc.AddTodo)
	handle(h, "ToggleTodo", svc.ToggleTodo)
	handle(h, "RemoveTodo", svc.RemoveTodo)
	handle(h, "ListTodos", svc.ListTodos)
	return h.path, h
}

// AddTodo creates a todo owned by the current user.
func (s *TaskService) AddTodo(ctx context.Context, req *connect.Request[AddTodoRequest]) (*connect.Response[TodosResponse], error) {
	s.logger.Info("AddTodo request received", "title", req.Msg.Title, "group_task", req.Msg.GroupTask)

	if strings.TrimSpace(req.Msg.Title) == "" {
		return nil, invalidArgument(ErrTitleRequired)
	}
	priority := models.PriorityMedium
	if req.Msg.Priority != "" {
		p, err := models.ParsePriority(req.Msg.Priority)
		if err != nil {
			return nil, invalidField("priority", err)
		}
		priority = p
	}

	snap := s.store.Snapshot()
	todo := models.NewTodo{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		DueDate:     req.Msg.DueDate,
		Priority:    priority,
		CreatedBy:   snap.CurrentUserID(),
		Reminders:   req.Msg.Reminders,
	}
	if req.Msg.GroupTask && snap.Group != nil {
		todo.GroupID = snap.Group.ID
		todo.AssignedTo = req.Msg.AssignedTo
	}

	s.store.AddTodo(ctx, todo)
	return s.todos(), nil
}

// ToggleTodo flips a todo between pending and completed.
func (s *TaskService) ToggleTodo(ctx context.Context, req *connect.Request[TodoIDRequest]) (*connect.Response[TodosResponse], error) {
	s.logger.Info("ToggleTodo request received", "todo_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.ToggleTodo(ctx, req.Msg.ID)
	return s.todos(), nil
}

// RemoveTodo deletes a todo.
func (s *TaskService) RemoveTodo(ctx context.Context, req *connect.Request[TodoIDRequest]) (*connect.Response[TodosResponse], error) {
	s.logger.Info("RemoveTodo request received", "todo_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.RemoveTodo(ctx, req.Msg.ID)
	return s.todos(), nil
}

// ListTodos returns the todos, newest first.
func (s *TaskService) ListTodos(ctx context.Context, req *connect.Request[ListTodosRequest]) (*connect.Response[TodosResponse], error) {
	todos := s.store.Snapshot().Todos
	if req.Msg.Completed != nil {
		todos = calculator.FilterTodos(todos, *req.Msg.Completed)
	}
	s.logger.Info("ListTodos successful", "count", len(todos))
	return connect.NewResponse(&TodosResponse{Todos: todos}), nil
}

func (s *TaskService) todos() *connect.Response[TodosResponse] {
	return connect.NewResponse(&TodosResponse{Todos: s.store.Snapshot().Todos})
}
