package views

import (
	"time"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

// TodoCard is a todo with its assignees resolved.
type TodoCard struct {
	models.Todo
	AssigneeNames []string `json:"assigneeNames,omitempty"`
	Overdue       bool     `json:"overdue"`
}

func todoCards(todos []models.Todo, dir directory, now time.Time) []TodoCard {
	cards := make([]TodoCard, 0, len(todos))
	for _, t := range todos {
		cards = append(cards, TodoCard{
			Todo:          t,
			AssigneeNames: dir.names(t.AssignedTo),
			Overdue:       calculator.IsOverdue(t.DueDate, t.Completed, now),
		})
	}
	return cards
}

// TodoList is one tab of the tasks page.
type TodoList struct {
	Pending   []TodoCard `json:"pending"`
	Completed []TodoCard `json:"completed"`
}

// TasksModel is the tasks page.
type TasksModel struct {
	Personal TodoList `json:"personal"`
	Group    TodoList `json:"group"`

	PersonalPending int     `json:"personalPending"`
	GroupPending    int     `json:"groupPending"`
	Completed       int     `json:"completed"`
	Total           int     `json:"total"`
	CompletionRate  float64 `json:"completionRate"`
	Overdue         int     `json:"overdue"`

	// Assignable lists the roommates a new group task can be assigned to.
	Assignable []UserRef `json:"assignable"`
}

// TasksView renders personal and group todos.
type TasksView struct{}

func (TasksView) Page() Page { return PageTodos }

func (TasksView) Render(snap models.Snapshot, now time.Time) any {
	dir := newDirectory(snap.Users)
	personal, group := calculator.PartitionTodos(snap.Todos)

	m := TasksModel{
		Personal: TodoList{
			Pending:   todoCards(calculator.FilterTodos(personal, false), dir, now),
			Completed: todoCards(calculator.FilterTodos(personal, true), dir, now),
		},
		Group: TodoList{
			Pending:   todoCards(calculator.FilterTodos(group, false), dir, now),
			Completed: todoCards(calculator.FilterTodos(group, true), dir, now),
		},
		Total:          len(snap.Todos),
		CompletionRate: calculator.CompletionRate(snap.Todos),
		Overdue:        len(calculator.OverdueTodos(snap.Todos, now)),
		Assignable:     []UserRef{},
	}
	m.PersonalPending = len(m.Personal.Pending)
	m.GroupPending = len(m.Group.Pending)
	m.Completed = len(m.Personal.Completed) + len(m.Group.Completed)

	me := snap.CurrentUserID()
	for _, u := range snap.Users {
		if u.ID != me {
			m.Assignable = append(m.Assignable, *dir.ref(u.ID))
		}
	}
	return m
}
