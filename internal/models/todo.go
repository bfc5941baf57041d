package models

import "time"

// Todo is a personal or group task.
// A todo is a group task iff GroupID is set; that never changes after creation.
type Todo struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     *time.Time  `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority    Priority    `json:"priority" yaml:"priority"`
	Completed   bool        `json:"completed" yaml:"completed"`
	AssignedTo  []string    `json:"assignedTo,omitempty" yaml:"assignedTo,omitempty"`
	GroupID     string      `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	CreatedBy   string      `json:"createdBy" yaml:"createdBy"`
	Reminders   []time.Time `json:"reminders,omitempty" yaml:"reminders,omitempty"`
}

// IsGroupTask reports whether the todo belongs to the group.
func (t Todo) IsGroupTask() bool {
	return t.GroupID != ""
}

// NewTodo holds the caller-supplied fields of a todo; the store assigns the ID.
type NewTodo struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	Priority    Priority    `json:"priority"`
	Completed   bool        `json:"completed,omitempty"`
	AssignedTo  []string    `json:"assignedTo,omitempty"`
	GroupID     string      `json:"groupId,omitempty"`
	CreatedBy   string      `json:"createdBy"`
	Reminders   []time.Time `json:"reminders,omitempty"`
}
