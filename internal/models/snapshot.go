package models

import "time"

// Seed is the initial dataset the store is built from.
// CurrentUserID designates which of Users starts logged in.
type Seed struct {
	CurrentUserID string         `json:"currentUserId" yaml:"currentUserId"`
	Users         []User         `json:"users" yaml:"users"`
	Group         *Group         `json:"group,omitempty" yaml:"group,omitempty"`
	Todos         []Todo         `json:"todos" yaml:"todos"`
	Expenses      []Expense      `json:"expenses" yaml:"expenses"`
	ShoppingItems []ShoppingItem `json:"shoppingItems" yaml:"shoppingItems"`
	CleaningDuty  *CleaningDuty  `json:"cleaningDuty,omitempty" yaml:"cleaningDuty,omitempty"`
	LostAndFound  []LostAndFound `json:"lostAndFound" yaml:"lostAndFound"`
	Notices       []Notice       `json:"notices" yaml:"notices"`
	Documents     []Document     `json:"documents" yaml:"documents"`
	BillReminders []BillReminder `json:"billReminders" yaml:"billReminders"`
}

// Snapshot is the complete state of the store at a point in time.
// Snapshots returned by the store are deep copies and safe to hold on to.
type Snapshot struct {
	Authenticated bool           `json:"authenticated"`
	CurrentUser   *User          `json:"currentUser,omitempty"`
	Users         []User         `json:"users"`
	Group         *Group         `json:"group,omitempty"`
	Todos         []Todo         `json:"todos"`
	Expenses      []Expense      `json:"expenses"`
	ShoppingItems []ShoppingItem `json:"shoppingItems"`
	CleaningDuty  *CleaningDuty  `json:"cleaningDuty,omitempty"`
	LostAndFound  []LostAndFound `json:"lostAndFound"`
	Notices       []Notice       `json:"notices"`
	Documents     []Document     `json:"documents"`
	BillReminders []BillReminder `json:"billReminders"`
}

// CurrentUserID returns the ID of the logged-in user, or "" when logged out.
func (s Snapshot) CurrentUserID() string {
	if s.CurrentUser == nil {
		return ""
	}
	return s.CurrentUser.ID
}

// FindUser returns the user with the given ID.
func (s Snapshot) FindUser(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Authenticated: s.Authenticated,
		Users:         cloneSlice(s.Users),
		Group:         CloneGroup(s.Group),
		Todos:         make([]Todo, len(s.Todos)),
		Expenses:      make([]Expense, len(s.Expenses)),
		ShoppingItems: make([]ShoppingItem, len(s.ShoppingItems)),
		CleaningDuty:  CloneCleaningDuty(s.CleaningDuty),
		LostAndFound:  cloneSlice(s.LostAndFound),
		Notices:       cloneSlice(s.Notices),
		Documents:     cloneSlice(s.Documents),
		BillReminders: cloneSlice(s.BillReminders),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	for i, t := range s.Todos {
		out.Todos[i] = CloneTodo(t)
	}
	for i, e := range s.Expenses {
		out.Expenses[i] = CloneExpense(e)
	}
	for i, item := range s.ShoppingItems {
		item.PurchasedDate = cloneTime(item.PurchasedDate)
		out.ShoppingItems[i] = item
	}
	return out
}

// CloneTodo returns a copy of t that shares no memory with it.
func CloneTodo(t Todo) Todo {
	t.DueDate = cloneTime(t.DueDate)
	t.AssignedTo = cloneSlice(t.AssignedTo)
	t.Reminders = cloneSlice(t.Reminders)
	return t
}

// CloneExpense returns a copy of e that shares no memory with it.
func CloneExpense(e Expense) Expense {
	splits := make([]ExpenseSplit, len(e.SplitDetails))
	for i, s := range e.SplitDetails {
		s.PaidDate = cloneTime(s.PaidDate)
		splits[i] = s
	}
	e.SplitDetails = splits
	return e
}

// CloneGroup returns a copy of g, or nil.
func CloneGroup(g *Group) *Group {
	if g == nil {
		return nil
	}
	out := *g
	out.Members = cloneSlice(g.Members)
	return &out
}

// CloneCleaningDuty returns a copy of d, or nil.
func CloneCleaningDuty(d *CleaningDuty) *CleaningDuty {
	if d == nil {
		return nil
	}
	out := *d
	out.Members = cloneSlice(d.Members)
	out.History = cloneSlice(d.History)
	out.LastCleanedDate = cloneTime(d.LastCleanedDate)
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
