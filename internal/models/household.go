package models

import "time"

// ShoppingItem is an entry on the shared shopping list.
// PurchasedBy and PurchasedDate are set together, only while Purchased is true.
type ShoppingItem struct {
	ID                 string     `json:"id" yaml:"id"`
	Name               string     `json:"name" yaml:"name"`
	Purchased          bool       `json:"purchased" yaml:"purchased"`
	PurchasedBy        string     `json:"purchasedBy,omitempty" yaml:"purchasedBy,omitempty"`
	PurchasedDate      *time.Time `json:"purchasedDate,omitempty" yaml:"purchasedDate,omitempty"`
	GroupID            string     `json:"groupId" yaml:"groupId"`
	AddedBy            string     `json:"addedBy" yaml:"addedBy"`
	ConvertedToExpense bool       `json:"convertedToExpense,omitempty" yaml:"convertedToExpense,omitempty"`
}

// CleaningDuty is the group's round-robin cleaning rotation.
// CurrentTurn is always an element of Members; Members is a fixed ring.
type CleaningDuty struct {
	ID              string            `json:"id" yaml:"id"`
	GroupID         string            `json:"groupId" yaml:"groupId"`
	Members         []string          `json:"members" yaml:"members"`
	Frequency       Frequency         `json:"frequency" yaml:"frequency"`
	CurrentTurn     string            `json:"currentTurn" yaml:"currentTurn"`
	LastCleanedDate *time.Time        `json:"lastCleanedDate,omitempty" yaml:"lastCleanedDate,omitempty"`
	History         []CleaningHistory `json:"history" yaml:"history"` // most recent first
}

// CleaningHistory is one recorded cleaning.
type CleaningHistory struct {
	Date   time.Time      `json:"date" yaml:"date"`
	UserID string         `json:"userId" yaml:"userId"`
	Status CleaningStatus `json:"status" yaml:"status"`
}

// Notice is a message pinned to the household board.
type Notice struct {
	ID       string         `json:"id" yaml:"id"`
	Title    string         `json:"title" yaml:"title"`
	Content  string         `json:"content" yaml:"content"`
	PostedBy string         `json:"postedBy" yaml:"postedBy"`
	Date     time.Time      `json:"date" yaml:"date"`
	Priority NoticePriority `json:"priority" yaml:"priority"`
}

// NewNotice holds the caller-supplied fields of a notice.
// A zero Date is filled with the store clock.
type NewNotice struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	PostedBy string         `json:"postedBy"`
	Date     time.Time      `json:"date,omitempty"`
	Priority NoticePriority `json:"priority"`
}

// LostAndFound is a lost or found item report.
type LostAndFound struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Type        LostFoundType `json:"type" yaml:"type"`
	Date        time.Time     `json:"date" yaml:"date"`
	PostedBy    string        `json:"postedBy" yaml:"postedBy"`
	Resolved    bool          `json:"resolved" yaml:"resolved"`
}

// NewLostAndFound holds the caller-supplied fields of a report.
type NewLostAndFound struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        LostFoundType `json:"type"`
	Date        time.Time     `json:"date,omitempty"`
	PostedBy    string        `json:"postedBy"`
	Resolved    bool          `json:"resolved,omitempty"`
}

// BillReminder tracks an upcoming household bill.
type BillReminder struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Amount    float64   `json:"amount" yaml:"amount"`
	DueDate   time.Time `json:"dueDate" yaml:"dueDate"`
	Type      BillType  `json:"type" yaml:"type"`
	Recurring bool      `json:"recurring" yaml:"recurring"`
	Paid      bool      `json:"paid" yaml:"paid"`
}

// NewBillReminder holds the caller-supplied fields of a bill reminder.
type NewBillReminder struct {
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"dueDate"`
	Type      BillType  `json:"type"`
	Recurring bool      `json:"recurring"`
}

// Document is a shared file reference. Documents are read-only here;
// uploading happens outside the backend.
type Document struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Type       string    `json:"type" yaml:"type"`
	URL        string    `json:"url" yaml:"url"`
	UploadedBy string    `json:"uploadedBy" yaml:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt" yaml:"uploadedAt"`
}
