package models

import "time"

// Expense is a shared cost paid by one roommate and split among participants.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id" yaml:"id"`

	Title string `json:"title" yaml:"title"`

	// Amount is the positive total in currency units.
	Amount float64 `json:"amount" yaml:"amount"`

	Category ExpenseCategory `json:"category" yaml:"category"`

	// Receipt is an optional receipt image URL.
	Receipt string `json:"receipt,omitempty" yaml:"receipt,omitempty"`

	SplitType SplitType `json:"splitType" yaml:"splitType"`

	// SplitDetails has one entry per participant. At creation the amounts sum
	// to Amount; this is not re-validated afterwards.
	SplitDetails []ExpenseSplit `json:"splitDetails" yaml:"splitDetails"`

	// PaidBy is the user ID of the payer.
	PaidBy string `json:"paidBy" yaml:"paidBy"`

	GroupID string    `json:"groupId" yaml:"groupId"`
	Date    time.Time `json:"date" yaml:"date"`

	// Settled is true iff every split is paid.
	Settled bool `json:"settled" yaml:"settled"`
}

// ExpenseSplit is one participant's share of an expense.
type ExpenseSplit struct {
	UserID   string     `json:"userId" yaml:"userId"`
	Amount   float64    `json:"amount" yaml:"amount"`
	Paid     bool       `json:"paid" yaml:"paid"`
	PaidDate *time.Time `json:"paidDate,omitempty" yaml:"paidDate,omitempty"`

	// Proof is an optional payment proof URL.
	Proof string `json:"proof,omitempty" yaml:"proof,omitempty"`
}

// NewExpense holds the caller-supplied fields of an expense.
// SplitDetails are already computed by the caller (see calculator.EqualSplit);
// the settled flag is derived from them by the store.
type NewExpense struct {
	Title        string          `json:"title"`
	Amount       float64         `json:"amount"`
	Category     ExpenseCategory `json:"category"`
	Receipt      string          `json:"receipt,omitempty"`
	SplitType    SplitType       `json:"splitType"`
	SplitDetails []ExpenseSplit  `json:"splitDetails"`
	PaidBy       string          `json:"paidBy"`
	GroupID      string          `json:"groupId"`
	Date         time.Time       `json:"date"`
}
