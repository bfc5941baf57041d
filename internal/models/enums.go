package models

import "fmt"

// PresenceStatus describes whether a roommate is currently home.
type PresenceStatus string

const (
	PresencePresent      PresenceStatus = "Present"
	PresenceOut          PresenceStatus = "Out"
	PresenceOnLeave      PresenceStatus = "On-Leave"
	PresenceDoNotDisturb PresenceStatus = "Do-Not-Disturb"
)

// PresenceStatuses lists every valid presence status.
var PresenceStatuses = []PresenceStatus{PresencePresent, PresenceOut, PresenceOnLeave, PresenceDoNotDisturb}

// Role is a user's role within the group.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

var Roles = []Role{RoleAdmin, RoleMember}

// Priority is the urgency of a todo.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ExpenseCategory classifies an expense.
type ExpenseCategory string

const (
	CategoryFood      ExpenseCategory = "Food"
	CategoryGrocery   ExpenseCategory = "Grocery"
	CategoryUtility   ExpenseCategory = "Utility"
	CategoryTransport ExpenseCategory = "Transport"
	CategoryOther     ExpenseCategory = "Other"
)

var ExpenseCategories = []ExpenseCategory{CategoryFood, CategoryGrocery, CategoryUtility, CategoryTransport, CategoryOther}

// SplitType records how an expense was divided.
// Only Equal splits are computed by the backend; Custom and Percentage
// splits arrive precomputed from the caller.
type SplitType string

const (
	SplitEqual      SplitType = "Equal"
	SplitCustom     SplitType = "Custom"
	SplitPercentage SplitType = "Percentage"
)

var SplitTypes = []SplitType{SplitEqual, SplitCustom, SplitPercentage}

// Frequency is how often the cleaning duty rotates.
type Frequency string

const (
	FrequencyDaily  Frequency = "Daily"
	FrequencyWeekly Frequency = "Weekly"
)

var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly}

// CleaningStatus is the outcome recorded in the cleaning history.
type CleaningStatus string

const (
	CleaningCompleted CleaningStatus = "Completed"
	CleaningSkipped   CleaningStatus = "Skipped"
	CleaningLate      CleaningStatus = "Late"
)

var CleaningStatuses = []CleaningStatus{CleaningCompleted, CleaningSkipped, CleaningLate}

// NoticePriority is the urgency of a board notice.
type NoticePriority string

const (
	NoticeNormal    NoticePriority = "Normal"
	NoticeImportant NoticePriority = "Important"
	NoticeUrgent    NoticePriority = "Urgent"
)

var NoticePriorities = []NoticePriority{NoticeNormal, NoticeImportant, NoticeUrgent}

// LostFoundType tells whether an item was lost or found.
type LostFoundType string

const (
	LostItem  LostFoundType = "Lost"
	FoundItem LostFoundType = "Found"
)

var LostFoundTypes = []LostFoundType{LostItem, FoundItem}

// BillType classifies a recurring household bill.
type BillType string

const (
	BillGas         BillType = "Gas"
	BillElectricity BillType = "Electricity"
	BillInternet    BillType = "Internet"
	BillRent        BillType = "Rent"
	BillOther       BillType = "Other"
)

var BillTypes = []BillType{BillGas, BillElectricity, BillInternet, BillRent, BillOther}

func (s PresenceStatus) Valid() bool  { return contains(PresenceStatuses, s) }
func (r Role) Valid() bool            { return contains(Roles, r) }
func (p Priority) Valid() bool        { return contains(Priorities, p) }
func (c ExpenseCategory) Valid() bool { return contains(ExpenseCategories, c) }
func (t SplitType) Valid() bool       { return contains(SplitTypes, t) }
func (f Frequency) Valid() bool       { return contains(Frequencies, f) }
func (s CleaningStatus) Valid() bool  { return contains(CleaningStatuses, s) }
func (p NoticePriority) Valid() bool  { return contains(NoticePriorities, p) }
func (t LostFoundType) Valid() bool   { return contains(LostFoundTypes, t) }
func (t BillType) Valid() bool        { return contains(BillTypes, t) }

// ParsePresenceStatus converts s into a PresenceStatus.
func ParsePresenceStatus(s string) (PresenceStatus, error) {
	return parseEnum(s, PresenceStatuses, "presence status")
}

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) { return parseEnum(s, Roles, "role") }

// ParsePriority converts s into a Priority.
func ParsePriority(s string) (Priority, error) { return parseEnum(s, Priorities, "priority") }

// ParseExpenseCategory converts s into an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	return parseEnum(s, ExpenseCategories, "expense category")
}

// ParseSplitType converts s into a SplitType.
func ParseSplitType(s string) (SplitType, error) { return parseEnum(s, SplitTypes, "split type") }

// ParseNoticePriority converts s into a NoticePriority.
func ParseNoticePriority(s string) (NoticePriority, error) {
	return parseEnum(s, NoticePriorities, "notice priority")
}

// ParseLostFoundType converts s into a LostFoundType.
func ParseLostFoundType(s string) (LostFoundType, error) {
	return parseEnum(s, LostFoundTypes, "lost and found type")
}

// ParseBillType converts s into a BillType.
func ParseBillType(s string) (BillType, error) { return parseEnum(s, BillTypes, "bill type") }

func parseEnum[T ~string](s string, all []T, kind string) (T, error) {
	for _, v := range all {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s: %q", kind, s)
}

func contains[T comparable](all []T, v T) bool {
	for _, candidate := range all {
		if candidate == v {
			return true
		}
	}
	return false
}
