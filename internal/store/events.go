package store

import "time"

// Op names a store mutation.
type Op string

const (
	OpLogin               Op = "login"
	OpLogout              Op = "logout"
	OpUpdatePresence      Op = "update_presence"
	OpAddTodo             Op = "add_todo"
	OpToggleTodo          Op = "toggle_todo"
	OpRemoveTodo          Op = "remove_todo"
	OpAddExpense          Op = "add_expense"
	OpSettleExpense       Op = "settle_expense"
	OpRemoveExpense       Op = "remove_expense"
	OpAddShoppingItem     Op = "add_shopping_item"
	OpToggleShoppingItem  Op = "toggle_shopping_item"
	OpRemoveShoppingItem  Op = "remove_shopping_item"
	OpMarkCleaning        Op = "mark_cleaning_complete"
	OpAddLostAndFound     Op = "add_lost_and_found"
	OpResolveLostAndFound Op = "resolve_lost_and_found"
	OpRemoveLostAndFound  Op = "remove_lost_and_found"
	OpAddNotice           Op = "add_notice"
	OpRemoveNotice        Op = "remove_notice"
	OpAddBillReminder     Op = "add_bill_reminder"
	OpMarkBillPaid        Op = "mark_bill_paid"
	OpReset               Op = "reset"
)

// Event describes one mutation call.
// Applied is false when the call was a silent no-op (unknown ID, no current user).
type Event struct {
	Op       Op        `json:"op"`
	Applied  bool      `json:"applied"`
	EntityID string    `json:"entityId,omitempty"`
	UserID   string    `json:"userId,omitempty"` // the current user at the time of the call
	At       time.Time `json:"at"`
}
