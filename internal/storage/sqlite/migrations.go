package sqlite

import "database/sql"

// schema holds the seed tables. Every list table carries a position column so
// a seed loads back in the order it was saved. Timestamps are unix seconds, UTC.
// IMPORTANT: users and groups must be created BEFORE the tables that reference them.
const schema = `
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    room_number TEXT NOT NULL DEFAULT '',
    hostel_name TEXT NOT NULL DEFAULT '',
    profile_picture TEXT NOT NULL DEFAULT '',
    presence_status TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    invite_code TEXT NOT NULL,
    created_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS group_members (
    group_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    role TEXT NOT NULL,
    joined_at INTEGER NOT NULL,
    PRIMARY KEY (group_id, user_id),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS todos (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    due_date INTEGER,
    priority TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0,
    group_id TEXT NOT NULL DEFAULT '',
    created_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS todo_assignees (
    todo_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    user_id TEXT NOT NULL,
    PRIMARY KEY (todo_id, position),
    FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS todo_reminders (
    todo_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    remind_at INTEGER NOT NULL,
    PRIMARY KEY (todo_id, position),
    FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    amount REAL NOT NULL,
    category TEXT NOT NULL,
    receipt TEXT NOT NULL DEFAULT '',
    split_type TEXT NOT NULL,
    paid_by TEXT NOT NULL,
    group_id TEXT NOT NULL DEFAULT '',
    date INTEGER NOT NULL,
    settled INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS expense_splits (
    expense_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    user_id TEXT NOT NULL,
    amount REAL NOT NULL,
    paid INTEGER NOT NULL DEFAULT 0,
    paid_date INTEGER,
    proof TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (expense_id, user_id),
    FOREIGN KEY (expense_id) REFERENCES expenses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS shopping_items (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    purchased INTEGER NOT NULL DEFAULT 0,
    purchased_by TEXT NOT NULL DEFAULT '',
    purchased_date INTEGER,
    group_id TEXT NOT NULL DEFAULT '',
    added_by TEXT NOT NULL DEFAULT '',
    converted_to_expense INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS cleaning_duties (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL DEFAULT '',
    frequency TEXT NOT NULL,
    current_turn TEXT NOT NULL,
    last_cleaned_date INTEGER
);

CREATE TABLE IF NOT EXISTS cleaning_members (
    duty_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    user_id TEXT NOT NULL,
    PRIMARY KEY (duty_id, position),
    FOREIGN KEY (duty_id) REFERENCES cleaning_duties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS cleaning_history (
    duty_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    date INTEGER NOT NULL,
    user_id TEXT NOT NULL,
    status TEXT NOT NULL,
    PRIMARY KEY (duty_id, position),
    FOREIGN KEY (duty_id) REFERENCES cleaning_duties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS lost_and_found (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL,
    date INTEGER NOT NULL,
    posted_by TEXT NOT NULL,
    resolved INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS notices (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    posted_by TEXT NOT NULL,
    date INTEGER NOT NULL,
    priority TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    url TEXT NOT NULL,
    uploaded_by TEXT NOT NULL,
    uploaded_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bill_reminders (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    amount REAL NOT NULL,
    due_date INTEGER NOT NULL,
    type TEXT NOT NULL,
    recurring INTEGER NOT NULL DEFAULT 0,
    paid INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_group_members_group_id ON group_members(group_id);
CREATE INDEX IF NOT EXISTS idx_todo_assignees_todo_id ON todo_assignees(todo_id);
CREATE INDEX IF NOT EXISTS idx_expense_splits_expense_id ON expense_splits(expense_id);
CREATE INDEX IF NOT EXISTS idx_cleaning_history_duty_id ON cleaning_history(duty_id);
`

// seedTables lists every table SaveSeed clears, children before parents.
var seedTables = []string{
	"group_members",
	"groups",
	"todo_assignees",
	"todo_reminders",
	"todos",
	"expense_splits",
	"expenses",
	"shopping_items",
	"cleaning_members",
	"cleaning_history",
	"cleaning_duties",
	"lost_and_found",
	"notices",
	"documents",
	"bill_reminders",
	"users",
	"meta",
}

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
