package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		avatar_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		color TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE user_teams (
		user_id INTEGER NOT NULL,
		team_id INTEGER NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT false,
		PRIMARY KEY (user_id, team_id)
	);`)
}

func createContactTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		title TEXT,
		company TEXT,
		source TEXT NOT NULL,
		status TEXT NOT NULL,
		assigned_to INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPipelineTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pipeline_stages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		color TEXT,
		kind TEXT NOT NULL DEFAULT 'open',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE deals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		value REAL NOT NULL DEFAULT 0,
		stage_id INTEGER NOT NULL,
		contact_id INTEGER NOT NULL,
		owner_id INTEGER NOT NULL,
		expected_close_date DATETIME,
		probability INTEGER NOT NULL DEFAULT 50,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTaskTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		due_date DATETIME,
		time TEXT,
		completed BOOLEAN NOT NULL DEFAULT false,
		priority TEXT NOT NULL DEFAULT 'medium',
		assigned_to INTEGER NOT NULL,
		related_to_type TEXT,
		related_to_id INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createActivityTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		user_id INTEGER NOT NULL,
		related_to_type TEXT,
		related_to_id INTEGER,
		metadata TEXT DEFAULT '{}',
		created_at DATETIME
	);`)
}
