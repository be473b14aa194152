package app

import (
	"context"

	"github.com/vk/tike/internal/store"
)

const (
	tasksTable          = "tasks"
	completedTasksTable = "completedTasks"
)

// ensureSchema creates the task tables. completedTasks rows get fresh ids
// on insert (INTEGER PRIMARY KEY aliases rowid), so no AUTOINCREMENT there.
func (a *App) ensureSchema(ctx context.Context) error {
	if err := a.store.CreateTable(ctx, tasksTable, []store.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true, AutoIncrement: true},
		{Name: "title", Type: "TEXT"},
		{Name: "description", Type: "TEXT"},
		{Name: "timeCreated", Type: "DATETIME", Default: "CURRENT_TIMESTAMP"},
	}); err != nil {
		return err
	}

	return a.store.CreateTable(ctx, completedTasksTable, []store.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "title", Type: "TEXT"},
		{Name: "description", Type: "TEXT"},
		{Name: "timeCreated", Type: "DATETIME"},
		{Name: "timeCompleted", Type: "DATETIME", Default: "CURRENT_TIMESTAMP"},
	})
}
