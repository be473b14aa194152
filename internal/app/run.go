package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vk/tike/internal/argparse"
	"github.com/vk/tike/internal/ctxlog"
	"github.com/vk/tike/internal/store"
)

// Run dispatches the single command selected by the parsed arguments. The
// first matching option wins; supplying none is a successful no-op. Help
// and version never reach this point, they are served by the cli layer.
func (a *App) Run(ctx context.Context, args *argparse.Parser) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	switch {
	case args.HasValue("add"):
		return a.addTask(ctx, args)
	case args.HasValue("list"):
		return a.listTask(ctx, args, "list", tasksTable)
	case args.HasValue("list-all"):
		return a.listAllTasks(ctx, tasksTable)
	case args.HasValue("remove"):
		return a.removeTask(ctx, args)
	case args.HasValue("complete"):
		return a.completeTask(ctx, args)
	case args.HasValue("list-completed"):
		return a.listTask(ctx, args, "list-completed", completedTasksTable)
	case args.HasValue("list-all-completed"):
		return a.listAllTasks(ctx, completedTasksTable)
	}

	a.logger.Debug("no command selected")
	return nil
}

// addTask inserts a new task. The title option is required; description is
// optional.
func (a *App) addTask(ctx context.Context, args *argparse.Parser) error {
	title, ok := args.Value("title")
	if !ok {
		return &argparse.Error{Kind: argparse.MissingRequiredArgument, Token: "--title"}
	}

	data := map[string]any{"title": title}
	if desc, ok := args.Value("description"); ok {
		data["description"] = desc
	}

	if err := a.store.AddRecord(ctx, store.Record{Table: tasksTable, Data: data}); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("task added", "title", title)
	fmt.Fprintln(a.outW, "Task added successfully")
	return nil
}

// listTask prints the single task addressed by pseudo-ID.
func (a *App) listTask(ctx context.Context, args *argparse.Parser, option, table string) error {
	n, err := taskID(args, option)
	if err != nil {
		return err
	}

	rec, err := a.store.GetRecordByPseudoID(ctx, table, n)
	if errors.Is(err, store.ErrNoRecord) {
		return fmt.Errorf("task not found: %d", n)
	}
	if err != nil {
		return err
	}

	a.renderTasks("Task:", []taskRow{rowFromRecord(n, rec)}, table == completedTasksTable)
	return nil
}

// listAllTasks prints every task in the table, numbered by pseudo-ID.
func (a *App) listAllTasks(ctx context.Context, table string) error {
	recs, err := a.store.GetAllRecords(ctx, table)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no tasks found in table: %s", table)
	}

	rows := make([]taskRow, len(recs))
	for i, rec := range recs {
		rows[i] = rowFromRecord(i+1, rec)
	}
	a.renderTasks("Tasks:", rows, table == completedTasksTable)
	return nil
}

// removeTask deletes the task addressed by pseudo-ID. Removing a position
// past the end of the table is a silent no-op, matching the DELETE.
func (a *App) removeTask(ctx context.Context, args *argparse.Parser) error {
	n, err := taskID(args, "remove")
	if err != nil {
		return err
	}
	if err := a.store.RemoveRecordByPseudoID(ctx, tasksTable, n); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "Task %d removed successfully\n", n)
	return nil
}

// completeTask moves a task from tasks to completedTasks: copy title,
// description, and creation time, then delete the original row by its real
// id so a shifting pseudo-ID cannot delete the wrong task.
func (a *App) completeTask(ctx context.Context, args *argparse.Parser) error {
	n, err := taskID(args, "complete")
	if err != nil {
		return err
	}

	rec, err := a.store.GetRecordByPseudoID(ctx, tasksTable, n)
	if errors.Is(err, store.ErrNoRecord) {
		return fmt.Errorf("task not found: %d", n)
	}
	if err != nil {
		return err
	}

	completed := store.Record{Table: completedTasksTable, Data: map[string]any{
		"title":       rec.Data["title"],
		"description": rec.Data["description"],
		"timeCreated": rec.Data["timeCreated"],
	}}
	if err := a.store.AddRecord(ctx, completed); err != nil {
		return err
	}
	if err := a.store.RemoveRecord(ctx, tasksTable, map[string]any{"id": rec.Data["id"]}); err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Debug("task completed", "pseudoID", n, "id", rec.Data["id"])
	fmt.Fprintf(a.outW, "Task %d marked as completed\n", n)
	return nil
}

// taskID reads a valued option and converts it to a 1-based pseudo-ID.
func taskID(args *argparse.Parser, option string) (int, error) {
	raw, _ := args.Value(option)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid task id for --%s: %q", option, raw)
	}
	return n, nil
}
