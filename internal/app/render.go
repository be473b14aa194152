package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vk/tike/internal/store"
)

const (
	numberWidth = 5
	columnWidth = 20
)

// taskRow is one line of a task listing. Num is the pseudo-ID shown to the
// user; Completed is empty for rows from the tasks table.
type taskRow struct {
	Num         int
	Title       string
	Description string
	Created     string
	Completed   string
}

// rowFromRecord maps a store record onto a display row. Absent (NULL)
// columns render as empty strings.
func rowFromRecord(num int, rec store.Record) taskRow {
	return taskRow{
		Num:         num,
		Title:       stringField(rec, "title"),
		Description: stringField(rec, "description"),
		Created:     stringField(rec, "timeCreated"),
		Completed:   stringField(rec, "timeCompleted"),
	}
}

func stringField(rec store.Record, name string) string {
	if s, ok := rec.Data[name].(string); ok {
		return s
	}
	return ""
}

// renderTasks prints a fixed-width task table. Lines are padded before any
// coloring so escape codes never skew the column math; color is disabled
// automatically by the library on non-TTY output.
func (a *App) renderTasks(heading string, rows []taskRow, completed bool) {
	headers := []string{"Task Title", "Task Description", "Time Created (UTC)"}
	if completed {
		headers = append(headers, "Time Completed (UTC)")
	}

	var header strings.Builder
	fmt.Fprintf(&header, "%-*s", numberWidth, "#")
	for _, h := range headers {
		fmt.Fprintf(&header, "%-*s", columnWidth, h)
	}

	bold := color.New(color.Bold)
	bold.Fprintln(a.outW, heading)
	bold.Fprintln(a.outW, header.String())
	fmt.Fprintln(a.outW, strings.Repeat("-", numberWidth+len(headers)*columnWidth))

	for _, r := range rows {
		cells := []string{r.Title, r.Description, r.Created}
		if completed {
			cells = append(cells, r.Completed)
		}
		fmt.Fprintf(a.outW, "%-*d", numberWidth, r.Num)
		for _, c := range cells {
			fmt.Fprintf(a.outW, "%-*s", columnWidth, c)
		}
		fmt.Fprintln(a.outW)
	}
}
