package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoRecord is returned by lookups that match no row.
var ErrNoRecord = errors.New("store: no matching record")

// Column describes one column of a table definition.
type Column struct {
	Name          string
	Type          string
	PrimaryKey    bool
	AutoIncrement bool
	NotNull       bool
	Unique        bool
	// Default is a raw SQL default expression, e.g. "CURRENT_TIMESTAMP".
	Default string
	// References is a raw foreign-key target, e.g. "tasks(id)".
	References string
}

// Record is one row of a table: the table it belongs to plus its data as
// column-name/value pairs. Values are int64, float64, or string.
type Record struct {
	Table string
	Data  map[string]any
}

// Store is a handle to the SQLite database. Table and column names passed
// to its methods must come from program constants, never from user input;
// all values are bound as parameters.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateTable issues CREATE TABLE IF NOT EXISTS for the given definition.
func (s *Store) CreateTable(ctx context.Context, table string, columns []Column) error {
	if len(columns) == 0 {
		return fmt.Errorf("create table %s: no columns given", table)
	}

	defs := make([]string, 0, len(columns))
	for _, c := range columns {
		var d strings.Builder
		d.WriteString(c.Name)
		d.WriteString(" ")
		d.WriteString(c.Type)
		if c.PrimaryKey {
			d.WriteString(" PRIMARY KEY")
		}
		if c.AutoIncrement {
			d.WriteString(" AUTOINCREMENT")
		}
		if c.NotNull {
			d.WriteString(" NOT NULL")
		}
		if c.Unique {
			d.WriteString(" UNIQUE")
		}
		if c.Default != "" {
			d.WriteString(" DEFAULT ")
			d.WriteString(c.Default)
		}
		if c.References != "" {
			d.WriteString(" REFERENCES ")
			d.WriteString(c.References)
		}
		defs = append(defs, d.String())
	}

	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}

// AddRecord inserts one record into its table.
func (s *Store) AddRecord(ctx context.Context, rec Record) error {
	cols, vals := splitData(rec.Data)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		rec.Table, strings.Join(cols, ", "), placeholders)
	if _, err := s.db.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("insert into %s: %w", rec.Table, err)
	}
	return nil
}

// GetRecord fetches the single row of table matching every criteria pair.
// It returns ErrNoRecord when nothing matches.
func (s *Store) GetRecord(ctx context.Context, table string, criteria map[string]any) (Record, error) {
	where, vals := whereClause(criteria)
	query := fmt.Sprintf("SELECT * FROM %s%s LIMIT 1", table, where)

	recs, err := s.queryRecords(ctx, table, query, vals...)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("select from %s: %w", table, ErrNoRecord)
	}
	return recs[0], nil
}

// GetRecordByPseudoID fetches the n-th row (1-based) of table with rows
// ordered by id. It returns ErrNoRecord when n is out of range.
func (s *Store) GetRecordByPseudoID(ctx context.Context, table string, n int) (Record, error) {
	if n < 1 {
		return Record{}, fmt.Errorf("select from %s at position %d: %w", table, n, ErrNoRecord)
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id LIMIT 1 OFFSET ?", table)
	recs, err := s.queryRecords(ctx, table, query, n-1)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("select from %s at position %d: %w", table, n, ErrNoRecord)
	}
	return recs[0], nil
}

// GetAllRecords fetches every row of table ordered by id.
func (s *Store) GetAllRecords(ctx context.Context, table string) ([]Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id", table)
	return s.queryRecords(ctx, table, query)
}

// RemoveRecord deletes the rows of table matching every criteria pair.
func (s *Store) RemoveRecord(ctx context.Context, table string, criteria map[string]any) error {
	where, vals := whereClause(criteria)
	query := fmt.Sprintf("DELETE FROM %s%s", table, where)
	if _, err := s.db.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

// RemoveRecordByPseudoID deletes the n-th row (1-based) of table with rows
// ordered by id. Deleting a position past the end is a no-op.
func (s *Store) RemoveRecordByPseudoID(ctx context.Context, table string, n int) error {
	if n < 1 {
		return fmt.Errorf("delete from %s at position %d: %w", table, n, ErrNoRecord)
	}

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id = (SELECT id FROM %s ORDER BY id LIMIT 1 OFFSET ?)",
		table, table)
	if _, err := s.db.ExecContext(ctx, query, n-1); err != nil {
		return fmt.Errorf("delete from %s at position %d: %w", table, n, err)
	}
	return nil
}

// queryRecords runs query and converts every returned row into a Record.
func (s *Store) queryRecords(ctx context.Context, table, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	var recs []Record
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}

		data := make(map[string]any, len(cols))
		for i, name := range cols {
			data[name] = normalize(raw[i])
		}
		recs = append(recs, Record{Table: table, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return recs, nil
}

// normalize maps driver-specific scan types onto the store's value set:
// int64, float64, or string.
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format("2006-01-02 15:04:05")
	default:
		return v
	}
}

// splitData returns the keys and values of data in deterministic (sorted
// key) order, for stable statement text and parameter binding.
func splitData(data map[string]any) ([]string, []any) {
	cols := make([]string, 0, len(data))
	for k := range data {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	vals := make([]any, 0, len(cols))
	for _, c := range cols {
		vals = append(vals, data[c])
	}
	return cols, vals
}

// whereClause builds an equality conjunction over criteria. An empty
// criteria map yields an empty clause.
func whereClause(criteria map[string]any) (string, []any) {
	if len(criteria) == 0 {
		return "", nil
	}
	cols, vals := splitData(criteria)
	conds := make([]string, len(cols))
	for i, c := range cols {
		conds[i] = c + " = ?"
	}
	return " WHERE " + strings.Join(conds, " AND "), vals
}
