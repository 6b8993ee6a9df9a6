package parser

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	catalogQuery = "SELECT name FROM sqlite_master WHERE type='table'"
	columnsQuery = "SELECT name FROM pragma_table_info(?)"
)

// OpenFunc opens the database file at path.
type OpenFunc func(path string) (*sqlx.DB, error)

// SQLiteSource emits every string column value of every table. A table that
// cannot be queried is logged and skipped; a database that cannot be opened
// is logged and yields nothing.
type SQLiteSource struct {
	// Open overrides how the database is opened. Defaults to OpenSQLite.
	Open OpenFunc
}

// OpenSQLite opens path read-only, so a missing file is an error instead of
// a freshly created empty database.
func OpenSQLite(path string) (*sqlx.DB, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *SQLiteSource) Fragments(path string, sink runlog.Sink, emit EmitFunc) error {
	open := s.Open
	if open == nil {
		open = OpenSQLite
	}

	db, err := open(path)
	if err != nil {
		sink.Emit(fmt.Sprintf("error connecting to database: %v", err))
		return nil
	}
	defer db.Close()

	var tables []string
	if err := db.Select(&tables, catalogQuery); err != nil {
		sink.Emit(fmt.Sprintf("error connecting to database: %v", err))
		return nil
	}
	sink.Emit(fmt.Sprintf("tables in the database: [%s]", strings.Join(tables, ", ")))

	for _, table := range tables {
		if err := scanTable(db, table, emit); err != nil {
			sink.Emit(fmt.Sprintf("error querying table %s: %v", table, err))
		}
	}
	return nil
}

// readOnlyDSN builds a file: URI for path. The path is escaped so '#' and '?'
// stay part of the filename instead of ending it.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String(), nil
}

// tableQuery selects every column of table, keeping only values stored as
// TEXT. The driver converts TEXT in DATE/DATETIME/TIMESTAMP columns to
// time.Time by declared type; a bare expression has no declared type.
func tableQuery(table string, columns []string) string {
	exprs := make([]string, len(columns))
	for i, col := range columns {
		c := quoteIdent(col)
		exprs[i] = fmt.Sprintf("CASE WHEN typeof(%s) = 'text' THEN %s END", c, c)
	}
	return "SELECT " + strings.Join(exprs, ", ") + " FROM " + quoteIdent(table)
}

// scanTable emits the text values of one table. Values already emitted
// stay emitted when a later row fails.
func scanTable(db *sqlx.DB, table string, emit EmitFunc) error {
	var columns []string
	if err := db.Select(&columns, columnsQuery, table); err != nil {
		return err
	}
	if len(columns) == 0 {
		return nil
	}

	rows, err := db.Queryx(tableQuery(table, columns))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return err
		}
		for _, v := range values {
			if str, ok := v.(string); ok {
				emit(str)
			}
		}
	}
	return rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
