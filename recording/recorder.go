// Package recording stores structured records in a SQLite database.
//
// Its main use in this module is capturing the register-access stream of
// a simulated device, so a driver's programming sequence can be queried
// after the fact.
package recording

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// batchSize is the number of buffered entries that triggers a flush.
const batchSize = 4096

// A Recorder is a backend that can record and store data.
type Recorder interface {
	// CreateTable creates a table shaped like the sample entry's struct
	// type.
	CreateTable(tableName string, sampleEntry any)

	// Insert buffers an entry for a table that already exists.
	Insert(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered entries to the database.
	Flush()
}

// New creates a Recorder backed by a SQLite file at path (".sqlite3" is
// appended). An empty path picks a fresh generated name. Buffered
// entries are flushed at process exit.
func New(path string) Recorder {
	if path == "" {
		path = "gecko_recording_" + xid.New().String()
	}

	filename := path + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Recording register activity to %s\n", filename)

	return NewWithDB(db)
}

// NewWithDB creates a Recorder over an existing database connection.
func NewWithDB(db *sql.DB) Recorder {
	w := &sqliteRecorder{
		db:     db,
		tables: make(map[string]*table),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

// sqliteRecorder buffers entries per table and writes them in batched
// transactions.
type sqliteRecorder struct {
	db *sql.DB

	tables     map[string]*table
	tableOrder []string
	buffered   int
}

func (w *sqliteRecorder) CreateTable(tableName string, sampleEntry any) {
	t := reflect.TypeOf(sampleEntry)
	if t.Kind() != reflect.Struct {
		log.Panic("table entries must be structs")
	}

	cols := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		cols = append(cols, f.Name+" "+sqlType(f.Type.Kind()))
	}

	stmt := fmt.Sprintf("CREATE TABLE %s (%s);",
		tableName, strings.Join(cols, ", "))
	if _, err := w.db.Exec(stmt); err != nil {
		panic(err)
	}

	w.tables[tableName] = &table{structType: t}
	w.tableOrder = append(w.tableOrder, tableName)
}

func (w *sqliteRecorder) Insert(tableName string, entry any) {
	t, found := w.tables[tableName]
	if !found {
		log.Panicf("table %s has not been created", tableName)
	}
	if reflect.TypeOf(entry) != t.structType {
		log.Panicf("entry type does not match table %s", tableName)
	}

	t.entries = append(t.entries, entry)
	w.buffered++

	if w.buffered >= batchSize {
		w.Flush()
	}
}

func (w *sqliteRecorder) ListTables() []string {
	names := make([]string, len(w.tableOrder))
	copy(names, w.tableOrder)
	return names
}

func (w *sqliteRecorder) Flush() {
	tx, err := w.db.Begin()
	if err != nil {
		panic(err)
	}

	for name, t := range w.tables {
		if len(t.entries) == 0 {
			continue
		}

		stmt := insertStatement(name, t.structType)
		prepared, err := tx.Prepare(stmt)
		if err != nil {
			panic(err)
		}

		for _, entry := range t.entries {
			v := reflect.ValueOf(entry)
			args := make([]any, v.NumField())
			for i := range args {
				args[i] = v.Field(i).Interface()
			}

			if _, err := prepared.Exec(args...); err != nil {
				panic(err)
			}
		}

		t.entries = t.entries[:0]
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}

	w.buffered = 0
}

func insertStatement(tableName string, t reflect.Type) string {
	placeholders := strings.TrimSuffix(
		strings.Repeat("?, ", t.NumField()), ", ")
	return fmt.Sprintf("INSERT INTO %s VALUES (%s);", tableName, placeholders)
}

func sqlType(k reflect.Kind) string {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return "INTEGER"
	case reflect.Float32, reflect.Float64:
		return "REAL"
	case reflect.String:
		return "TEXT"
	default:
		log.Panicf("cannot store fields of kind %v", k)
		return ""
	}
}
