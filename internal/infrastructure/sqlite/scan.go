package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
)

// timeLayout formato de almacenamiento (UTC, ordenable como texto, igual a CURRENT_TIMESTAMP).
const timeLayout = "2006-01-02 15:04:05"

// timeLayouts formatos aceptados al leer; incluye los que dejaba la versión anterior.
var timeLayouts = []string{
	timeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.9999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02",
}

// rowScanner lo común entre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// now hora actual truncada a la precisión almacenada.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// storedTime lleva t a UTC con la precisión almacenada.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// parseTime convierte una columna de fecha; un formato desconocido es un error
// (la fila no corresponde al modelo esperado).
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha con formato desconocido %q", s)
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dayStart y nextDay delimitan filtros de fecha inclusivos por día.
func dayStart(t time.Time) string {
	y, m, d := t.Date()
	return formatTime(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func nextDay(t time.Time) string {
	y, m, d := t.Date()
	return formatTime(time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC))
}

func nullInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func likePattern(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}

// whereBuilder arma cláusulas WHERE con argumentos posicionales.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, args ...any) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// translateConstraint convierte violaciones de restricciones de SQLite en errores de dominio.
// Devuelve err sin cambios si no es una violación conocida.
func translateConstraint(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return domain.ErrDuplicate
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return fmt.Errorf("referencia inexistente: %w", domain.ErrValidation)
	}
	return err
}

// affected devuelve true si la sentencia tocó al menos una fila.
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
