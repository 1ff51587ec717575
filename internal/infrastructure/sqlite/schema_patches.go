package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// columnPatch columna que puede faltar en archivos creados por versiones anteriores.
type columnPatch struct {
	table  string
	column string
	ddl    string
}

var columnPatches = []columnPatch{
	{table: "transactions", column: "employee_id", ddl: "INTEGER"},
	{table: "inventory", column: "unit", ddl: "TEXT NOT NULL DEFAULT 'unit'"},
	{table: "inventory", column: "unit_cost", ddl: "TEXT NOT NULL DEFAULT '0'"},
	{table: "users", column: "email", ddl: "TEXT"},
	{table: "employees", column: "email", ddl: "TEXT"},
}

// valueNormalization reescribe valores enumerados a su forma canónica.
// canonical se indexa por foldKey; fallback vacío deja intactos los valores desconocidos.
type valueNormalization struct {
	table     string
	column    string
	canonical map[string]string
	fallback  string
}

var categoryCanonical = map[string]string{
	foldKey(entity.CategoryRawMaterial):  entity.CategoryRawMaterial,
	foldKey("Matière première"):          entity.CategoryRawMaterial,
	foldKey(entity.CategoryPreparedDish): entity.CategoryPreparedDish,
	foldKey("Plat préparé"):              entity.CategoryPreparedDish,
}

var valueNormalizations = []valueNormalization{
	{table: "inventory", column: "category", canonical: categoryCanonical, fallback: entity.CategoryRawMaterial},
	{table: "order_items", column: "category", canonical: categoryCanonical, fallback: entity.CategoryRawMaterial},
	{table: "transactions", column: "type", canonical: map[string]string{
		foldKey(entity.TransactionTypeSale):    entity.TransactionTypeSale,
		foldKey("Vente"):                       entity.TransactionTypeSale,
		foldKey(entity.TransactionTypeExpense): entity.TransactionTypeExpense,
		foldKey("Dépense"):                     entity.TransactionTypeExpense,
	}},
	{table: "orders", column: "status", canonical: map[string]string{
		foldKey(entity.OrderStatusPending):   entity.OrderStatusPending,
		foldKey("En attente"):                entity.OrderStatusPending,
		foldKey(entity.OrderStatusDelivered): entity.OrderStatusDelivered,
		foldKey("Livrée"):                    entity.OrderStatusDelivered,
		foldKey(entity.OrderStatusCancelled): entity.OrderStatusCancelled,
		foldKey("Annulée"):                   entity.OrderStatusCancelled,
	}},
	{table: "invoices", column: "status", canonical: map[string]string{
		foldKey(entity.InvoiceStatusDraft):     entity.InvoiceStatusDraft,
		foldKey("Brouillon"):                   entity.InvoiceStatusDraft,
		foldKey(entity.InvoiceStatusPending):   entity.InvoiceStatusPending,
		foldKey("En attente"):                  entity.InvoiceStatusPending,
		foldKey(entity.InvoiceStatusPaid):      entity.InvoiceStatusPaid,
		foldKey("Payée"):                       entity.InvoiceStatusPaid,
		foldKey(entity.InvoiceStatusOverdue):   entity.InvoiceStatusOverdue,
		foldKey("En retard"):                   entity.InvoiceStatusOverdue,
		foldKey(entity.InvoiceStatusCancelled): entity.InvoiceStatusCancelled,
		foldKey("Annulée"):                     entity.InvoiceStatusCancelled,
	}},
	{table: "employee_reimbursements", column: "status", canonical: map[string]string{
		foldKey(entity.ReimbursementPending):  entity.ReimbursementPending,
		foldKey("En_Attente"):                 entity.ReimbursementPending,
		foldKey(entity.ReimbursementApproved): entity.ReimbursementApproved,
		foldKey("Approuve"):                   entity.ReimbursementApproved,
		foldKey(entity.ReimbursementPaid):     entity.ReimbursementPaid,
		foldKey("Paye"):                       entity.ReimbursementPaid,
		foldKey(entity.ReimbursementRejected): entity.ReimbursementRejected,
		foldKey("Rejete"):                     entity.ReimbursementRejected,
	}},
}

// foldKey normaliza un valor para compararlo sin acentos, mayúsculas ni separadores.
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.NewReplacer("_", " ", "-", " ").Replace(out)
	return cases.Fold().String(strings.Join(strings.Fields(out), " "))
}

// applySchemaPatches agrega columnas faltantes y normaliza valores heredados.
// Solo avanza: nunca elimina columnas ni datos.
func applySchemaPatches(ctx context.Context, q Querier) error {
	for _, p := range columnPatches {
		ok, err := hasColumn(ctx, q, p.table, p.column)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", p.table, p.column, p.ddl)
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("agregar columna %s.%s: %w", p.table, p.column, err)
		}
	}
	for _, n := range valueNormalizations {
		if err := normalizeValues(ctx, q, n); err != nil {
			return err
		}
	}
	return nil
}

func hasColumn(ctx context.Context, q Querier, table, column string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspeccionar %s.%s: %w", table, column, err)
	}
	return n > 0, nil
}

func normalizeValues(ctx context.Context, q Querier, n valueNormalization) error {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("SELECT DISTINCT %s FROM %s", n.column, n.table))
	if err != nil {
		return fmt.Errorf("leer %s.%s: %w", n.table, n.column, err)
	}
	var values []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return fmt.Errorf("leer %s.%s: %w", n.table, n.column, err)
		}
		if v.Valid {
			values = append(values, v.String)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("leer %s.%s: %w", n.table, n.column, err)
	}

	for _, v := range values {
		target, ok := n.canonical[foldKey(v)]
		if !ok {
			if n.fallback == "" {
				continue
			}
			target = n.fallback
		}
		if target == v {
			continue
		}
		stmt := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", n.table, n.column, n.column)
		if _, err := q.ExecContext(ctx, stmt, target, v); err != nil {
			return fmt.Errorf("normalizar %s.%s: %w", n.table, n.column, err)
		}
	}
	return nil
}
