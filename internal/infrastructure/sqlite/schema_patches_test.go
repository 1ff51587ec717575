package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// legacySchema archivo creado por la versión de escritorio anterior: sin employee_id,
// sin unit/unit_cost en inventario y con valores enumerados en francés.
const legacySchema = `
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL,
    full_name TEXT NOT NULL DEFAULT '',
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL,
    category TEXT NOT NULL,
    amount TEXT NOT NULL,
    description TEXT,
    reference TEXT,
    user_id INTEGER NOT NULL,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE inventory (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_name TEXT NOT NULL,
    category TEXT NOT NULL,
    quantity TEXT NOT NULL DEFAULT '0',
    min_quantity TEXT NOT NULL DEFAULT '0',
    supplier TEXT,
    expiry_date TEXT,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
INSERT INTO users (username, password_hash, role, full_name) VALUES ('gerant', 'x', 'Manager', 'Gérant');
INSERT INTO transactions (type, category, amount, description, user_id, created_at)
    VALUES ('Vente', 'Restaurant', '120.5', 'Midi', 1, '2023-11-02 12:30:00');
INSERT INTO inventory (product_name, category, quantity, min_quantity) VALUES ('Lasagnes', 'Plat préparé', '4', '2');
INSERT INTO inventory (product_name, category, quantity, min_quantity) VALUES ('Farine', 'MATIERE_PREMIERE', '10', '5');
INSERT INTO inventory (product_name, category, quantity, min_quantity) VALUES ('Mystère', 'Légume', '1', '0');
`

func TestOpen_AdoptaArchivoAnterior(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "legacy.db")

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.ExecContext(ctx, legacySchema)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	s, err := Open(ctx, Options{Path: path, SeedAdminPassword: "admin123", JWTSecret: "s"}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	// Las columnas nuevas existen.
	for _, p := range columnPatches {
		ok, err := hasColumn(ctx, s.db, p.table, p.column)
		require.NoError(t, err)
		assert.True(t, ok, "%s.%s", p.table, p.column)
	}

	txs, err := s.ListTransactions(ctx, repository.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionTypeSale, txs[0].Type)
	assert.Nil(t, txs[0].EmployeeID)
	assert.Equal(t, "Gérant", txs[0].UserName)

	items, err := s.ListInventory(ctx, repository.InventoryFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	byName := map[string]*entity.InventoryItem{}
	for _, it := range items {
		byName[it.ProductName] = it
	}
	assert.Equal(t, entity.CategoryPreparedDish, byName["Lasagnes"].Category)
	assert.Equal(t, entity.CategoryRawMaterial, byName["Farine"].Category)
	assert.Equal(t, entity.CategoryRawMaterial, byName["Mystère"].Category, "valor desconocido toma el valor por defecto")
	assert.Equal(t, "unit", byName["Farine"].Unit)

	// Ya había usuarios: no se siembra el administrador.
	n, err := s.repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFoldKey_IgnoraAcentosYSeparadores(t *testing.T) {
	assert.Equal(t, foldKey("Plat préparé"), foldKey("PLAT_PREPARE"))
	assert.Equal(t, foldKey("Matière première"), foldKey("matiere-premiere"))
	assert.Equal(t, foldKey("En attente"), foldKey("  en_attente "))
	assert.NotEqual(t, foldKey("Payée"), foldKey("Annulée"))
}
