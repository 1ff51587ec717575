package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/application/dto"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/blackwoods-compta/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/blackwoods-compta/pkg/jwt"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// apiFixture API completa sobre un archivo SQLite temporal.
type apiFixture struct {
	app   *fiber.App
	store *sqlite.Store
	token string
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	store, err := sqlite.Open(context.Background(), sqlite.Options{
		Path:              filepath.Join(t.TempDir(), "api.db"),
		SeedAdminPassword: "admin123",
		JWTSecret:         testJWTSecret,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Repo: store, JWTSecret: store.TokenSecret()})

	f := &apiFixture{app: app, store: store}
	resp := f.call(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res entity.AuthResult
	decode(t, resp, &res)
	require.True(t, res.Success)
	f.token = res.Token
	return f
}

// call lanza una petición JSON autenticada con el token del fixture (si existe).
func (f *apiFixture) call(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	return f.callAs(t, f.token, method, path, body)
}

func (f *apiFixture) callAs(t *testing.T, token, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.False(t, e.Success)
	return e.Code
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas_Retorna401SinToken(t *testing.T) {
	f := newAPI(t)

	resp := f.callAs(t, "", http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var res entity.AuthResult
	decode(t, resp, &res)
	assert.False(t, res.Success)
	assert.Empty(t, res.Token)
	assert.Nil(t, res.User)
}

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	f := newAPI(t)

	resp := f.callAs(t, "", http.MethodGet, "/api/transactions", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactions_CrearYListar(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/transactions", entity.Transaction{
		Type: entity.TransactionTypeSale, Category: "Restaurant", Amount: dec("45.90"), Description: "Table 4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var createdTx dto.Envelope[entity.Transaction]
	decode(t, resp, &createdTx)
	assert.True(t, createdTx.Success)
	assert.Positive(t, createdTx.Data.ID)
	assert.Positive(t, createdTx.Data.UserID, "el usuario se toma del token")

	resp = f.call(t, http.MethodGet, "/api/transactions?type=Sale&search=table", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.Envelope[[]entity.Transaction]
	decode(t, resp, &list)
	require.Len(t, list.Data, 1)
	assert.True(t, list.Data[0].Amount.Equal(dec("45.90")))
}

func TestTransactions_MontoInvalido_Retorna400(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/transactions", entity.Transaction{
		Type: entity.TransactionTypeSale, Category: "Restaurant", Amount: dec("-3"),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.CodeValidation, errorCode(t, resp))
}

func TestTransactions_ActualizarInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPut, "/api/transactions/999", entity.Transaction{
		Type: entity.TransactionTypeSale, Category: "Restaurant", Amount: dec("10"),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, dto.CodeNotFound, errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos e inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_EntregarDosVeces_Retorna409(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/orders", entity.Order{
		OrderNumber: "ORD-API-1", Supplier: "Woods Farm", OrderDate: time.Now(), Status: entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{ProductName: "Carottes", Category: entity.CategoryRawMaterial, Quantity: dec("10"), UnitPrice: dec("5")},
			{ProductName: "Poulet", Category: entity.CategoryRawMaterial, Quantity: dec("3"), UnitPrice: dec("20")},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.Envelope[entity.Order]
	decode(t, resp, &order)
	assert.True(t, order.Data.TotalAmount.Equal(dec("110")))

	path := "/api/orders/" + itoa(order.Data.ID) + "/deliver"
	resp = f.call(t, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = f.call(t, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, dto.CodeConflict, errorCode(t, resp))

	resp = f.call(t, http.MethodGet, "/api/inventory?search=poulet", nil)
	var items dto.Envelope[[]entity.InventoryItem]
	decode(t, resp, &items)
	require.Len(t, items.Data, 1)
	assert.True(t, items.Data[0].Quantity.Equal(dec("3")))
	assert.Equal(t, "Woods Farm", items.Data[0].Supplier)
}

func TestOrders_EntregarInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/orders/77/deliver", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovements_SalidaMayorAlStock_Retorna409(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/inventory", entity.InventoryItem{
		ProductName: "Crème", Category: entity.CategoryRawMaterial, Quantity: dec("2"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item dto.Envelope[entity.InventoryItem]
	decode(t, resp, &item)

	resp = f.call(t, http.MethodPost, "/api/inventory/movements", entity.InventoryMovement{
		ProductID: item.Data.ID, Quantity: dec("5"), Type: entity.MovementTypeOut,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, dto.CodeInsufficientStock, errorCode(t, resp))

	resp = f.call(t, http.MethodGet, "/api/inventory/movements?productId="+itoa(item.Data.ID), nil)
	var movs dto.Envelope[[]entity.InventoryMovement]
	decode(t, resp, &movs)
	assert.Empty(t, movs.Data)
}

func TestOrders_EntregaAtribuidaAlUsuarioDelToken(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/orders", entity.Order{
		OrderNumber: "ORD-API-2", Supplier: "Woods Farm", OrderDate: time.Now(),
		Items: []entity.OrderItem{
			{ProductName: "Navets", Category: entity.CategoryRawMaterial, Quantity: dec("4"), UnitPrice: dec("2")},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.Envelope[entity.Order]
	decode(t, resp, &order)

	tok, err := pkgjwt.Generate(f.store.TokenSecret(), 50, "chef", entity.RoleManager, "", 10)
	require.NoError(t, err)
	// El userId del cuerpo se ignora.
	resp = f.callAs(t, tok, http.MethodPost, "/api/orders/"+itoa(order.Data.ID)+"/deliver", map[string]int64{"userId": 999})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	movs, err := f.store.ListInventoryMovements(context.Background(), repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, int64(50), movs[0].UserID)
}

func TestMovements_UsuarioDelToken(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodPost, "/api/inventory", entity.InventoryItem{
		ProductName: "Farine", Category: entity.CategoryRawMaterial, Quantity: dec("1"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item dto.Envelope[entity.InventoryItem]
	decode(t, resp, &item)

	tok, err := pkgjwt.Generate(f.store.TokenSecret(), 50, "chef", entity.RoleManager, "", 10)
	require.NoError(t, err)
	resp = f.callAs(t, tok, http.MethodPost, "/api/inventory/movements", entity.InventoryMovement{
		ProductID: item.Data.ID, Quantity: dec("2"), Type: entity.MovementTypeIn, UserID: 999,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var mov dto.Envelope[entity.InventoryMovement]
	decode(t, resp, &mov)
	assert.Equal(t, int64(50), mov.Data.UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Personal y filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployees_RolEmployee_Retorna403(t *testing.T) {
	f := newAPI(t)
	tok, err := pkgjwt.Generate(f.store.TokenSecret(), 50, "serveur", entity.RoleEmployee, "", 10)
	require.NoError(t, err)

	resp := f.callAs(t, tok, http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Los reembolsos sí se pueden solicitar.
	resp = f.callAs(t, tok, http.MethodGet, "/api/reimbursements", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPayrolls_FechaMalFormada_Retorna400(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodGet, "/api/payrolls?startDate=01/03/2024", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.CodeValidation, errorCode(t, resp))
}

func TestSuppliers_ListaSembrados(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodGet, "/api/suppliers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.Envelope[[]entity.Supplier]
	decode(t, resp, &list)
	assert.Len(t, list.Data, 5)
}

func TestDashboard_Resumen(t *testing.T) {
	f := newAPI(t)

	resp := f.call(t, http.MethodGet, "/api/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sum dto.Envelope[entity.DashboardSummary]
	decode(t, resp, &sum)
	assert.True(t, sum.Success)
	assert.True(t, sum.Data.NetProfit.IsZero())
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
