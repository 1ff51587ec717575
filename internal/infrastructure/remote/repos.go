package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jhoicas/blackwoods-compta/internal/application/dto"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login autentica contra /api/auth/login. El cuerpo de la respuesta es el AuthResult
// sin envoltorio; con éxito el token queda guardado para las siguientes peticiones.
func (c *Client) Login(ctx context.Context, username, password string) entity.AuthResult {
	r := request{op: "login", method: http.MethodPost, path: "/api/auth/login",
		body: dto.LoginRequest{Username: username, Password: password}}
	status, raw, reqID, err := c.send(ctx, r)
	if err != nil {
		c.fail(r, status, reqID, err)
		return entity.FailedAuth("servidor no disponible")
	}
	var res entity.AuthResult
	if jerr := json.Unmarshal(raw, &res); jerr != nil || status >= http.StatusInternalServerError {
		c.log.Warn().Int("status", status).Str("request_id", reqID).Msg("respuesta de login inesperada")
		return entity.FailedAuth("respuesta inválida del servidor")
	}
	if !res.Success || res.Token == "" {
		if res.Message == "" {
			res.Message = "credenciales inválidas"
		}
		return entity.FailedAuth(res.Message)
	}
	c.setToken(res.Token)
	c.log.Info().Str("username", username).Msg("sesión remota iniciada")
	return res
}

// ── Reportes ──────────────────────────────────────────────────────────────────

func (c *Client) DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	out := new(entity.DashboardSummary)
	r := request{op: "dashboard", method: http.MethodGet, path: "/api/reports/dashboard"}
	if err := c.call(ctx, r, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Transacciones ─────────────────────────────────────────────────────────────

const transactionsPath = "/api/transactions"

func (c *Client) ListTransactions(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	q := values("search", f.Search, "type", f.Type, "category", f.Category)
	return list[entity.Transaction](ctx, c, "list transactions", transactionsPath, q)
}

func (c *Client) CreateTransaction(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	return create(ctx, c, "create transaction", transactionsPath, t)
}

func (c *Client) UpdateTransaction(ctx context.Context, t *entity.Transaction) (bool, error) {
	return update(ctx, c, "update transaction", idPath(transactionsPath, t.ID), t)
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete transaction", idPath(transactionsPath, id))
}

// ── Empleados y nóminas ───────────────────────────────────────────────────────

const (
	employeesPath = "/api/employees"
	payrollsPath  = "/api/payrolls"
)

func (c *Client) ListEmployees(ctx context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	q := values("search", f.Search, "position", f.Position,
		"isActive", formatBool(f.IsActive), "includeInactive", formatFlag(f.IncludeInactive))
	return list[entity.Employee](ctx, c, "list employees", employeesPath, q)
}

func (c *Client) CreateEmployee(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	return create(ctx, c, "create employee", employeesPath, e)
}

func (c *Client) UpdateEmployee(ctx context.Context, e *entity.Employee) (bool, error) {
	return update(ctx, c, "update employee", idPath(employeesPath, e.ID), e)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete employee", idPath(employeesPath, id))
}

func (c *Client) ListPayrolls(ctx context.Context, f repository.PayrollFilter) ([]*entity.Payroll, error) {
	q := values("employeeId", formatInt64(f.EmployeeID),
		"startDate", formatDate(f.StartDate), "endDate", formatDate(f.EndDate))
	return list[entity.Payroll](ctx, c, "list payrolls", payrollsPath, q)
}

func (c *Client) CreatePayroll(ctx context.Context, p *entity.Payroll) (*entity.Payroll, error) {
	return create(ctx, c, "create payroll", payrollsPath, p)
}

func (c *Client) DeletePayroll(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete payroll", idPath(payrollsPath, id))
}

// ── Reembolsos ────────────────────────────────────────────────────────────────

const reimbursementsPath = "/api/reimbursements"

func (c *Client) ListReimbursements(ctx context.Context, f repository.ReimbursementFilter) ([]*entity.EmployeeReimbursement, error) {
	q := values("search", f.Search, "status", f.Status, "employeeId", formatInt64(f.EmployeeID))
	return list[entity.EmployeeReimbursement](ctx, c, "list reimbursements", reimbursementsPath, q)
}

func (c *Client) CreateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (*entity.EmployeeReimbursement, error) {
	return create(ctx, c, "create reimbursement", reimbursementsPath, r)
}

func (c *Client) UpdateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error) {
	return update(ctx, c, "update reimbursement", idPath(reimbursementsPath, r.ID), r)
}

func (c *Client) DeleteReimbursement(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete reimbursement", idPath(reimbursementsPath, id))
}

// ── Inventario ────────────────────────────────────────────────────────────────

const (
	inventoryPath = "/api/inventory"
	movementsPath = "/api/inventory/movements"
)

func (c *Client) ListInventory(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryItem, error) {
	q := values("search", f.Search, "category", f.Category, "lowStock", formatBool(f.LowStock))
	return list[entity.InventoryItem](ctx, c, "list inventory", inventoryPath, q)
}

func (c *Client) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	return create(ctx, c, "create inventory item", inventoryPath, item)
}

func (c *Client) UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) (bool, error) {
	return update(ctx, c, "update inventory item", idPath(inventoryPath, item.ID), item)
}

func (c *Client) DeleteInventoryItem(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete inventory item", idPath(inventoryPath, id))
}

func (c *Client) ListInventoryMovements(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	return list[entity.InventoryMovement](ctx, c, "list movements", movementsPath, values("productId", formatInt64(f.ProductID)))
}

func (c *Client) CreateInventoryMovement(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	return create(ctx, c, "create movement", movementsPath, m)
}

// ── Facturas ──────────────────────────────────────────────────────────────────

const invoicesPath = "/api/invoices"

func (c *Client) ListInvoices(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	q := values("search", f.Search, "status", f.Status,
		"startDate", formatDate(f.StartDate), "endDate", formatDate(f.EndDate))
	return list[entity.Invoice](ctx, c, "list invoices", invoicesPath, q)
}

func (c *Client) ListInvoiceItems(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error) {
	return list[entity.InvoiceItem](ctx, c, "list invoice items", idPath(invoicesPath, invoiceID)+"/items", nil)
}

func (c *Client) CreateInvoice(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	return create(ctx, c, "create invoice", invoicesPath, inv)
}

func (c *Client) UpdateInvoice(ctx context.Context, inv *entity.Invoice) (bool, error) {
	return update(ctx, c, "update invoice", idPath(invoicesPath, inv.ID), inv)
}

func (c *Client) DeleteInvoice(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete invoice", idPath(invoicesPath, id))
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

const ordersPath = "/api/orders"

func (c *Client) ListOrders(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	return list[entity.Order](ctx, c, "list orders", ordersPath, values("search", f.Search, "status", f.Status))
}

func (c *Client) ListOrderItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	return list[entity.OrderItem](ctx, c, "list order items", idPath(ordersPath, orderID)+"/items", nil)
}

// CreateOrder y UpdateOrder no aceptan el estado Delivered: la entrega solo la
// registra DeliverOrder. Que un pedido entregado no se edite lo comprueba el servidor.
func (c *Client) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := entity.CheckOrderStatus("", o.Status); err != nil {
		return nil, c.fail(request{op: "create order", method: http.MethodPost, path: ordersPath}, 0, "", err)
	}
	return create(ctx, c, "create order", ordersPath, o)
}

func (c *Client) UpdateOrder(ctx context.Context, o *entity.Order) (bool, error) {
	path := idPath(ordersPath, o.ID)
	if err := entity.CheckOrderStatus("", o.Status); err != nil {
		return false, c.fail(request{op: "update order", method: http.MethodPut, path: path}, 0, "", err)
	}
	return update(ctx, c, "update order", path, o)
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete order", idPath(ordersPath, id))
}

// DeliverOrder delega la entrega (y el ingreso al inventario) al servidor, que
// atribuye los movimientos al usuario de la sesión; userID no se envía.
func (c *Client) DeliverOrder(ctx context.Context, orderID, userID int64) (bool, error) {
	r := request{op: "deliver order", method: http.MethodPost,
		path: idPath(ordersPath, orderID) + "/deliver"}
	err := c.call(ctx, r, nil, true)
	if errors.Is(err, errMissing) {
		return false, nil
	}
	return err == nil, err
}

// ── Proveedores ───────────────────────────────────────────────────────────────

const suppliersPath = "/api/suppliers"

func (c *Client) ListSuppliers(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	q := values("search", f.Search, "includeInactive", formatFlag(f.IncludeInactive))
	return list[entity.Supplier](ctx, c, "list suppliers", suppliersPath, q)
}

func (c *Client) CreateSupplier(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	return create(ctx, c, "create supplier", suppliersPath, s)
}

func (c *Client) UpdateSupplier(ctx context.Context, s *entity.Supplier) (bool, error) {
	return update(ctx, c, "update supplier", idPath(suppliersPath, s.ID), s)
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete supplier", idPath(suppliersPath, id))
}

// ── Precios ───────────────────────────────────────────────────────────────────

const (
	purchasePricesPath = "/api/purchase-prices"
	salePricesPath     = "/api/sale-prices"
)

func (c *Client) ListPurchasePrices(ctx context.Context, f repository.PurchasePriceFilter) ([]*entity.PurchasePrice, error) {
	q := values("search", f.Search, "category", f.Category, "supplier", f.Supplier)
	return list[entity.PurchasePrice](ctx, c, "list purchase prices", purchasePricesPath, q)
}

func (c *Client) CreatePurchasePrice(ctx context.Context, p *entity.PurchasePrice) (*entity.PurchasePrice, error) {
	return create(ctx, c, "create purchase price", purchasePricesPath, p)
}

func (c *Client) UpdatePurchasePrice(ctx context.Context, p *entity.PurchasePrice) (bool, error) {
	return update(ctx, c, "update purchase price", idPath(purchasePricesPath, p.ID), p)
}

func (c *Client) DeletePurchasePrice(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete purchase price", idPath(purchasePricesPath, id))
}

func (c *Client) ListSalePrices(ctx context.Context, f repository.SalePriceFilter) ([]*entity.SalePrice, error) {
	q := values("search", f.Search, "category", f.Category)
	return list[entity.SalePrice](ctx, c, "list sale prices", salePricesPath, q)
}

func (c *Client) CreateSalePrice(ctx context.Context, p *entity.SalePrice) (*entity.SalePrice, error) {
	return create(ctx, c, "create sale price", salePricesPath, p)
}

func (c *Client) UpdateSalePrice(ctx context.Context, p *entity.SalePrice) (bool, error) {
	return update(ctx, c, "update sale price", idPath(salePricesPath, p.ID), p)
}

func (c *Client) DeleteSalePrice(ctx context.Context, id int64) (bool, error) {
	return c.remove(ctx, "delete sale price", idPath(salePricesPath, id))
}
