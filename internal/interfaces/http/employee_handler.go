package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// EmployeeHandler empleados y nóminas (protegido, Admin o Manager).
type EmployeeHandler struct {
	employees repository.EmployeeRepository
	payrolls  repository.PayrollRepository
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(employees repository.EmployeeRepository, payrolls repository.PayrollRepository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, payrolls: payrolls}
}

// List godoc
// @Summary      Listar empleados
// @Description  Sin isActive ni includeInactive solo devuelve empleados activos.
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        search           query  string  false  "Nombre, puesto, teléfono o email"
// @Param        position         query  string  false  "Puesto exacto"
// @Param        isActive         query  bool    false  "Filtrar por estado"
// @Param        includeInactive  query  bool    false  "Incluir inactivos"
// @Success      200  {object}  dto.Envelope[[]entity.Employee]
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	active, err := queryBool(c, "isActive")
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.employees.ListEmployees(c.Context(), repository.EmployeeFilter{
		Search:          c.Query("search"),
		Position:        c.Query("position"),
		IsActive:        active,
		IncludeInactive: c.QueryBool("includeInactive"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Employee  true  "Empleado"
// @Success      201   {object}  dto.Envelope[entity.Employee]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in entity.Employee
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.employees.CreateEmployee(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update actualiza un empleado. PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.Employee
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.employees.UpdateEmployee(c.Context(), &in)
	return updated(c, found, err, "empleado", &in)
}

// Delete desactiva un empleado (borrado lógico). DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.employees.DeleteEmployee(c.Context(), id)
	return done(c, found, err, "empleado")
}

// ListPayrolls godoc
// @Summary      Listar nóminas
// @Tags         payrolls
// @Security     Bearer
// @Produce      json
// @Param        employeeId  query  int     false  "Empleado"
// @Param        startDate   query  string  false  "Desde (YYYY-MM-DD, inclusive)"
// @Param        endDate     query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  dto.Envelope[[]entity.Payroll]
// @Router       /api/payrolls [get]
func (h *EmployeeHandler) ListPayrolls(c *fiber.Ctx) error {
	var (
		f   repository.PayrollFilter
		err error
	)
	if f.EmployeeID, err = queryInt64(c, "employeeId"); err != nil {
		return badRequest(c, err.Error())
	}
	if f.StartDate, err = queryDate(c, "startDate"); err != nil {
		return badRequest(c, err.Error())
	}
	if f.EndDate, err = queryDate(c, "endDate"); err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.payrolls.ListPayrolls(c.Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// CreatePayroll registra un pago de nómina. POST /api/payrolls
func (h *EmployeeHandler) CreatePayroll(c *fiber.Ctx) error {
	var in entity.Payroll
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.CreatedBy == 0 {
		in.CreatedBy = GetUserID(c)
	}
	out, err := h.payrolls.CreatePayroll(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// DeletePayroll DELETE /api/payrolls/:id
func (h *EmployeeHandler) DeletePayroll(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.payrolls.DeletePayroll(c.Context(), id)
	return done(c, found, err, "nómina")
}
