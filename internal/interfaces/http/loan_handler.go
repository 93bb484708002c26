package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nasch/prestabanco_backend/internal/application"
	"github.com/nasch/prestabanco_backend/internal/domain"
)

type LoanHandler struct {
	service *application.LoanService
}

// NewLoanHandler crea una nueva instancia del handler de solicitudes
func NewLoanHandler(service *application.LoanService) *LoanHandler {
	return &LoanHandler{
		service: service,
	}
}

// ListLoans retorna todas las solicitudes
func (h *LoanHandler) ListLoans(c *fiber.Ctx) error {
	loans, err := h.service.GetAllLoans()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(loans)
}

// GetLoanByID obtiene una solicitud por su ID
func (h *LoanHandler) GetLoanByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	loan, err := h.service.GetLoanByID(id)
	return h.respondLoan(c, loan, err, fmt.Sprintf("solicitud con ID %d no encontrada", id))
}

// GetLoanByRut obtiene una solicitud por el RUT del solicitante
func (h *LoanHandler) GetLoanByRut(c *fiber.Ctx) error {
	rut := c.Params("rut")
	loan, err := h.service.GetLoanByRut(rut)
	return h.respondLoan(c, loan, err, fmt.Sprintf("solicitud con RUT %s no encontrada", rut))
}

// GetLoanByState obtiene una solicitud por su estado
func (h *LoanHandler) GetLoanByState(c *fiber.Ctx) error {
	state := c.Params("state")
	loan, err := h.service.GetLoanByState(state)
	return h.respondLoan(c, loan, err, fmt.Sprintf("solicitud con estado %s no encontrada", state))
}

func (h *LoanHandler) respondLoan(c *fiber.Ctx, loan *domain.Loan, err error, notFound string) error {
	if err != nil {
		return internalError(c, err)
	}
	if loan == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFound,
		})
	}
	return c.JSON(loan)
}

// loanFromForm lee todos los campos de la solicitud desde el formulario
func loanFromForm(c *fiber.Ctx) (domain.Loan, error) {
	var loan domain.Loan
	var err error

	if loan.Rut, err = requiredParam(c, "rut"); err != nil {
		return loan, err
	}
	if loan.Type, err = requiredParam(c, "type"); err != nil {
		return loan, err
	}
	if loan.PropertyPrice, err = int64Param(c, "property_price"); err != nil {
		return loan, err
	}
	if loan.Amount, err = int64Param(c, "amount"); err != nil {
		return loan, err
	}
	if loan.Term, err = intParam(c, "term"); err != nil {
		return loan, err
	}
	if loan.InterestRate, err = float32Param(c, "interest_rate"); err != nil {
		return loan, err
	}
	if loan.Income, err = int64Param(c, "income"); err != nil {
		return loan, err
	}
	if loan.WorkingTime, err = intParam(c, "working_time"); err != nil {
		return loan, err
	}
	if loan.Age, err = intParam(c, "age"); err != nil {
		return loan, err
	}
	if loan.State, err = requiredParam(c, "state"); err != nil {
		return loan, err
	}

	docs := []*domain.Document{&loan.Document1, &loan.Document2, &loan.Document3, &loan.Document4}
	for i, doc := range docs {
		if *doc, err = formDocument(c, fmt.Sprintf("document%d", i+1)); err != nil {
			return loan, err
		}
	}

	return loan, nil
}

// CreateLoan crea una solicitud nueva
func (h *LoanHandler) CreateLoan(c *fiber.Ctx) error {
	loan, err := loanFromForm(c)
	if err != nil {
		return badRequest(c, err)
	}

	created, err := h.service.CreateLoan(c.UserContext(), loan)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateLoan reemplaza todos los campos de una solicitud
func (h *LoanHandler) UpdateLoan(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	loan, err := loanFromForm(c)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := h.service.UpdateLoan(c.UserContext(), id, loan)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(updated)
}

// DeleteLoan elimina una solicitud
func (h *LoanHandler) DeleteLoan(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	if _, err := h.service.DeleteLoan(id); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SimulateCredit calcula la cuota mensual de un crédito
func (h *LoanHandler) SimulateCredit(c *fiber.Ctx) error {
	amount, err := int64Param(c, "amount")
	if err != nil {
		return badRequest(c, err)
	}
	interestRate, err := float32Param(c, "interest_rate")
	if err != nil {
		return badRequest(c, err)
	}
	term, err := intParam(c, "term")
	if err != nil {
		return badRequest(c, err)
	}

	payment := h.service.MortgageCreditSimulation(amount, interestRate, term)

	return c.JSON(fiber.Map{
		"monthlyPayment": finiteOrNil(payment),
	})
}

// CostCalculation calcula el costo mensual total con seguros y comisiones
func (h *LoanHandler) CostCalculation(c *fiber.Ctx) error {
	amount, err := int64Param(c, "amount")
	if err != nil {
		return badRequest(c, err)
	}
	interestRate, err := float32Param(c, "interest_rate")
	if err != nil {
		return badRequest(c, err)
	}
	term, err := intParam(c, "term")
	if err != nil {
		return badRequest(c, err)
	}
	desgravament, err := float32Param(c, "desgravament")
	if err != nil {
		return badRequest(c, err)
	}
	adminComPor, err := float32Param(c, "admin_com_por")
	if err != nil {
		return badRequest(c, err)
	}
	secure, err := float64ListParam(c, "secure")
	if err != nil {
		return badRequest(c, err)
	}

	total := h.service.TotalCostCalculation(amount, interestRate, term, desgravament, adminComPor, secure...)

	return c.JSON(fiber.Map{
		"totalCost": finiteOrNil(total),
	})
}
