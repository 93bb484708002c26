package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nasch/prestabanco_backend/internal/domain"
)

// LoanNotifier recibe aviso de solicitudes creadas o actualizadas
type LoanNotifier interface {
	NotifyLoanSaved(ctx context.Context, loan *domain.Loan, created bool) error
}

type LoanService struct {
	loanRepo domain.LoanRepository
	notifier LoanNotifier
}

// NewLoanService crea una nueva instancia del servicio de solicitudes.
// notifier puede ser nil.
func NewLoanService(loanRepo domain.LoanRepository, notifier LoanNotifier) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		notifier: notifier,
	}
}

// GetAllLoans retorna todas las solicitudes
func (s *LoanService) GetAllLoans() ([]domain.Loan, error) {
	return s.loanRepo.GetAll()
}

// GetLoanByID obtiene una solicitud por su ID; nil si no existe
func (s *LoanService) GetLoanByID(id int64) (*domain.Loan, error) {
	return s.loanRepo.GetByID(id)
}

// GetLoanByRut obtiene una solicitud por el RUT del solicitante; nil si no existe
func (s *LoanService) GetLoanByRut(rut string) (*domain.Loan, error) {
	return s.loanRepo.FindByRut(rut)
}

// GetLoanByState obtiene una solicitud con el estado dado; nil si no existe
func (s *LoanService) GetLoanByState(state string) (*domain.Loan, error) {
	return s.loanRepo.FindByState(state)
}

// SaveLoan guarda la solicitud completa según el modo indicado
func (s *LoanService) SaveLoan(ctx context.Context, mode SaveMode, loan domain.Loan) (*domain.Loan, error) {
	switch mode {
	case CreateRecord:
		loan.ID = 0
	case ReplaceRecord:
		if loan.ID == 0 {
			return nil, ErrMissingID
		}
	default:
		return nil, fmt.Errorf("modo de guardado desconocido: %d", mode)
	}

	if err := s.loanRepo.Save(&loan); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyLoanSaved(ctx, &loan, mode == CreateRecord); err != nil {
			log.Printf("Warning: no se pudo notificar la solicitud %d: %v", loan.ID, err)
		}
	}

	return &loan, nil
}

// CreateLoan crea una solicitud nueva
func (s *LoanService) CreateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error) {
	return s.SaveLoan(ctx, CreateRecord, loan)
}

// UpdateLoan reemplaza todos los campos de la solicitud con el ID dado
func (s *LoanService) UpdateLoan(ctx context.Context, id int64, loan domain.Loan) (*domain.Loan, error) {
	loan.ID = id
	return s.SaveLoan(ctx, ReplaceRecord, loan)
}

// DeleteLoan elimina una solicitud. Cualquier error del repositorio se
// re-emite como un error genérico con el mismo mensaje.
func (s *LoanService) DeleteLoan(id int64) (bool, error) {
	if err := s.loanRepo.DeleteByID(id); err != nil {
		return false, errors.New(err.Error())
	}
	return true, nil
}

// MortgageCreditSimulation calcula la cuota mensual de un crédito hipotecario
func (s *LoanService) MortgageCreditSimulation(amount int64, interestRate float32, term int) float64 {
	return MonthlyPayment(amount, interestRate, term)
}

// TotalCostCalculation calcula el costo mensual total con seguros y comisiones
func (s *LoanService) TotalCostCalculation(amount int64, interestRate float32, term int, desgravament, adminComPor float32, secure ...float64) float64 {
	return TotalMonthlyCost(amount, interestRate, term, desgravament, adminComPor, secure...)
}
