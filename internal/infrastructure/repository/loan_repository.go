package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nasch/prestabanco_backend/internal/domain"
)

const loanColumns = `
	id,
	rut,
	type,
	property_price,
	amount,
	term,
	interest_rate,
	income,
	working_time,
	age,
	state,
	document1,
	document2,
	document3,
	document4`

type loanRepository struct {
	db *sql.DB
}

// NewLoanRepository crea una nueva instancia del repositorio de solicitudes
func NewLoanRepository(db *sql.DB) domain.LoanRepository {
	return &loanRepository{db: db}
}

func scanLoan(row interface{ Scan(...any) error }) (*domain.Loan, error) {
	loan := &domain.Loan{}
	err := row.Scan(
		&loan.ID,
		&loan.Rut,
		&loan.Type,
		&loan.PropertyPrice,
		&loan.Amount,
		&loan.Term,
		&loan.InterestRate,
		&loan.Income,
		&loan.WorkingTime,
		&loan.Age,
		&loan.State,
		&loan.Document1,
		&loan.Document2,
		&loan.Document3,
		&loan.Document4,
	)
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// GetAll retorna todas las solicitudes
func (r *loanRepository) GetAll() ([]domain.Loan, error) {
	rows, err := r.db.Query(`SELECT ` + loanColumns + ` FROM loans ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error al listar solicitudes: %w", err)
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer solicitud: %w", err)
		}
		loans = append(loans, *loan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer solicitudes: %w", err)
	}

	return loans, nil
}

// GetByID obtiene una solicitud por su ID
func (r *loanRepository) GetByID(id int64) (*domain.Loan, error) {
	return r.findOne(`SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)
}

// FindByRut busca la primera solicitud asociada a un RUT
func (r *loanRepository) FindByRut(rut string) (*domain.Loan, error) {
	return r.findOne(`SELECT `+loanColumns+` FROM loans WHERE rut = $1 ORDER BY id LIMIT 1`, rut)
}

// FindByState busca la primera solicitud con el estado dado
func (r *loanRepository) FindByState(state string) (*domain.Loan, error) {
	return r.findOne(`SELECT `+loanColumns+` FROM loans WHERE state = $1 ORDER BY id LIMIT 1`, state)
}

func (r *loanRepository) findOne(query string, arg any) (*domain.Loan, error) {
	loan, err := scanLoan(r.db.QueryRow(query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar solicitud: %w", err)
	}
	return loan, nil
}

// Save inserta o reemplaza una solicitud
func (r *loanRepository) Save(loan *domain.Loan) error {
	if loan.ID == 0 {
		query := `
			INSERT INTO loans (
				rut,
				type,
				property_price,
				amount,
				term,
				interest_rate,
				income,
				working_time,
				age,
				state,
				document1,
				document2,
				document3,
				document4
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id
		`
		err := r.db.QueryRow(
			query,
			loan.Rut,
			loan.Type,
			loan.PropertyPrice,
			loan.Amount,
			loan.Term,
			loan.InterestRate,
			loan.Income,
			loan.WorkingTime,
			loan.Age,
			loan.State,
			loan.Document1,
			loan.Document2,
			loan.Document3,
			loan.Document4,
		).Scan(&loan.ID)
		if err != nil {
			return fmt.Errorf("error al crear solicitud: %w", err)
		}
		return nil
	}

	query := `
		UPDATE loans
		SET
			rut = $1,
			type = $2,
			property_price = $3,
			amount = $4,
			term = $5,
			interest_rate = $6,
			income = $7,
			working_time = $8,
			age = $9,
			state = $10,
			document1 = $11,
			document2 = $12,
			document3 = $13,
			document4 = $14
		WHERE id = $15
	`
	result, err := r.db.Exec(
		query,
		loan.Rut,
		loan.Type,
		loan.PropertyPrice,
		loan.Amount,
		loan.Term,
		loan.InterestRate,
		loan.Income,
		loan.WorkingTime,
		loan.Age,
		loan.State,
		loan.Document1,
		loan.Document2,
		loan.Document3,
		loan.Document4,
		loan.ID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar solicitud: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("solicitud con ID %d no encontrada", loan.ID)
	}

	return nil
}

// DeleteByID elimina una solicitud por su ID
func (r *loanRepository) DeleteByID(id int64) error {
	result, err := r.db.Exec(`DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("solicitud con ID %d no encontrada", id)
	}
	return nil
}
