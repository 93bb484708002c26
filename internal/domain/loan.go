package domain

// Loan representa una solicitud de crédito.
// State es una etiqueta libre, no se valida contra un conjunto de estados.
type Loan struct {
	ID            int64    `json:"id"`
	Rut           string   `json:"rut"`
	Type          string   `json:"type"`
	PropertyPrice int64    `json:"property_price"`
	Amount        int64    `json:"amount"`
	Term          int      `json:"term"`          // Años
	InterestRate  float32  `json:"interest_rate"` // Porcentaje anual
	Income        int64    `json:"income"`
	WorkingTime   int      `json:"working_time"` // Años
	Age           int      `json:"age"`
	State         string   `json:"state"`
	Document1     Document `json:"document1"`
	Document2     Document `json:"document2"`
	Document3     Document `json:"document3"`
	Document4     Document `json:"document4"`
}

// Documents retorna los cuatro documentos en orden
func (l *Loan) Documents() [4]Document {
	return [4]Document{l.Document1, l.Document2, l.Document3, l.Document4}
}

// LoanRepository define las operaciones con solicitudes de crédito
type LoanRepository interface {
	// GetAll retorna todas las solicitudes
	GetAll() ([]Loan, error)
	// GetByID obtiene una solicitud por su ID, nil si no existe
	GetByID(id int64) (*Loan, error)
	// FindByRut busca la primera solicitud de un RUT, nil si no existe
	FindByRut(rut string) (*Loan, error)
	// FindByState busca la primera solicitud con el estado dado, nil si no existe
	FindByState(state string) (*Loan, error)
	// Save inserta la solicitud si no tiene ID o la reemplaza completa si lo tiene
	Save(loan *Loan) error
	// DeleteByID elimina una solicitud
	DeleteByID(id int64) error
}
