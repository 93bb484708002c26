package domain

// User representa un solicitante de crédito
type User struct {
	ID       int64    `json:"id"`
	Rut      string   `json:"rut"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Document Document `json:"document"`
}

// UserRepository define las operaciones con usuarios
type UserRepository interface {
	// GetAll retorna todos los usuarios
	GetAll() ([]User, error)
	// GetByID obtiene un usuario por su ID, nil si no existe
	GetByID(id int64) (*User, error)
	// FindByRut busca un usuario por su RUT, nil si no existe
	FindByRut(rut string) (*User, error)
	// Save inserta el usuario si no tiene ID o lo reemplaza completo si lo tiene
	Save(user *User) error
	// DeleteByID elimina un usuario
	DeleteByID(id int64) error
}
