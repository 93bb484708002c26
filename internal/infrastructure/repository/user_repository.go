package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nasch/prestabanco_backend/internal/domain"
)

const userColumns = `id, rut, name, email, document`

type userRepository struct {
	db *sql.DB
}

// NewUserRepository crea una nueva instancia del repositorio de usuarios
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Rut,
		&user.Name,
		&user.Email,
		&user.Document,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAll retorna todos los usuarios
func (r *userRepository) GetAll() ([]domain.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error al listar usuarios: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer usuario: %w", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer usuarios: %w", err)
	}

	return users, nil
}

// GetByID obtiene un usuario por su ID
func (r *userRepository) GetByID(id int64) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener usuario: %w", err)
	}
	return user, nil
}

// FindByRut busca un usuario por su RUT
func (r *userRepository) FindByRut(rut string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE rut = $1 ORDER BY id LIMIT 1`

	user, err := scanUser(r.db.QueryRow(query, rut))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // No existe, devolver nil sin error
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}
	return user, nil
}

// Save inserta o reemplaza un usuario
func (r *userRepository) Save(user *domain.User) error {
	if user.ID == 0 {
		query := `
			INSERT INTO users (rut, name, email, document)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		err := r.db.QueryRow(query, user.Rut, user.Name, user.Email, user.Document).Scan(&user.ID)
		if err != nil {
			return fmt.Errorf("error al crear usuario: %w", err)
		}
		return nil
	}

	query := `
		UPDATE users
		SET
			rut = $1,
			name = $2,
			email = $3,
			document = $4
		WHERE id = $5
	`
	result, err := r.db.Exec(query, user.Rut, user.Name, user.Email, user.Document, user.ID)
	if err != nil {
		return fmt.Errorf("error al actualizar usuario: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("usuario con ID %d no encontrado", user.ID)
	}

	return nil
}

// DeleteByID elimina un usuario por su ID
func (r *userRepository) DeleteByID(id int64) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("usuario con ID %d no encontrado", id)
	}
	return nil
}
