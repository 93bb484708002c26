package application

import (
	"errors"
	"fmt"

	"github.com/nasch/prestabanco_backend/internal/domain"
)

// SaveMode indica si un guardado crea un registro nuevo o reemplaza uno existente
type SaveMode int

const (
	// CreateRecord ignora el ID recibido y deja que el repositorio asigne uno
	CreateRecord SaveMode = iota
	// ReplaceRecord reemplaza por completo el registro con el ID indicado
	ReplaceRecord
)

// ErrMissingID se retorna al reemplazar un registro sin ID
var ErrMissingID = errors.New("el ID es requerido para actualizar")

type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService crea una nueva instancia del servicio de usuarios
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetAllUsers retorna todos los usuarios
func (s *UserService) GetAllUsers() ([]domain.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID obtiene un usuario por su ID; nil si no existe
func (s *UserService) GetUserByID(id int64) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByRut obtiene un usuario por su RUT; nil si no existe
func (s *UserService) GetUserByRut(rut string) (*domain.User, error) {
	return s.userRepo.FindByRut(rut)
}

// SaveUser guarda el usuario completo según el modo indicado
func (s *UserService) SaveUser(mode SaveMode, user domain.User) (*domain.User, error) {
	switch mode {
	case CreateRecord:
		user.ID = 0
	case ReplaceRecord:
		if user.ID == 0 {
			return nil, ErrMissingID
		}
	default:
		return nil, fmt.Errorf("modo de guardado desconocido: %d", mode)
	}

	if err := s.userRepo.Save(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser crea un usuario nuevo
func (s *UserService) CreateUser(user domain.User) (*domain.User, error) {
	return s.SaveUser(CreateRecord, user)
}

// UpdateUser reemplaza todos los campos del usuario con el ID dado
func (s *UserService) UpdateUser(id int64, user domain.User) (*domain.User, error) {
	user.ID = id
	return s.SaveUser(ReplaceRecord, user)
}

// DeleteUser elimina un usuario. Cualquier error del repositorio se
// re-emite como un error genérico con el mismo mensaje.
func (s *UserService) DeleteUser(id int64) (bool, error) {
	if err := s.userRepo.DeleteByID(id); err != nil {
		return false, errors.New(err.Error())
	}
	return true, nil
}
