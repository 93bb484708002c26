package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nasch/prestabanco_backend/internal/application"
	"github.com/nasch/prestabanco_backend/internal/domain"
)

type UserHandler struct {
	service *application.UserService
}

// NewUserHandler crea una nueva instancia del handler de usuarios
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// ListUsers retorna todos los usuarios
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(users)
}

// GetUserByID obtiene un usuario por su ID
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("usuario con ID %d no encontrado", id),
		})
	}

	return c.JSON(user)
}

// GetUserByRut obtiene un usuario por su RUT
func (h *UserHandler) GetUserByRut(c *fiber.Ctx) error {
	rut := c.Params("rut")

	user, err := h.service.GetUserByRut(rut)
	if err != nil {
		return internalError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("usuario con RUT %s no encontrado", rut),
		})
	}

	return c.JSON(user)
}

// userFromForm lee los campos del usuario desde el formulario
func userFromForm(c *fiber.Ctx) (domain.User, error) {
	var user domain.User
	var err error

	if user.Rut, err = requiredParam(c, "rut"); err != nil {
		return user, err
	}
	if user.Name, err = requiredParam(c, "name"); err != nil {
		return user, err
	}
	if user.Email, err = requiredParam(c, "email"); err != nil {
		return user, err
	}
	if user.Document, err = formDocument(c, "document"); err != nil {
		return user, err
	}

	return user, nil
}

// CreateUser crea un usuario; el documento es obligatorio
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	user, err := userFromForm(c)
	if err != nil {
		return badRequest(c, err)
	}
	if !user.Document.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El archivo document es requerido",
		})
	}

	created, err := h.service.CreateUser(user)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateUser reemplaza un usuario; sin documento el campo queda nulo
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	user, err := userFromForm(c)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := h.service.UpdateUser(id, user)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(updated)
}

// DeleteUser elimina un usuario
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	if _, err := h.service.DeleteUser(id); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
