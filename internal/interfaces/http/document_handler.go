package http

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/nasch/prestabanco_backend/internal/application"
)

type DocumentHandler struct {
	service *application.DocumentArchiveService
}

// NewDocumentHandler crea el handler de archivo de documentos; service puede ser nil
// cuando S3 no está configurado
func NewDocumentHandler(service *application.DocumentArchiveService) *DocumentHandler {
	return &DocumentHandler{
		service: service,
	}
}

// ArchiveLoanDocuments sube a S3 los documentos presentes de una solicitud
func (h *DocumentHandler) ArchiveLoanDocuments(c *fiber.Ctx) error {
	if h.service == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "El archivo de documentos no está configurado",
		})
	}

	id, err := idParam(c)
	if err != nil {
		return badRequest(c, err)
	}

	archived, err := h.service.ArchiveLoanDocuments(c.UserContext(), id)
	if err != nil {
		log.Printf("Failed to archive documents of loan %d: %v", id, err)
		return internalError(c, err)
	}
	if archived == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("solicitud con ID %d no encontrada", id),
		})
	}

	return c.JSON(fiber.Map{
		"documents": archived,
	})
}
