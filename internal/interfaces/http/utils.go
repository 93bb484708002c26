package http

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nasch/prestabanco_backend/internal/domain"
)

// requiredParam obtiene un parámetro de query o formulario tal como viene.
// Solo falla si el parámetro no fue enviado; un valor vacío es válido.
func requiredParam(c *fiber.Ctx, key string) (string, error) {
	if c.Context().QueryArgs().Has(key) || c.Context().PostArgs().Has(key) {
		return c.FormValue(key), nil
	}
	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value[key]; ok && len(values) > 0 {
			return values[0], nil
		}
	}
	return "", fmt.Errorf("el parámetro %s es requerido", key)
}

// numericParam obtiene un parámetro requerido para conversión numérica
func numericParam(c *fiber.Ctx, key string) (string, error) {
	value, err := requiredParam(c, key)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("el parámetro %s es requerido", key)
	}
	return value, nil
}

func int64Param(c *fiber.Ctx, key string) (int64, error) {
	value, err := numericParam(c, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("el parámetro %s debe ser un entero: %q", key, value)
	}
	return n, nil
}

func intParam(c *fiber.Ctx, key string) (int, error) {
	n, err := int64Param(c, key)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func float32Param(c *fiber.Ctx, key string) (float32, error) {
	value, err := numericParam(c, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, fmt.Errorf("el parámetro %s debe ser numérico: %q", key, value)
	}
	return float32(f), nil
}

// float64ListParam junta los valores repetidos de un parámetro desde query,
// formulario urlencoded y multipart; cada valor puede venir separado por comas
func float64ListParam(c *fiber.Ctx, key string) ([]float64, error) {
	var raw []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		raw = append(raw, string(v))
	}
	for _, v := range c.Context().PostArgs().PeekMulti(key) {
		raw = append(raw, string(v))
	}
	if form, err := c.MultipartForm(); err == nil {
		raw = append(raw, form.Value[key]...)
	}

	values := []float64{}
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			f, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("el parámetro %s debe ser numérico: %q", key, part)
			}
			values = append(values, f)
		}
	}
	return values, nil
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ID inválido")
	}
	return id, nil
}

// formDocument lee un archivo del formulario multipart.
// Si el archivo no viene, el documento queda nulo; si viene vacío, queda presente y vacío.
func formDocument(c *fiber.Ctx, key string) (domain.Document, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return domain.Document{}, nil
	}
	files := form.File[key]
	if len(files) == 0 {
		return domain.Document{}, nil
	}

	file, err := files[0].Open()
	if err != nil {
		return domain.Document{}, fmt.Errorf("error al abrir el archivo %s: %w", key, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.Document{}, fmt.Errorf("error al leer el archivo %s: %w", key, err)
	}
	return domain.NewDocument(data), nil
}

// finiteOrNil deja los resultados no finitos como null, ya que JSON no admite NaN ni Inf
func finiteOrNil(value float64) *float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
