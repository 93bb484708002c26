package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nasch/prestabanco_backend/internal/application"
	"github.com/nasch/prestabanco_backend/internal/infrastructure/database"
	"github.com/nasch/prestabanco_backend/internal/infrastructure/repository"
)

type fakeUploader struct {
	names []string
}

func (u *fakeUploader) UploadDocument(_ context.Context, prefix, name string, _ []byte) (string, error) {
	u.names = append(u.names, name)
	return fmt.Sprintf("https://docs.example/%s/%s", prefix, name), nil
}

// newTestApp arma la aplicación completa sobre SQLite en memoria.
// Con uploader nil el archivo de documentos queda deshabilitado.
func newTestApp(t *testing.T, uploader application.DocumentUploader) *fiber.App {
	t.Helper()

	db, err := database.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("error abriendo sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("error migrando: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	loanRepo := repository.NewLoanRepository(db)

	var archive *application.DocumentArchiveService
	if uploader != nil {
		archive = application.NewDocumentArchiveService(loanRepo, uploader)
	}

	app := NewApp("*")
	SetupRoutes(app,
		NewUserHandler(application.NewUserService(userRepo)),
		NewLoanHandler(application.NewLoanService(loanRepo, nil)),
		NewDocumentHandler(archive),
	)
	return app
}

// formFile es un archivo a adjuntar en un formulario multipart
type formFile struct {
	field string
	data  []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("error escribiendo campo %s: %v", key, err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.field+".pdf")
		if err != nil {
			t.Fatalf("error creando archivo %s: %v", f.field, err)
		}
		part.Write(f.data)
	}
	writer.Close()

	return body, writer.FormDataContentType()
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body io.Reader, contentType string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("error en la petición %s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error leyendo respuesta: %v", err)
	}
	return resp.StatusCode, data
}

func decode(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("respuesta no es JSON válido (%s): %v", data, err)
	}
}

func query(values map[string]string) string {
	q := url.Values{}
	for k, v := range values {
		q.Set(k, v)
	}
	return q.Encode()
}

func assertNear(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Fatalf("se esperaba %.4f ± %.4f, se obtuvo %.4f", want, tol, got)
	}
}

func formEncoded(values url.Values) (io.Reader, string) {
	return strings.NewReader(values.Encode()), fiber.MIMEApplicationForm
}
