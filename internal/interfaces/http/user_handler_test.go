package http

import (
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nasch/prestabanco_backend/internal/domain"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func userFields(rut string) map[string]string {
	return map[string]string{"rut": rut, "name": "Ana Pérez", "email": "ana@mail.cl"}
}

func TestUserHandler_CreateRequiresDocument(t *testing.T) {
	app := newTestApp(t, nil)

	body, contentType := multipartBody(t, userFields("1-9"))
	status, data := doRequest(t, app, fiber.MethodPost, "/api/users", body, contentType)
	if status != fiber.StatusBadRequest {
		t.Fatalf("se esperaba 400, se obtuvo %d: %s", status, data)
	}
}

func TestUserHandler_CRUD(t *testing.T) {
	app := newTestApp(t, nil)

	body, contentType := multipartBody(t, userFields("1-9"), formFile{field: "document", data: []byte("cedula")})
	status, data := doRequest(t, app, fiber.MethodPost, "/api/users", body, contentType)
	if status != fiber.StatusCreated {
		t.Fatalf("se esperaba 201, se obtuvo %d: %s", status, data)
	}
	var created domain.User
	decode(t, data, &created)
	if created.ID == 0 || string(created.Document.Data) != "cedula" {
		t.Fatalf("usuario creado incorrecto: %+v", created)
	}

	status, data = doRequest(t, app, fiber.MethodGet, "/api/users/rut/1-9", nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("se esperaba 200, se obtuvo %d: %s", status, data)
	}
	var byRut domain.User
	decode(t, data, &byRut)
	if byRut.ID != created.ID || byRut.Name != "Ana Pérez" {
		t.Fatalf("usuario por RUT incorrecto: %+v", byRut)
	}

	body, contentType = multipartBody(t, map[string]string{"rut": "1-9", "name": "Ana María", "email": "am@mail.cl"})
	status, data = doRequest(t, app, fiber.MethodPut, "/api/users/"+itoa(created.ID), body, contentType)
	if status != fiber.StatusOK {
		t.Fatalf("se esperaba 200, se obtuvo %d: %s", status, data)
	}

	status, data = doRequest(t, app, fiber.MethodGet, "/api/users/"+itoa(created.ID), nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("se esperaba 200, se obtuvo %d: %s", status, data)
	}
	var got domain.User
	decode(t, data, &got)
	if got.Name != "Ana María" || got.Email != "am@mail.cl" || got.Document.Valid {
		t.Fatalf("reemplazo incorrecto: %+v", got)
	}

	var all []domain.User
	_, data = doRequest(t, app, fiber.MethodGet, "/api/users", nil, "")
	decode(t, data, &all)
	if len(all) != 1 {
		t.Fatalf("se esperaba 1 usuario, se obtuvieron %d", len(all))
	}

	if status, _ := doRequest(t, app, fiber.MethodDelete, "/api/users/"+itoa(created.ID), nil, ""); status != fiber.StatusNoContent {
		t.Fatalf("se esperaba 204, se obtuvo %d", status)
	}
	if status, _ := doRequest(t, app, fiber.MethodDelete, "/api/users/"+itoa(created.ID), nil, ""); status != fiber.StatusInternalServerError {
		t.Fatalf("eliminar dos veces debe fallar, se obtuvo %d", status)
	}
}

func TestUserHandler_NotFound(t *testing.T) {
	app := newTestApp(t, nil)

	for _, target := range []string{"/api/users/5", "/api/users/rut/9-9"} {
		status, data := doRequest(t, app, fiber.MethodGet, target, nil, "")
		if status != fiber.StatusNotFound {
			t.Errorf("%s: se esperaba 404, se obtuvo %d", target, status)
		}
		var errBody map[string]string
		decode(t, data, &errBody)
		if errBody["error"] == "" {
			t.Errorf("%s: falta el mensaje de error", target)
		}
	}
}

func TestUserHandler_UpdateWithoutID(t *testing.T) {
	app := newTestApp(t, nil)

	body, contentType := multipartBody(t, userFields("1-9"))
	if status, _ := doRequest(t, app, fiber.MethodPut, "/api/users/0", body, contentType); status != fiber.StatusInternalServerError {
		t.Fatalf("reemplazar sin ID debe fallar, se obtuvo %d", status)
	}
}

func TestUserHandler_KeepsFreeFormValues(t *testing.T) {
	app := newTestApp(t, nil)

	fields := map[string]string{"rut": " 1-9 ", "name": "  Ana ", "email": ""}
	body, contentType := multipartBody(t, fields, formFile{field: "document", data: []byte("cedula")})
	status, data := doRequest(t, app, fiber.MethodPost, "/api/users", body, contentType)
	if status != fiber.StatusCreated {
		t.Fatalf("se esperaba 201, se obtuvo %d: %s", status, data)
	}
	var created domain.User
	decode(t, data, &created)

	_, data = doRequest(t, app, fiber.MethodGet, "/api/users/"+itoa(created.ID), nil, "")
	var got domain.User
	decode(t, data, &got)
	if got.Rut != " 1-9 " || got.Name != "  Ana " || got.Email != "" {
		t.Fatalf("valores alterados: %+v", got)
	}

	body, contentType = multipartBody(t, map[string]string{"rut": "1-9", "name": "Ana"}, formFile{field: "document", data: []byte("x")})
	if status, _ := doRequest(t, app, fiber.MethodPost, "/api/users", body, contentType); status != fiber.StatusBadRequest {
		t.Fatalf("sin el campo email se esperaba 400, se obtuvo %d", status)
	}
}
