package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp crea la aplicación fiber con los middlewares comunes
func NewApp(allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Los valores de c.Params y c.FormValue se guardan en entidades
		Immutable:    true,
		UnescapePath: true,
		BodyLimit:    50 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       86400,
	}))

	return app
}

// SetupRoutes registra las rutas de la API
func SetupRoutes(app *fiber.App, users *UserHandler, loans *LoanHandler, documents *DocumentHandler) {
	api := app.Group("/api")

	// Usuarios
	usuarios := api.Group("/users")
	usuarios.Get("/", users.ListUsers)
	usuarios.Get("/rut/:rut", users.GetUserByRut)
	usuarios.Get("/:id", users.GetUserByID)
	usuarios.Post("/", users.CreateUser)
	usuarios.Put("/:id", users.UpdateUser)
	usuarios.Delete("/:id", users.DeleteUser)

	// Solicitudes de crédito
	creditos := api.Group("/loans")
	creditos.Get("/", loans.ListLoans)
	creditos.Get("/rut/:rut", loans.GetLoanByRut)
	creditos.Get("/state/:state", loans.GetLoanByState)
	creditos.Get("/:id", loans.GetLoanByID)
	creditos.Post("/", loans.CreateLoan)
	creditos.Post("/simulation", loans.SimulateCredit)
	creditos.Post("/total_cost", loans.CostCalculation)
	creditos.Post("/:id/archive", documents.ArchiveLoanDocuments)
	creditos.Put("/:id", loans.UpdateLoan)
	creditos.Delete("/:id", loans.DeleteLoan)
}
