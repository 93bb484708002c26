package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/nasch/prestabanco_backend/internal/application"
	"github.com/nasch/prestabanco_backend/internal/config"
	"github.com/nasch/prestabanco_backend/internal/email"
	"github.com/nasch/prestabanco_backend/internal/infrastructure/database"
	"github.com/nasch/prestabanco_backend/internal/infrastructure/repository"
	handlers "github.com/nasch/prestabanco_backend/internal/interfaces/http"
	services "github.com/nasch/prestabanco_backend/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	db, err := database.Open(cfg.DBDriver, cfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Notificaciones por correo (opcional)
	var notifier application.LoanNotifier
	if cfg.SMTPEnabled() {
		emailClient, err := email.NewClientFromConfig(cfg)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
		} else {
			notifier = email.NewLoanNotifier(emailClient, cfg.NotifyEmail)
		}
	}

	// Usuarios
	userRepo := repository.NewUserRepository(db)
	userService := application.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService)

	// Solicitudes
	loanRepo := repository.NewLoanRepository(db)
	loanService := application.NewLoanService(loanRepo, notifier)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Archivo de documentos en S3 (opcional)
	var archiveService *application.DocumentArchiveService
	if cfg.S3BucketName != "" {
		s3Service, err := services.NewS3Service(ctx, cfg.S3BucketName, cfg.S3Region)
		if err != nil {
			log.Printf("Warning: S3 initialization failed: %v", err)
		} else {
			archiveService = application.NewDocumentArchiveService(loanRepo, s3Service)
		}
	}
	documentHandler := handlers.NewDocumentHandler(archiveService)

	app := handlers.NewApp(cfg.AllowOrigins)
	handlers.SetupRoutes(app, userHandler, loanHandler, documentHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		return app.Listen(":" + cfg.ServerPort)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}
