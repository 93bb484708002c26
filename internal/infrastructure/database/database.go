package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open abre y verifica la conexión con el driver indicado
// ("postgres" usa lib/pq, "pgx" usa pgx, "sqlite3" usa go-sqlite3)
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la base de datos: %w", err)
	}

	if driver == "sqlite3" {
		// SQLite admite un solo escritor y ":memory:" vive por conexión
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error al hacer ping a la base de datos: %w", err)
	}

	return db, nil
}

// Migrate crea las tablas si no existen
func Migrate(db *sql.DB, driver string) error {
	idColumn := "BIGSERIAL PRIMARY KEY"
	blobType := "BYTEA"
	if driver == "sqlite3" {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
		blobType = "BLOB"
	}

	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			rut TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			document %s
		)`, idColumn, blobType),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS loans (
			id %s,
			rut TEXT NOT NULL,
			type TEXT NOT NULL,
			property_price BIGINT NOT NULL,
			amount BIGINT NOT NULL,
			term INTEGER NOT NULL,
			interest_rate REAL NOT NULL,
			income BIGINT NOT NULL,
			working_time INTEGER NOT NULL,
			age INTEGER NOT NULL,
			state TEXT NOT NULL,
			document1 %s,
			document2 %s,
			document3 %s,
			document4 %s
		)`, idColumn, blobType, blobType, blobType, blobType),
		`CREATE INDEX IF NOT EXISTS idx_users_rut ON users (rut)`,
		`CREATE INDEX IF NOT EXISTS idx_loans_rut ON loans (rut)`,
		`CREATE INDEX IF NOT EXISTS idx_loans_state ON loans (state)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error creando tablas: %w", err)
		}
	}

	log.Println("Esquema de base de datos verificado")
	return nil
}
