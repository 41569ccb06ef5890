package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

//go:embed migrations/schema.sql
var schemaSQL string

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración: %w", err)
		}
	}
	return nil
}

// SeedAdmin crea el usuario administrador por defecto si la tabla de
// usuarios está vacía. Password pensada para entornos de desarrollo;
// en producción debe rotarse al primer arranque.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, username, password, email string) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM usuarios`).Scan(&count); err != nil {
		return fmt.Errorf("contar usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO usuarios (username, password_hash, email, activo, roles) VALUES ($1, $2, $3, TRUE, $4)`,
		username, string(hash), email, []string{entity.RolAdmin},
	)
	if err != nil {
		return fmt.Errorf("insertar admin: %w", err)
	}
	return nil
}
