package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver cho database/sql
)

// PostgreSQL lưu bảng key-value trong PostgreSQL
type PostgreSQL struct {
	db *sql.DB
}

// NewPostgreSQL khởi tạo kết nối với PostgreSQL và tạo bảng nếu chưa tồn tại
func NewPostgreSQL(uri string) (*PostgreSQL, error) {
	if uri == "" {
		return nil, errors.New("you must set your 'POSTGRESQL_URI' environmental variable")
	}

	db, err := sql.Open("pgx", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	log.Println("[storage] Connected to PostgreSQL successfully")

	p := &PostgreSQL{db: db}
	if err := p.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return p, nil
}

// createTables tạo bảng nếu chưa tồn tại
func (p *PostgreSQL) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS kv_items (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT NOW()
	)
	`
	_, err := p.db.Exec(query)
	return err
}

func (p *PostgreSQL) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow("SELECT value FROM kv_items WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgreSQL) Set(key, value string) error {
	query := `INSERT INTO kv_items (key, value, updated_at) VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := p.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (p *PostgreSQL) Delete(key string) error {
	if _, err := p.db.Exec("DELETE FROM kv_items WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (p *PostgreSQL) Ping() error {
	return p.db.PingContext(context.Background())
}

// Close đóng kết nối với PostgreSQL
func (p *PostgreSQL) Close() error {
	if p.db == nil {
		return nil
	}
	if err := p.db.Close(); err != nil {
		return err
	}
	log.Println("[storage] Database connection closed")
	return nil
}
