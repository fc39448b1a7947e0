package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Store defines read access to loaded menu data.
type Store interface {
	Outlet(ctx context.Context, key string) (*OutletMenu, error)
	All(ctx context.Context) (map[string]*OutletMenu, error)
}

// DirStore holds menus parsed from a directory of per-outlet JSON files.
// It is populated once by Load and only read afterwards.
type DirStore struct {
	dir     string
	log     *zap.Logger
	outlets map[string]*OutletMenu
}

// NewDirStore creates a DirStore for the given menu directory.
func NewDirStore(dir string, log *zap.Logger) *DirStore {
	return &DirStore{dir: dir, log: log, outlets: make(map[string]*OutletMenu)}
}

// Load scans the menu directory non-recursively for .json files. A file
// whose content cannot be parsed, or that lacks a top-level "menu" mapping,
// is skipped with a logged diagnostic; the remaining files still load.
// The outlet key is the lowercased filename stem, and a later file with the
// same key overwrites the earlier entry wholesale.
func (s *DirStore) Load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read menu directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.log.Error("failed to read menu file, skipping", zap.String("file", name), zap.Error(err))
			continue
		}

		var raw struct {
			Menu map[string][]Item `json:"menu"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			s.log.Error("failed to parse menu file, skipping", zap.String("file", name), zap.Error(err))
			continue
		}
		if raw.Menu == nil {
			s.log.Error("invalid structure in menu file, skipping", zap.String("file", name))
			continue
		}

		key := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		s.outlets[key] = &OutletMenu{Outlet: key, Categories: raw.Menu}
		s.log.Debug("loaded menu data", zap.String("outlet", key))
	}

	s.log.Info("menu data loaded", zap.Int("outlets", len(s.outlets)))
	return nil
}

// Outlet returns the menu for an outlet key, or (nil, nil) when absent.
func (s *DirStore) Outlet(ctx context.Context, key string) (*OutletMenu, error) {
	return s.outlets[key], nil
}

// All returns every loaded outlet menu keyed by outlet.
func (s *DirStore) All(ctx context.Context) (map[string]*OutletMenu, error) {
	return s.outlets, nil
}

// PostgresStore implements the Store interface for PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create menu_items table if not exists
	schema := `
	CREATE TABLE IF NOT EXISTS menu_items (
		outlet_key TEXT NOT NULL,
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		cuisine TEXT NOT NULL DEFAULT 'unknown'
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu_items table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Outlet retrieves one outlet's menu, or (nil, nil) when no rows exist for the key.
func (s *PostgresStore) Outlet(ctx context.Context, key string) (*OutletMenu, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT category, name, price, cuisine FROM menu_items WHERE outlet_key = $1", key)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu for outlet: %w", err)
	}
	defer rows.Close()

	m := &OutletMenu{Outlet: key, Categories: make(map[string][]Item)}
	found := false
	for rows.Next() {
		var category string
		var item Item
		var price float64
		if err := rows.Scan(&category, &item.Name, &price, &item.Cuisine); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		item.Price = Price(price)
		m.Categories[category] = append(m.Categories[category], item)
		found = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if !found {
		return nil, nil // Outlet not found
	}
	return m, nil
}

// All retrieves every outlet's menu keyed by outlet.
func (s *PostgresStore) All(ctx context.Context) (map[string]*OutletMenu, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT outlet_key, category, name, price, cuisine FROM menu_items")
	if err != nil {
		return nil, fmt.Errorf("failed to get menus: %w", err)
	}
	defer rows.Close()

	outlets := make(map[string]*OutletMenu)
	for rows.Next() {
		var key, category string
		var item Item
		var price float64
		if err := rows.Scan(&key, &category, &item.Name, &price, &item.Cuisine); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		item.Price = Price(price)

		m, ok := outlets[key]
		if !ok {
			m = &OutletMenu{Outlet: key, Categories: make(map[string][]Item)}
			outlets[key] = m
		}
		m.Categories[category] = append(m.Categories[category], item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return outlets, nil
}

// SaveOutlet replaces an outlet's rows wholesale with the given menu.
func (s *PostgresStore) SaveOutlet(ctx context.Context, m *OutletMenu) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_items WHERE outlet_key = $1", m.Outlet); err != nil {
		return fmt.Errorf("failed to clear outlet rows: %w", err)
	}

	for category, items := range m.Categories {
		for _, item := range items {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO menu_items (outlet_key, category, name, price, cuisine) VALUES ($1, $2, $3, $4, $5)",
				m.Outlet, category, item.Name, float64(item.Price), item.Cuisine)
			if err != nil {
				return fmt.Errorf("failed to insert menu item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outlet rows: %w", err)
	}
	return nil
}
