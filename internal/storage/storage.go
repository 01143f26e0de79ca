package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/track-server/internal/config"
	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB     *sql.DB
	Tracks sqlconfig.ITrackTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	return Open(env.DBPath)
}

// Open opens (creating if needed) the sqlite database at dbPath and brings
// its schema up to date.
func Open(dbPath string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if _, _, err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dataSourceName(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		Tracks: sqlconfig.NewTracksTable(bobDB),
		bobDB:  bobDB,
	}, nil
}

// Write starts a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func dataSourceName(dbPath string) string {
	return "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
