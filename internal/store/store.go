// Package store keeps saved tactics in SQLite through gorm.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vladimirvolkov/tactics/internal/board"
)

var (
	ErrNotFound = errors.New("tactic not found")
	ErrNoName   = errors.New("tactic has no name")
)

// Memory opens a private in-memory database.
const Memory = ":memory:"

// Tactic is a saved board. The board itself lives in Payload as the same
// JSON the client exchanges.
type Tactic struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:120;not null;index" json:"name"`
	Author    string         `gorm:"size:64" json:"author"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Summary is a saved tactic without its payload.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store struct {
	db    *gorm.DB
	log   zerolog.Logger
	newID func() string
}

// Open connects to the SQLite file at path, or to a private in-memory
// database for Memory, and migrates the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	if path == Memory {
		// Every new connection to :memory: is a fresh database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&Tactic{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("path", path).Msg("tactic store ready")
	return &Store{db: db, log: log, newID: uuid.NewString}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save stores t under its ID, or under a new one when it has none, and
// returns t with the ID filled in.
func (s *Store) Save(ctx context.Context, author string, t board.Tactic) (board.Tactic, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return board.Tactic{}, ErrNoName
	}
	if t.ID == "" {
		t.ID = s.newID()
	}
	payload, err := json.Marshal(t)
	if err != nil {
		return board.Tactic{}, fmt.Errorf("encode tactic: %w", err)
	}

	row := Tactic{ID: t.ID, Name: t.Name, Author: author, Payload: datatypes.JSON(payload)}
	var existing Tactic
	err = s.db.WithContext(ctx).Select("created_at").First(&existing, "id = ?", t.ID).Error
	switch {
	case err == nil:
		row.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return board.Tactic{}, fmt.Errorf("look up tactic %s: %w", t.ID, err)
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return board.Tactic{}, fmt.Errorf("save tactic %s: %w", t.ID, err)
	}
	s.log.Debug().Str("id", t.ID).Str("name", t.Name).Int("bytes", len(payload)).Msg("tactic saved")
	return t, nil
}

// List returns every saved tactic, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := s.db.WithContext(ctx).Model(&Tactic{}).
		Select("id", "name", "author", "updated_at").
		Order("updated_at DESC").Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list tactics: %w", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (board.Tactic, error) {
	var row Tactic
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return board.Tactic{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return board.Tactic{}, fmt.Errorf("get tactic %s: %w", id, err)
	}
	var t board.Tactic
	if err := json.Unmarshal(row.Payload, &t); err != nil {
		return board.Tactic{}, fmt.Errorf("decode tactic %s: %w", id, err)
	}
	t.ID = row.ID
	return t, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&Tactic{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete tactic %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.log.Debug().Str("id", id).Msg("tactic deleted")
	return nil
}
