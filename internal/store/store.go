// Package store persists generated tiles to PostgreSQL.
package store

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"geotiler/internal/tiler"
)

const insertBatchSize = 100

// Store wraps a PostgreSQL connection holding tile rows.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to PostgreSQL and migrates the tiles table.
func Open(url string, zl zerolog.Logger) (*Store, error) {
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Millisecond * 500,
		},
	)

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if err := db.AutoMigrate(&TileRow{}); err != nil {
		return nil, fmt.Errorf("store: migrate tiles table: %w", err)
	}

	return &Store{db: db, log: zl}, nil
}

// SaveTiles inserts the tiles in batches under a fresh batch id and
// returns that id. Re-inserting an existing tile id updates its batch.
func (s *Store) SaveTiles(tiles []*tiler.Tile) (string, error) {
	batchID := uuid.New().String()

	rows := make([]TileRow, 0, len(tiles))
	now := time.Now()
	for _, tile := range tiles {
		row, err := rowFromTile(tile, batchID, now)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	for i := 0; i < len(rows); i += insertBatchSize {
		end := min(i+insertBatchSize, len(rows))
		batch := rows[i:end]

		result := s.db.Save(&batch)
		if result.Error != nil {
			return "", fmt.Errorf("store: save batch %d-%d: %w", i, end, result.Error)
		}
		s.log.Debug().Int("from", i).Int("to", end).Msg("saved tile batch")
	}

	s.log.Info().Str("batch_id", batchID).Int("tiles", len(rows)).Msg("tiles persisted")
	return batchID, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
