package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mastermind_reach/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MultiplayerRepository stores multiplayer sessions as jsonb documents,
// with the same optimistic versioning scheme as GameRepository.
type MultiplayerRepository struct {
	db *pgxpool.Pool
}

func NewMultiplayerRepository(db *pgxpool.Pool) *MultiplayerRepository {
	return &MultiplayerRepository{db: db}
}

// Get returns the session by id, or domain.ErrNotFound.
func (r *MultiplayerRepository) Get(ctx context.Context, id string) (*domain.Multiplayer, error) {
	var (
		doc     []byte
		version int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT doc, version FROM multiplayer_games WHERE id = $1`, id,
	).Scan(&doc, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var m domain.Multiplayer
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	m.Version = version
	return &m, nil
}

// Save upserts the session with a version check, mirroring
// GameRepository.Save.
func (r *MultiplayerRepository) Save(ctx context.Context, m *domain.Multiplayer) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}

	if m.Version == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO multiplayer_games (id, version, doc, created_at, updated_at)
			 VALUES ($1, 1, $2, $3, $4)
			 RETURNING version`,
			m.ID, doc, m.CreatedAt, m.UpdatedAt,
		).Scan(&m.Version)
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE multiplayer_games
		 SET doc = $2, version = version + 1, updated_at = $3
		 WHERE id = $1 AND version = $4`,
		m.ID, doc, m.UpdatedAt, m.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	m.Version++
	return nil
}
