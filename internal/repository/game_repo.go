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

// GameRepository stores games as jsonb documents keyed by id. Updates
// carry an optimistic version check so concurrent writers cannot
// silently overwrite each other.
type GameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// Get returns the game by id, or domain.ErrNotFound.
func (r *GameRepository) Get(ctx context.Context, id string) (*domain.Game, error) {
	var (
		doc     []byte
		version int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT doc, version FROM games WHERE id = $1`, id,
	).Scan(&doc, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var g domain.Game
	if err := json.Unmarshal(doc, &g); err != nil {
		return nil, err
	}
	g.Version = version
	return &g, nil
}

// Save upserts the game. A game with Version 0 is inserted; anything
// else must match the stored version or the save fails with
// domain.ErrVersionConflict. On success the in-memory version advances.
func (r *GameRepository) Save(ctx context.Context, g *domain.Game) error {
	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now

	doc, err := json.Marshal(g)
	if err != nil {
		return err
	}

	if g.Version == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO games (id, player_id, version, doc, created_at, updated_at)
			 VALUES ($1, $2, 1, $3, $4, $5)
			 RETURNING version`,
			g.ID, g.PlayerID, doc, g.CreatedAt, g.UpdatedAt,
		).Scan(&g.Version)
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE games
		 SET doc = $2, version = version + 1, updated_at = $3
		 WHERE id = $1 AND version = $4`,
		g.ID, doc, g.UpdatedAt, g.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	g.Version++
	return nil
}

// ListByPlayer returns the player's games, newest first.
func (r *GameRepository) ListByPlayer(ctx context.Context, playerID string) ([]*domain.Game, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc, version FROM games
		 WHERE player_id = $1
		 ORDER BY created_at DESC`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Game
	for rows.Next() {
		var (
			doc     []byte
			version int64
		)
		if err := rows.Scan(&doc, &version); err != nil {
			return nil, err
		}
		var g domain.Game
		if err := json.Unmarshal(doc, &g); err != nil {
			return nil, err
		}
		g.Version = version
		result = append(result, &g)
	}
	return result, rows.Err()
}
