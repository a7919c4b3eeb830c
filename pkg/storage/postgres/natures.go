package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ericlantz/pokedex-api/pkg/api"
)

const (
	listNaturesQuery = `SELECT id, name, increased_stat, decreased_stat, description FROM natures ORDER BY id`
	getNatureQuery   = `SELECT id, name, increased_stat, decreased_stat, description FROM natures WHERE id = $1`
	insertNatureQuery = `
		INSERT INTO natures (name, increased_stat, decreased_stat, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	updateNatureQuery = `
		UPDATE natures
		SET name = $1, increased_stat = $2, decreased_stat = $3, description = $4
		WHERE id = $5
	`
	deleteNatureQuery = `DELETE FROM natures WHERE id = $1`
)

// ListNatures returns every nature ordered by id.
func (s *Store) ListNatures(ctx context.Context) ([]*api.Nature, error) {
	rows, err := s.db.QueryContext(ctx, listNaturesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list natures: %w", err)
	}
	defer rows.Close()

	var natures []*api.Nature
	for rows.Next() {
		var n api.Nature
		if err := rows.Scan(&n.ID, &n.Name, &n.IncreasedStat, &n.DecreasedStat, &n.Description); err != nil {
			return nil, fmt.Errorf("failed to scan nature: %w", err)
		}
		natures = append(natures, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating natures: %w", err)
	}
	return natures, nil
}

// GetNature returns one nature by id.
func (s *Store) GetNature(ctx context.Context, id int64) (*api.Nature, error) {
	var n api.Nature
	err := s.db.QueryRowContext(ctx, getNatureQuery, id).Scan(
		&n.ID, &n.Name, &n.IncreasedStat, &n.DecreasedStat, &n.Description,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("nature %d: %w", id, api.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nature: %w", err)
	}
	return &n, nil
}

// CreateNature inserts a nature and returns its generated id.
func (s *Store) CreateNature(ctx context.Context, in *api.NatureInput) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, insertNatureQuery,
		in.Name, in.IncreasedStat, in.DecreasedStat, in.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create nature: %w", err)
	}
	return id, nil
}

// UpdateNature overwrites every named field of a nature.
func (s *Store) UpdateNature(ctx context.Context, id int64, in *api.NatureInput) error {
	result, err := s.db.ExecContext(ctx, updateNatureQuery,
		in.Name, in.IncreasedStat, in.DecreasedStat, in.Description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update nature: %w", err)
	}
	return requireAffected(result, "nature", id)
}

// DeleteNature removes a nature by id.
func (s *Store) DeleteNature(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, deleteNatureQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete nature: %w", err)
	}
	return requireAffected(result, "nature", id)
}
