package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ericlantz/pokedex-api/pkg/api"
)

const (
	listSpeciesQuery   = `SELECT id, name FROM species ORDER BY id`
	getSpeciesQuery    = `SELECT id, name FROM species WHERE id = $1`
	insertSpeciesQuery = `INSERT INTO species (name) VALUES ($1) RETURNING id`
	updateSpeciesQuery = `UPDATE species SET name = $1 WHERE id = $2`
	deleteSpeciesQuery = `DELETE FROM species WHERE id = $1`
)

// ListSpecies returns every species ordered by id.
func (s *Store) ListSpecies(ctx context.Context) ([]*api.Species, error) {
	rows, err := s.db.QueryContext(ctx, listSpeciesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	defer rows.Close()

	var species []*api.Species
	for rows.Next() {
		var sp api.Species
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, fmt.Errorf("failed to scan species: %w", err)
		}
		species = append(species, &sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating species: %w", err)
	}
	return species, nil
}

// GetSpecies returns one species by id.
func (s *Store) GetSpecies(ctx context.Context, id int64) (*api.Species, error) {
	var sp api.Species
	err := s.db.QueryRowContext(ctx, getSpeciesQuery, id).Scan(&sp.ID, &sp.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("species %d: %w", id, api.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &sp, nil
}

// CreateSpecies inserts a species and returns its generated id.
func (s *Store) CreateSpecies(ctx context.Context, name string) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, insertSpeciesQuery, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create species: %w", err)
	}
	return id, nil
}

// UpdateSpecies overwrites a species name.
func (s *Store) UpdateSpecies(ctx context.Context, id int64, name string) error {
	result, err := s.db.ExecContext(ctx, updateSpeciesQuery, name, id)
	if err != nil {
		return fmt.Errorf("failed to update species: %w", err)
	}
	return requireAffected(result, "species", id)
}

// DeleteSpecies removes a species by id.
func (s *Store) DeleteSpecies(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, deleteSpeciesQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete species: %w", err)
	}
	return requireAffected(result, "species", id)
}
