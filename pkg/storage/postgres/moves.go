package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ericlantz/pokedex-api/pkg/api"
)

const (
	listMovesQuery = `SELECT id, name FROM moves ORDER BY id`
	getMoveQuery   = `
		SELECT m.id, m.name AS move_name, t.name AS type_name, m.power, m.accuracy, m.power_point
		FROM moves m
		JOIN types t ON m.types_id = t.id
		WHERE m.id = $1
	`
	insertMoveQuery = `
		INSERT INTO moves (name, types_id, power, accuracy, power_point)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	updateMoveQuery = `
		UPDATE moves
		SET name = $1, types_id = $2, power = $3, accuracy = $4, power_point = $5
		WHERE id = $6
	`
	deleteMoveQuery = `DELETE FROM moves WHERE id = $1`
)

// ListMoves returns every move ordered by id.
func (s *Store) ListMoves(ctx context.Context) ([]*api.Move, error) {
	rows, err := s.db.QueryContext(ctx, listMovesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	var moves []*api.Move
	for rows.Next() {
		var m api.Move
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating moves: %w", err)
	}
	return moves, nil
}

// GetMove returns one move with its type name joined in.
func (s *Store) GetMove(ctx context.Context, id int64) (*api.MoveDetail, error) {
	var m api.MoveDetail
	err := s.db.QueryRowContext(ctx, getMoveQuery, id).Scan(
		&m.ID, &m.MoveName, &m.TypeName, &m.Power, &m.Accuracy, &m.PowerPoint,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("move %d: %w", id, api.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get move: %w", err)
	}
	return &m, nil
}

// CreateMove inserts a move and returns its generated id.
func (s *Store) CreateMove(ctx context.Context, in *api.MoveInput) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, insertMoveQuery,
		in.Name, in.TypesID, in.Power, in.Accuracy, in.PowerPoint,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}
	return id, nil
}

// UpdateMove overwrites every named field of a move.
func (s *Store) UpdateMove(ctx context.Context, id int64, in *api.MoveInput) error {
	result, err := s.db.ExecContext(ctx, updateMoveQuery,
		in.Name, in.TypesID, in.Power, in.Accuracy, in.PowerPoint, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update move: %w", err)
	}
	return requireAffected(result, "move", id)
}

// DeleteMove removes a move by id.
func (s *Store) DeleteMove(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, deleteMoveQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}
	return requireAffected(result, "move", id)
}

// requireAffected maps zero affected rows to api.ErrNotFound.
func requireAffected(result sql.Result, entity string, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, api.ErrNotFound)
	}
	return nil
}
