package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ericlantz/pokedex-api/pkg/api"
)

// defaultEffectiveness is the multiplier recorded for every edge created
// through a type's strengths/weaknesses lists.
const defaultEffectiveness = 2.0

const (
	listTypesQuery = `SELECT id, name, color FROM types ORDER BY id`
	getTypeQuery   = `
		SELECT t.id, t.name, t.color,
		       COALESCE(jsonb_agg(jsonb_build_object(
		                'attacking_type_id', te.attacking_type_id,
		                'defending_type_id', te.defending_type_id,
		                'effectiveness', te.effectiveness))
		                FILTER (WHERE te.attacking_type_id IS NOT NULL), '[]') AS effectiveness
		FROM types t
		LEFT JOIN type_effectiveness te
		  ON te.attacking_type_id = t.id OR te.defending_type_id = t.id
		WHERE t.id = $1
		GROUP BY t.id, t.name, t.color
	`
	insertTypeQuery = `
		INSERT INTO types (name, color)
		VALUES ($1, $2)
		RETURNING id
	`
	insertEffectivenessQuery = `
		INSERT INTO type_effectiveness (attacking_type_id, defending_type_id, effectiveness)
		VALUES ($1, $2, $3)
	`
	updateTypeQuery = `UPDATE types SET name = $1, color = $2 WHERE id = $3`
	deleteTypeQuery = `DELETE FROM types WHERE id = $1`
)

// ListTypes returns every type ordered by id.
func (s *Store) ListTypes(ctx context.Context) ([]*api.Type, error) {
	rows, err := s.db.QueryContext(ctx, listTypesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	defer rows.Close()

	var types []*api.Type
	for rows.Next() {
		var t api.Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan type: %w", err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating types: %w", err)
	}
	return types, nil
}

// GetType returns one type together with every effectiveness edge it
// participates in, as attacker or defender.
func (s *Store) GetType(ctx context.Context, id int64) (*api.TypeDetail, error) {
	var detail api.TypeDetail
	var edgesJSON []byte
	err := s.db.QueryRowContext(ctx, getTypeQuery, id).Scan(
		&detail.ID, &detail.Name, &detail.Color, &edgesJSON,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("type %d: %w", id, api.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get type: %w", err)
	}
	if err := json.Unmarshal(edgesJSON, &detail.Effectiveness); err != nil {
		return nil, fmt.Errorf("failed to decode effectiveness: %w", err)
	}
	return &detail, nil
}

// CreateType inserts the type and one directed effectiveness edge per listed
// strength (new type attacking) and weakness (new type defending), all in one
// transaction. No reciprocal edges are derived.
func (s *Store) CreateType(ctx context.Context, in *api.TypeInput) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertTypeQuery, in.Name, in.Color).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert type: %w", err)
		}
		for _, defendingID := range in.Strengths {
			if _, err := tx.ExecContext(ctx, insertEffectivenessQuery, id, defendingID, defaultEffectiveness); err != nil {
				return fmt.Errorf("failed to insert strength edge to type %d: %w", defendingID, err)
			}
		}
		for _, attackingID := range in.Weaknesses {
			if _, err := tx.ExecContext(ctx, insertEffectivenessQuery, attackingID, id, defaultEffectiveness); err != nil {
				return fmt.Errorf("failed to insert weakness edge from type %d: %w", attackingID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateType overwrites a type's name and color.
func (s *Store) UpdateType(ctx context.Context, id int64, in *api.TypeInput) error {
	result, err := s.db.ExecContext(ctx, updateTypeQuery, in.Name, in.Color, id)
	if err != nil {
		return fmt.Errorf("failed to update type: %w", err)
	}
	return requireAffected(result, "type", id)
}

// DeleteType removes a type by id.
func (s *Store) DeleteType(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, deleteTypeQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete type: %w", err)
	}
	return requireAffected(result, "type", id)
}
