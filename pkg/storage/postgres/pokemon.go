package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ericlantz/pokedex-api/pkg/api"
)

// pokemonSelect is the aggregation read shared by the list and by-id fetches.
// Moves and types join through LEFT JOINs with filtered aggregates so a
// Pokémon whose move or type set was replaced with an empty one still
// surfaces with empty arrays, and jsonb_agg DISTINCT collapses the join
// fan-out to one entry per move/type.
const pokemonSelect = `
	SELECT p.id, p.name, s.name AS species, p.image_url,
	       COALESCE(jsonb_agg(DISTINCT jsonb_build_object('id', m.id, 'name', m.name))
	                FILTER (WHERE m.id IS NOT NULL), '[]') AS moves,
	       COALESCE(jsonb_agg(DISTINCT jsonb_build_object('id', t.id, 'name', t.name, 'color', t.color))
	                FILTER (WHERE t.id IS NOT NULL), '[]') AS type,
	       pb.hp, pb.attack, pb.defense, pb.special_attack, pb.special_defense, pb.speed
	FROM pokemon p
	JOIN species s ON s.id = p.species_id
	JOIN pokemon_base_stats pb ON pb.pokemon_id = p.id
	LEFT JOIN pokemon_moves pm ON pm.pokemon_id = p.id
	LEFT JOIN moves m ON m.id = pm.move_id
	LEFT JOIN pokemon_types pt ON pt.pokemon_id = p.id
	LEFT JOIN types t ON t.id = pt.type_id
`

const pokemonGroupBy = `
	GROUP BY p.id, p.name, s.name, p.image_url,
	         pb.hp, pb.attack, pb.defense, pb.special_attack, pb.special_defense, pb.speed
	ORDER BY p.id
`

const (
	listPokemonQuery = pokemonSelect + pokemonGroupBy
	getPokemonQuery  = pokemonSelect + ` WHERE p.id = $1 ` + pokemonGroupBy
)

const (
	insertPokemonQuery = `
		INSERT INTO pokemon (name, species_id, height, weight, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	insertStatsQuery = `
		INSERT INTO pokemon_base_stats (pokemon_id, hp, attack, defense, special_attack, special_defense, speed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	insertPokemonMoveQuery = `INSERT INTO pokemon_moves (pokemon_id, move_id) VALUES ($1, $2)`
	insertPokemonTypeQuery = `INSERT INTO pokemon_types (pokemon_id, type_id) VALUES ($1, $2)`

	deletePokemonMovesQuery = `DELETE FROM pokemon_moves WHERE pokemon_id = $1`
	deletePokemonTypesQuery = `DELETE FROM pokemon_types WHERE pokemon_id = $1`
	deletePokemonStatsQuery = `DELETE FROM pokemon_base_stats WHERE pokemon_id = $1`
	deletePokemonQuery      = `DELETE FROM pokemon WHERE id = $1`

	updateStatsQuery = `
		UPDATE pokemon_base_stats
		SET hp = $1, attack = $2, defense = $3, special_attack = $4, special_defense = $5, speed = $6
		WHERE pokemon_id = $7
	`
	pokemonExistsQuery = `SELECT EXISTS(SELECT 1 FROM pokemon WHERE id = $1)`
)

// ListPokemon returns every Pokémon with aggregated moves, types and stats.
func (s *Store) ListPokemon(ctx context.Context) ([]*api.Pokemon, error) {
	rows, err := s.db.QueryContext(ctx, listPokemonQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}
	defer rows.Close()

	var result []*api.Pokemon
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pokemon: %w", err)
	}
	return result, nil
}

// GetPokemon returns one Pokémon by id, api.ErrNotFound when absent.
func (s *Store) GetPokemon(ctx context.Context, id int64) (*api.Pokemon, error) {
	rows, err := s.db.QueryContext(ctx, getPokemonQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pokemon: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get pokemon: %w", err)
		}
		return nil, fmt.Errorf("pokemon %d: %w", id, api.ErrNotFound)
	}
	return scanPokemon(rows)
}

// scanPokemon decodes one aggregated row, unmarshalling the jsonb arrays.
func scanPokemon(rows *sql.Rows) (*api.Pokemon, error) {
	var p api.Pokemon
	var imageURL sql.NullString
	var movesJSON, typesJSON []byte
	if err := rows.Scan(
		&p.ID, &p.Name, &p.Species, &imageURL, &movesJSON, &typesJSON,
		&p.HP, &p.Attack, &p.Defense, &p.SpecialAttack, &p.SpecialDefense, &p.Speed,
	); err != nil {
		return nil, fmt.Errorf("failed to scan pokemon: %w", err)
	}
	if imageURL.Valid {
		p.ImageURL = imageURL.String
	}
	if err := json.Unmarshal(movesJSON, &p.Moves); err != nil {
		return nil, fmt.Errorf("failed to decode moves: %w", err)
	}
	if err := json.Unmarshal(typesJSON, &p.Types); err != nil {
		return nil, fmt.Errorf("failed to decode types: %w", err)
	}
	return &p, nil
}

// CreatePokemon inserts the Pokémon row, its stats row, and one junction row
// per move and type id, atomically. imageURL may be empty.
func (s *Store) CreatePokemon(ctx context.Context, in *api.PokemonInput, imageURL string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, insertPokemonQuery,
			in.Name, in.SpeciesID, in.Height, in.Weight, nullString(imageURL),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert pokemon: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertStatsQuery,
			id, in.Stats.HP, in.Stats.Attack, in.Stats.Defense,
			in.Stats.SpecialAttack, in.Stats.SpecialDefense, in.Stats.Speed,
		); err != nil {
			return fmt.Errorf("failed to insert base stats: %w", err)
		}

		for _, moveID := range in.Moves {
			if _, err := tx.ExecContext(ctx, insertPokemonMoveQuery, id, moveID); err != nil {
				return fmt.Errorf("failed to link move %d: %w", moveID, err)
			}
		}
		for _, typeID := range in.Types {
			if _, err := tx.ExecContext(ctx, insertPokemonTypeQuery, id, typeID); err != nil {
				return fmt.Errorf("failed to link type %d: %w", typeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdatePokemon overwrites the supplied scalar fields and fully replaces the
// move/type sets when present (delete-then-insert, an empty set leaves the
// Pokémon with none). A supplied stats object overwrites the stats row in
// place; exactly one stats row per Pokémon is assumed.
func (s *Store) UpdatePokemon(ctx context.Context, id int64, upd *api.PokemonUpdate) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, pokemonExistsQuery, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check pokemon: %w", err)
		}
		if !exists {
			return fmt.Errorf("pokemon %d: %w", id, api.ErrNotFound)
		}

		set := make([]string, 0, 5)
		args := make([]interface{}, 0, 6)
		add := func(column string, value interface{}) {
			args = append(args, value)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}
		if upd.Name != nil {
			add("name", *upd.Name)
		}
		if upd.SpeciesID != nil {
			add("species_id", *upd.SpeciesID)
		}
		if upd.Height != nil {
			add("height", *upd.Height)
		}
		if upd.Weight != nil {
			add("weight", *upd.Weight)
		}
		if upd.ImageURL != nil {
			add("image_url", *upd.ImageURL)
		}
		if len(set) > 0 {
			args = append(args, id)
			query := fmt.Sprintf("UPDATE pokemon SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to update pokemon: %w", err)
			}
		}

		if upd.Moves != nil {
			if _, err := tx.ExecContext(ctx, deletePokemonMovesQuery, id); err != nil {
				return fmt.Errorf("failed to clear moves: %w", err)
			}
			for _, moveID := range *upd.Moves {
				if _, err := tx.ExecContext(ctx, insertPokemonMoveQuery, id, moveID); err != nil {
					return fmt.Errorf("failed to link move %d: %w", moveID, err)
				}
			}
		}

		if upd.Types != nil {
			if _, err := tx.ExecContext(ctx, deletePokemonTypesQuery, id); err != nil {
				return fmt.Errorf("failed to clear types: %w", err)
			}
			for _, typeID := range *upd.Types {
				if _, err := tx.ExecContext(ctx, insertPokemonTypeQuery, id, typeID); err != nil {
					return fmt.Errorf("failed to link type %d: %w", typeID, err)
				}
			}
		}

		if upd.Stats != nil {
			if _, err := tx.ExecContext(ctx, updateStatsQuery,
				upd.Stats.HP, upd.Stats.Attack, upd.Stats.Defense,
				upd.Stats.SpecialAttack, upd.Stats.SpecialDefense, upd.Stats.Speed, id,
			); err != nil {
				return fmt.Errorf("failed to update base stats: %w", err)
			}
		}
		return nil
	})
}

// DeletePokemon removes junction rows, the stats row, then the parent row,
// atomically. No database-level cascade is assumed.
func (s *Store) DeletePokemon(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deletePokemonMovesQuery, id); err != nil {
			return fmt.Errorf("failed to delete moves: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deletePokemonTypesQuery, id); err != nil {
			return fmt.Errorf("failed to delete types: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deletePokemonStatsQuery, id); err != nil {
			return fmt.Errorf("failed to delete base stats: %w", err)
		}
		result, err := tx.ExecContext(ctx, deletePokemonQuery, id)
		if err != nil {
			return fmt.Errorf("failed to delete pokemon: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("pokemon %d: %w", id, api.ErrNotFound)
		}
		return nil
	})
}

// pokemonSummarySelect backs the case-insensitive name filters. Only the type
// list is aggregated; the join against the filter target narrows the rows.
const pokemonByTypeQuery = `
	SELECT p.id, p.name, s.name AS species,
	       COALESCE(jsonb_agg(DISTINCT jsonb_build_object('id', t2.id, 'name', t2.name, 'color', t2.color))
	                FILTER (WHERE t2.id IS NOT NULL), '[]') AS types,
	       pb.hp, pb.attack, pb.defense, pb.special_attack, pb.special_defense, pb.speed
	FROM pokemon p
	JOIN species s ON s.id = p.species_id
	JOIN pokemon_base_stats pb ON pb.pokemon_id = p.id
	JOIN pokemon_types pt ON pt.pokemon_id = p.id
	JOIN types t ON t.id = pt.type_id
	LEFT JOIN pokemon_types pt2 ON pt2.pokemon_id = p.id
	LEFT JOIN types t2 ON t2.id = pt2.type_id
	WHERE LOWER(t.name) = LOWER($1)
	GROUP BY p.id, p.name, s.name, pb.hp, pb.attack, pb.defense, pb.special_attack, pb.special_defense, pb.speed
	ORDER BY p.id
`

const pokemonByMoveQuery = `
	SELECT p.id, p.name, s.name AS species,
	       COALESCE(jsonb_agg(DISTINCT jsonb_build_object('id', t.id, 'name', t.name, 'color', t.color))
	                FILTER (WHERE t.id IS NOT NULL), '[]') AS types,
	       pb.hp, pb.attack, pb.defense, pb.special_attack, pb.special_defense, pb.speed
	FROM pokemon p
	JOIN species s ON s.id = p.species_id
	JOIN pokemon_base_stats pb ON pb.pokemon_id = p.id
	JOIN pokemon_moves pm ON pm.pokemon_id = p.id
	JOIN moves m ON m.id = pm.move_id
	LEFT JOIN pokemon_types pt ON pt.pokemon_id = p.id
	LEFT JOIN types t ON t.id = pt.type_id
	WHERE LOWER(m.name) = LOWER($1)
	GROUP BY p.id, p.name, s.name, pb.hp, pb.attack, pb.defense, pb.special_attack, pb.special_defense, pb.speed
	ORDER BY p.id
`

// ListPokemonByType returns all Pokémon having the named type, matched
// case-insensitively.
func (s *Store) ListPokemonByType(ctx context.Context, typeName string) ([]*api.PokemonSummary, error) {
	return s.listPokemonSummaries(ctx, pokemonByTypeQuery, typeName)
}

// ListPokemonByMove returns all Pokémon knowing the named move, matched
// case-insensitively.
func (s *Store) ListPokemonByMove(ctx context.Context, moveName string) ([]*api.PokemonSummary, error) {
	return s.listPokemonSummaries(ctx, pokemonByMoveQuery, moveName)
}

func (s *Store) listPokemonSummaries(ctx context.Context, query, name string) ([]*api.PokemonSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to filter pokemon: %w", err)
	}
	defer rows.Close()

	var result []*api.PokemonSummary
	for rows.Next() {
		var p api.PokemonSummary
		var typesJSON []byte
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Species, &typesJSON,
			&p.HP, &p.Attack, &p.Defense, &p.SpecialAttack, &p.SpecialDefense, &p.Speed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		if err := json.Unmarshal(typesJSON, &p.Types); err != nil {
			return nil, fmt.Errorf("failed to decode types: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pokemon: %w", err)
	}
	return result, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
