package api

import (
	"context"
	"io"
)

// BaseStats holds the six base stat values owned by exactly one Pokémon.
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// MoveRef is the shortened move projection embedded in Pokémon reads.
type MoveRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TypeRef is the shortened type projection embedded in Pokémon reads.
type TypeRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Pokemon is the aggregated read projection: species name joined in, moves and
// types collapsed to de-duplicated arrays, base stats flattened.
type Pokemon struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Species  string    `json:"species"`
	Moves    []MoveRef `json:"moves"`
	Types    []TypeRef `json:"type"`
	ImageURL string    `json:"image_url,omitempty"`
	BaseStats
}

// PokemonSummary is the projection returned by the type/move filter reads.
type PokemonSummary struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
	Types   []TypeRef `json:"types"`
	BaseStats
}

// PokemonInput is the write payload for creating a Pokémon.
type PokemonInput struct {
	Name      string    `json:"name"`
	SpeciesID int64     `json:"species_id"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	Stats     BaseStats `json:"stats"`
	Moves     []int64   `json:"moves"`
	Types     []int64   `json:"type"`
}

// PokemonUpdate is the partial write payload for updating a Pokémon. Nil
// fields are left untouched; a non-nil Moves or Types slice fully replaces the
// existing set, even when empty.
type PokemonUpdate struct {
	ID        int64      `json:"id,omitempty"`
	Name      *string    `json:"name"`
	SpeciesID *int64     `json:"species_id"`
	Height    *float64   `json:"height"`
	Weight    *float64   `json:"weight"`
	Stats     *BaseStats `json:"stats"`
	Moves     *[]int64   `json:"moves"`
	Types     *[]int64   `json:"type"`

	// ImageURL is populated by the handler after a successful upload; it is
	// never taken from the request body.
	ImageURL *string `json:"-"`
}

// Move is the list projection for moves.
type Move struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MoveDetail is the single-move projection with its type name joined in.
type MoveDetail struct {
	ID         int64  `json:"id"`
	MoveName   string `json:"move_name"`
	TypeName   string `json:"type_name"`
	Power      int    `json:"power"`
	Accuracy   int    `json:"accuracy"`
	PowerPoint int    `json:"power_point"`
}

// MoveInput is the write payload for moves.
type MoveInput struct {
	Name       string `json:"name"`
	TypesID    int64  `json:"types_id"`
	Power      int    `json:"power"`
	Accuracy   int    `json:"accuracy"`
	PowerPoint int    `json:"power_point"`
}

// Type is an elemental type.
type Type struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// EffectivenessEdge is a directed damage-multiplier relation between two
// types. A strength and the matching weakness are two separate rows.
type EffectivenessEdge struct {
	AttackingTypeID int64   `json:"attacking_type_id"`
	DefendingTypeID int64   `json:"defending_type_id"`
	Effectiveness   float64 `json:"effectiveness"`
}

// TypeDetail is the single-type projection including every effectiveness edge
// the type participates in, as attacker or defender.
type TypeDetail struct {
	Type
	Effectiveness []EffectivenessEdge `json:"effectiveness"`
}

// TypeInput is the write payload for types. Strengths become edges with the
// new type attacking the listed ids; weaknesses become edges with the listed
// ids attacking the new type.
type TypeInput struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Strengths  []int64 `json:"strengths"`
	Weaknesses []int64 `json:"weaknesses"`
}

// Species groups Pokémon under a shared name.
type Species struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Nature describes a stat-shifting personality.
type Nature struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	IncreasedStat string `json:"increased_stat"`
	DecreasedStat string `json:"decreased_stat"`
	Description   string `json:"description"`
}

// NatureInput is the write payload for natures.
type NatureInput struct {
	Name          string `json:"name"`
	IncreasedStat string `json:"increased_stat"`
	DecreasedStat string `json:"decreased_stat"`
	Description   string `json:"description"`
}

// Storage defines the persistence operations backing the API. All multi-table
// writes are atomic: either every statement commits or none do.
type Storage interface {
	ListPokemon(ctx context.Context) ([]*Pokemon, error)
	GetPokemon(ctx context.Context, id int64) (*Pokemon, error)
	CreatePokemon(ctx context.Context, in *PokemonInput, imageURL string) (int64, error)
	UpdatePokemon(ctx context.Context, id int64, upd *PokemonUpdate) error
	DeletePokemon(ctx context.Context, id int64) error
	ListPokemonByType(ctx context.Context, typeName string) ([]*PokemonSummary, error)
	ListPokemonByMove(ctx context.Context, moveName string) ([]*PokemonSummary, error)

	ListMoves(ctx context.Context) ([]*Move, error)
	GetMove(ctx context.Context, id int64) (*MoveDetail, error)
	CreateMove(ctx context.Context, in *MoveInput) (int64, error)
	UpdateMove(ctx context.Context, id int64, in *MoveInput) error
	DeleteMove(ctx context.Context, id int64) error

	ListTypes(ctx context.Context) ([]*Type, error)
	GetType(ctx context.Context, id int64) (*TypeDetail, error)
	CreateType(ctx context.Context, in *TypeInput) (int64, error)
	UpdateType(ctx context.Context, id int64, in *TypeInput) error
	DeleteType(ctx context.Context, id int64) error

	ListSpecies(ctx context.Context) ([]*Species, error)
	GetSpecies(ctx context.Context, id int64) (*Species, error)
	CreateSpecies(ctx context.Context, name string) (int64, error)
	UpdateSpecies(ctx context.Context, id int64, name string) error
	DeleteSpecies(ctx context.Context, id int64) error

	ListNatures(ctx context.Context) ([]*Nature, error)
	GetNature(ctx context.Context, id int64) (*Nature, error)
	CreateNature(ctx context.Context, in *NatureInput) (int64, error)
	UpdateNature(ctx context.Context, id int64, in *NatureInput) error
	DeleteNature(ctx context.Context, id int64) error

	HealthCheck(ctx context.Context) error
}

// ImageStore uploads binary content to object storage and returns a publicly
// resolvable URL for it.
type ImageStore interface {
	Upload(ctx context.Context, filename string, content io.Reader, contentType string) (string, error)
}
