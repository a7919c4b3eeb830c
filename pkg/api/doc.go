// Package api implements the Pokédex HTTP surface: one handler file per
// resource (Pokémon, moves, types, species, natures), a Storage interface
// backed by PostgreSQL, and an ImageStore interface backed by S3.
//
// Every failure is serialized as {"error": "..."} with 400 for validation
// problems, 404 for missing rows, and 500 for storage failures. Multi-table
// writes (Pokémon create/update/delete, type creation with effectiveness
// edges) are atomic: the Storage implementation commits or rolls back all
// statements as a unit.
package api
