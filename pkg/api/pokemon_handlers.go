package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/ericlantz/pokedex-api/pkg/httputil"
)

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to temporary files.
const maxUploadMemory = 10 << 20 // 10 MiB

// listPokemon handles GET /pokemon
func (s *Server) listPokemon(w http.ResponseWriter, r *http.Request) {
	pokemon, err := s.storage.ListPokemon(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list pokemon")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if pokemon == nil {
		pokemon = []*Pokemon{}
	}
	httputil.WriteSuccess(w, pokemon)
}

// getPokemon handles GET /pokemon/{id}
func (s *Server) getPokemon(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	pokemon, err := s.storage.GetPokemon(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "pokemon not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to get pokemon")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, pokemon)
}

// createPokemon handles POST /pokemon. The body is either plain JSON or a
// multipart form carrying a "pokemon" JSON field and an optional "image"
// file. The image uploads to object storage before any database write; an
// upload failure aborts the whole creation.
func (s *Server) createPokemon(w http.ResponseWriter, r *http.Request) {
	var in PokemonInput
	imageURL, ok := s.parsePokemonBody(w, r, &in)
	if !ok {
		return
	}

	if !httputil.RequireNonEmpty(w, in.Name, "name") {
		return
	}
	if !httputil.RequirePositive(w, in.SpeciesID, "species_id") {
		return
	}

	id, err := s.storage.CreatePokemon(r.Context(), &in, imageURL)
	if err != nil {
		s.logger.WithError(err).WithField("name", in.Name).Error("failed to create pokemon")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteCreated(w, httputil.MessageResponse{Message: "Pokemon added successfully!", ID: id})
}

// updatePokemon handles PUT /pokemon/{id} and PUT /pokemon with the id in the
// body. Scalar fields present in the payload are overwritten; a supplied
// moves or type list fully replaces the existing set.
func (s *Server) updatePokemon(w http.ResponseWriter, r *http.Request) {
	var upd PokemonUpdate
	imageURL, ok := s.parsePokemonBody(w, r, &upd)
	if !ok {
		return
	}
	if imageURL != "" {
		upd.ImageURL = &imageURL
	}

	id := upd.ID
	if v, ok := httputil.GetPathVars(r)["id"]; ok && v != "" {
		pathID, ok := httputil.ParsePathInt64OrError(w, r, "id")
		if !ok {
			return
		}
		id = pathID
	}
	if id == 0 {
		httputil.WriteValidationError(w, "id is required")
		return
	}

	err := s.storage.UpdatePokemon(r.Context(), id, &upd)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "pokemon not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to update pokemon")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Pokemon updated successfully!"})
}

// deletePokemon handles DELETE /pokemon/{id}
func (s *Server) deletePokemon(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	err := s.storage.DeletePokemon(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "pokemon not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete pokemon")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Pokemon deleted successfully!"})
}

// listPokemonByType handles GET /pokemon/types/{type}
func (s *Server) listPokemonByType(w http.ResponseWriter, r *http.Request) {
	name, ok := httputil.ParsePathStringOrError(w, r, "type")
	if !ok {
		return
	}

	pokemon, err := s.storage.ListPokemonByType(r.Context(), name)
	if err != nil {
		s.logger.WithError(err).WithField("type", name).Error("failed to list pokemon by type")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if len(pokemon) == 0 {
		httputil.WriteNotFoundError(w, "no pokemon found with type: "+name)
		return
	}
	httputil.WriteSuccess(w, pokemon)
}

// listPokemonByMove handles GET /pokemon/moves/{move}
func (s *Server) listPokemonByMove(w http.ResponseWriter, r *http.Request) {
	name, ok := httputil.ParsePathStringOrError(w, r, "move")
	if !ok {
		return
	}

	pokemon, err := s.storage.ListPokemonByMove(r.Context(), name)
	if err != nil {
		s.logger.WithError(err).WithField("move", name).Error("failed to list pokemon by move")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if len(pokemon) == 0 {
		httputil.WriteNotFoundError(w, "no pokemon found with move: "+name)
		return
	}
	httputil.WriteSuccess(w, pokemon)
}

// parsePokemonBody decodes a Pokémon payload from either a JSON body or a
// multipart form, uploading the optional image file first. It returns the
// stored image URL ("" when no file was supplied) and whether parsing
// succeeded; on failure the error response has already been written.
func (s *Server) parsePokemonBody(w http.ResponseWriter, r *http.Request, dest interface{}) (string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if !httputil.ParseJSONOrError(w, r, dest) {
			return "", false
		}
		return "", true
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httputil.WriteValidationError(w, "invalid multipart form")
		return "", false
	}
	// Temporary files backing large parts are removed on every exit path.
	defer r.MultipartForm.RemoveAll()

	payload := r.FormValue("pokemon")
	if payload == "" {
		httputil.WriteValidationError(w, "pokemon field is required")
		return "", false
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		httputil.WriteValidationError(w, "invalid pokemon payload: "+err.Error())
		return "", false
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", true
	}
	if err != nil {
		httputil.WriteValidationError(w, "invalid image upload")
		return "", false
	}
	defer file.Close()

	if s.images == nil {
		httputil.WriteValidationError(w, "image uploads are not configured")
		return "", false
	}

	url, err := s.images.Upload(r.Context(), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		s.logger.WithError(err).WithField("filename", header.Filename).Error("failed to upload image")
		httputil.WriteErrorMessage(w, http.StatusInternalServerError, "failed to store image")
		return "", false
	}
	return url, true
}
