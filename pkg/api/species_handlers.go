package api

import (
	"errors"
	"net/http"

	"github.com/ericlantz/pokedex-api/pkg/httputil"
)

// listSpecies handles GET /species
func (s *Server) listSpecies(w http.ResponseWriter, r *http.Request) {
	species, err := s.storage.ListSpecies(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list species")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if species == nil {
		species = []*Species{}
	}
	httputil.WriteSuccess(w, species)
}

// getSpecies handles GET /species/{id}
func (s *Server) getSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	species, err := s.storage.GetSpecies(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "species not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to get species")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, species)
}

// createSpecies handles POST /pokemon/species
func (s *Server) createSpecies(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SpeciesName string `json:"species_name"`
	}
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}
	if !httputil.RequireNonEmpty(w, in.SpeciesName, "species_name") {
		return
	}

	id, err := s.storage.CreateSpecies(r.Context(), in.SpeciesName)
	if err != nil {
		s.logger.WithError(err).WithField("name", in.SpeciesName).Error("failed to create species")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteCreated(w, httputil.MessageResponse{Message: "Species added successfully!", ID: id})
}

// updateSpecies handles PUT /species/{id}
func (s *Server) updateSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}
	var in struct {
		Name string `json:"name"`
	}
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}
	if !httputil.RequireNonEmpty(w, in.Name, "name") {
		return
	}

	err := s.storage.UpdateSpecies(r.Context(), id, in.Name)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "species not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to update species")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Species updated successfully!"})
}

// deleteSpecies handles DELETE /species/{id}
func (s *Server) deleteSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	err := s.storage.DeleteSpecies(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "species not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete species")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Species deleted successfully!"})
}
