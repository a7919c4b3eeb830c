package api

import (
	"errors"
	"net/http"

	"github.com/ericlantz/pokedex-api/pkg/httputil"
)

// listTypes handles GET /types
func (s *Server) listTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.storage.ListTypes(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list types")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if types == nil {
		types = []*Type{}
	}
	httputil.WriteSuccess(w, types)
}

// getType handles GET /types/{id}; the detail view carries every
// effectiveness edge the type participates in.
func (s *Server) getType(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	detail, err := s.storage.GetType(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "type not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to get type")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, detail)
}

// createType handles POST /types. Listed strengths and weaknesses become
// directed effectiveness edges, inserted in the same transaction as the type.
func (s *Server) createType(w http.ResponseWriter, r *http.Request) {
	var in TypeInput
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}
	if !httputil.RequireNonEmpty(w, in.Name, "name") {
		return
	}

	id, err := s.storage.CreateType(r.Context(), &in)
	if err != nil {
		s.logger.WithError(err).WithField("name", in.Name).Error("failed to create type")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteCreated(w, httputil.MessageResponse{Message: "Type added successfully!", ID: id})
}

// updateType handles PUT /types/{id}
func (s *Server) updateType(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}
	var in TypeInput
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}

	err := s.storage.UpdateType(r.Context(), id, &in)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "type not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to update type")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Type updated successfully!"})
}

// deleteType handles DELETE /types/{id}
func (s *Server) deleteType(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	err := s.storage.DeleteType(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "type not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete type")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Type deleted successfully!"})
}
