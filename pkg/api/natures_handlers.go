package api

import (
	"errors"
	"net/http"

	"github.com/ericlantz/pokedex-api/pkg/httputil"
)

// listNatures handles GET /natures
func (s *Server) listNatures(w http.ResponseWriter, r *http.Request) {
	natures, err := s.storage.ListNatures(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list natures")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if natures == nil {
		natures = []*Nature{}
	}
	httputil.WriteSuccess(w, natures)
}

// getNature handles GET /natures/{id}
func (s *Server) getNature(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	nature, err := s.storage.GetNature(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "nature not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to get nature")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, nature)
}

// createNature handles POST /natures
func (s *Server) createNature(w http.ResponseWriter, r *http.Request) {
	var in NatureInput
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}
	if !httputil.RequireNonEmpty(w, in.Name, "name") {
		return
	}

	id, err := s.storage.CreateNature(r.Context(), &in)
	if err != nil {
		s.logger.WithError(err).WithField("name", in.Name).Error("failed to create nature")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteCreated(w, httputil.MessageResponse{Message: "Nature added successfully!", ID: id})
}

// updateNature handles PUT /natures/{id}
func (s *Server) updateNature(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}
	var in NatureInput
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}

	err := s.storage.UpdateNature(r.Context(), id, &in)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "nature not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to update nature")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Nature updated successfully!"})
}

// deleteNature handles DELETE /natures/{id}
func (s *Server) deleteNature(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	err := s.storage.DeleteNature(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "nature not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete nature")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Nature deleted successfully!"})
}
