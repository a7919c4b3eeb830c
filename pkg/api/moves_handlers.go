package api

import (
	"errors"
	"net/http"

	"github.com/ericlantz/pokedex-api/pkg/httputil"
)

// listMoves handles GET /moves
func (s *Server) listMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := s.storage.ListMoves(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list moves")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	if moves == nil {
		moves = []*Move{}
	}
	httputil.WriteSuccess(w, moves)
}

// getMove handles GET /moves/{id}
func (s *Server) getMove(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	move, err := s.storage.GetMove(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "move not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to get move")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, move)
}

// createMove handles POST /moves
func (s *Server) createMove(w http.ResponseWriter, r *http.Request) {
	var in MoveInput
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}
	if !httputil.RequireNonEmpty(w, in.Name, "name") {
		return
	}
	if !httputil.RequirePositive(w, in.TypesID, "types_id") {
		return
	}

	id, err := s.storage.CreateMove(r.Context(), &in)
	if err != nil {
		s.logger.WithError(err).WithField("name", in.Name).Error("failed to create move")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteCreated(w, httputil.MessageResponse{Message: "Move added successfully!", ID: id})
}

// updateMove handles PUT /moves/{id}
func (s *Server) updateMove(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}
	var in MoveInput
	if !httputil.ParseJSONOrError(w, r, &in) {
		return
	}

	err := s.storage.UpdateMove(r.Context(), id, &in)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "move not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to update move")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Move updated successfully!"})
}

// deleteMove handles DELETE /moves/{id}
func (s *Server) deleteMove(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParsePathInt64OrError(w, r, "id")
	if !ok {
		return
	}

	err := s.storage.DeleteMove(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		httputil.WriteNotFoundError(w, "move not found")
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete move")
		httputil.WriteInternalError(w, errInternal)
		return
	}
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: "Move deleted successfully!"})
}
