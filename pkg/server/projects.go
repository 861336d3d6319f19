package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	flowerrors "github.com/flowdeck/flowdeck/pkg/errors"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// requireStore responds with 503 when no project store is configured.
func (s *Server) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if s.store == nil {
		var resp errorResponse
		resp.Error.Code = string(flowerrors.ErrCodeUnsupported)
		resp.Error.Message = "project storage is not configured"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return false
	}
	return true
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}

	projects, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeStore, err, "list projects"))
		return
	}
	if projects == nil {
		projects = []diagram.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// createProjectRequest is the POST /api/projects body.
type createProjectRequest struct {
	Name    string          `json:"name"`
	Diagram diagram.Diagram `json:"diagram"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}

	var req createProjectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := flowerrors.ValidateName(req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}
	diagram.EnsureIDs(&req.Diagram)

	p := store.NewProject(req.Name, req.Diagram)
	if err := s.store.Put(r.Context(), p); err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeStore, err, "store project"))
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}

	p, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// updateProjectRequest is the PUT /api/projects/{id} body.
type updateProjectRequest struct {
	Name    string          `json:"name,omitempty"`
	Diagram diagram.Diagram `json:"diagram"`
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}

	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req updateProjectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name != "" {
		if err := flowerrors.ValidateName(req.Name); err != nil {
			s.writeError(w, r, err)
			return
		}
		p.Name = req.Name
	}
	diagram.EnsureIDs(&req.Diagram)
	p.Diagram = req.Diagram

	if err := s.store.Put(r.Context(), p); err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeStore, err, "store project"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w, r) {
		return
	}

	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeStore, err, "delete project"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
