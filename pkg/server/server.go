// Package server exposes the layout pipeline and project store over HTTP.
//
// # Endpoints
//
//	POST   /api/layout          Compute a layout for a posted diagram
//	POST   /api/render          Render a posted diagram to svg/png/dot/json
//	GET    /api/projects        List stored projects
//	POST   /api/projects        Create a project
//	GET    /api/projects/{id}   Fetch a project
//	PUT    /api/projects/{id}   Update a project's diagram
//	DELETE /api/projects/{id}   Delete a project
//	GET    /healthz             Liveness probe
//
// All request and response bodies are JSON except /api/render, which
// responds with the raw artifact bytes and a matching Content-Type.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/flowdeck/flowdeck/pkg/cache"
	"github.com/flowdeck/flowdeck/pkg/diagram"
	flowerrors "github.com/flowdeck/flowdeck/pkg/errors"
	"github.com/flowdeck/flowdeck/pkg/pipeline"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// maxBodyBytes bounds request bodies; diagrams are small documents.
const maxBodyBytes = 4 << 20

// Server wires the pipeline runner and project store into an HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. The store may be nil, in which case the project
// endpoints respond with 503.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Post("/", s.handleCreateProject)
			r.Get("/{id}", s.handleGetProject)
			r.Put("/{id}", s.handleUpdateProject)
			r.Delete("/{id}", s.handleDeleteProject)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// layoutRequest is the shared request body for /api/layout and /api/render.
type layoutRequest struct {
	Diagram diagram.Diagram  `json:"diagram"`
	Options pipeline.Options `json:"options"`
}

// layoutResponse is the /api/layout response body.
type layoutResponse struct {
	Diagram     diagram.Diagram    `json:"diagram"`
	Layers      [][]string         `json:"layers"`
	Crossings   int                `json:"crossings"`
	DiagramHash string             `json:"diagram_hash"`
	CacheInfo   pipeline.CacheInfo `json:"cache_info"`
}

// prepare validates and normalizes a layout request in place. The
// diagram's orientation becomes the layout orientation unless the options
// override it.
func (s *Server) prepare(req *layoutRequest) error {
	if req.Diagram.Orientation == "" {
		req.Diagram.Orientation = diagram.Horizontal
	}
	if !req.Diagram.Orientation.Valid() {
		return flowerrors.New(flowerrors.ErrCodeInvalidOrientation,
			"invalid orientation: %q", req.Diagram.Orientation)
	}
	if req.Options.Orientation == "" {
		req.Options.Orientation = req.Diagram.Orientation
	}
	diagram.EnsureIDs(&req.Diagram)
	return nil
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.prepare(&req); err != nil {
		s.writeError(w, r, err)
		return
	}

	laid, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), req.Diagram, req.Options)
	if err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeInvalidInput, err, "layout failed"))
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Diagram:     laid.Diagram,
		Layers:      laid.Layers,
		Crossings:   laid.Crossings,
		DiagramHash: diagramHash(req.Diagram),
		CacheInfo:   pipeline.CacheInfo{LayoutHit: hit},
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.prepare(&req); err != nil {
		s.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeInvalidFormat, err, "invalid format"))
		return
	}
	req.Options.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), req.Diagram, req.Options)
	if err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeInternal, err, "render failed"))
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/json"
	}
}

// decode reads a JSON body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, r, flowerrors.Wrap(flowerrors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}

// errorResponse is the JSON error envelope for all endpoints.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := flowerrors.GetCode(err)
	status := statusForCode(code)
	if errors.Is(err, store.ErrNotFound) {
		code, status = flowerrors.ErrCodeProjectNotFound, http.StatusNotFound
	}
	if code == "" {
		code = flowerrors.ErrCodeInternal
	}

	if status >= 500 {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = flowerrors.UserMessage(err)
	writeJSON(w, status, resp)
}

func statusForCode(code flowerrors.Code) int {
	switch code {
	case flowerrors.ErrCodeInvalidInput, flowerrors.ErrCodeInvalidDiagram,
		flowerrors.ErrCodeInvalidOrientation, flowerrors.ErrCodeInvalidFormat,
		flowerrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case flowerrors.ErrCodeNotFound, flowerrors.ErrCodeProjectNotFound,
		flowerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case flowerrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// diagramHash mirrors the pipeline's layout cache key component so API
// clients can correlate responses with cache entries.
func diagramHash(d diagram.Diagram) string {
	data, err := diagram.Marshal(d)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
