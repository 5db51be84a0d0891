package server

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ontodot/pkg/buildinfo"
	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/ontology"
	"github.com/matzehuels/ontodot/pkg/pipeline"
	"github.com/matzehuels/ontodot/pkg/render/dot"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Info: buildinfo.Get()})
}

// Dot handles POST /api/dot.
func (s *Server) Dot(w http.ResponseWriter, r *http.Request) {
	res, ok := s.transform(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", dot.FormatDOT.ContentType())
	w.Header().Set("X-Diagram-Edges", strconv.Itoa(res.Stats.Edges))
	w.Write([]byte(res.DOT))
}

// Render handles POST /api/render/{format}.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	format, err := dot.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, ok := s.transform(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.opts.RenderTimeout)
	defer cancel()

	data, hit, err := s.runner.Render(ctx, res.DOT, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Write(data)
}

// transform parses the request into a graph and configuration and runs the
// pipeline. On failure it writes the error response and returns false.
func (s *Server) transform(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	cfg, prefixes, err := s.requestConfig(r)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}

	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	g, err := ontology.Load(body, ontology.WithPrefixes(prefixes))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}

	res, err := s.runner.Transform(r.Context(), g, cfg)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return res, true
}

// requestConfig applies query overrides to the base configuration.
func (s *Server) requestConfig(r *http.Request) (config.Config, map[string]string, error) {
	cfg := s.opts.Base
	q := r.URL.Query()

	if v := q.Get("names"); v != "" {
		mode, err := config.ParseNameMode(v)
		if err != nil {
			return cfg, nil, err
		}
		cfg.NodeNames = mode
	}
	if v := q.Get("synthesize"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, nil, errors.New(errors.ErrCodeInvalidConfig, "invalid synthesize value %q", v)
		}
		cfg.Synthesize = b
	}
	if v := q.Get("rankdir"); v != "" {
		cfg.RankDir = strings.ToUpper(v)
	}

	prefixes := ontology.StandardPrefixes()
	maps.Copy(prefixes, cfg.Prefixes)
	for _, decl := range q["prefix"] {
		p, ns, ok := strings.Cut(decl, "=")
		if !ok {
			return cfg, nil, errors.New(errors.ErrCodeInvalidConfig, "prefix %q: want p=namespace", decl)
		}
		if err := errors.ValidatePrefix(p); err != nil {
			return cfg, nil, err
		}
		if err := errors.ValidateNamespace(ns); err != nil {
			return cfg, nil, err
		}
		prefixes[p] = ns
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, prefixes, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsFatal(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrCodeTimeout):
		return http.StatusGatewayTimeout
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
