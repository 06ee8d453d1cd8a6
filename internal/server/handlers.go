package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matzehuels/hallway/pkg/buildinfo"
	"github.com/matzehuels/hallway/pkg/errors"
	"github.com/matzehuels/hallway/pkg/io"
	"github.com/matzehuels/hallway/pkg/pipeline"
)

// validateRequest is the body of POST /api/validate.
type validateRequest struct {
	Plan *io.Floor `json:"plan"`
}

// routeRequest is the body of POST /api/route and POST /api/render.
type routeRequest struct {
	Plan     *io.Floor `json:"plan"`
	Start    string    `json:"start,omitempty"`
	Visit    []string  `json:"visit,omitempty"`
	Format   string    `json:"format,omitempty"`
	Detailed bool      `json:"detailed,omitempty"`
}

type validateResponse struct {
	Valid   bool        `json:"valid"`
	Defects []errorBody `json:"defects"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatDOT: "text/vnd.graphviz; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Plan == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing plan"))
		return
	}

	resp := validateResponse{Valid: true, Defects: []errorBody{}}
	for _, err := range req.Plan.ToPlan().Check() {
		resp.Valid = false
		resp.Defects = append(resp.Defects, toErrorBody(errors.Classify(err)))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Route(r.Context(), req.Plan.ToPlan(), pipeline.Options{
		Start: req.Start,
		Visit: req.Visit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo.RouteHit))
	writeJSON(w, http.StatusOK, res.Itinerary)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	format := req.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	res, err := s.runner.Render(r.Context(), req.Plan.ToPlan(), pipeline.Options{
		Start:    req.Start,
		Visit:    req.Visit,
		Format:   format,
		Detailed: req.Detailed,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo.RenderHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifact)
}

func (s *Server) decodeRouteRequest(w http.ResponseWriter, r *http.Request) (routeRequest, bool) {
	var req routeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return req, false
	}
	if req.Plan == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing plan"))
		return req, false
	}
	return req, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body: %v", err)
	}
	return nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

func notFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"error":{"code":%q}}`, errors.ErrCodeInternal)
	}
}
