package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/pipeline"
	"github.com/iconclip/iconclip/pkg/render"
)

// packInfo is one entry in the pack listing.
type packInfo struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Convention string `json:"convention"`
	Icons      int    `json:"icons"`
}

func (s *Server) handleListPacks(w http.ResponseWriter, r *http.Request) {
	packs := s.runner.Catalog.Packs()
	out := make([]packInfo, 0, len(packs))
	for _, p := range packs {
		out = append(out, packInfo{
			Name:       p.Name(),
			Title:      p.Manifest.Title,
			Convention: p.Convention().String(),
			Icons:      p.Len(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"packs": out})
}

func (s *Server) handleListIcons(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "pack")
	p, err := s.runner.Catalog.Pack(name)
	if err != nil {
		writeError(w, err)
		return
	}

	icons := p.Icons()
	if q := r.URL.Query().Get("q"); q != "" {
		filtered := icons[:0]
		for _, ic := range icons {
			if containsFold(ic, q) {
				filtered = append(filtered, ic)
			}
		}
		icons = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{"pack": name, "icons": icons})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.RenderArtifacts(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	format := opts.Formats[0]
	if result.CacheInfo.ArtifactHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	switch format {
	case pipeline.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions builds pipeline options from path and query parameters.
// Style ranges are clamped downstream; only unparseable values fail here.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	style := render.DefaultStyle()

	if v := q.Get("color"); v != "" {
		style.Color = v
	}
	if v := q.Get("background"); v != "" {
		style.Background = v
	}
	var err error
	if style.Padding, err = floatParam(q.Get("padding"), "padding"); err != nil {
		return pipeline.Options{}, err
	}
	if style.CornerRadius, err = floatParam(q.Get("radius"), "radius"); err != nil {
		return pipeline.Options{}, err
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidStyle, "size is not an integer: %q", v)
		}
		style.SizePx = size
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}

	return pipeline.Options{
		Pack:    chi.URLParam(r, "pack"),
		Icon:    chi.URLParam(r, "icon"),
		Style:   style,
		Formats: []string{format},
		Refresh: q.Get("refresh") == "true",
	}, nil
}

func floatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "%s is not a number: %q", name, v)
	}
	return f, nil
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// statusFor maps error codes to HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidRef, errors.ErrCodeInvalidPack:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePackNotFound, errors.ErrCodeIconNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMalformedIcon:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, statusFor(code), body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// containsFold reports whether s contains substr, case-insensitively.
// Icon names are already lowercase; this folds the query side.
func containsFold(s, substr string) bool {
	return strings.Contains(s, strings.ToLower(substr))
}
