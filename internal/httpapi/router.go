// Package httpapi exposes the delimit pipeline over HTTP so browser
// frontends and scripts can share the exact formatting logic the CLI uses.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/listforge/delimit"
	"github.com/listforge/delimit/internal/config"
	"github.com/listforge/delimit/internal/preset"
)

type Dependencies struct {
	Config  config.Config
	Presets *preset.Store
	Logger  *slog.Logger
}

type router struct {
	deps Dependencies
}

func NewRouter(deps Dependencies) http.Handler {
	rt := &router{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.handleHealth)
	mux.HandleFunc("/api/v1/info", rt.handleInfo)
	mux.HandleFunc("/api/v1/format", rt.handleFormat)
	mux.HandleFunc("/api/v1/presets", rt.handlePresets)
	return mux
}

func (r *router) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *router) handleInfo(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":       "delimit",
		"wrappers":   delimit.Wrappers(),
		"delimiters": delimit.Delimiters(),
		"cases":      delimit.CaseModes(),
	})
}

// formatRequest carries raw text plus option aliases. Pointer fields
// distinguish "not sent" from explicit values, so omitted fields fall back
// to the preset or the server defaults.
type formatRequest struct {
	Text            string  `json:"text"`
	Preset          string  `json:"preset,omitempty"`
	Wrap            *string `json:"wrap,omitempty"`
	Delimiter       *string `json:"delimiter,omitempty"`
	CustomDelimiter *string `json:"custom_delimiter,omitempty"`
	Case            *string `json:"case,omitempty"`
	Dedupe          *bool   `json:"dedupe,omitempty"`
	Trim            *bool   `json:"trim,omitempty"`
}

type formatResponse struct {
	Output string `json:"output"`
	Count  int    `json:"count"`
}

func (r *router) handleFormat(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var payload formatRequest
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	opts, err := r.resolveOptions(payload)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, preset.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	values := delimit.Transform(delimit.Parse(payload.Text), opts)
	writeJSON(w, http.StatusOK, formatResponse{
		Output: delimit.Join(values, opts.Delimiter, opts.CustomDelimiter),
		Count:  len(values),
	})
}

func (r *router) handlePresets(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	names, err := r.deps.Presets.Names()
	if err != nil {
		r.deps.Logger.Error("list presets", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cannot read presets"})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"presets": names})
}

// resolveOptions layers request fields over the preset (when named) or the
// server defaults. Alias validation happens here; the pipeline only ever
// sees resolved enum values.
func (r *router) resolveOptions(payload formatRequest) (delimit.Options, error) {
	var (
		opts delimit.Options
		err  error
	)
	if payload.Preset != "" {
		opts, err = r.deps.Presets.Resolve(payload.Preset)
	} else {
		opts, err = r.deps.Config.Options()
	}
	if err != nil {
		return delimit.Options{}, err
	}

	if payload.Wrap != nil {
		if opts.Wrapper, err = delimit.ParseWrapper(*payload.Wrap); err != nil {
			return delimit.Options{}, err
		}
	}
	if payload.Delimiter != nil {
		if opts.Delimiter, err = delimit.ParseDelimiter(*payload.Delimiter); err != nil {
			return delimit.Options{}, err
		}
	}
	if payload.CustomDelimiter != nil {
		opts.CustomDelimiter = *payload.CustomDelimiter
	}
	if payload.Case != nil {
		if opts.Case, err = delimit.ParseCaseMode(*payload.Case); err != nil {
			return delimit.Options{}, err
		}
	}
	if payload.Dedupe != nil {
		opts.Dedupe = *payload.Dedupe
	}
	if payload.Trim != nil {
		opts.Trim = *payload.Trim
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
