package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/valuin/domikado/internal/store"
	"github.com/valuin/domikado/pkg/allocation"
	"github.com/valuin/domikado/pkg/indicator"
	"github.com/valuin/domikado/pkg/province"
	"github.com/valuin/domikado/pkg/requirements"
	"github.com/valuin/domikado/pkg/timeline"
	"github.com/valuin/domikado/pkg/validation"
)

const provinceCacheControl = "public, max-age=300"

type indicatorInfo struct {
	ID      indicator.Kind `json:"id"`
	Label   string         `json:"label"`
	Target  string         `json:"target"`
	Default bool           `json:"default"`
}

// provinceSummary is one row of the province overview map.
type provinceSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	GapScore       float64 `json:"gap_score"`
	StoredGapScore float64 `json:"stored_gap_score,omitempty"`
	Severity       string  `json:"severity"`
	Color          string  `json:"color"`
}

type calculateRequest struct {
	Province   string               `json:"province"`
	Statistics *province.Statistics `json:"statistics"`
	Indicators []string             `json:"indicators"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndicators(w http.ResponseWriter, _ *http.Request) {
	all := indicator.All()
	out := make([]indicatorInfo, 0, len(all))
	for _, k := range all {
		out = append(out, indicatorInfo{
			ID:      k,
			Label:   indicator.Label(k),
			Target:  indicator.Target(k),
			Default: indicator.IsDefault(k),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := s.store.List(r.Context())
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	out := make([]provinceSummary, 0, len(provinces))
	for _, p := range provinces {
		res := allocation.Evaluate(p, indicator.DefaultSelection(), s.policy)
		out = append(out, provinceSummary{
			ID:             p.ProvinceID,
			Name:           p.Name(),
			Slug:           p.Slug(),
			GapScore:       res.CombinedGapScore,
			StoredGapScore: p.GapScore,
			Severity:       res.Severity.Status,
			Color:          allocation.MapColor(res.CombinedGapScore / 100),
		})
	}
	w.Header().Set("Cache-Control", provinceCacheControl)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProvince(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", provinceCacheControl)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCalculation(w http.ResponseWriter, r *http.Request) {
	selected := indicator.DefaultSelection()
	if q := r.URL.Query(); q.Has("indicators") {
		kinds, err := indicator.ParseList(q.Get("indicators"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		selected = kinds
	}

	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, allocation.Evaluate(p, selected, s.policy))
}

func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, requirements.Analyze(p))
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateStatistics(p))
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	selected := indicator.DefaultSelection()
	if req.Indicators != nil {
		selected = make([]indicator.Kind, 0, len(req.Indicators))
		for _, id := range req.Indicators {
			k, err := indicator.Parse(id)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			selected = append(selected, k)
		}
	}

	var p *province.Statistics
	switch {
	case req.Statistics != nil:
		p = req.Statistics
		province.Normalize(p)
	case req.Province != "":
		var err error
		p, err = s.store.Get(r.Context(), req.Province)
		if err != nil {
			s.storeError(w, r, err)
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "either province or statistics is required")
		return
	}

	writeJSON(w, http.StatusOK, allocation.Evaluate(p, selected, s.policy))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(mux.Vars(r)["month"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "month must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, timeline.Narrate(month))
}

func (s *Server) handleIntensity(w http.ResponseWriter, r *http.Request) {
	quarter, err := strconv.Atoi(mux.Vars(r)["quarter"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "quarter must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, timeline.Intensity(quarter))
}

// lookup resolves the {key} route variable, writing the error response
// itself when the province cannot be loaded.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*province.Statistics, bool) {
	p, err := s.store.Get(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		s.storeError(w, r, err)
		return nil, false
	}
	return p, true
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if eris.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("store error")
	writeError(w, http.StatusInternalServerError, "failed to load province data")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
