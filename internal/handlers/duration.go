package handlers

import (
	"errors"
	"net/http"

	"sagarneeli.dev/internal/dates"
)

// DurationResponse is the body of GET /api/duration
type DurationResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	dates.Duration
	Text string `json:"text"`
}

// DurationHandler computes elapsed time between two dates
type DurationHandler struct {
	calc dates.Calculator
}

// NewDurationHandler creates a new DurationHandler
func NewDurationHandler(calc dates.Calculator) *DurationHandler {
	return &DurationHandler{calc: calc}
}

// GetDuration handles GET /api/duration?start=...&end=... An empty end means today.
func (h *DurationHandler) GetDuration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startText, endText := q.Get("start"), q.Get("end")

	start, err := dates.Parse(startText)
	if err != nil {
		respondDateError(w, "start", err)
		return
	}

	end := h.calc.Today()
	if endText != "" {
		if end, err = dates.Parse(endText); err != nil {
			respondDateError(w, "end", err)
			return
		}
	}

	d := h.calc.Duration(start, &end)
	respondJSON(w, http.StatusOK, DurationResponse{
		Start:    start.String(),
		End:      end.String(),
		Duration: d,
		Text:     dates.FormatDuration(d),
	})
}

func respondDateError(w http.ResponseWriter, param string, err error) {
	var perr *dates.ParseError
	if errors.As(err, &perr) {
		respondError(w, http.StatusBadRequest, "invalid "+param+" date: "+perr.Input)
		return
	}
	respondError(w, http.StatusBadRequest, "invalid "+param+" date")
}
