package handler

import (
	"net/http"
	"time"

	"github.com/ganhospro/backend/internal/domain"
)

// GetSummary handles GET /reports/summary?period=weekly|monthly|annual.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	period := domain.Period(r.URL.Query().Get("period"))
	if period == "" {
		requestError(w, "period query parameter is required")
		return
	}

	buckets, err := s.reports.Summary(r.Context(), period)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

// seriesPoint renders a metric point with the date as a calendar string.
type seriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// GetSeries handles GET /reports/series?start=&end=&metric=.
// Start and end are inclusive "2006-01-02" dates.
func (s *Server) GetSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := time.Parse("2006-01-02", q.Get("start"))
	if err != nil {
		requestError(w, "start must be formatted as YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", q.Get("end"))
	if err != nil {
		requestError(w, "end must be formatted as YYYY-MM-DD")
		return
	}

	points, err := s.reports.Series(r.Context(), start, end, domain.Metric(q.Get("metric")))
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]seriesPoint, len(points))
	for i, p := range points {
		data[i] = seriesPoint{Date: p.Date.Format("2006-01-02"), Value: p.Value}
	}
	writeJSON(w, http.StatusOK, data)
}

// PostInsights handles POST /insights.
// The response wraps the generated prose unchanged.
func (s *Server) PostInsights(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.insights.Analyze(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
