// Package handler — export.go implements GET /export.
// Returns the record history as a flat table with net profit recomputed
// at the current cost-per-km rate.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/ganhospro/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"date", "total_earnings", "km_driven", "hours_worked",
	"additional_costs", "net_profit",
}

// GetExport handles GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.reports.ExportRows(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeCSV encodes rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// Writes to a bytes.Buffer cannot fail.
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(csvRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ganhos.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// csvRecord encodes one export row as a flat string slice.
// Monetary columns keep two decimals; distance and hours use the shortest
// exact representation.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.Date,
		strconv.FormatFloat(r.TotalEarnings, 'f', 2, 64),
		strconv.FormatFloat(r.KmDriven, 'f', -1, 64),
		strconv.FormatFloat(r.HoursWorked, 'f', -1, 64),
		strconv.FormatFloat(r.AdditionalCosts, 'f', 2, 64),
		strconv.FormatFloat(r.NetProfit, 'f', 2, 64),
	}
}
