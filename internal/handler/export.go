// export.go implements GET /events/export.
// Returns all trip events as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).

package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"event_id", "type", "destination", "date_from", "date_to",
	"base_price", "offers", "offers_total",
}

// ExportRow is the JSON shape of one exported trip event.
type ExportRow struct {
	EventID     int       `json:"event_id"`
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	BasePrice   *int      `json:"base_price"`
	Offers      []string  `json:"offers"`
	OffersTotal int       `json:"offers_total"`
}

// GetExport handles GET /events/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domainRowToExportRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes domain rows as CSV.
// Offers within a row are pipe-separated ("|") to keep each event on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	buf.WriteTo(w)
}

func domainRowToExportRow(r domain.ExportRow) ExportRow {
	return ExportRow{
		EventID:     r.EventID,
		Type:        string(r.Type),
		Destination: r.Destination,
		DateFrom:    r.DateFrom.UTC(),
		DateTo:      r.DateTo.UTC(),
		BasePrice:   r.BasePrice,
		Offers:      r.Offers,
		OffersTotal: r.OffersTotal,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// A nil price is encoded as an empty string.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	price := ""
	if r.BasePrice != nil {
		price = strconv.Itoa(*r.BasePrice)
	}
	return []string{
		strconv.Itoa(r.EventID),
		string(r.Type),
		r.Destination,
		r.DateFrom.UTC().Format(time.RFC3339),
		r.DateTo.UTC().Format(time.RFC3339),
		price,
		strings.Join(r.Offers, "|"),
		strconv.Itoa(r.OffersTotal),
	}
}
