package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/acrozela/billbook/internal/calculator"
	"github.com/acrozela/billbook/internal/geo"
	"github.com/acrozela/billbook/internal/render"
)

func (s *Server) getStats(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.store.Stats())
}

// backup streams the full application state as a downloadable JSON file.
func (s *Server) backup(w http.ResponseWriter, _ *http.Request) {
	name := fmt.Sprintf("billbook-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.store.Snapshot()); err != nil {
		slog.Error("Failed to encode backup", "error", err)
	}
}

// printInvoice renders the printable tax invoice as an HTML page.
func (s *Server) printInvoice(w http.ResponseWriter, r *http.Request) {
	invoice := s.store.GetInvoice(chi.URLParam(r, "id"))
	if invoice == nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "invoice not found"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Invoice(w, invoice, s.store.Settings()); err != nil {
		slog.Error("Failed to render invoice", "id", invoice.ID, "error", err)
	}
}

func (s *Server) googleConnect(w http.ResponseWriter, _ *http.Request) {
	connected := s.connector.Connect()
	respond(w, http.StatusOK, map[string]bool{"connected": connected})
}

func (s *Server) googleStatus(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]bool{"connected": s.connector.Connected()})
}

func (s *Server) currentLocation(w http.ResponseWriter, r *http.Request) {
	coords, err := s.locator.Current(r.Context())
	if err != nil {
		if errors.Is(err, geo.ErrUnavailable) {
			respond(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"pin": geo.Pin(coords)})
}

type gstRequest struct {
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
	Mode   string  `json:"mode"`
}

type gstResponse struct {
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

// gstTool exposes the standalone GST calculator.
func (s *Server) gstTool(w http.ResponseWriter, r *http.Request) {
	var req gstRequest
	if err := decode(r, &req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	mode, err := calculator.ParseGSTMode(req.Mode)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	breakdown, err := calculator.GST(req.Amount, req.Rate, mode)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, gstResponse{
		TaxAmount:   breakdown.TaxAmount,
		TotalAmount: breakdown.TotalAmount,
	})
}
