// Package api exposes the state store over HTTP. It is the UI consumer
// contract: thin handlers that decode forms, call store operations and
// return JSON; all business rules live in the store and calculator.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acrozela/billbook/internal/geo"
	"github.com/acrozela/billbook/internal/google"
	"github.com/acrozela/billbook/internal/store"
)

// Server bundles the store and external collaborators behind the routes.
type Server struct {
	store     *store.Store
	connector *google.Connector
	locator   geo.Locator
}

// New creates a Server.
func New(st *store.Store, connector *google.Connector, locator geo.Locator) *Server {
	return &Server{store: st, connector: connector, locator: locator}
}

// RegisterRoutes mounts every API endpoint under /api/v1.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/clients", s.listClients)
		r.Post("/clients", s.createClient)
		r.Get("/clients/{id}", s.getClient)
		r.Put("/clients/{id}", s.updateClient)

		r.Get("/products", s.listProducts)
		r.Post("/products", s.createProduct)
		r.Delete("/products/{id}", s.deleteProduct)

		r.Get("/expenses", s.listExpenses)
		r.Post("/expenses", s.createExpense)
		r.Delete("/expenses/{id}", s.deleteExpense)

		r.Get("/invoices", s.listInvoices)
		r.Post("/invoices", s.createInvoice)
		r.Get("/invoices/{id}", s.getInvoice)
		r.Get("/invoices/{id}/print", s.printInvoice)

		r.Get("/settings", s.getSettings)
		r.Put("/settings", s.updateSettings)

		r.Get("/stats", s.getStats)
		r.Get("/backup", s.backup)

		r.Post("/google/connect", s.googleConnect)
		r.Get("/google/status", s.googleStatus)

		r.Get("/location", s.currentLocation)

		r.Post("/tools/gst", s.gstTool)
	})
}

// respond writes v as JSON with the given status.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// fail maps an operation error onto an HTTP status. Validation failures are
// the caller's fault; everything else is ours.
func fail(w http.ResponseWriter, err error) {
	var vErr *store.ValidationError
	if errors.As(err, &vErr) {
		respond(w, http.StatusBadRequest, map[string]string{"error": vErr.Error()})
		return
	}
	respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

// decode parses the request body into v.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
