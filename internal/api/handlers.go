package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acrozela/billbook/internal/models"
	"github.com/acrozela/billbook/internal/store"
)

// Clients

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.ListClients(r.URL.Query().Get("type")))
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var form store.ClientForm
	if err := decode(r, &form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	client, err := s.store.CreateClient(form)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, client)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	client := s.store.GetClient(chi.URLParam(r, "id"))
	if client == nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "client not found"})
		return
	}
	respond(w, http.StatusOK, client)
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	var form store.ClientForm
	if err := decode(r, &form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	client, err := s.store.UpdateClient(chi.URLParam(r, "id"), form)
	if err != nil {
		fail(w, err)
		return
	}
	// An unknown id is a silent no-op by contract; report it as such.
	if client == nil {
		respond(w, http.StatusOK, map[string]bool{"updated": false})
		return
	}
	respond(w, http.StatusOK, client)
}

// Products

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.store.ListProducts())
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var form store.ProductForm
	if err := decode(r, &form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	product, err := s.store.CreateProduct(form)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, product)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteProduct(chi.URLParam(r, "id"))
	respond(w, http.StatusNoContent, nil)
}

// Expenses

func (s *Server) listExpenses(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.store.ListExpenses())
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var form store.ExpenseForm
	if err := decode(r, &form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	expense, err := s.store.CreateExpense(form)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, expense)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteExpense(chi.URLParam(r, "id"))
	respond(w, http.StatusNoContent, nil)
}

// Invoices

func (s *Server) listInvoices(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.store.ListInvoices())
}

func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	var form store.InvoiceForm
	if err := decode(r, &form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	invoice, err := s.store.CreateInvoice(form)
	if err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusCreated, invoice)
}

func (s *Server) getInvoice(w http.ResponseWriter, r *http.Request) {
	invoice := s.store.GetInvoice(chi.URLParam(r, "id"))
	if invoice == nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "invoice not found"})
		return
	}
	respond(w, http.StatusOK, invoice)
}

// Settings

func (s *Server) getSettings(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.store.Settings())
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.CompanySettings
	if err := decode(r, &settings); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.store.UpdateSettings(settings)
	respond(w, http.StatusOK, settings)
}
