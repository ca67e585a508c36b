package store

import (
	"log/slog"

	"github.com/acrozela/billbook/internal/calculator"
	"github.com/acrozela/billbook/internal/ids"
	"github.com/acrozela/billbook/internal/models"
)

// ItemForm is one invoice line as entered by the user. Discount defaults
// to 0 when absent.
type ItemForm struct {
	Description string  `json:"description"`
	Quality     string  `json:"quality"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Discount    float64 `json:"discount"`
}

// InvoiceForm is the input for generating an invoice. Date and due date
// default to today.
type InvoiceForm struct {
	ClientID string     `json:"clientId"`
	Date     string     `json:"date"`
	DueDate  string     `json:"dueDate"`
	GstRate  float64    `json:"gstRate"`
	Items    []ItemForm `json:"items"`
	Notes    string     `json:"notes"`
	Terms    string     `json:"terms"`
}

func (f *InvoiceForm) validate() error {
	if f.ClientID == "" {
		return validationf("select a client")
	}
	if len(f.Items) == 0 {
		return validationf("invoice needs at least one item")
	}
	if f.GstRate < 0 {
		return validationf("GST rate must not be negative")
	}
	for i, item := range f.Items {
		if item.Description == "" {
			return validationf("item %d: description is required", i+1)
		}
		if item.Quantity <= 0 {
			return validationf("item %d: quantity must be positive", i+1)
		}
		if item.Rate < 0 {
			return validationf("item %d: rate must not be negative", i+1)
		}
		if item.Discount < 0 || item.Discount > 100 {
			return validationf("item %d: discount must be between 0 and 100", i+1)
		}
	}
	return nil
}

// CreateInvoice generates an invoice for an existing client.
//
// The client's name, address and gstin are snapshotted into the invoice at
// this instant; later client edits do not rewrite it. Two updates happen in
// the same atomic step: the invoice is prepended (invoices are
// most-recent-first) and the client's balance grows by the invoice total.
// Never one without the other.
func (s *Store) CreateInvoice(form InvoiceForm) (*models.Invoice, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var client *models.Client
	for i := range s.state.Clients {
		if s.state.Clients[i].ID == form.ClientID {
			client = &s.state.Clients[i]
			break
		}
	}
	if client == nil {
		return nil, validationf("client %q not found", form.ClientID)
	}

	items := make([]models.InvoiceItem, len(form.Items))
	lineTotals := make([]float64, len(form.Items))
	for i, f := range form.Items {
		total := calculator.ItemTotal(f.Quantity, f.Rate, f.Discount)
		items[i] = models.InvoiceItem{
			ID:          ids.New(),
			Description: f.Description,
			Quality:     f.Quality,
			Quantity:    f.Quantity,
			Rate:        f.Rate,
			Discount:    f.Discount,
			Total:       total,
		}
		lineTotals[i] = total
	}
	totals := calculator.Totals(lineTotals, form.GstRate)

	date := form.Date
	if date == "" {
		date = today()
	}
	dueDate := form.DueDate
	if dueDate == "" {
		dueDate = date
	}

	invoice := models.Invoice{
		ID:            ids.New(),
		ClientID:      client.ID,
		ClientName:    client.Name,
		ClientAddress: client.Address,
		ClientGstin:   client.Gstin,
		Date:          date,
		DueDate:       dueDate,
		Items:         items,
		Subtotal:      totals.Subtotal,
		GstRate:       form.GstRate,
		TaxAmount:     totals.TaxAmount,
		Discount:      0,
		Total:         totals.Total,
		Status:        models.StatusPending,
		Notes:         form.Notes,
		Terms:         form.Terms,
	}

	s.state.Invoices = append([]models.Invoice{invoice}, s.state.Invoices...)
	client.Balance += invoice.Total

	slog.Info("Invoice created",
		"invoice_id", invoice.ID,
		"client_id", client.ID,
		"total", invoice.Total,
		"client_balance", client.Balance,
	)
	s.persist()
	return &invoice, nil
}

// GetInvoice returns the invoice with the given id, or nil.
func (s *Store) GetInvoice(id string) *models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Invoices {
		if s.state.Invoices[i].ID == id {
			inv := s.state.Invoices[i]
			items := make([]models.InvoiceItem, len(inv.Items))
			copy(items, inv.Items)
			inv.Items = items
			return &inv
		}
	}
	return nil
}

// ListInvoices returns invoices most-recent-first.
func (s *Store) ListInvoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Invoice, len(s.state.Invoices))
	copy(out, s.state.Invoices)
	return out
}
