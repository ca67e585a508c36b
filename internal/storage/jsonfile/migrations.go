package jsonfile

import "github.com/acrozela/billbook/internal/models"

// document mirrors the persisted shape of models.AppState with pointer fields
// for everything added after schema v1, so Load can tell "absent" from
// "present but empty" and backfill accordingly.
type document struct {
	Clients           []models.Client         `json:"clients"`
	Invoices          []models.Invoice        `json:"invoices"`
	Expenses          *[]models.Expense       `json:"expenses"`
	Products          *[]models.Product       `json:"products"`
	Settings          *models.CompanySettings `json:"settings"`
	IsGoogleConnected *bool                   `json:"isGoogleConnected"`
}

// A migration backfills the fields introduced by one schema version. Each
// only fills what is missing and leaves everything else untouched.
type migration struct {
	version int
	apply   func(*document)
}

// migrations run in order on every load. v1 carried only clients and
// invoices; later versions added expenses, products, then settings and the
// connection flag.
var migrations = []migration{
	{version: 2, apply: func(d *document) {
		if d.Expenses == nil {
			d.Expenses = &[]models.Expense{}
		}
	}},
	{version: 3, apply: func(d *document) {
		if d.Products == nil {
			d.Products = &[]models.Product{}
		}
	}},
	{version: 4, apply: func(d *document) {
		if d.Settings == nil {
			settings := models.DefaultSettings()
			d.Settings = &settings
		}
		if d.IsGoogleConnected == nil {
			connected := false
			d.IsGoogleConnected = &connected
		}
	}},
}

func migrate(d *document) {
	if d.Clients == nil {
		d.Clients = []models.Client{}
	}
	if d.Invoices == nil {
		d.Invoices = []models.Invoice{}
	}
	for _, m := range migrations {
		m.apply(d)
	}
}

// state converts a fully migrated document into the aggregate.
func (d *document) state() *models.AppState {
	return &models.AppState{
		Clients:           d.Clients,
		Products:          *d.Products,
		Invoices:          d.Invoices,
		Expenses:          *d.Expenses,
		Settings:          *d.Settings,
		IsGoogleConnected: *d.IsGoogleConnected,
	}
}
