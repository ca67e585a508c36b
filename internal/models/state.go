package models

// CompanySettings is the invoice issuer identity, a singleton record.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Gstin   string `json:"gstin"`
	Website string `json:"website"`

	// Notes is the default closing note printed on invoices.
	Notes string `json:"notes"`

	// BankDetails is a multi-line payment instruction block.
	BankDetails string `json:"bankDetails,omitempty"`

	// UpiID is the UPI payment address.
	UpiID string `json:"upiId,omitempty"`
}

// AppState is the aggregate root: every collection the application owns plus
// the settings singleton and the external-connection flag. It is persisted as
// one JSON document.
//
// Ordering is part of the contract: clients are in insertion order, invoices
// and expenses are most-recent-first.
type AppState struct {
	Clients  []Client  `json:"clients"`
	Products []Product `json:"products"`
	Invoices []Invoice `json:"invoices"`
	Expenses []Expense `json:"expenses"`

	Settings CompanySettings `json:"settings"`

	// IsGoogleConnected records whether the external identity connection has
	// been established this install.
	IsGoogleConnected bool `json:"isGoogleConnected"`
}

// DefaultSettings returns the static issuer identity used until the user
// saves their own.
func DefaultSettings() CompanySettings {
	return CompanySettings{
		Name:        "ACROZELA ENTERPRISES",
		Address:     "123 Business Park, Tech Hub, Mumbai, MH - 400001",
		Phone:       "+91 98765 43210",
		Email:       "billing@acrozela.com",
		Gstin:       "27ABCDE1234F1Z5",
		Website:     "www.acrozela.com",
		Notes:       "Thank you for your business!",
		BankDetails: "Bank: HDFC Bank\nA/C: 50200012345678\nIFSC: HDFC0001234",
		UpiID:       "acrozela@hdfcbank",
	}
}

// NewAppState returns the first-run state: empty collections, default
// settings, connection flag off.
func NewAppState() *AppState {
	return &AppState{
		Clients:  []Client{},
		Products: []Product{},
		Invoices: []Invoice{},
		Expenses: []Expense{},
		Settings: DefaultSettings(),
	}
}

// Clone returns a deep copy of the state, safe to hand to callers without
// exposing the live aggregate.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		Clients:           make([]Client, len(s.Clients)),
		Products:          make([]Product, len(s.Products)),
		Invoices:          make([]Invoice, len(s.Invoices)),
		Expenses:          make([]Expense, len(s.Expenses)),
		Settings:          s.Settings,
		IsGoogleConnected: s.IsGoogleConnected,
	}
	copy(out.Clients, s.Clients)
	copy(out.Products, s.Products)
	copy(out.Invoices, s.Invoices)
	copy(out.Expenses, s.Expenses)
	for i := range out.Invoices {
		items := make([]InvoiceItem, len(s.Invoices[i].Items))
		copy(items, s.Invoices[i].Items)
		out.Invoices[i].Items = items
	}
	return out
}
