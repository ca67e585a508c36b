package models

// InvoiceStatus is the payment state of an invoice.
// There is no automatic transition logic; new invoices start Pending.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "Paid"
	StatusPending InvoiceStatus = "Pending"
	StatusOverdue InvoiceStatus = "Overdue"
)

// PaymentMethod is how money changed hands.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "Cash"
	MethodBank PaymentMethod = "Bank"
	MethodUPI  PaymentMethod = "UPI"
)

// Valid reports whether m is one of the enumerated payment methods.
func (m PaymentMethod) Valid() bool {
	return m == MethodCash || m == MethodBank || m == MethodUPI
}

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	// ID is the unique identifier for the line item.
	ID string `json:"id"`

	// Description names the billed product or service.
	Description string `json:"description"`

	// Quality is an optional grade label for the line.
	Quality string `json:"quality,omitempty"`

	// Quantity is the billed quantity (positive).
	Quantity float64 `json:"quantity"`

	// Rate is the non-negative unit price.
	Rate float64 `json:"rate"`

	// Discount is a line-level percentage in [0, 100].
	Discount float64 `json:"discount"`

	// Total is derived: quantity * rate * (1 - discount/100).
	Total float64 `json:"total"`
}

// Invoice is an immutable billing document issued to a client.
//
// ClientName, ClientAddress and ClientGstin are snapshots of the client
// record taken when the invoice was created; editing the client afterwards
// does not change past invoices.
type Invoice struct {
	// ID is the unique identifier for the invoice (printed as the invoice number).
	ID string `json:"id"`

	// ClientID references the client this invoice was issued to.
	ClientID string `json:"clientId"`

	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress,omitempty"`
	ClientGstin   string `json:"clientGstin,omitempty"`

	// Date and DueDate are calendar dates in "2006-01-02" form.
	Date    string `json:"date"`
	DueDate string `json:"dueDate"`

	// Items is the ordered line sequence. Never empty.
	Items []InvoiceItem `json:"items"`

	// Subtotal is the sum of all item totals.
	Subtotal float64 `json:"subtotal"`

	// GstRate is the tax percentage applied to the subtotal.
	GstRate float64 `json:"gstRate"`

	// TaxAmount is subtotal * gstRate / 100.
	TaxAmount float64 `json:"taxAmount"`

	// Discount is a header-level discount percentage. Invoice creation leaves
	// it at 0; discounts are carried per line item.
	Discount float64 `json:"discount"`

	// Total is subtotal + taxAmount.
	Total float64 `json:"total"`

	Status InvoiceStatus `json:"status"`

	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`
}

// Expense records money spent by the business.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`

	// Category is free text (e.g. "Rent", "Salary").
	Category string `json:"category"`

	// Amount is the non-negative expense amount.
	Amount float64 `json:"amount"`

	// Date is a calendar date in "2006-01-02" form.
	Date string `json:"date"`

	Description string `json:"description"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
