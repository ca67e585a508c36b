package models

// ClientType categorizes a client for filtering and reporting.
type ClientType string

const (
	TypeWholesale       ClientType = "Wholesale"
	TypeRetailer        ClientType = "Retailer"
	TypeDistributor     ClientType = "Distributor"
	TypeBusinessPartner ClientType = "Business Partner"
	TypeBuyer           ClientType = "Buyer"
	TypeSeller          ClientType = "Seller"
	TypeSupplier        ClientType = "Supplier"
	TypeNearbyBuyer     ClientType = "Nearby Buyer"
)

// ClientTypes lists every valid client type, in display order.
var ClientTypes = []ClientType{
	TypeWholesale,
	TypeRetailer,
	TypeDistributor,
	TypeBusinessPartner,
	TypeBuyer,
	TypeSeller,
	TypeSupplier,
	TypeNearbyBuyer,
}

// Valid reports whether t is one of the enumerated client types.
func (t ClientType) Valid() bool {
	for _, ct := range ClientTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// Client represents a business contact that invoices are issued to.
type Client struct {
	// ID is the unique identifier for the client.
	ID string `json:"id"`

	// Name is the client's display name.
	Name string `json:"name"`

	// Type is the client category (Wholesale, Retailer, ...).
	Type ClientType `json:"type"`

	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// LocationPin is an optional "lat, long" string with 6-decimal precision,
	// usually captured from the device's geolocation.
	LocationPin string `json:"locationPin,omitempty"`

	// Photo is an optional encoded image (data URL) for the client.
	Photo string `json:"photo,omitempty"`

	// Gstin is the client's tax registration identifier, if any.
	Gstin string `json:"gstin,omitempty"`

	// Balance is the running sum of the totals of every invoice issued to
	// this client. It only grows: there is no invoice deletion path, so no
	// decrement path exists.
	Balance float64 `json:"balance"`
}

// Product represents a stock item that can be billed.
type Product struct {
	// ID is the unique identifier for the product.
	ID string `json:"id"`

	// Name is the product's display name.
	Name string `json:"name"`

	// Quality is a free-text grade label (e.g. "Premium", "Grade A").
	Quality string `json:"quality"`

	// Quantity is the stock count. Invoicing does not decrement it.
	Quantity float64 `json:"quantity"`

	// Rate is the non-negative unit price.
	Rate float64 `json:"rate"`
}
