package store

import (
	"log/slog"

	"github.com/acrozela/billbook/internal/ids"
	"github.com/acrozela/billbook/internal/models"
)

// ProductForm is the input for adding a stock item.
type ProductForm struct {
	Name     string  `json:"name"`
	Quality  string  `json:"quality"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// CreateProduct validates the form and appends a new product. Quality
// defaults to empty and quantity to 0.
func (s *Store) CreateProduct(form ProductForm) (*models.Product, error) {
	if form.Name == "" {
		return nil, validationf("product name is required")
	}
	if form.Rate <= 0 {
		return nil, validationf("product rate must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:       ids.New(),
		Name:     form.Name,
		Quality:  form.Quality,
		Quantity: form.Quantity,
		Rate:     form.Rate,
	}
	s.state.Products = append(s.state.Products, product)

	slog.Info("Product created", "product_id", product.ID, "name", product.Name, "rate", product.Rate)
	s.persist()
	return &product, nil
}

// DeleteProduct removes the product with the given id. Deleting an unknown
// id is a no-op; deletion has no side effects on other entities.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Products {
		if s.state.Products[i].ID == id {
			s.state.Products = append(s.state.Products[:i], s.state.Products[i+1:]...)
			slog.Info("Product deleted", "product_id", id)
			s.persist()
			return
		}
	}
}

// ListProducts returns products in insertion order.
func (s *Store) ListProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.state.Products))
	copy(out, s.state.Products)
	return out
}
