package store

import (
	"log/slog"

	"github.com/acrozela/billbook/internal/ids"
	"github.com/acrozela/billbook/internal/models"
)

// ClientForm is the input for creating or updating a client. Optional text
// fields default to empty strings.
type ClientForm struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	LocationPin string `json:"locationPin"`
	Photo       string `json:"photo"`
	Gstin       string `json:"gstin"`
}

func (f *ClientForm) validate() error {
	if f.Name == "" {
		return validationf("client name is required")
	}
	if !models.ClientType(f.Type).Valid() {
		return validationf("client type %q is not valid", f.Type)
	}
	return nil
}

// CreateClient validates the form and appends a new client with a zero
// balance. Clients are listed in insertion order.
func (s *Store) CreateClient(form ClientForm) (*models.Client, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client := models.Client{
		ID:          ids.New(),
		Name:        form.Name,
		Type:        models.ClientType(form.Type),
		Email:       form.Email,
		Phone:       form.Phone,
		Address:     form.Address,
		LocationPin: form.LocationPin,
		Photo:       form.Photo,
		Gstin:       form.Gstin,
		Balance:     0,
	}
	s.state.Clients = append(s.state.Clients, client)

	slog.Info("Client created", "client_id", client.ID, "name", client.Name, "type", client.Type)
	s.persist()
	return &client, nil
}

// UpdateClient merges the form over the client with the given id. The balance
// is never touched by an edit. An unknown id is a silent no-op: the returned
// client is nil and no state changes.
func (s *Store) UpdateClient(id string, form ClientForm) (*models.Client, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Clients {
		if s.state.Clients[i].ID != id {
			continue
		}
		c := &s.state.Clients[i]
		c.Name = form.Name
		c.Type = models.ClientType(form.Type)
		c.Email = form.Email
		c.Phone = form.Phone
		c.Address = form.Address
		c.LocationPin = form.LocationPin
		c.Photo = form.Photo
		c.Gstin = form.Gstin

		slog.Info("Client updated", "client_id", id, "name", c.Name)
		s.persist()
		updated := *c
		return &updated, nil
	}

	slog.Warn("UpdateClient: no such client, skipping", "client_id", id)
	return nil, nil
}

// GetClient returns the client with the given id, or nil.
func (s *Store) GetClient(id string) *models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Clients {
		if s.state.Clients[i].ID == id {
			c := s.state.Clients[i]
			return &c
		}
	}
	return nil
}

// ListClients returns clients in insertion order. A non-empty typeFilter
// restricts the list to that client type.
func (s *Store) ListClients(typeFilter string) []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Client, 0, len(s.state.Clients))
	for _, c := range s.state.Clients {
		if typeFilter != "" && c.Type != models.ClientType(typeFilter) {
			continue
		}
		out = append(out, c)
	}
	return out
}
