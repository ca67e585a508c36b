package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/acrozela/billbook/internal/geo"
	"github.com/acrozela/billbook/internal/google"
	"github.com/acrozela/billbook/internal/models"
	"github.com/acrozela/billbook/internal/store"
)

type memStorage struct {
	state *models.AppState
}

func (m *memStorage) Load() *models.AppState { return models.NewAppState() }

func (m *memStorage) Save(state *models.AppState) error {
	m.state = state.Clone()
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New(&memStorage{})
	srv := New(st, google.New(st, 0), geo.Unavailable())

	r := chi.NewRouter()
	srv.RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, st
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, out.Bytes()
}

func TestClientLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/clients", map[string]any{
		"name": "Sharma Traders",
		"type": "Wholesale",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create client status = %d, body = %s", resp.StatusCode, body)
	}
	var client models.Client
	if err := json.Unmarshal(body, &client); err != nil {
		t.Fatalf("decode client: %v", err)
	}
	if client.ID == "" || client.Name != "Sharma Traders" {
		t.Errorf("unexpected client %+v", client)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/clients/"+client.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get client status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/clients/NOPE", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get unknown client status = %d, want 404", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/clients", map[string]any{
		"name": "", "type": "Wholesale",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid client status = %d, body = %s", resp.StatusCode, body)
	}
}

func TestInvoiceFlow(t *testing.T) {
	ts, st := newTestServer(t)

	client, err := st.CreateClient(store.ClientForm{Name: "Patel & Sons", Type: "Retailer"})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/invoices", map[string]any{
		"clientId": client.ID,
		"gstRate":  18,
		"items": []map[string]any{
			{"description": "Basmati Rice", "quantity": 10, "rate": 100},
			{"description": "Wheat", "quantity": 5, "rate": 20},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create invoice status = %d, body = %s", resp.StatusCode, body)
	}
	var inv models.Invoice
	if err := json.Unmarshal(body, &inv); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}
	if inv.Subtotal != 1100 || inv.TaxAmount != 198 || inv.Total != 1298 {
		t.Errorf("invoice totals = %v/%v/%v, want 1100/198/1298", inv.Subtotal, inv.TaxAmount, inv.Total)
	}
	if inv.ClientName != "Patel & Sons" {
		t.Errorf("invoice client name = %q", inv.ClientName)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/invoices/"+inv.ID+"/print", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("print status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("print content type = %q", ct)
	}
	if !strings.Contains(string(body), "Patel &amp; Sons") {
		t.Error("printed invoice missing client name")
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	var stats store.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalSales != 1298 || stats.PendingAmount != 1298 || stats.TotalClients != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}

	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/invoices", map[string]any{
		"clientId": "NOPE",
		"items":    []map[string]any{{"description": "x", "quantity": 1, "rate": 1}},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invoice for unknown client status = %d, body = %s", resp.StatusCode, body)
	}
}

func TestGSTTool(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name      string
		req       map[string]any
		status    int
		wantTax   float64
		wantTotal float64
	}{
		{
			name:      "exclusive",
			req:       map[string]any{"amount": 100, "rate": 18, "mode": "exclusive"},
			status:    http.StatusOK,
			wantTax:   18,
			wantTotal: 118,
		},
		{
			name:      "inclusive",
			req:       map[string]any{"amount": 118, "rate": 18, "mode": "inclusive"},
			status:    http.StatusOK,
			wantTax:   18,
			wantTotal: 118,
		},
		{
			name:   "bad mode",
			req:    map[string]any{"amount": 100, "rate": 18, "mode": "sideways"},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/tools/gst", tt.req)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", resp.StatusCode, tt.status, body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var got gstResponse
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			const eps = 1e-9
			if diff := got.TaxAmount - tt.wantTax; diff > eps || diff < -eps {
				t.Errorf("tax = %v, want %v", got.TaxAmount, tt.wantTax)
			}
			if diff := got.TotalAmount - tt.wantTotal; diff > eps || diff < -eps {
				t.Errorf("total = %v, want %v", got.TotalAmount, tt.wantTotal)
			}
		})
	}
}

func TestBackupDownload(t *testing.T) {
	ts, st := newTestServer(t)
	if _, err := st.CreateClient(store.ClientForm{Name: "Gupta Stores", Type: "Buyer"}); err != nil {
		t.Fatalf("seed client: %v", err)
	}

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/backup", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("backup status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	var state models.AppState
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("backup is not valid state JSON: %v", err)
	}
	if len(state.Clients) != 1 || state.Clients[0].Name != "Gupta Stores" {
		t.Errorf("backup clients = %+v", state.Clients)
	}
}

func TestGoogleConnect(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/google/status", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "false") {
		t.Fatalf("initial status = %d, body = %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/google/connect", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "true") {
		t.Fatalf("connect = %d, body = %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/google/status", nil)
	if !strings.Contains(string(body), "true") {
		t.Errorf("status after connect = %s", body)
	}
	_ = resp
}

func TestLocationUnavailable(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/location", nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("location status = %d, want 503", resp.StatusCode)
	}
}

type fixedLocator struct {
	c geo.Coordinates
}

func (f fixedLocator) Current(_ context.Context) (geo.Coordinates, error) { return f.c, nil }

func TestLocationPin(t *testing.T) {
	st := store.New(&memStorage{})
	srv := New(st, google.New(st, 0), fixedLocator{geo.Coordinates{Latitude: 18.52043, Longitude: 73.856743}})

	r := chi.NewRouter()
	srv.RegisterRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/location", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("location status = %d", resp.StatusCode)
	}
	want := fmt.Sprintf("%q", "18.520430, 73.856743")
	if !strings.Contains(string(body), want) {
		t.Errorf("body = %s, want pin %s", body, want)
	}
}
