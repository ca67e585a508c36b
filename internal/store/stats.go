package store

import "github.com/acrozela/billbook/internal/models"

// Stats is the dashboard summary derived from the live aggregate.
type Stats struct {
	// TotalSales is the sum of all invoice totals.
	TotalSales float64 `json:"totalSales"`

	// TotalExpenses is the sum of all expense amounts.
	TotalExpenses float64 `json:"totalExpenses"`

	// NetProfit is TotalSales - TotalExpenses.
	NetProfit float64 `json:"netProfit"`

	// PendingAmount is the sum of totals over invoices still Pending.
	PendingAmount float64 `json:"pendingAmount"`

	// TotalClients is the client count.
	TotalClients int `json:"totalClients"`
}

// Stats computes the dashboard summary in one pass over the aggregate.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st Stats
	for _, inv := range s.state.Invoices {
		st.TotalSales += inv.Total
		if inv.Status == models.StatusPending {
			st.PendingAmount += inv.Total
		}
	}
	for _, exp := range s.state.Expenses {
		st.TotalExpenses += exp.Amount
	}
	st.NetProfit = st.TotalSales - st.TotalExpenses
	st.TotalClients = len(s.state.Clients)
	return st
}
