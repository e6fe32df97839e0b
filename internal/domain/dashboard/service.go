package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the summary for the server's current date
	GetDashboard(ctx context.Context) (DashboardSummary, error)
}
