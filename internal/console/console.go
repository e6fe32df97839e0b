package console

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/notify"
)

type Options struct {
	Logger *slog.Logger
	Hub    *notify.Hub
	// Today defaults to dateonly.Today.
	Today func() dateonly.Date
}

// Console wires the store, filter engine, mutation coordinator and delete workflow over one
// backend and one notification hub.
type Console struct {
	Store         *Store
	Filters       *FilterEngine
	Mutations     *MutationCoordinator
	Deletes       *DeleteWorkflow
	Notifications *notify.Hub

	backend Backend
	today   func() dateonly.Date
}

func New(backend Backend, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	hub := opts.Hub
	if hub == nil {
		hub = notify.NewHub(logger)
	}
	today := opts.Today
	if today == nil {
		today = dateonly.Today
	}

	store := NewStore(backend, hub, logger)
	mutations := NewMutationCoordinator(backend, store, hub, logger, today)

	return &Console{
		Store:         store,
		Filters:       NewFilterEngine(store, hub),
		Mutations:     mutations,
		Deletes:       NewDeleteWorkflow(mutations),
		Notifications: hub,
		backend:       backend,
		today:         today,
	}
}

// NewAttendanceDraft returns a fresh mark-attendance form dated today.
func (c *Console) NewAttendanceDraft() AttendanceDraft {
	return NewAttendanceDraft(c.today())
}

// RefreshDashboard fetches the server-computed summary.
func (c *Console) RefreshDashboard(ctx context.Context) (dashboard.DashboardSummary, error) {
	summary, err := c.backend.GetDashboard(ctx)
	if err != nil {
		c.Notifications.Error(MsgFetchDashboardFailed)
		return dashboard.DashboardSummary{}, err
	}
	return summary, nil
}

// LocalDashboard aggregates the loaded snapshot for today without a server round trip.
func (c *Console) LocalDashboard() dashboard.DashboardSummary {
	return c.Store.Summary(c.today())
}
