package console

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/notify"
)

// FilterEngine narrows the attendance collection. Criteria are not validated: empty fields mean
// no constraint and unparsable dates are ignored by the backend. Employees are never refetched.
type FilterEngine struct {
	store *Store
	hub   *notify.Hub
}

func NewFilterEngine(store *Store, hub *notify.Hub) *FilterEngine {
	return &FilterEngine{store: store, hub: hub}
}

// Apply makes criteria the active filter and refetches attendance.
func (f *FilterEngine) Apply(ctx context.Context, criteria attendance.FilterCriteria) error {
	f.store.setFilter(criteria)

	if err := f.store.refreshAttendance(ctx); err != nil {
		f.hub.Error(MsgFilterFailed)
		return err
	}

	f.hub.Info(MsgFiltersApplied)
	return nil
}

// Clear resets the filter and refetches attendance unfiltered.
func (f *FilterEngine) Clear(ctx context.Context) error {
	f.store.setFilter(attendance.FilterCriteria{})

	if err := f.store.refreshAttendance(ctx); err != nil {
		f.hub.Error(MsgFetchDataFailed)
		return err
	}
	return nil
}
