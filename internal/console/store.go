package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/notify"
	"golang.org/x/sync/errgroup"
)

// Store holds the employees, the attendance records and the active filter. It is the only
// writer of that state: every change is a State transition applied under mu.
//
// Each collection has a generation counter. A fetch takes the next generation when it is
// issued and its result is applied only if no newer fetch of the same collection was issued
// meanwhile.
type Store struct {
	backend Backend
	hub     *notify.Hub
	logger  *slog.Logger

	mu            sync.Mutex
	state         State
	loading       int
	employeesGen  uint64
	attendanceGen uint64
	subscribers   map[chan State]struct{}
}

func NewStore(backend Backend, hub *notify.Hub, logger *slog.Logger) *Store {
	return &Store{
		backend:     backend,
		hub:         hub,
		logger:      logger,
		state:       State{}.SetEmployees(nil).SetAttendance(nil),
		subscribers: make(map[chan State]struct{}),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Loading reports whether any fetch is in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

func (s *Store) EmployeeByHandle(id string) (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.state.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return employee.Employee{}, false
}

// Summary aggregates the current snapshot for the given date. With an active filter the
// attendance part covers the filtered records only.
func (s *Store) Summary(today dateonly.Date) dashboard.DashboardSummary {
	snapshot := s.Snapshot()
	return dashboard.Summarize(snapshot.Employees, snapshot.Attendance, today)
}

// Subscribe returns a channel receiving every new state, and a function to stop receiving.
// A subscriber that falls behind misses intermediate states.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	s.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, ch)
			close(ch)
		})
	}
}

// Load fetches employees and attendance (with the active filter) concurrently. If either call
// fails nothing is applied, "Failed to fetch data" is published and ErrFetchFailure returned.
func (s *Store) Load(ctx context.Context) error {
	defer s.beginLoading()()

	s.mu.Lock()
	s.employeesGen++
	s.attendanceGen++
	employeesGen, attendanceGen := s.employeesGen, s.attendanceGen
	filter := s.state.Filter
	s.mu.Unlock()

	var (
		employees []employee.Employee
		records   []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.backend.ListEmployees(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.backend.ListAttendance(gCtx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		s.hub.Error(MsgFetchDataFailed)
		return fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	s.mu.Lock()
	next := s.state
	var stale []string
	if employeesGen == s.employeesGen {
		next = next.SetEmployees(employees)
	} else {
		stale = append(stale, "employees")
	}
	if attendanceGen == s.attendanceGen {
		next = next.SetAttendance(records)
	} else {
		stale = append(stale, "attendance")
	}
	s.commitLocked(next)
	s.mu.Unlock()

	if len(stale) > 0 {
		s.logger.Debug("dropped load result", "collections", stale, "error", ErrStaleResponse)
	}
	return nil
}

// RefreshEmployees refetches the employee collection only.
func (s *Store) RefreshEmployees(ctx context.Context) error {
	defer s.beginLoading()()

	s.mu.Lock()
	s.employeesGen++
	gen := s.employeesGen
	s.mu.Unlock()

	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		s.hub.Error(MsgFetchEmployeesFailed)
		return fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	err = s.commitIfLatest(func() bool { return gen == s.employeesGen }, func(st State) State {
		return st.SetEmployees(employees)
	})
	if err != nil {
		s.logger.Debug("dropped employee fetch", "generation", gen, "error", err)
	}
	return nil
}

// refreshAttendance refetches attendance with the active filter. Notification is left to the caller.
func (s *Store) refreshAttendance(ctx context.Context) error {
	defer s.beginLoading()()

	s.mu.Lock()
	s.attendanceGen++
	gen := s.attendanceGen
	filter := s.state.Filter
	s.mu.Unlock()

	records, err := s.backend.ListAttendance(ctx, filter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	err = s.commitIfLatest(func() bool { return gen == s.attendanceGen }, func(st State) State {
		return st.SetAttendance(records)
	})
	if err != nil {
		s.logger.Debug("dropped attendance fetch", "generation", gen, "filter", filter, "error", err)
	}
	return nil
}

func (s *Store) setFilter(filter attendance.FilterCriteria) {
	s.apply(func(st State) State { return st.SetFilter(filter) })
}

func (s *Store) removeEmployee(id string) {
	s.apply(func(st State) State { return st.RemoveEmployee(id) })
}

func (s *Store) apply(transition func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(transition(s.state))
}

func (s *Store) commitIfLatest(latest func() bool, transition func(State) State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !latest() {
		return ErrStaleResponse
	}
	s.commitLocked(transition(s.state))
	return nil
}

// commitLocked replaces the state and notifies subscribers. mu must be held.
func (s *Store) commitLocked(next State) {
	s.state = next
	for ch := range s.subscribers {
		select {
		case ch <- next.clone():
		default:
			// replace the unread state with the latest one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- next.clone():
			default:
			}
		}
	}
}

// beginLoading raises the loading flag and returns the function that lowers it.
func (s *Store) beginLoading() func() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}
}
