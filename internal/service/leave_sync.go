package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

type leaveService struct {
	sessions ClientSessionService
	adapter  adapter.ServerAdapter
	pageSize int
	logger   *logger.Logger

	mu    sync.Mutex
	state SyncState

	subMu       sync.Mutex
	subscribers map[int]func(SyncState)
	nextSubID   int
}

func NewClientLeaveService(sessions ClientSessionService, serverAdapter adapter.ServerAdapter, pageSize int, log *logger.Logger) ClientLeaveService {
	return &leaveService{
		sessions:    sessions,
		adapter:     serverAdapter,
		pageSize:    pageSize,
		state:       newSyncState(),
		logger:      log,
		subscribers: make(map[int]func(SyncState)),
	}
}

func (s *leaveService) LoadNext(ctx context.Context) error {
	if !s.sessions.State().LoggedIn() {
		return ErrNotAuthenticated
	}

	effect := s.apply(evLoadNext{})
	if !effect.fetch {
		return nil
	}

	return s.fetchPage(ctx, effect)
}

func (s *leaveService) Refresh(ctx context.Context) error {
	if !s.sessions.State().LoggedIn() {
		return ErrNotAuthenticated
	}

	effect := s.apply(evRefresh{})
	return s.fetchPage(ctx, effect)
}

func (s *leaveService) Submit(ctx context.Context, form models.LeaveRequestForm) error {
	if !s.sessions.State().LoggedIn() {
		return ErrNotAuthenticated
	}

	created, err := s.adapter.CreateLeaveRequest(ctx, form)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitLeave, err)
	}

	s.logger.Info().Str("id", created.ID).Msg("leave request submitted")

	// the server owns the record; replay page one instead of inserting the
	// echo locally
	return s.Refresh(ctx)
}

// fetchPage performs the network half of a transition effect and feeds the
// outcome back through the machine. The effect's generation tag travels with
// the response so that results of a pre-refresh fetch are dropped.
func (s *leaveService) fetchPage(ctx context.Context, effect syncEffect) error {
	records, err := s.adapter.ListLeaveRequests(ctx, effect.page, s.pageSize)
	if err != nil {
		s.apply(evPageFailed{gen: effect.gen, err: err})
		s.logger.Err(err).Int("page", effect.page).Msg("leave page fetch failed")
		return err
	}

	s.apply(evPageLoaded{gen: effect.gen, records: records})
	return nil
}

// apply runs one transition under the state lock and broadcasts the new
// snapshot. The returned effect is executed by the caller outside the lock so
// that network time never blocks other operations.
func (s *leaveService) apply(event syncEvent) syncEffect {
	s.mu.Lock()
	next, effect := transition(s.state, event)
	s.state = next
	s.mu.Unlock()

	s.broadcast(next)
	return effect
}

func (s *leaveService) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *leaveService) Subscribe(fn func(SyncState)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *leaveService) broadcast(state SyncState) {
	s.subMu.Lock()
	fns := make([]func(SyncState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
