package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// Durable store keys for the two persisted session fields. Both absent means
// unauthenticated.
const (
	sessionIdentityKey   = "identity"
	sessionCredentialKey = "credential"
)

// SessionState is an immutable snapshot of the session service.
type SessionState struct {
	// Identity is the authenticated user's profile, zero while logged out.
	Identity models.User
	// Credential is the bearer token, zero while logged out.
	Credential models.Token
	// Ready becomes true exactly once, after the initial durable load
	// resolves (successfully or not).
	Ready bool
}

// LoggedIn reports whether the snapshot carries an established session.
func (s SessionState) LoggedIn() bool {
	return !s.Credential.IsZero()
}

type sessionService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger

	mu          sync.Mutex
	identity    models.User
	credential  models.Token
	ready       bool
	initialized bool

	subMu       sync.Mutex
	subscribers map[int]func(SessionState)
	nextSubID   int
}

func NewClientSessionService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSessionService {
	return &sessionService{
		localStore:  localStore,
		adapter:     serverAdapter,
		logger:      log,
		subscribers: make(map[int]func(SessionState)),
	}
}

func (s *sessionService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	identity, credential, err := s.loadPersisted(ctx)

	s.mu.Lock()
	if err == nil {
		s.identity = identity
		s.credential = credential
		s.adapter.SetToken(credential)
	}
	s.ready = true
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.broadcast(snapshot)

	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		s.logger.Warn().Err(err).Msg("session restore failed, starting logged out")
		return err
	}
	return nil
}

// loadPersisted reads both durable keys and decodes the identity. Any
// failure, including a malformed identity record, leaves the session logged
// out: the pair is only ever restored whole.
func (s *sessionService) loadPersisted(ctx context.Context) (models.User, models.Token, error) {
	rawIdentity, err := s.localStore.KV.Get(ctx, sessionIdentityKey)
	if err != nil {
		return models.User{}, "", fmt.Errorf("read identity: %w", err)
	}

	rawCredential, err := s.localStore.KV.Get(ctx, sessionCredentialKey)
	if err != nil {
		return models.User{}, "", fmt.Errorf("read credential: %w", err)
	}

	var identity models.User
	if err = json.Unmarshal([]byte(rawIdentity), &identity); err != nil {
		return models.User{}, "", fmt.Errorf("decode identity: %w", err)
	}

	credential := models.Token(rawCredential)
	if identity.IsZero() || credential.IsZero() {
		return models.User{}, "", fmt.Errorf("decode identity: %w", store.ErrKeyNotFound)
	}

	return identity, credential, nil
}

func (s *sessionService) Authenticate(ctx context.Context, email, password string) error {
	token, err := s.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthenticate, err)
	}

	identity, err := s.adapter.FetchProfile(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchProfile, err)
	}

	if err = s.Login(ctx, identity, token); err != nil {
		// session is established in memory; persistence failure is logged
		// upstream and must not fail the login flow
		s.logger.Warn().Err(err).Msg("session persisted partially or not at all")
	}

	return nil
}

func (s *sessionService) Login(ctx context.Context, identity models.User, credential models.Token) error {
	if identity.IsZero() || credential.IsZero() {
		return ErrInvalidSessionData
	}

	persistErr := s.persist(ctx, identity, credential)

	s.mu.Lock()
	s.identity = identity
	s.credential = credential
	s.adapter.SetToken(credential)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.broadcast(snapshot)

	if persistErr != nil {
		s.logger.Warn().Err(persistErr).Msg("session usable in memory only")
		return fmt.Errorf("%w: %v", ErrPersistSession, persistErr)
	}
	return nil
}

func (s *sessionService) persist(ctx context.Context, identity models.User, credential models.Token) error {
	rawIdentity, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	if err = s.localStore.KV.Set(ctx, sessionIdentityKey, string(rawIdentity)); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	if err = s.localStore.KV.Set(ctx, sessionCredentialKey, credential.String()); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}

	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	var clearErr error
	if err := s.localStore.KV.Delete(ctx, sessionIdentityKey); err != nil {
		clearErr = errors.Join(clearErr, fmt.Errorf("delete identity: %w", err))
	}
	if err := s.localStore.KV.Delete(ctx, sessionCredentialKey); err != nil {
		clearErr = errors.Join(clearErr, fmt.Errorf("delete credential: %w", err))
	}

	s.mu.Lock()
	s.identity = models.User{}
	s.credential = ""
	s.adapter.SetToken("")
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.broadcast(snapshot)

	if clearErr != nil {
		s.logger.Warn().Err(clearErr).Msg("durable session not fully cleared")
		return fmt.Errorf("%w: %v", ErrClearSession, clearErr)
	}
	return nil
}

func (s *sessionService) UpdateProfile(ctx context.Context, identity models.User) error {
	s.mu.Lock()
	credential := s.credential
	s.mu.Unlock()

	if credential.IsZero() {
		return ErrNotAuthenticated
	}

	updated, err := s.adapter.UpdateProfile(ctx, identity)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	// re-establish the session with the updated identity and the unchanged
	// credential, so the durable copy stays current too
	return s.Login(ctx, updated, credential)
}

func (s *sessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *sessionService) snapshotLocked() SessionState {
	return SessionState{
		Identity:   s.identity,
		Credential: s.credential,
		Ready:      s.ready,
	}
}

func (s *sessionService) Subscribe(fn func(SessionState)) func() {
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

func (s *sessionService) broadcast(state SessionState) {
	s.subMu.Lock()
	fns := make([]func(SessionState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
