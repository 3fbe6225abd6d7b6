package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/logging"
	"github.com/bnema/gifportal/internal/ports"
)

// TransitionListener receives wallet status changes. It runs on the goroutine that caused the
// change and must not block.
type TransitionListener func(ctx context.Context, transition domain.Transition)

// WalletSession is the single authority on whether an authenticated identity exists.
type WalletSession struct {
	wallet ports.WalletProvider

	mu        sync.Mutex
	state     domain.SessionState
	listeners []TransitionListener
}

func NewWalletSession(wallet ports.WalletProvider) *WalletSession {
	return &WalletSession{
		wallet: wallet,
		state:  domain.SessionState{Status: domain.WalletDisconnected},
	}
}

func (s *WalletSession) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *WalletSession) Identity() (domain.Identity, bool) {
	state := s.State()
	return state.Identity, state.Connected()
}

func (s *WalletSession) Subscribe(listener TransitionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// ProbeExistingTrust asks the wallet, without prompting, for a previously trusted connection.
// Failures are logged and leave the session disconnected.
func (s *WalletSession) ProbeExistingTrust(ctx context.Context) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	if s.state.Status != domain.WalletDisconnected {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if s.wallet == nil || !s.wallet.Available(ctx) {
		log.Info().Msg("no wallet found; waiting for an explicit connect")
		return
	}

	identity, err := s.wallet.Connect(ctx, ports.ConnectOptions{OnlyIfTrusted: true})
	if err != nil {
		if errors.Is(err, domain.ErrNotTrusted) {
			log.Debug().Msg("wallet has not trusted this app yet")
		} else {
			log.Warn().Err(err).Msg("probe existing wallet trust")
		}
		return
	}

	log.Info().Str("identity", identity.String()).Msg("wallet reconnected from existing trust")
	s.transition(ctx, domain.WalletDisconnected, domain.SessionState{Status: domain.WalletConnected, Identity: identity}, nil)
}

// Connect requests an interactive connection. A connected session returns its identity unchanged.
func (s *WalletSession) Connect(ctx context.Context) (domain.Identity, error) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	current := s.state
	s.mu.Unlock()

	switch current.Status {
	case domain.WalletConnected:
		return current.Identity, nil
	case domain.WalletConnecting:
		return "", domain.ErrConnectInProgress
	}

	if s.wallet == nil || !s.wallet.Available(ctx) {
		return "", domain.ErrCapabilityMissing
	}

	if !s.transition(ctx, current.Status, domain.SessionState{Status: domain.WalletConnecting}, nil) {
		if state := s.State(); state.Connected() {
			return state.Identity, nil
		}
		return "", domain.ErrConnectInProgress
	}

	identity, err := s.wallet.Connect(ctx, ports.ConnectOptions{})
	if err == nil && identity == "" {
		err = errors.New("wallet returned an empty public key")
	}
	if err != nil {
		if errors.Is(err, domain.ErrCapabilityMissing) {
			s.transition(ctx, domain.WalletConnecting, domain.SessionState{Status: current.Status}, err)
			return "", err
		}

		rejected := err
		if !errors.Is(err, domain.ErrAuthRejected) {
			rejected = fmt.Errorf("%w: %w", domain.ErrAuthRejected, err)
		}
		log.Warn().Err(err).Msg("wallet connect failed")
		s.transition(ctx, domain.WalletConnecting, domain.SessionState{Status: domain.WalletFailed}, rejected)
		return "", rejected
	}

	log.Info().Str("identity", identity.String()).Msg("wallet connected")
	s.transition(ctx, domain.WalletConnecting, domain.SessionState{Status: domain.WalletConnected, Identity: identity}, nil)
	return identity, nil
}

// transition moves from the expected status to next and notifies listeners outside the lock.
// It reports false when another goroutine changed the status first.
func (s *WalletSession) transition(ctx context.Context, from domain.WalletStatus, next domain.SessionState, cause error) bool {
	s.mu.Lock()
	if s.state.Status != from {
		s.mu.Unlock()
		return false
	}
	if next.Status != domain.WalletConnected {
		next.Identity = ""
	}
	s.state = next
	listeners := append([]TransitionListener(nil), s.listeners...)
	s.mu.Unlock()

	event := domain.Transition{From: from, To: next.Status, State: next, Err: cause}
	for _, listener := range listeners {
		listener(ctx, event)
	}

	return true
}
