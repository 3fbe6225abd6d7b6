package application

import (
	"context"
	"sync"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/logging"
)

// Portal owns one wallet session and the list synchronizer that follows it.
type Portal struct {
	session   *WalletSession
	lists     *ListSynchronizer
	startOnce sync.Once
}

func NewPortal(session *WalletSession, lists *ListSynchronizer) *Portal {
	p := &Portal{session: session, lists: lists}
	session.Subscribe(p.onTransition)

	return p
}

func (p *Portal) Session() *WalletSession {
	return p.session
}

func (p *Portal) Lists() *ListSynchronizer {
	return p.lists
}

// Start runs the silent trust probe. Later calls are no-ops.
func (p *Portal) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		p.session.ProbeExistingTrust(logging.WithComponent(ctx, "wallet_session"))
	})
}

func (p *Portal) onTransition(ctx context.Context, transition domain.Transition) {
	if transition.To != domain.WalletConnected {
		return
	}

	p.lists.OnAuthenticated(ctx, transition.State.Identity)
}
