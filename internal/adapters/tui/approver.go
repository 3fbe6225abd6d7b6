package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoProgram = errors.New("approval prompt is not attached to a running program")

type approvalRequestMsg struct {
	identity domain.Identity
	reply    chan bool
}

// ModalApprover asks for connection approval through a modal in the running program.
type ModalApprover struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ ports.ConnectionApprover = (*ModalApprover)(nil)

func NewModalApprover() *ModalApprover {
	return &ModalApprover{}
}

func (a *ModalApprover) Attach(send func(tea.Msg)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.send = send
}

func (a *ModalApprover) Detach() {
	a.Attach(nil)
}

func (a *ModalApprover) ApproveConnection(ctx context.Context, identity domain.Identity) (bool, error) {
	a.mu.Lock()
	send := a.send
	a.mu.Unlock()

	if send == nil {
		return false, ErrNoProgram
	}

	reply := make(chan bool, 1)
	send(approvalRequestMsg{identity: identity, reply: reply})

	select {
	case approved := <-reply:
		return approved, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
