package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gifportal/internal/application"
	"github.com/bnema/gifportal/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the portal in a full-screen program until the user quits or ctx ends.
func Run(ctx context.Context, portal *application.Portal, approver *ModalApprover, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, portal, opts), tea.WithContext(ctx), tea.WithAltScreen())

	if approver != nil {
		approver.Attach(p.Send)
		defer approver.Detach()
	}
	portal.Session().Subscribe(func(context.Context, domain.Transition) { p.Send(sessionChangedMsg{}) })
	portal.Lists().Subscribe(func(domain.ListView) { p.Send(viewChangedMsg{}) })

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run portal ui: %w", err)
	}

	return nil
}
