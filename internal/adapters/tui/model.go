package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gifportal/internal/adapters/render/gallery"
	"github.com/bnema/gifportal/internal/application"
	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/logging"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	capabilityMissingAlert = "No wallet found! Create one with `portal wallet new` or import one with `portal wallet import`."
	unavailableHint        = "Run `portal init --save` to create the list account, then reconnect."
	minCardWidth           = 30
)

type sessionChangedMsg struct{}

type viewChangedMsg struct{}

type startedMsg struct{}

type connectResultMsg struct {
	err error
}

type submitResultMsg struct {
	entry domain.Entry
	err   error
}

type Options struct {
	Address domain.ListAddress
}

// Model renders one portal: connect affordance while disconnected, input and grid once connected.
type Model struct {
	ctx    context.Context
	portal *application.Portal
	opts   Options

	input   textinput.Model
	spinner spinner.Model
	styles  styles
	gallery gallery.Styles

	session    domain.SessionState
	view       domain.ListView
	connecting bool
	alert      string
	notice     string
	approval   *approvalRequestMsg
	width      int
}

func NewModel(ctx context.Context, portal *application.Portal, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Enter gif link!"
	input.CharLimit = 512

	return Model{
		ctx:     ctx,
		portal:  portal,
		opts:    opts,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  newStyles(),
		gallery: gallery.NewStyles(),
		session: portal.Session().State(),
		view:    portal.Lists().View(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start())
}

func (m Model) start() tea.Cmd {
	return func() tea.Msg {
		m.portal.Start(m.ctx)
		return startedMsg{}
	}
}

func (m Model) connect() tea.Cmd {
	return func() tea.Msg {
		_, err := m.portal.Session().Connect(logging.WithComponent(m.ctx, "wallet_session"))
		return connectResultMsg{err: err}
	}
}

func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		entry, err := m.portal.Lists().Submit(m.ctx)
		return submitResultMsg{entry: entry, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case approvalRequestMsg:
		m.approval = &msg
		return m, nil

	case sessionChangedMsg, startedMsg:
		return m.syncSession(), nil

	case viewChangedMsg:
		m.view = m.portal.Lists().View()
		return m, nil

	case connectResultMsg:
		m.connecting = false
		m = m.syncSession()
		switch {
		case msg.err == nil, errors.Is(msg.err, domain.ErrConnectInProgress):
		case errors.Is(msg.err, domain.ErrCapabilityMissing):
			m.alert = capabilityMissingAlert
		default:
			m.notice = fmt.Sprintf("Connection failed: %v. Press enter to retry.", msg.err)
		}
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		m.notice = ""
		m.input.Reset()
		m.view = m.portal.Lists().View()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) syncSession() Model {
	m.session = m.portal.Session().State()
	m.view = m.portal.Lists().View()
	if m.session.Connected() && !m.input.Focused() {
		m.input.Focus()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.rejectPendingApproval()
		return m, tea.Quit
	}

	if m.approval != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			m.approval.reply <- true
			m.approval = nil
		case "n", "N", "esc":
			m.approval.reply <- false
			m.approval = nil
		}
		return m, nil
	}

	if m.alert != "" {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.alert = ""
		}
		return m, nil
	}

	if !m.session.Connected() {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter", "c":
			if m.connecting {
				return m, nil
			}
			m.connecting = true
			m.notice = ""
			return m, m.connect()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.portal.Lists().SetInput(m.input.Value())
	return m, cmd
}

func (m *Model) rejectPendingApproval() {
	if m.approval == nil {
		return
	}
	m.approval.reply <- false
	m.approval = nil
}

func (m Model) View() string {
	sections := []string{
		m.styles.header.Render("🖼 GIF Portal"),
		m.styles.subtext.Render("View your GIF collection in the metaverse ✨"),
		"",
	}

	switch {
	case m.approval != nil:
		sections = append(sections, m.styles.modal.Render(fmt.Sprintf(
			"Allow this app to use wallet %s?\n\n[y] approve   [n] decline", m.approval.identity.Short())))
	case m.alert != "":
		sections = append(sections, m.styles.alert.Render(m.alert+"\n\n[enter] dismiss"))
	case m.session.Connected():
		sections = append(sections, m.connectedView())
	default:
		sections = append(sections, m.disconnectedView())
	}

	if m.notice != "" {
		sections = append(sections, "", m.styles.notice.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) disconnectedView() string {
	if m.connecting || m.session.Status == domain.WalletConnecting {
		return m.spinner.View() + " Connecting to wallet…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.button.Render("Connect to Wallet"),
		"",
		m.styles.help.Render("enter: connect • q: quit"),
	)
}

func (m Model) connectedView() string {
	status := m.styles.status.Render("wallet " + m.session.Identity.Short())
	if m.view.Loading {
		status += " " + m.spinner.View()
	}

	lines := []string{
		status,
		lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", m.styles.button.Render("Submit")),
		"",
		gallery.RenderView(m.view, gallery.RenderOptions{
			Address:   m.opts.Address,
			Columns:   m.columns(),
			CardWidth: minCardWidth + 8,
			Plain:     true,
		}, m.gallery),
	}
	if !m.view.Available && !m.view.Loading {
		lines = append(lines, m.styles.help.Render(unavailableHint))
	}
	lines = append(lines, "", m.styles.help.Render("enter: submit • esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) columns() int {
	if m.width <= 0 {
		return 2
	}
	columns := m.width / (minCardWidth + 8)
	if columns < 1 {
		return 1
	}
	return columns
}
