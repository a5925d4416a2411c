package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/seek/internal/domain"
)

type stage int

const (
	stageLength stage = iota
	stageTarget
	stageRunning
	stageResult
)

type model struct {
	ctx   context.Context
	theme Theme
	deps  Deps

	stg    stage
	length textinput.Model
	target textinput.Model
	spin   spinner.Model

	req   domain.SearchRequest
	run   domain.RunArtifact
	runID string
	err   error
	toast string

	workspaceFound bool
	workspaceRoot  string
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, deps Deps) error {
	m := newModel(ctx, deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	if ctx == nil {
		ctx = context.Background()
	}

	length := textinput.New()
	length.Placeholder = strconv.Itoa(deps.Limits.DefaultLength)
	length.Prompt = "Length: "
	length.CharLimit = 12
	length.Width = 16
	length.Focus()

	target := textinput.New()
	target.Placeholder = "e.g. 42"
	target.Prompt = "Target: "
	target.CharLimit = 12
	target.Width = 16

	return model{
		ctx:    ctx,
		theme:  DefaultTheme(),
		deps:   deps,
		stg:    stageLength,
		length: length,
		target: target,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdRefreshWorkspace(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case searchDoneMsg:
		m.stg = stageResult
		m.run = msg.run
		m.runID = msg.id
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.stg != stageRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInput(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.stg == stageTarget {
			m.stg = stageLength
			m.toast = ""
			m.target.Blur()
			cmd := m.length.Focus()
			return m, cmd
		}
		if m.stg != stageRunning {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.stg {
	case stageLength:
		if msg.Type == tea.KeyEnter {
			return m.submitLength()
		}
	case stageTarget:
		if msg.Type == tea.KeyEnter {
			return m.submitTarget()
		}
	case stageRunning:
		return m, nil
	case stageResult:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r", "enter":
			return m.restart()
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stg {
	case stageLength:
		m.length, cmd = m.length.Update(msg)
	case stageTarget:
		m.target, cmd = m.target.Update(msg)
	}
	return m, cmd
}

func (m model) submitLength() (tea.Model, tea.Cmd) {
	n, err := parseLength(m.length.Value(), m.deps.Limits)
	if err != nil {
		m.toast = userMessage(err)
		return m, nil
	}
	m.req.Length = n
	m.stg = stageTarget
	m.toast = ""
	m.length.Blur()
	cmd := m.target.Focus()
	return m, cmd
}

func (m model) submitTarget() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.target.Value())
	t, err := strconv.Atoi(raw)
	if err != nil {
		m.toast = userMessage(domain.InvalidInput("tui.target", "target %q is not an integer", raw))
		return m, nil
	}
	m.req.Target = t
	m.toast = ""
	m.target.Blur()
	m.stg = stageRunning
	return m, tea.Batch(m.spin.Tick, cmdSearch(m.ctx, m.deps, m.req))
}

func (m model) restart() (tea.Model, tea.Cmd) {
	m.stg = stageLength
	m.req = domain.SearchRequest{}
	m.run = domain.RunArtifact{}
	m.runID = ""
	m.err = nil
	m.toast = ""
	m.length.Reset()
	m.target.Reset()
	m.target.Blur()
	cmd := m.length.Focus()
	return m, cmd
}

// parseLength accepts an empty value as the configured default length.
func parseLength(raw string, limits domain.GeneratorConfig) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return limits.DefaultLength, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidInput("tui.length", "length %q is not an integer", raw)
	}
	if n < 0 {
		return 0, domain.InvalidInput("tui.length", "length %d is negative", n)
	}
	if limits.MaxLength > 0 && n > limits.MaxLength {
		return 0, domain.InvalidInput("tui.length", "length %d exceeds max length %d", n, limits.MaxLength)
	}
	return n, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Seek") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("Linear search over random integers in [%d, %d]", m.deps.Limits.Min, m.deps.Limits.Max)) + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Help.Render("No workspace found; runs are not saved (seek init)")
	}

	var body, help string
	switch m.stg {
	case stageLength, stageTarget:
		body = m.length.View() + "\n" + m.target.View()
		help = "enter next • esc back/quit • ctrl+c quit"

	case stageRunning:
		body = m.spin.View() + " Searching..."
		help = "ctrl+c quit"

	case stageResult:
		body = m.renderResult()
		help = "r again • q quit"

	default:
		body = "unknown state"
	}

	out := header + "\n" + banner + "\n\n" + m.theme.Card.Render(body) + "\n"
	if m.toast != "" {
		out += m.theme.Error.Render(m.toast) + "\n"
	}
	out += m.theme.Help.Render(help)
	return wrap.Render(out)
}

func (m model) renderResult() string {
	if m.err != nil && m.run.Sequence == nil {
		return m.theme.Error.Render(userMessage(m.err))
	}

	var b strings.Builder
	b.WriteString(clampString(m.run.Sequence.String(), maxSequenceRunes))
	b.WriteString("\n\n")
	if m.run.Result.Found {
		b.WriteString(m.theme.Found.Render(m.run.Result.Sentence()))
	} else {
		b.WriteString(m.theme.Missing.Render(m.run.Result.Sentence()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(renderRunDetails(m.run, m.runID)))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(userMessage(m.err)))
	}
	return b.String()
}
