package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/myrinnew/wpkit/internal/plans"
)

type plansLoadedMsg struct {
	state plans.State
}

type plansModel struct {
	deps    Deps
	spinner spinner.Model
	state   plans.State
	cursor  int
	width   int
}

func newPlansModel(deps Deps) plansModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return plansModel{
		deps:    deps,
		spinner: sp,
		state:   plans.Loading(),
	}
}

func (m plansModel) loadPlans() tea.Cmd {
	return func() tea.Msg {
		loader := plans.NewLoader(m.deps.API, m.deps.Cfg.Site.ID, m.deps.logger())
		return plansLoadedMsg{state: loader.Load(context.Background())}
	}
}

func (m plansModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPlans())
}

func (m plansModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case plansLoadedMsg:
		m.state = msg.state
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase() != plans.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if rows := m.state.Rows(); m.cursor < len(rows)-1 {
				m.cursor++
			}
		case "r":
			if m.state.Phase() == plans.PhaseFailed {
				m.state = plans.Loading()
				return m, tea.Batch(m.spinner.Tick, m.loadPlans())
			}
		}
	}
	return m, nil
}

func (m plansModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Plans"))
	b.WriteString("\n\n")

	switch m.state.Phase() {
	case plans.PhaseLoading:
		b.WriteString(fmt.Sprintf("%s Loading plans…\n", m.spinner.View()))

	case plans.PhaseFailed:
		b.WriteString(errorStyle.Render(m.state.Message()))
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("r retry · q quit"))

	case plans.PhaseReady:
		for i, row := range m.state.Rows() {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			name := row.Plan.Name
			if m.state.IsActive(row) {
				name = activeStyle.Render(name + " ✓")
			}
			b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, priceStyle.Render(row.Price)))
		}
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("↑/↓ move · q quit"))
	}
	return b.String()
}

// RunPlans shows the plan list screen.
func RunPlans(deps Deps) error {
	_, err := tea.NewProgram(newPlansModel(deps), tea.WithAltScreen()).Run()
	return err
}
