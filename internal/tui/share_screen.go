package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/myrinnew/wpkit/internal/categories"
	"github.com/myrinnew/wpkit/internal/wpapi"
)

type categoriesLoadedMsg struct {
	cats []wpapi.Category
	err  error
}

type draftCreatedMsg struct {
	res wpapi.DraftResult
	err error
}

type sharePhase int

const (
	shareLoading sharePhase = iota
	sharePicking
	shareSubmitting
	shareDone
	shareFailed
)

type shareModel struct {
	deps   Deps
	draft  wpapi.Draft
	phase  sharePhase
	picker *categories.Picker
	query  textinput.Model
	status string
	result wpapi.DraftResult
}

func newShareModel(deps Deps, draft wpapi.Draft) shareModel {
	q := textinput.New()
	q.Placeholder = "filter categories"
	q.Prompt = "/ "
	return shareModel{deps: deps, draft: draft, phase: shareLoading, query: q}
}

func (m shareModel) loadCategories() tea.Cmd {
	return func() tea.Msg {
		cats, err := m.deps.API.Categories(context.Background(), m.deps.Cfg.Site.ID)
		if err != nil {
			m.deps.logger().Error("category fetch failed", "site", m.deps.Cfg.Site.ID, "err", err)
		}
		return categoriesLoadedMsg{cats: cats, err: err}
	}
}

func (m shareModel) submitDraft() tea.Cmd {
	draft := m.draft
	draft.Categories = m.picker.SelectedIDs()
	return func() tea.Msg {
		res, err := m.deps.API.CreateDraft(context.Background(), m.deps.Cfg.Site.ID, draft)
		if err != nil {
			m.deps.logger().Error("draft create failed", "site", m.deps.Cfg.Site.ID, "err", err)
		}
		return draftCreatedMsg{res: res, err: err}
	}
}

func (m shareModel) Init() tea.Cmd {
	return m.loadCategories()
}

func (m shareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.err != nil {
			m.phase = shareFailed
			m.status = fmt.Sprintf("Couldn't load categories: %v", msg.err)
			return m, nil
		}
		m.picker = categories.NewPicker(msg.cats)
		m.phase = sharePicking
		return m, nil

	case draftCreatedMsg:
		if msg.err != nil {
			m.phase = shareFailed
			m.status = fmt.Sprintf("Couldn't save draft: %v", msg.err)
			return m, nil
		}
		m.phase = shareDone
		m.result = msg.res
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m shareModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case shareFailed:
		if key == "q" || key == "esc" {
			return m, tea.Quit
		}
		return m, nil

	case sharePicking:
		if m.query.Focused() {
			switch key {
			case "enter", "esc":
				m.query.Blur()
			default:
				var cmd tea.Cmd
				m.query, cmd = m.query.Update(msg)
				m.picker.SetQuery(m.query.Value())
				return m, cmd
			}
			return m, nil
		}

		switch key {
		case "/":
			m.query.Focus()
			return m, textinput.Blink
		default:
			res := m.picker.HandleKey(key)
			switch res.Action {
			case categories.ActionConfirmed:
				m.phase = shareSubmitting
				return m, m.submitDraft()
			case categories.ActionCancelled:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m shareModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Share: pick categories"))
	b.WriteString("\n\n")

	switch m.phase {
	case shareLoading:
		b.WriteString("Loading categories…\n")

	case shareFailed:
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("q quit"))

	case shareSubmitting:
		b.WriteString("Saving draft…\n")

	case shareDone:
		b.WriteString(fmt.Sprintf("Draft %d saved.\n", m.result.ID))

	case sharePicking:
		b.WriteString(m.query.View())
		b.WriteString("\n\n")
		items := m.picker.Items()
		if len(items) == 0 {
			b.WriteString(dimStyle.Render("no categories match"))
			b.WriteString("\n")
		}
		for i, it := range items {
			cursor := "  "
			if i == m.picker.Cursor() {
				cursor = cursorStyle.Render("> ")
			}
			mark := "[ ]"
			if m.picker.IsSelected(it.ID) {
				mark = selectedStyle.Render("[x]")
			}
			indent := strings.Repeat("  ", it.Depth)
			b.WriteString(fmt.Sprintf("%s%s %s%s\n", cursor, mark, indent, it.Label))
		}
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("space toggle · / filter · enter save · esc cancel"))
	}
	return b.String()
}

// RunShare shows the category picker and saves the draft on confirm.
func RunShare(deps Deps, draft wpapi.Draft) error {
	_, err := tea.NewProgram(newShareModel(deps, draft), tea.WithAltScreen()).Run()
	return err
}
