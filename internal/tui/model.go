// Package tui renders a notice board list in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nrfta/noticeboard-go"
	"github.com/nrfta/noticeboard-go/board"
	"github.com/nrfta/noticeboard-go/history"
)

// loadedMsg reports that a fetch finished. The controller has already
// applied or discarded the result.
type loadedMsg struct {
	err error
}

// Model is the Bubble Tea model for the list view.
type Model struct {
	ctx     context.Context
	ctrl    *board.Controller
	input   textinput.Model
	styles  *Styles
	cursor  int
	loading bool
	err     error
	handoff *history.Handoff
}

// New creates a model driving ctrl. The search input starts with the
// controller's staged keyword.
func New(ctx context.Context, ctrl *board.Controller) Model {
	input := textinput.New()
	input.Placeholder = "search title or content"
	input.Prompt = "search: "
	input.SetValue(ctrl.State().StagedKeyword)
	input.Focus()

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		input:  input,
		styles: NewStyles(),
	}
}

// Handoff returns the hand-off of the notice opened with tab, or nil.
func (m Model) Handoff() *history.Handoff {
	return m.handoff
}

// Init performs the initial fetch.
func (m Model) Init() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Mount(ctx)}
	}
}

func (m Model) load(req board.Request) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Load(ctx, req)}
	}
}

// Update handles key presses and fetch completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.ctrl.Keystroke(m.input.Value())
			req := m.ctrl.BeginSearch()
			m.cursor = 0
			if !m.ctrl.Identified() {
				return m, nil
			}
			m.loading = true
			return m, m.load(req)

		case "pgdown", "ctrl+n":
			view := m.ctrl.View()
			if view.Page < view.TotalPages {
				_ = m.ctrl.ChangePage(view.Page + 1)
				m.cursor = 0
			}
			return m, nil

		case "pgup", "ctrl+p":
			view := m.ctrl.View()
			if view.Page > 1 {
				_ = m.ctrl.ChangePage(view.Page - 1)
				m.cursor = 0
			}
			return m, nil

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			m.cursor++
			m.clampCursor()
			return m, nil

		case "tab":
			rows := m.ctrl.View().Rows
			if len(rows) == 0 {
				return m, nil
			}
			handoff, ok := m.ctrl.Select(rows[m.cursor].Node.ID)
			if !ok {
				return m, nil
			}
			m.handoff = &handoff
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.Keystroke(m.input.Value())
	return m, cmd
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.View().Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the list.
func (m Model) View() string {
	view := m.ctrl.View()
	var b strings.Builder

	title := "Notices"
	if view.CanAuthor {
		title += " " + m.styles.AdminHint.Render("(admin: write enabled)")
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if view.Banner != "" {
		b.WriteString(m.styles.Banner.Render(view.Banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(view.Rows) == 0 {
		style := m.styles.Empty
		if view.Status == noticeboard.StatusFetchFailed {
			style = m.styles.Error
		}
		b.WriteString(style.Render(view.EmptyText()))
		b.WriteString("\n")
	}

	for i, row := range view.Rows {
		line := formatRow(row)
		switch {
		case i == m.cursor:
			line = m.styles.Selected.Render(line)
		case row.Marker.Pinned:
			line = m.styles.Pinned.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if view.ShowPager {
		b.WriteString(m.styles.Pager.Render(fmt.Sprintf("page %d/%d", view.Page, view.TotalPages)))
		b.WriteString("\n")
	}
	if m.loading {
		b.WriteString(m.styles.Dim.Render("loading..."))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("enter search • pgup/pgdown page • ↑/↓ move • tab open • esc quit"))
	return b.String()
}

func formatRow(row noticeboard.Row[noticeboard.Notice]) string {
	n := row.Node
	date := ""
	if !n.NoticeDate.IsZero() {
		date = n.NoticeDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%4s  %-40s  %-14s  %10s  %5d", row.Marker, n.Title, n.Author(), date, n.ViewCount)
}
