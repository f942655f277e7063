// Package ui renders verification progress with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"stdsynth/internal/driver"
	"stdsynth/internal/symbols"
)

type progressModel struct {
	title   string
	events  <-chan driver.ProgressEvent
	spinner spinner.Model
	prog    progress.Model
	rows    []nsRow
	index   map[symbols.Namespace]int
	total   int
	done    int
	lastSym string
	width   int
	closed  bool
}

type nsRow struct {
	ns     symbols.Namespace
	total  int
	done   int
	failed []string
}

func (r nsRow) status() string {
	switch {
	case len(r.failed) > 0:
		return "failed"
	case r.done == r.total:
		return "done"
	case r.done > 0:
		return "verifying"
	default:
		return "queued"
	}
}

type eventMsg driver.ProgressEvent
type doneMsg struct{}

// NewProgressModel returns a model showing one row per namespace of syms.
// It quits when events is closed.
func NewProgressModel(title string, syms []symbols.Symbol, events <-chan driver.ProgressEvent) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		index:   make(map[symbols.Namespace]int),
		total:   len(syms),
		width:   80,
	}
	for _, sym := range syms {
		ns := sym.Namespace()
		idx, ok := m.index[ns]
		if !ok {
			idx = len(m.rows)
			m.index[ns] = idx
			m.rows = append(m.rows, nsRow{ns: ns})
		}
		m.rows[idx].total++
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.ProgressEvent(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s %d/%d", m.title, m.done, m.total)
	if m.closed {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
		if m.lastSym != "" {
			header += "  " + m.lastSym
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-12-4-10, 20)
	for _, row := range m.rows {
		status := row.status()
		statusStyled := styleStatus(status).Render(fmt.Sprintf("%12s", status))
		counts := fmt.Sprintf("%3d/%-3d", row.done, row.total)
		name := row.ns.String()
		if len(row.failed) > 0 {
			name += ": " + strings.Join(row.failed, ", ")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", statusStyled, counts, truncate(name, nameWidth))
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.ProgressEvent) tea.Cmd {
	idx, ok := m.index[ev.Symbol.Namespace()]
	if !ok {
		return nil
	}
	row := &m.rows[idx]
	row.done++
	if ev.Failed {
		row.failed = append(row.failed, ev.Symbol.Name())
	}
	m.done++
	m.lastSym = ev.Symbol.String()
	if m.total == 0 {
		return nil
	}
	return m.prog.SetPercent(float64(m.done) / float64(m.total))
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "failed":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "verifying":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
