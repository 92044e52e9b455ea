package main

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/asciiart/art"
)

// runPreview shows a in a full-screen viewer until the user quits.
func runPreview(ctx context.Context, a *art.Art) error {
	p := tea.NewProgram(newPreviewModel(a), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	return nil
}

// previewModel is the bubbletea model for the full-screen viewer. Art larger
// than the window can be scrolled.
type previewModel struct {
	lines  []string
	buf    strings.Builder
	width  int
	height int
	cols   int
	rows   int
	x      int
	y      int
}

func newPreviewModel(a *art.Art) *previewModel {
	return &previewModel{
		lines:  strings.Split(strings.TrimSuffix(a.String(), "\n"), "\n"),
		width:  a.Width,
		height: a.Height(),
	}
}

// Init implements [tea.Model].
func (m *previewModel) Init() tea.Cmd {
	return nil
}

// Update handles resize, scroll, and quit messages.
func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.y--
		case "down", "j":
			m.y++
		case "left", "h":
			m.x--
		case "right", "l":
			m.x++
		case "home", "g":
			m.x, m.y = 0, 0
		}

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
	}

	m.clamp()

	return m, nil
}

// View renders the visible part of the art.
func (m *previewModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

// viewRows is the number of art rows that fit above the status line, or -1
// before the window size is known.
func (m *previewModel) viewRows() int {
	if m.rows == 0 {
		return -1
	}

	return max(m.rows-1, 0)
}

func (m *previewModel) clamp() {
	maxY := 0
	if n := m.viewRows(); n >= 0 {
		maxY = max(len(m.lines)-n, 0)
	}

	maxX := 0
	if m.cols > 0 {
		maxX = max(m.width-m.cols, 0)
	}

	m.y = min(max(m.y, 0), maxY)
	m.x = min(max(m.x, 0), maxX)
}

func (m *previewModel) render() string {
	m.buf.Reset()

	end := len(m.lines)
	if n := m.viewRows(); n >= 0 {
		end = min(m.y+n, end)
	}

	for _, line := range m.lines[m.y:end] {
		if m.x < len(line) {
			line = line[m.x:]
		} else {
			line = ""
		}

		if m.cols > 0 && len(line) > m.cols {
			line = line[:m.cols]
		}

		m.buf.WriteString(line)
		m.buf.WriteByte('\n')
	}

	fmt.Fprintf(&m.buf, "%dx%d  arrows scroll, q quits", m.width, m.height)

	return m.buf.String()
}
