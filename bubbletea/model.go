package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/linkspan"
	"github.com/fwojciec/linkspan/layout"
	"github.com/fwojciec/linkspan/render"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the link viewer.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	doc     *linkspan.Result
	theme   linkspan.Theme
	styles  render.Styles
	opener  linkspan.URLOpener
	measure linkspan.Measurer

	layout *layout.Layout
	focus  int // index of focused link (-1 = none)

	mouseEnabled bool
	status       string
	err          error
	ready        bool
}

// New creates a viewer Model for doc. Clicking a link, or focusing one with
// Tab and pressing Enter, opens its URL via opener.
func New(doc *linkspan.Result, theme linkspan.Theme, opener linkspan.URLOpener) Model {
	return Model{
		doc:          doc,
		theme:        theme,
		styles:       render.NewStyles(theme),
		opener:       opener,
		measure:      layout.CellMeasurer{},
		focus:        -1,
		mouseEnabled: true,
	}
}

// SetMeasurer overrides the text measurer used for layout; for tests.
func (m Model) SetMeasurer(measurer linkspan.Measurer) Model {
	m.measure = measurer
	return m
}

// MouseEnabled reports whether mouse support is on.
func (m Model) MouseEnabled() bool { return m.mouseEnabled }

// Focus returns the index of the focused link, or -1.
func (m Model) Focus() int { return m.focus }

// Err returns the last open error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mouseEnabled && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m = m.handleClick(msg)
		}
	}

	// Remaining messages reach the viewport for scrolling (wheel included).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1 // newline between sections
	vpHeight := msg.Height - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	// Re-wrap at the new width. Rectangles only stay valid against the
	// layout they came from, so focus is clamped but kept.
	m.layout = layout.New(m.doc, msg.Width, m.measure)
	if m.focus >= len(m.layout.Links()) {
		m.focus = -1
	}
	m.Viewport.SetContent(m.content())
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		return m.cycleFocus(1), nil

	case tea.KeyShiftTab:
		return m.cycleFocus(-1), nil

	case tea.KeyEnter:
		return m.openFocused(), nil

	case tea.KeyRunes:
		if msg.Alt && string(msg.Runes) == "m" {
			return m.toggleMouse()
		}
		if string(msg.Runes) == "q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// handleClick translates a click through the viewport scroll offset into
// layout coordinates and opens the link under it, if any.
func (m Model) handleClick(msg tea.MouseMsg) Model {
	if m.layout == nil || msg.Y >= m.Viewport.Height {
		return m
	}
	url, ok := m.layout.HitTest(msg.X, msg.Y+m.Viewport.YOffset)
	if !ok {
		return m
	}
	return m.open(url)
}

// cycleFocus moves link focus by dir, skipping inert links.
func (m Model) cycleFocus(dir int) Model {
	if m.layout == nil {
		return m
	}
	links := m.layout.Links()
	n := len(links)
	if n == 0 {
		return m
	}
	i := m.focus
	for range links {
		i += dir
		switch {
		case i >= n:
			i = 0
		case i < 0:
			i = n - 1
		}
		if !links[i].Inert() {
			m.focus = i
			m.Viewport.SetContent(m.content())
			return m.scrollToFocus()
		}
	}
	return m
}

// scrollToFocus scrolls the viewport so the focused link's first line is
// visible.
func (m Model) scrollToFocus() Model {
	links := m.layout.Links()
	if m.focus < 0 || m.focus >= len(links) {
		return m
	}
	top := links[m.focus].Rect.MinY
	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.SetYOffset(top)
	case top >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(top - m.Viewport.Height + 1)
	}
	return m
}

func (m Model) openFocused() Model {
	if m.layout == nil || m.focus < 0 {
		return m
	}
	links := m.layout.Links()
	if m.focus >= len(links) || links[m.focus].Inert() {
		return m
	}
	return m.open(links[m.focus].URL)
}

func (m Model) open(url string) Model {
	m.err = nil
	m.status = ""
	if err := m.opener.Open(url); err != nil {
		m.err = err
		return m
	}
	m.status = "opened " + url
	return m
}

func (m Model) toggleMouse() (tea.Model, tea.Cmd) {
	m.mouseEnabled = !m.mouseEnabled
	if m.mouseEnabled {
		return m, tea.EnableMouseCellMotion
	}
	return m, tea.DisableMouse
}

func (m Model) content() string {
	return render.DocumentFocus(m.layout, m.styles, m.focus)
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	hint := "Tab: next link · Enter: open · q: quit"
	if !m.mouseEnabled {
		hint += " · Alt+M: mouse on"
	}
	if m.status != "" {
		return m.styles.Muted.Render(m.status + " · " + hint)
	}
	return m.styles.Muted.Render(hint)
}
