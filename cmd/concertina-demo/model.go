package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/concertina/accordion"
	"github.com/tinytelemetry/concertina/transition"
)

// panelsMsg carries a freshly published accordion State back into the
// model.
type panelsMsg struct {
	state accordion.State
}

func toPanelsMsg(s accordion.State) tea.Msg {
	return panelsMsg{state: s}
}

// sampleMsg delivers one reading from the feed goroutine.
type sampleMsg struct {
	sample feedSample
}

// appModel is the demo's top-level Bubble Tea model. The accordion state is
// owned here and threaded through every panel call.
type appModel struct {
	keys  keyMap
	help  help.Model
	acc   *accordion.Accordion
	spec  transition.Spec
	state accordion.State

	title string
	cards []accordion.Card
	feed  *metricsFeed

	width   int
	height  int
	animate bool
	focused int
	opened  bool
}

func newApp(cfg cliConfig, acc *accordion.Accordion, spec transition.Spec, title string, cards []accordion.Card, feed *metricsFeed) *appModel {
	return &appModel{
		keys:    defaultKeyMap(),
		help:    help.New(),
		acc:     acc,
		spec:    spec,
		state:   accordion.InitialState(),
		title:   title,
		cards:   cards,
		feed:    feed,
		animate: cfg.Animation,
	}
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

// panelConfig builds the accordion configuration for the current update
// cycle. The same value must feed View, HandleMouse, Toggle, and Sync so
// measurement and display agree.
func (m *appModel) panelConfig() accordion.Config {
	return accordion.Config{
		ToMsg:         toPanelsMsg,
		WithAnimation: m.animate,
		Cards:         m.cards,
		Width:         m.contentWidth(),
		Focus:         m.focusedID(),
	}
}

func (m *appModel) contentWidth() int {
	w := m.width - appStyle.GetHorizontalFrameSize()
	if w < 20 {
		w = 20
	}
	return w
}

func (m *appModel) focusedID() string {
	if m.focused < 0 || m.focused >= len(m.cards) {
		return ""
	}
	return m.cards[m.focused].ID()
}

func (m *appModel) moveFocus(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.focused = (m.focused + delta + len(m.cards)) % len(m.cards)
}

func (m *appModel) toggleCard(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	// Decode failures are logged by the component; the view stays as is.
	cmd, err := m.acc.Toggle(m.state, m.panelConfig(), id)
	if err != nil {
		return nil
	}
	return cmd
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Open the lead card once the first real size arrives.
		if !m.opened && len(m.cards) > 0 {
			m.opened = true
			return m, m.toggleCard(m.cards[0].ID())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		cmd, err := m.acc.HandleMouse(m.state, m.panelConfig(), msg)
		if err != nil {
			return m, nil
		}
		return m, cmd

	case panelsMsg:
		m.state = msg.state
		cfg := m.panelConfig()
		return m, tea.Batch(
			accordion.Subscriptions(m.state, toPanelsMsg),
			m.acc.Sync(m.state, cfg),
		)

	case sampleMsg:
		m.feed.push(msg.sample)
		return m, nil
	}

	return m, m.acc.Update(msg)
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextCard):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCard):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Animate):
		m.animate = !m.animate
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleCard(m.focusedID())

	case key.Matches(msg, m.keys.ByNumber):
		s := msg.String()
		if len(s) != 1 {
			return m, nil
		}
		idx := int(s[0] - '1')
		if idx < 0 || idx >= len(m.cards) {
			return m, nil
		}
		return m, m.toggleCard(m.cards[idx].ID())
	}

	return m, nil
}

func (m *appModel) View() string {
	if m.width <= 0 {
		return "loading..."
	}

	sections := []string{
		titleStyle.Render(m.title),
		m.acc.View(m.state, m.panelConfig()),
		m.statusLine(),
		m.help.View(m.keys),
	}
	frame := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Scan last, against the composed frame, so the toggle zones resolve
	// at their absolute positions.
	return m.acc.Scan(appStyle.Render(frame))
}

func (m *appModel) statusLine() string {
	mode := "animation off"
	if m.animate {
		mode = fmt.Sprintf("animation %v %s", m.spec.Duration, m.spec.Curve)
	}
	return statusStyle.Render(mode)
}
