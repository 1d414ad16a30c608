// Package tui is the terminal window of the genealogy tool: a scrollable output area,
// an input field and an Execute button.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/outofforest/genealogy/interpreter"
)

// Rows taken by everything except the output area: title, borders, input, button, help.
const chromeHeight = 10

// Interpreter executes commands.
type Interpreter interface {
	Submit(line string) interpreter.Response
	WelcomeBanner() string
}

// Model is the bubbletea model of the window.
type Model struct {
	interp Interpreter
	title  string

	input  textinput.Model
	output viewport.Model
	ready  bool
	width  int

	// Text accumulated in the output area.
	content []string
}

// New creates the window model. The output area starts with the welcome banner.
func New(interp Interpreter, title string) Model {
	ti := textinput.New()
	ti.Placeholder = "root name"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		interp:  interp,
		title:   title,
		input:   ti,
		content: []string{interp.WelcomeBanner()},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.execute()
			return m, nil

		case "ctrl+l":
			m.content = nil
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.output = viewport.New(msg.Width-4, height)
			m.ready = true
		} else {
			m.output.Width = msg.Width - 4
			m.output.Height = height
		}
		m.input.Width = msg.Width - 8
		m.refresh()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the window.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(m.title),
		OutputStyle.Render(m.output.View()),
		lipgloss.JoinHorizontal(lipgloss.Top,
			InputStyle.Width(max(m.width-16, 10)).Render(m.input.View()),
			ButtonStyle.Render("Execute"),
		),
		HelpStyle.Render("enter: execute • ctrl+l: clear • pgup/pgdn: scroll • esc: quit"),
	)
}

// Output returns the text accumulated in the output area.
func (m Model) Output() string {
	return strings.Join(m.content, "\n")
}

func (m *Model) execute() {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return
	}

	resp := m.interp.Submit(line)
	if resp.Clear {
		m.content = nil
	} else {
		m.content = append(m.content, CommandStyle.Render("> "+line))
	}
	if resp.Text != "" {
		m.content = append(m.content, resp.Text)
	}
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.output.SetContent(m.Output())
	m.output.GotoBottom()
}
