package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of rows reserved below the transcript for
// the input line and the help bar.
const chromeHeight = 3

// Model is the Bubble Tea model for the assistant session: a scrolling
// transcript above a single input line.
type Model struct {
	input      textinput.Model
	transcript viewport.Model
	help       help.Model
	keys       sessionKeys

	prompt   string
	eval     EvalFunc
	lines    []string
	ready    bool // Set after the first WindowSizeMsg.
	quitting bool
}

// NewModel creates a Model that evaluates submitted lines with eval.
func NewModel(prompt string, eval EvalFunc) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()

	return Model{
		input:  ti,
		help:   help.New(),
		keys:   SessionKeyMap(),
		prompt: prompt,
		eval:   eval,
		lines:  []string{welcomeText.Render(Welcome)},
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.transcript = viewport.New(msg.Width, max(msg.Height-chromeHeight, 1))
			m.ready = true
		} else {
			m.transcript.Width = msg.Width
			m.transcript.Height = max(msg.Height-chromeHeight, 1)
		}
		m.input.Width = max(msg.Width-len(m.prompt)-1, 1)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.lines = nil
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line and appends the exchange to
// the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	reply, quit := m.eval(line)

	m.lines = append(m.lines, promptText.Render(m.prompt)+line)
	if reply != "" {
		m.lines = append(m.lines, styleReply(reply))
	}
	m.refresh()

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// refresh re-renders the transcript viewport pinned to the bottom.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

// Transcript returns the transcript lines; used by tests.
func (m Model) Transcript() []string {
	return m.lines
}

// View renders the transcript, input line, and help bar.
func (m Model) View() string {
	if m.quitting {
		// Leave the final transcript on screen after the program exits.
		return strings.Join(m.lines, "\n") + "\n"
	}
	if !m.ready {
		return Welcome
	}

	var b strings.Builder
	b.WriteString(m.transcript.View())
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
