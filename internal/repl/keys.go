package repl

import "github.com/charmbracelet/bubbles/key"

// sessionKeys holds key bindings for the assistant session.
type sessionKeys struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp returns the session bindings for the help bar.
func (k sessionKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}

// FullHelp returns the session bindings grouped for expanded help.
func (k sessionKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.Quit},
	}
}

// SessionKeyMap returns the key bindings for the assistant session.
func SessionKeyMap() sessionKeys {
	return sessionKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
