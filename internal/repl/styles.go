package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// welcomeText styles the session banner.
	welcomeText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	// promptText styles the echoed prompt in the transcript.
	promptText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	// errorText styles replies that report a failure.
	errorText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// styleReply applies the error style to failure replies and leaves
// everything else unstyled.
func styleReply(reply string) string {
	if isErrorReply(reply) {
		return errorText.Render(reply)
	}
	return reply
}

// isErrorReply reports whether a reply is one of the failure messages.
func isErrorReply(reply string) bool {
	return strings.HasPrefix(reply, "Error:") ||
		strings.HasPrefix(reply, "Unexpected error:") ||
		reply == "Invalid command." ||
		reply == "Contact not found."
}
