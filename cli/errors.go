package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders IR decode errors with terminal styling and source
// context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with the input document for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error. JSON errors that carry a byte offset gain
// an excerpt of the offending line with a caret under the position.
func (r *ErrorRenderer) Render(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return r.renderAtOffset(int(syntaxErr.Offset), err.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return r.renderAtOffset(int(typeErr.Offset), err.Error())
	}

	return err.Error()
}

// renderAtOffset shows the line containing the byte offset, with up to two
// preceding lines of context and a caret under the offending column. Caret
// placement accounts for wide runes in the excerpt.
func (r *ErrorRenderer) renderAtOffset(offset int, message string) string {
	if offset < 0 || offset > len(r.source) {
		return message
	}

	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if r.source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	lines := strings.Split(string(r.source), "\n")

	var buf strings.Builder
	buf.WriteString(errorStyle.Render(fmt.Sprintf("%s at line %d", message, line)))
	buf.WriteString("\n\n")

	start := line - 3
	if start < 0 {
		start = 0
	}

	for i := start; i < line && i < len(lines); i++ {
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(lines[i]))
		buf.WriteByte('\n')
	}

	prefix := string(r.source[lineStart:offset])
	buf.WriteString("   ")
	buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(prefix)))
	buf.WriteString(errCaretStyle.Render("^"))
	buf.WriteByte('\n')

	return buf.String()
}
