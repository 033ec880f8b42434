package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/opusquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and quiz styling.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a new labelled, unfocused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and input on one line.
func (t TextInput) View() string {
	label := theme.Label
	if t.Model.Focused() {
		label = label.Foreground(theme.Primary)
	}
	return label.Render(t.Label+": ") + t.Model.View()
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Filled reports whether the value has any non-space content.
func (t TextInput) Filled() bool {
	return strings.TrimSpace(t.Model.Value()) != ""
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Frame renders the input inside a rounded border of the given width.
func (t TextInput) Frame(width int) string {
	border := theme.Border
	if t.Model.Focused() {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(t.View())
}
