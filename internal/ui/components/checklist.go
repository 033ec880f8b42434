package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/opusquiz/internal/ui/theme"
)

// ChecklistItem is one toggleable row.
type ChecklistItem struct {
	Label   string
	Checked bool
}

// Checklist is a vertical list of checkboxes with a cursor.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with every label checked.
func NewChecklist(labels []string) Checklist {
	items := make([]ChecklistItem, len(labels))
	for i, l := range labels {
		items[i] = ChecklistItem{Label: l, Checked: true}
	}
	return Checklist{Items: items}
}

// Update handles cursor movement and toggling.
func (m Checklist) Update(msg tea.Msg) Checklist {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "space", " ", "x":
		m.Toggle(m.Cursor)
	case "a":
		m.SetAll(true)
	case "n":
		m.SetAll(false)
	}
	return m
}

// Toggle flips item i.
func (m *Checklist) Toggle(i int) {
	if i < 0 || i >= len(m.Items) {
		return
	}
	items := append([]ChecklistItem(nil), m.Items...)
	items[i].Checked = !items[i].Checked
	m.Items = items
}

// SetAll checks or unchecks every item.
func (m *Checklist) SetAll(checked bool) {
	items := make([]ChecklistItem, len(m.Items))
	for i, it := range m.Items {
		it.Checked = checked
		items[i] = it
	}
	m.Items = items
}

// Checked returns the labels of checked items in list order.
func (m Checklist) Checked() []string {
	var out []string
	for _, it := range m.Items {
		if it.Checked {
			out = append(out, it.Label)
		}
	}
	return out
}

// View renders the checklist.
func (m Checklist) View() string {
	var s string
	for i, it := range m.Items {
		box := "[ ]"
		if it.Checked {
			box = "[x]"
		}
		if i == m.Cursor {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+box+" "+it.Label) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+box+" "+it.Label) + "\n"
		}
	}
	return s
}
