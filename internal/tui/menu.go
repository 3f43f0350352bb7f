package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// menuModel is a numbered menu driven by arrow keys or by typing the item
// number.
type menuModel struct {
	items []string
	idx   int
}

func newMenuModel(items ...string) menuModel {
	return menuModel{items: items}
}

func (m *menuModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *menuModel) down() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

// choiceByDigit maps a typed digit to a zero-based item index.
func (m menuModel) choiceByDigit(r rune) (int, bool) {
	n := int(r - '0')
	if n < 1 || n > len(m.items) {
		return 0, false
	}
	return n - 1, true
}

func (m menuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("#")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // selection marker and space

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return strings.TrimRight(b.String(), "\n")
}
