package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDeleteOne(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.enterCollectionMenu(app.MsgCancelled)
		case key.Matches(keyMsg, keys.enter):
			input := strings.TrimSpace(m.prompt.Value())

			if m.deleteStage == stageEnterID {
				if input == "" {
					return m.enterCollectionMenu(app.MsgCancelled)
				}
				m.pendingID = input
				m.deleteStage = stageConfirm
				m.resetPrompt()
				return m, nil
			}

			if !isConfirmed(input) {
				return m.enterCollectionMenu(app.MsgCancelled)
			}
			m.loading = true
			return m, m.cmdDelete(m.pendingID)
		}
	}
	return m.updatePrompt(msg)
}

// isConfirmed reports whether answer is one of the accepted "yes" answers,
// ignoring case.
func isConfirmed(answer string) bool {
	return slices.Contains(app.ConfirmYes, strings.ToLower(strings.TrimSpace(answer)))
}

func (m appModel) viewDeleteOne() string {
	var b strings.Builder
	b.WriteString(app.MsgAvailableIDs)
	b.WriteString("\n")
	for _, id := range m.ids {
		b.WriteString("  - ")
		b.WriteString(id)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.deleteStage == stageEnterID {
		b.WriteString(app.MsgEnterDocumentID)
	} else {
		b.WriteString(fmt.Sprintf(app.MsgConfirmDelete, m.pendingID))
	}
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(app.MsgLoading)
	}

	return renderPage(app.MsgDeleteTitle, b.String(), "enter: confirm │ esc: cancel")
}

func (m appModel) updateDeleteAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.enterCollectionMenu(app.MsgCancelled)
		case key.Matches(keyMsg, keys.enter):
			// the token is case-sensitive and must match exactly
			if strings.TrimSpace(m.prompt.Value()) != app.ConfirmDeleteAll {
				return m.enterCollectionMenu(app.MsgCancelled)
			}
			m.loading = true
			return m, m.cmdDeleteAll()
		}
	}
	return m.updatePrompt(msg)
}

func (m appModel) viewDeleteAll() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf(app.MsgDeleteAllWarning, m.deleteAllCount)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(app.MsgConfirmDeleteAll, app.ConfirmDeleteAll))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(app.MsgLoading)
	}

	return renderPage(app.MsgDeleteAllTitle, b.String(), "enter: confirm │ esc: cancel")
}
