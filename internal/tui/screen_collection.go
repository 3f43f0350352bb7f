package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateCollectionMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.collectionMenu.up()
	case key.Matches(keyMsg, keys.down):
		m.collectionMenu.down()
	case key.Matches(keyMsg, keys.journal):
		m.output = ""
		m.loading = true
		return m, m.cmdJournal()
	case key.Matches(keyMsg, keys.enter):
		return m.chooseCollectionAction(m.collectionMenu.idx)
	default:
		r, isDigit := digitKey(keyMsg)
		if !isDigit {
			return m, nil
		}
		idx, valid := m.collectionMenu.choiceByDigit(r)
		if !valid {
			m.output = app.MsgInvalidChoice
			return m, nil
		}
		m.collectionMenu.idx = idx
		return m.chooseCollectionAction(idx)
	}

	return m, nil
}

func (m appModel) chooseCollectionAction(idx int) (tea.Model, tea.Cmd) {
	m.output = ""
	switch idx {
	case 0:
		m.loading = true
		return m, m.cmdLoad(purposeView)
	case 1:
		m.loading = true
		return m, m.cmdLoad(purposeIDs)
	case 2:
		m.loading = true
		return m, m.cmdLoad(purposeDeleteOne)
	case 3:
		m.loading = true
		return m, m.cmdLoad(purposeDeleteAll)
	default:
		m.currentScreen = screenMainMenu
		m.mainMenu.idx = 0
		return m, nil
	}
}

func (m appModel) onDocumentsLoaded(msg documentsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.output = errorText(msg.err)
		return m, nil
	}

	switch msg.purpose {
	case purposeView:
		m.count = msg.count
		m.viewport.SetContent(renderDocuments(msg.count, toDocumentLines(msg.docs)))
		m.viewport.GotoTop()
		m.currentScreen = screenDocuments
	case purposeIDs:
		m.count = msg.count
		m.ids = msg.ids
		m.idsIdx = 0
		m.idsStatus = ""
		m.currentScreen = screenIDs
	case purposeDeleteOne:
		if len(msg.ids) == 0 {
			m.output = app.MsgNoDocumentsToDelete
			return m, nil
		}
		m.ids = msg.ids
		m.pendingID = ""
		m.deleteStage = stageEnterID
		m.resetPrompt()
		m.currentScreen = screenDeleteOne
	case purposeDeleteAll:
		m.count = msg.count
		if msg.count == 0 {
			m.output = app.MsgNoDocumentsToDelete
			return m, nil
		}
		m.deleteAllCount = msg.count
		m.resetPrompt()
		m.currentScreen = screenDeleteAll
	}

	return m, nil
}

func (m appModel) viewCollectionMenu() string {
	var b strings.Builder
	if m.countErr != "" {
		b.WriteString(errorStyle.Render(fmt.Sprintf(app.MsgError, m.countErr)))
	} else {
		b.WriteString(fmt.Sprintf(app.MsgDocumentCount, m.count))
	}
	b.WriteString("\n\n")
	if m.output != "" {
		b.WriteString(renderOutput(m.output))
		b.WriteString("\n\n")
	}
	b.WriteString(m.collectionMenu.View())
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(app.MsgLoading)
	}

	return renderPage(fmt.Sprintf(app.MsgCollectionTitle, m.selected.Name), b.String(),
		"enter: select │ ↑/↓: navigate │ 1-5: choose │ j: journal")
}
