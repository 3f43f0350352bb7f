package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateMainMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.mainMenu.up()
	case key.Matches(keyMsg, keys.down):
		m.mainMenu.down()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.enter):
		return m.chooseMain(m.mainMenu.idx)
	default:
		r, isDigit := digitKey(keyMsg)
		if !isDigit {
			return m, nil
		}
		idx, valid := m.mainMenu.choiceByDigit(r)
		if !valid {
			m.output = app.MsgInvalidChoice
			return m, nil
		}
		m.mainMenu.idx = idx
		return m.chooseMain(idx)
	}

	return m, nil
}

func (m appModel) chooseMain(idx int) (tea.Model, tea.Cmd) {
	m.output = ""
	switch idx {
	case 0:
		m.loading = true
		return m, m.cmdListCollections(true)
	case 1:
		m.loading = true
		return m, m.cmdListCollections(false)
	default:
		return m, tea.Quit
	}
}

func (m appModel) onCollectionsLoaded(msg collectionsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	switch {
	case msg.err != nil:
		m.output = errorText(msg.err)
		return m, nil
	case len(msg.collections) == 0:
		m.output = app.MsgNoCollectionsFound
		return m, nil
	case !msg.forSelect:
		m.output = app.MsgAvailableTitle + "\n" + numbered(models.CollectionNames(msg.collections))
		return m, nil
	}

	m.collections = msg.collections
	m.selectErr = ""
	m.resetPrompt()
	m.currentScreen = screenSelect
	return m, nil
}

func (m appModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMainMenu
			m.output = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.loading = true
			return m, m.cmdSelect(m.prompt.Value())
		}
	}
	return m.updatePrompt(msg)
}

func (m appModel) onCollectionSelected(msg collectionSelectedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.selectErr = fmt.Sprintf(app.MsgSelectionError, humanizeError(msg.err))
		m.resetPrompt()
		return m, nil
	}

	m.selected = msg.collection
	m.selectErr = ""
	m.count = 0
	m.countErr = ""
	m.collectionMenu.idx = 0
	return m.enterCollectionMenu("")
}

func (m appModel) viewMainMenu() string {
	var b strings.Builder
	b.WriteString(renderBanner(m.endpoint))
	b.WriteString("\n\n")
	if m.output != "" {
		b.WriteString(renderOutput(m.output))
		b.WriteString("\n\n")
	}
	b.WriteString(m.mainMenu.View())
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(app.MsgLoading)
	}

	return renderPage(app.MsgMainMenuTitle, b.String(), "enter: select │ ↑/↓: navigate │ 1-3: choose │ v: version")
}

func (m appModel) viewSelect() string {
	var b strings.Builder
	b.WriteString(numbered(models.CollectionNames(m.collections)))
	b.WriteString("\n\n")
	if m.selectErr != "" {
		b.WriteString(errorStyle.Render(m.selectErr))
		b.WriteString("\n")
	}
	b.WriteString(app.MsgEnterCollection)
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(app.MsgLoading)
	}

	return renderPage(app.MsgAvailableTitle, b.String(), "enter: confirm │ esc: back")
}

func errorText(err error) string {
	return fmt.Sprintf(app.MsgError, humanizeError(err))
}
