// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/MKhiriev/go-vector-console/internal/service"
	"github.com/MKhiriev/go-vector-console/internal/store"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMainMenu screen = iota
	screenSelect
	screenCollectionMenu
	screenDocuments
	screenIDs
	screenDeleteOne
	screenDeleteAll
	screenJournal
)

type deleteStage int

const (
	stageEnterID deleteStage = iota
	stageConfirm
)

// appModel is the single bubbletea model of the console. Every remote call
// runs in a command; while one is in flight (loading) keys other than ctrl+c
// are ignored, so calls never overlap.
type appModel struct {
	ctx       context.Context
	services  *service.Services
	endpoint  string
	buildInfo models.AppBuildInfo

	currentScreen  screen
	mainMenu       menuModel
	collectionMenu menuModel

	// output is the result of the last action, printed above the active menu.
	output  string
	loading bool

	collections []models.Collection
	selectErr   string

	selected models.Collection
	count    int
	countErr string

	prompt   textinput.Model
	viewport viewport.Model
	width    int
	height   int

	ids       []string
	idsIdx    int
	idsStatus string

	deleteStage    deleteStage
	pendingID      string
	deleteAllCount int

	journal []models.DeletedDocument

	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.Services, endpoint string, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:            ctx,
		services:       services,
		endpoint:       endpoint,
		buildInfo:      buildInfo,
		currentScreen:  screenMainMenu,
		mainMenu:       newMenuModel(app.MsgSelectCollection, app.MsgListCollections, app.MsgExit),
		collectionMenu: newMenuModel(app.MsgViewDocuments, app.MsgViewDocumentIDs, app.MsgDeleteDocument, app.MsgDeleteAll, app.MsgBackToMain),
		prompt:         newPrompt(),
		viewport:       viewport.New(defaultWidth, defaultHeight-viewportMargin),
		width:          defaultWidth,
		height:         defaultHeight,
	}
}

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Focus()
	return ti
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-viewportMargin, 5)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.interrupt) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.loading {
			return m, nil
		}
	case collectionsLoadedMsg:
		return m.onCollectionsLoaded(msg)
	case collectionSelectedMsg:
		return m.onCollectionSelected(msg)
	case countLoadedMsg:
		m.loading = false
		m.countErr = ""
		if msg.err != nil {
			m.countErr = humanizeError(msg.err)
			return m, nil
		}
		m.count = msg.count
		return m, nil
	case documentsLoadedMsg:
		return m.onDocumentsLoaded(msg)
	case documentDeletedMsg:
		m.loading = false
		if msg.err != nil {
			return m.enterCollectionMenu(fmt.Sprintf(app.MsgDeleteFailed, humanizeError(msg.err)))
		}
		return m.enterCollectionMenu(fmt.Sprintf(app.MsgDeleted, msg.id))
	case allDeletedMsg:
		m.loading = false
		switch {
		case errors.Is(msg.err, service.ErrNothingToDelete):
			return m.enterCollectionMenu(app.MsgNoDocumentsToDelete)
		case msg.err != nil:
			return m.enterCollectionMenu(fmt.Sprintf(app.MsgDeleteAllFailed, humanizeError(msg.err)))
		}
		return m.enterCollectionMenu(fmt.Sprintf(app.MsgDeletedAll, msg.deleted))
	case journalLoadedMsg:
		m.loading = false
		switch {
		case errors.Is(msg.err, store.ErrJournalDisabled):
			m.output = app.MsgJournalDisabled
			return m, nil
		case msg.err != nil:
			m.output = errorText(msg.err)
			return m, nil
		}
		m.journal = msg.entries
		m.currentScreen = screenJournal
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.idsStatus = fmt.Sprintf(app.MsgCopyFailed, msg.err.Error())
		} else {
			m.idsStatus = fmt.Sprintf(app.MsgCopied, msg.text)
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenMainMenu:
		return m.updateMainMenu(msg)
	case screenSelect:
		return m.updateSelect(msg)
	case screenCollectionMenu:
		return m.updateCollectionMenu(msg)
	case screenDocuments:
		return m.updateDocuments(msg)
	case screenIDs:
		return m.updateIDs(msg)
	case screenDeleteOne:
		return m.updateDeleteOne(msg)
	case screenDeleteAll:
		return m.updateDeleteAll(msg)
	case screenJournal:
		return m.updateJournal(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenMainMenu:
		body = m.viewMainMenu()
	case screenSelect:
		body = m.viewSelect()
	case screenCollectionMenu:
		body = m.viewCollectionMenu()
	case screenDocuments:
		body = m.viewDocuments()
	case screenIDs:
		body = m.viewIDs()
	case screenDeleteOne:
		body = m.viewDeleteOne()
	case screenDeleteAll:
		body = m.viewDeleteAll()
	case screenJournal:
		body = m.viewJournal()
	}

	return appStyle.Render(body)
}

// enterCollectionMenu shows the collection menu with output above it and
// refreshes the document count.
func (m appModel) enterCollectionMenu(output string) (tea.Model, tea.Cmd) {
	m.currentScreen = screenCollectionMenu
	m.output = output
	m.loading = true
	return m, m.cmdCount()
}

func (m appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *appModel) resetPrompt() {
	m.prompt = newPrompt()
}

func digitKey(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	return r, true
}

func renderOutput(output string) string {
	switch {
	case output == "":
		return ""
	case strings.HasPrefix(output, "✓"):
		return successStyle.Render(output)
	case strings.HasPrefix(output, "✗"), strings.HasPrefix(output, "Error"), output == app.MsgInvalidChoice:
		return errorStyle.Render(output)
	default:
		return output
	}
}
