package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDocuments(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter)) {
		return m.enterCollectionMenu("")
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m appModel) viewDocuments() string {
	hotKeys := "↑/↓/pgup/pgdown: scroll │ esc: back"
	if m.viewport.TotalLineCount() > m.viewport.Height {
		hotKeys = fmt.Sprintf("%s │ %3.f%%", hotKeys, m.viewport.ScrollPercent()*100)
	}
	return renderPage(app.MsgFetchingTitle, m.viewport.View(), hotKeys)
}

func (m appModel) updateIDs(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		return m.enterCollectionMenu("")
	case key.Matches(keyMsg, keys.up):
		if m.idsIdx > 0 {
			m.idsIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idsIdx < len(m.ids)-1 {
			m.idsIdx++
		}
	case key.Matches(keyMsg, keys.pageUp):
		m.idsIdx = max(m.idsIdx-m.idsWindow(), 0)
	case key.Matches(keyMsg, keys.pageDown):
		m.idsIdx = max(min(m.idsIdx+m.idsWindow(), len(m.ids)-1), 0)
	case key.Matches(keyMsg, keys.copy):
		if len(m.ids) > 0 {
			return m, cmdCopy(m.ids[m.idsIdx])
		}
	}

	return m, nil
}

// idsWindow is how many ids fit on screen at once.
func (m appModel) idsWindow() int {
	return max(m.height-viewportMargin-4, 5)
}

func (m appModel) viewIDs() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(app.MsgTotalDocuments, m.count))
	b.WriteString("\n")

	if len(m.ids) == 0 {
		b.WriteString(app.MsgNoDocumentsFound)
		return renderPage(app.MsgIDsTitle, b.String(), "esc: back")
	}

	b.WriteString("\n")
	b.WriteString(app.MsgIDsHeader)
	b.WriteString("\n")

	window := m.idsWindow()
	start := max(m.idsIdx-window/2, 0)
	end := min(start+window, len(m.ids))
	start = max(end-window, 0)

	for i := start; i < end; i++ {
		line := fmt.Sprintf("%d. %s", i+1, m.ids[i])
		if i == m.idsIdx {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.idsStatus != "" {
		b.WriteString("\n")
		b.WriteString(renderOutput(m.idsStatus))
	}

	return renderPage(app.MsgIDsTitle, strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ c: copy id │ esc: back")
}
