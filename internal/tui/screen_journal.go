package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const journalTimeLayout = "2006-01-02 15:04:05"

func (m appModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter)) {
		m.currentScreen = screenCollectionMenu
		return m, nil
	}
	return m, nil
}

func (m appModel) viewJournal() string {
	title := fmt.Sprintf(app.MsgJournalTitle, m.selected.Name)
	if len(m.journal) == 0 {
		return renderPage(title, app.MsgJournalEmpty, "esc: back")
	}

	var b strings.Builder
	for i, entry := range m.journal {
		b.WriteString(fmt.Sprintf("%d. %s  %s  [%s]\n", i+1,
			entry.DeletedAt.Local().Format(journalTimeLayout), entry.DocumentID, entry.Backend))
		b.WriteString(fmt.Sprintf("   %s\n", truncateRunes(entry.Text, 60)))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back")
}
