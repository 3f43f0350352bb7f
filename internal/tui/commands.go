package tui

import (
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

func (m appModel) cmdListCollections(forSelect bool) tea.Cmd {
	ctx, svc := m.ctx, m.services.CollectionService
	return func() tea.Msg {
		collections, err := svc.List(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).Msg("list collections failed")
		}
		return collectionsLoadedMsg{collections: collections, forSelect: forSelect, err: err}
	}
}

func (m appModel) cmdSelect(choice string) tea.Cmd {
	ctx, svc, listed := m.ctx, m.services.CollectionService, m.collections
	return func() tea.Msg {
		col, err := svc.Select(ctx, choice, listed)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("choice", choice).Msg("collection selection failed")
		}
		return collectionSelectedMsg{collection: col, err: err}
	}
}

func (m appModel) cmdCount() tea.Cmd {
	ctx, svc, col := m.ctx, m.services.CollectionService, m.selected
	return func() tea.Msg {
		count, err := svc.Count(ctx, col)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("collection", col.Name).Msg("count failed")
		}
		return countLoadedMsg{count: count, err: err}
	}
}

// cmdLoad fetches what the screen behind purpose needs. Screens that show a
// total count it first and skip the fetch for an empty collection.
func (m appModel) cmdLoad(purpose loadPurpose) tea.Cmd {
	ctx, col := m.ctx, m.selected
	collections, documents := m.services.CollectionService, m.services.DocumentService
	return func() tea.Msg {
		msg := documentsLoadedMsg{purpose: purpose}

		switch purpose {
		case purposeView, purposeIDs, purposeDeleteAll:
			msg.count, msg.err = collections.Count(ctx, col)
			if msg.err != nil || msg.count == 0 || purpose == purposeDeleteAll {
				break
			}
			if purpose == purposeView {
				msg.docs, msg.err = documents.GetAll(ctx, col)
			} else {
				msg.ids, msg.err = documents.IDs(ctx, col)
			}
		case purposeDeleteOne:
			msg.ids, msg.err = documents.IDs(ctx, col)
			msg.count = len(msg.ids)
		}

		if msg.err != nil {
			logger.FromContext(ctx).Err(msg.err).Str("collection", col.Name).Msg("loading documents failed")
		}
		return msg
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, svc, col := m.ctx, m.services.DocumentService, m.selected
	return func() tea.Msg {
		return documentDeletedMsg{id: id, err: svc.Delete(ctx, col, id)}
	}
}

func (m appModel) cmdDeleteAll() tea.Cmd {
	ctx, svc, col := m.ctx, m.services.DocumentService, m.selected
	return func() tea.Msg {
		deleted, err := svc.DeleteAll(ctx, col)
		return allDeletedMsg{deleted: deleted, err: err}
	}
}

func (m appModel) cmdJournal() tea.Cmd {
	ctx, svc, col := m.ctx, m.services.DocumentService, m.selected
	return func() tea.Msg {
		entries, err := svc.Journal(ctx, col, journalLimit)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}

func toDocumentLines(docs []models.Document) []documentLine {
	lines := make([]documentLine, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, documentLine{id: doc.ID, text: doc.Text, metadata: doc.Metadata})
	}
	return lines
}
