package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/app"
)

const (
	uiDivider      = "──────────────────────────────────────────────────────"
	previewLength  = 200
	journalLimit   = 50
	defaultWidth   = 80
	defaultHeight  = 24
	viewportMargin = 8
)

var (
	documentRule = strings.Repeat("-", 80)
	bannerRule   = strings.Repeat("=", 80)
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: exit"))

	return b.String()
}

func renderBanner(endpoint string) string {
	var b strings.Builder
	b.WriteString(bannerRule)
	b.WriteString("\n")
	b.WriteString(app.AppName)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(app.MsgConnectedTo, endpoint))
	b.WriteString("\n")
	b.WriteString(bannerRule)
	return b.String()
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// formatMetadata renders metadata as two-space indented JSON. Continuation
// lines are indented to line up under the "Metadata:" label.
func formatMetadata(metadata map[string]any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("   ", "  ")
	if err := enc.Encode(metadata); err != nil {
		return fmt.Sprintf("%v", metadata)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// renderDocuments produces the text of the "view all documents" screen.
func renderDocuments(count int, docs []documentLine) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(app.MsgTotalInCollection, count))
	b.WriteString("\n")

	if count == 0 {
		b.WriteString(app.MsgNoDocumentsFound)
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(app.MsgDocumentsHeader)
	b.WriteString("\n")
	for i, doc := range docs {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(app.MsgDocumentIDLine, i+1, doc.id))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(app.MsgDocumentPreviewLine, previewLength, truncateRunes(doc.text, previewLength)))
		b.WriteString("\n")
		if len(doc.metadata) > 0 {
			b.WriteString(fmt.Sprintf(app.MsgMetadataLine, formatMetadata(doc.metadata)))
			b.WriteString("\n")
		}
		b.WriteString(documentRule)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

type documentLine struct {
	id       string
	text     string
	metadata map[string]any
}

func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
	return strings.TrimRight(b.String(), "\n")
}
