// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// console: the user-facing message strings printed by the terminal UI and
// the confirmation tokens it accepts.
//
// Keeping them in one place ensures consistent wording on every screen and
// lets tests assert on the exact text.
package app

// Application identity.
const (
	AppName = "Vector DB Console"
)

// Main menu.
const (
	MsgMainMenuTitle      = "=== Main Menu ==="
	MsgSelectCollection   = "Select a collection"
	MsgListCollections    = "List all collections"
	MsgExit               = "Exit"
	MsgInvalidChoice      = "Invalid choice. Please try again."
	MsgGoodbye            = "Goodbye!"
	MsgExiting            = "Exiting..."
	MsgConnectedTo        = "Connected to: %s"
	MsgAvailableTitle     = "=== Available Collections ==="
	MsgNoCollectionsFound = "No collections found."
	MsgEnterCollection    = "Enter collection number (or name):"
	MsgSelectionError     = "Error: %s. Please try again."
	MsgError              = "Error: %s"
	MsgLoading            = "Loading..."
	MsgServerUnreachable  = "Server is unreachable"
	MsgHeartbeatWarning   = "Warning: server heartbeat failed: %s"
)

// Collection menu.
const (
	MsgCollectionTitle = "=== Collection: %s ==="
	MsgDocumentCount   = "Document count: %d"
	MsgViewDocuments   = "View all documents"
	MsgViewDocumentIDs = "View all document IDs"
	MsgDeleteDocument  = "Delete a document"
	MsgDeleteAll       = "Delete all documents"
	MsgBackToMain      = "Back to main menu"
)

// Document views.
const (
	MsgFetchingTitle       = "=== Fetching All Documents ==="
	MsgTotalInCollection   = "Total documents in collection: %d"
	MsgNoDocumentsFound    = "No documents found."
	MsgDocumentsHeader     = "--- Documents ---"
	MsgDocumentIDLine      = "%d. ID: %s"
	MsgDocumentPreviewLine = "   Document (first %d chars): %s..."
	MsgMetadataLine        = "   Metadata: %s"
	MsgIDsTitle            = "=== Document IDs ==="
	MsgTotalDocuments      = "Total documents: %d"
	MsgIDsHeader           = "IDs:"
	MsgCopied              = "Copied '%s' to clipboard."
	MsgCopyFailed          = "✗ Copy failed: %s"
)

// Deletion.
const (
	MsgDeleteTitle         = "=== Delete Document ==="
	MsgDeleteAllTitle      = "=== Delete All Documents ==="
	MsgNoDocumentsToDelete = "No documents to delete."
	MsgAvailableIDs        = "Available document IDs:"
	MsgEnterDocumentID     = "Enter document ID to delete:"
	MsgConfirmDelete       = "Are you sure you want to delete '%s'? (yes/no):"
	MsgCancelled           = "Cancelled."
	MsgDeleted             = "✓ Document '%s' deleted successfully."
	MsgDeleteFailed        = "✗ Error deleting document: %s"
	MsgDeleteAllWarning    = "Warning: This will delete all %d documents in the collection."
	MsgConfirmDeleteAll    = "Are you sure? Type '%s' to confirm:"
	MsgDeletedAll          = "✓ Successfully deleted all %d documents."
	MsgDeleteAllFailed     = "✗ Error deleting documents: %s"
)

// Deletion journal.
const (
	MsgJournalTitle    = "=== Deletion Journal: %s ==="
	MsgJournalEmpty    = "No deletions recorded."
	MsgJournalDisabled = "Deletion journal is disabled (set STORAGE_JOURNAL_DSN or -journal)."
)

// Confirmation tokens.
const (
	// ConfirmDeleteAll must be typed exactly to wipe a collection.
	ConfirmDeleteAll = "DELETE ALL"
)

// ConfirmYes lists the case-insensitive answers accepted for a single
// deletion.
var ConfirmYes = []string{"yes", "y"}
