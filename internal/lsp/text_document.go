// Package lsp implements LSP protocol handlers.
package lsp

import (
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"fragctx/internal/document"
	"fragctx/internal/server"
)

// DidOpen handles the textDocument/didOpen notification.
// This is sent when a document is opened in the editor.
func DidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	srv, ok := serverInstance.(*server.Server)
	if !ok || srv == nil {
		log.Println("Warning: server instance not available in DidOpen")
		return nil
	}

	uri := params.TextDocument.URI
	text := params.TextDocument.Text
	languageID := params.TextDocument.LanguageID
	version := int(params.TextDocument.Version)

	log.Printf("Document opened: %s (version %d, language %s, %d bytes)\n",
		uri, version, languageID, len(text))

	srv.Documents().Set(uri, &server.Document{
		URI:        uri,
		Text:       text,
		Version:    version,
		LanguageID: languageID,
	})

	return nil
}

// DidClose handles the textDocument/didClose notification.
// This is sent when a document is closed in the editor.
func DidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	srv, ok := serverInstance.(*server.Server)
	if !ok || srv == nil {
		log.Println("Warning: server instance not available in DidClose")
		return nil
	}

	uri := params.TextDocument.URI
	srv.Documents().Delete(uri)

	log.Printf("Document closed: %s\n", uri)

	if context != nil && context.Notify != nil {
		context.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}

	return nil
}

// DidChange handles the textDocument/didChange notification.
// This is sent when a document's content changes in the editor.
// It supports both full and incremental sync modes.
func DidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	srv, ok := serverInstance.(*server.Server)
	if !ok || srv == nil {
		log.Println("Warning: server instance not available in DidChange")
		return nil
	}

	uri := params.TextDocument.URI
	version := int(params.TextDocument.Version)

	doc, exists := srv.Documents().Get(uri)
	if !exists {
		log.Printf("Warning: Document not found for didChange: %s\n", uri)
		return nil
	}

	newText := doc.Text

	for i, changeInterface := range params.ContentChanges {
		change, ok := changeInterface.(protocol.TextDocumentContentChangeEvent)
		if !ok {
			log.Printf("Warning: Invalid content change type at index %d for %s\n", i, uri)
			continue
		}

		if change.Range == nil {
			newText = change.Text

			log.Printf("Document changed (full sync): %s (version %d, change %d/%d)\n",
				uri, version, i+1, len(params.ContentChanges))

			continue
		}

		updatedText, err := document.ApplyContentChange(newText, change)
		if err != nil {
			log.Printf("Error applying incremental change to %s: %v\n", uri, err)
			continue
		}

		newText = updatedText

		log.Printf("Document changed (incremental): %s (version %d, change %d/%d)\n",
			uri, version, i+1, len(params.ContentChanges))
	}

	srv.Documents().Set(uri, &server.Document{
		URI:        uri,
		Text:       newText,
		Version:    version,
		LanguageID: doc.LanguageID,
	})

	return nil
}
