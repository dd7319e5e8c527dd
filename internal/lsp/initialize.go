// Package lsp implements LSP protocol handlers.
package lsp

import (
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"fragctx/internal/server"
)

var (
	// serverInstance holds the global server instance
	// This is set by SetServer and accessed by handlers
	serverInstance interface{}
)

// SetServer sets the global server instance for handlers to access.
func SetServer(srv interface{}) {
	serverInstance = srv
}

// Initialize handles the LSP initialize request.
// This is the first request sent by the client and establishes the server capabilities.
func Initialize(context *glsp.Context, params *protocol.InitializeParams) (interface{}, error) {
	srv, ok := serverInstance.(*server.Server)
	if ok && srv != nil {
		folders := make([]string, 0, len(params.WorkspaceFolders))
		for _, f := range params.WorkspaceFolders {
			folders = append(folders, f.URI)
		}

		srv.SetWorkspaceFolders(folders)
		srv.SetClientCapabilities(&params.Capabilities)
	}

	changeKind := protocol.TextDocumentSyncKindIncremental
	trueVal := true
	falseVal := false

	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: &trueVal,
			Change:    &changeKind,
			WillSave:  &falseVal,
			Save: &protocol.SaveOptions{
				IncludeText: &falseVal,
			},
		},

		HoverProvider: &trueVal,

		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{".", ":", "@"},
			ResolveProvider:   &falseVal,
		},
	}

	serverVersion := "0.1.0"

	result := protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "fragctx-lsp",
			Version: &serverVersion,
		},
	}

	return result, nil
}

// Initialized handles the initialized notification from the client.
// This is sent after the initialize response, signaling that the client is ready.
func Initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown handles the shutdown request.
// The client sends this to ask the server to shut down gracefully.
func Shutdown(context *glsp.Context) error {
	srv, ok := serverInstance.(*server.Server)
	if ok && srv != nil {
		srv.SetShuttingDown()
	}

	log.Println("Server shutting down")

	return nil
}
