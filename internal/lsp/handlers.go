// Package lsp implements LSP protocol handlers.
package lsp

// This package holds the LSP request and notification handlers wired up
// in cmd/fragctx-lsp:
// - Initialize / Initialized / Shutdown
// - textDocument/didOpen, didClose, didChange
// - textDocument/hover
// - textDocument/completion
