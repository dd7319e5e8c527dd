// Package lsp implements LSP protocol handlers.
package lsp

import (
	"log"
	"sort"
	"strings"
	"time"

	"fragctx/internal/analysis"
	"fragctx/internal/server"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// keywordCompletions are the closed sets of textual operators and
// block keywords the analyzer itself knows how to classify; they are
// the only completion source available without a symbol table.
var keywordCompletions = buildKeywordCompletions()

func buildKeywordCompletions() []string {
	words := []string{"when", "not", "and", "or", "in", "do", "end", "after", "else", "catch", "rescue"}
	sort.Strings(words)

	return words
}

// Completion handles the textDocument/completion request. Without a
// symbol table, it can only ever suggest the closed set of keywords
// and textual operators the reverse scanner recognizes, filtered by
// whatever prefix is being typed; anything beyond that belongs to a
// real symbol index, out of scope here.
func Completion(context *glsp.Context, params *protocol.CompletionParams) (any, error) {
	startTime := time.Now()

	defer func() {
		log.Printf("Completion took %v", time.Since(startTime))
	}()

	srv, ok := serverInstance.(*server.Server)
	if !ok || srv == nil {
		log.Println("Warning: server instance not available in Completion")
		return []protocol.CompletionItem{}, nil
	}

	uri := params.TextDocument.URI
	position := params.Position

	doc, exists := srv.Documents().Get(uri)
	if !exists {
		log.Printf("Document not found for completion: %s\n", uri)
		return &protocol.CompletionList{IsIncomplete: false, Items: []protocol.CompletionItem{}}, nil
	}

	fragment, _, err := fragmentUpTo(doc.Text, position)
	if err != nil {
		log.Printf("Error resolving completion position: %v\n", err)
		return &protocol.CompletionList{IsIncomplete: false, Items: []protocol.CompletionItem{}}, nil
	}

	ctx := analysis.CursorContext(fragment, srv.Oracle(), analysis.Options{})

	log.Printf("Completion context at %s: kind=%d chars=%q\n", uri, ctx.Kind, ctx.Chars)

	var items []protocol.CompletionItem

	if ctx.Kind == analysis.KindLocalOrVar {
		for _, word := range keywordCompletions {
			if strings.HasPrefix(word, ctx.Chars) {
				kind := protocol.CompletionItemKindKeyword
				items = append(items, protocol.CompletionItem{
					Label: word,
					Kind:  &kind,
				})
			}
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}
