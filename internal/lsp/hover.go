// Package lsp implements LSP protocol handlers.
package lsp

import (
	"fmt"
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"fragctx/internal/analysis"
	"fragctx/internal/server"
)

// Hover handles the textDocument/hover request. It reports what the
// context analyzer classifies the token under the cursor as; resolving
// that classification to an actual type or documentation string would
// require a symbol table this server does not keep.
func Hover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	srv, ok := serverInstance.(*server.Server)
	if !ok || srv == nil {
		log.Println("Warning: server instance not available in Hover")
		return nil, nil
	}

	uri := params.TextDocument.URI
	position := params.Position

	doc, exists := srv.Documents().Get(uri)
	if !exists {
		log.Printf("Document not found for hover: %s\n", uri)
		return nil, nil
	}

	_, pos, err := fragmentUpTo(doc.Text, position)
	if err != nil {
		log.Printf("Error resolving hover position: %v\n", err)
		return nil, nil
	}

	record := analysis.SurroundContext(doc.Text, pos, srv.Oracle(), analysis.Options{})
	if record == nil {
		return nil, nil
	}

	hover := &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: describeContext(record.Context),
		},
	}

	return hover, nil
}

// describeContext renders a Context as a short hover string naming its
// kind and the token text it matched.
func describeContext(c analysis.Context) string {
	switch c.Kind {
	case analysis.KindAlias:
		return fmt.Sprintf("alias `%s`", c.Chars)
	case analysis.KindLocalOrVar:
		return fmt.Sprintf("local or variable `%s`", c.Chars)
	case analysis.KindLocalCall:
		return fmt.Sprintf("call `%s`", c.Chars)
	case analysis.KindLocalArity:
		return fmt.Sprintf("function reference `%s/`", c.Chars)
	case analysis.KindModuleAttribute:
		return fmt.Sprintf("module attribute `@%s`", c.Chars)
	case analysis.KindUnquotedAtom:
		return fmt.Sprintf("atom `:%s`", c.Chars)
	case analysis.KindOperator:
		return fmt.Sprintf("operator `%s`", c.Chars)
	case analysis.KindDot:
		return fmt.Sprintf("member `%s`", c.Chars)
	default:
		return "unrecognized expression"
	}
}
