package lsp

import (
	"strings"

	"fragctx/internal/analysis"
	"fragctx/internal/document"

	"github.com/rivo/uniseg"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// fragmentUpTo returns the text of doc preceding pos, and the 1-based
// (line, column) the reverse scanner should treat as the cursor.
// Column counts grapheme clusters, not UTF-16 code units: the LSP
// position is first converted to a byte offset and then re-expressed in
// the analysis package's own coordinate system.
func fragmentUpTo(text string, pos protocol.Position) (string, analysis.Position, error) {
	offset, err := document.PositionToOffset(text, int(pos.Line), int(pos.Character))
	if err != nil {
		return "", analysis.Position{}, err
	}

	line, _, err := document.OffsetToLineColumn(text, offset)
	if err != nil {
		return "", analysis.Position{}, err
	}

	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	col := uniseg.GraphemeClusterCount(text[lineStart:offset]) + 1

	return text[:offset], analysis.Position{Line: line, Column: col}, nil
}
