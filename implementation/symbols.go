package implementation

import (
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentDocumentSymbol implements protocol.TextDocumentDocumentSymbolFunc
func TextDocumentDocumentSymbol(context *glsp.Context, params *protocol.DocumentSymbolParams) (interface{}, error) {
	documentState := getDocumentState(params.TextDocument.URI)
	return createSymbols(documentState.Index, documentState.Table), nil
}

// createSymbols turns the declaration index into an outline, ordered by
// position in the document.
func createSymbols(index DeclarationIndex, table lineTable) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(index))
	for _, entry := range index {
		symbols = append(symbols, createSymbol(entry, table))
	}
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Range.Start.Line != symbols[j].Range.Start.Line {
			return symbols[i].Range.Start.Line < symbols[j].Range.Start.Line
		}
		return symbols[i].Range.Start.Character < symbols[j].Range.Start.Character
	})
	return symbols
}

func createSymbol(entry *DeclarationEntry, table lineTable) protocol.DocumentSymbol {
	symbolRange := protocol.Range{
		Start: table.position(entry.StartOffset),
		End:   table.position(entry.EndOffset),
	}

	symbol := protocol.DocumentSymbol{
		Name:           entry.Name,
		Kind:           symbolKindFor(entry.Kind),
		Range:          symbolRange,
		SelectionRange: symbolRange,
	}

	for _, child := range entry.Children {
		symbol.Children = append(symbol.Children, createSymbol(child, table))
	}

	return symbol
}

func symbolKindFor(kind DeclarationKind) protocol.SymbolKind {
	switch kind {
	case KindFunction:
		return protocol.SymbolKindFunction
	case KindClass:
		return protocol.SymbolKindClass
	case KindMember:
		return protocol.SymbolKindField
	default:
		return protocol.SymbolKindVariable
	}
}
