package implementation

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentSymbols(t *testing.T) {
	uri := protocol.DocumentUri("file:///symbols.html")
	document := "<script>\nvar apple = 1;\nclass Mango { ripe = true; }\n</script>\n"
	stateFor(t, uri, document)

	result, err := TextDocumentDocumentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatalf("documentSymbol: %v", err)
	}

	symbols, ok := result.([]protocol.DocumentSymbol)
	if !ok || len(symbols) != 2 {
		t.Fatalf("symbols = %v, want apple and Mango", result)
	}

	// Ordered by position, not name.
	if symbols[0].Name != "apple" || symbols[0].Kind != protocol.SymbolKindVariable {
		t.Errorf("first symbol = %s/%d", symbols[0].Name, symbols[0].Kind)
	}
	if symbols[1].Name != "Mango" || symbols[1].Kind != protocol.SymbolKindClass {
		t.Errorf("second symbol = %s/%d", symbols[1].Name, symbols[1].Kind)
	}

	if len(symbols[1].Children) != 1 || symbols[1].Children[0].Name != "ripe" {
		t.Errorf("Mango children = %v, want ripe", symbols[1].Children)
	}
	if len(symbols[1].Children) == 1 && symbols[1].Children[0].Kind != protocol.SymbolKindField {
		t.Errorf("ripe kind = %d, want field", symbols[1].Children[0].Kind)
	}
}
