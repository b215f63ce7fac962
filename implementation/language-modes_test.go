package implementation

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestModeAtOffset(t *testing.T) {
	document := "<p>text</p><script>var a = 1;</script>"
	documentState := stateFor(t, "file:///modes.html", document)

	if mode := modeAtOffset(documentState, strings.Index(document, "text")); mode.name() != "html" {
		t.Errorf("markup offset resolved to %s mode", mode.name())
	}
	if mode := modeAtOffset(documentState, strings.Index(document, "var")); mode.name() != "javascript" {
		t.Errorf("script offset resolved to %s mode", mode.name())
	}
}

func TestScriptModeCompletions(t *testing.T) {
	uri := protocol.DocumentUri("file:///completions.html")
	document := "<script>\nfunction zebra(){}\nvar apple = 1;\nclass Mango {}\n</script>\n"
	stateFor(t, uri, document)

	position := protocol.Position{Line: 1, Character: 0}
	result, err := TextDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     position,
		},
	})
	if err != nil {
		t.Fatalf("completion: %v", err)
	}

	items, ok := result.([]protocol.CompletionItem)
	if !ok {
		t.Fatalf("completion = %T, want items", result)
	}

	var labels []string
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	want := []string{"Mango", "apple", "zebra"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Errorf("labels = %v, want %v (sorted)", labels, want)
	}

	for _, item := range items {
		if item.Label == "zebra" {
			if item.Kind == nil || *item.Kind != protocol.CompletionItemKindFunction {
				t.Errorf("zebra kind = %v, want function", item.Kind)
			}
		}
	}
}

func TestMarkupModeCompletions(t *testing.T) {
	uri := protocol.DocumentUri("file:///markup-completions.html")
	document := "<html>\n\n<script>var a = 1;</script>\n</html>\n"
	stateFor(t, uri, document)

	result, err := TextDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 1, Character: 0},
		},
	})
	if err != nil {
		t.Fatalf("completion: %v", err)
	}

	items, ok := result.([]protocol.CompletionItem)
	if !ok || len(items) != len(markupTags) {
		t.Fatalf("completion = %v, want the markup tag list", result)
	}
	if items[0].Label != markupTags[0] {
		t.Errorf("first label = %q, want %q", items[0].Label, markupTags[0])
	}
}

func TestCompletionItemResolve(t *testing.T) {
	uri := protocol.DocumentUri("file:///resolve.html")
	document := "<script>\nfunction zebra(){}\n</script>\n"
	stateFor(t, uri, document)

	item := protocol.CompletionItem{
		Label: "zebra",
		Data: map[string]interface{}{
			"uri":  string(uri),
			"name": "zebra",
		},
	}

	resolved, err := CompletionItemResolve(nil, &item)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Detail == nil || !strings.Contains(*resolved.Detail, "function zebra") {
		t.Errorf("detail = %v, want the declaration kind and name", resolved.Detail)
	}
	if resolved.Documentation == nil {
		t.Errorf("documentation was not filled in")
	}
}

func TestCompletionItemResolveWithoutData(t *testing.T) {
	item := protocol.CompletionItem{Label: "div"}

	resolved, err := CompletionItemResolve(nil, &item)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Detail != nil {
		t.Errorf("detail = %v, want untouched item", resolved.Detail)
	}
}
