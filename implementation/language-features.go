package implementation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hoverWords remembers the last hovered word per document. Scoping it to the
// document keeps the "last hovered word" behavior of definition requests
// without letting hovers on one document leak into another.
var (
	hoverWordsLock sync.Mutex
	hoverWords     = make(map[protocol.DocumentUri]string)
)

func setHoverWord(uri protocol.DocumentUri, word string) {
	hoverWordsLock.Lock()
	defer hoverWordsLock.Unlock()
	hoverWords[uri] = word
}

func getHoverWord(uri protocol.DocumentUri) (string, bool) {
	hoverWordsLock.Lock()
	defer hoverWordsLock.Unlock()
	word, ok := hoverWords[uri]
	return word, ok
}

func deleteHoverState(uri protocol.DocumentUri) {
	hoverWordsLock.Lock()
	defer hoverWordsLock.Unlock()
	delete(hoverWords, uri)
}

// wordAtPosition isolates the cursor's line and returns the space-delimited
// word around the cursor column, trimmed. Missing boundaries fall back to the
// line start and end.
func wordAtPosition(content string, position protocol.Position) string {
	lines := strings.Split(content, "\n")
	if int(position.Line) >= len(lines) {
		return ""
	}
	line := lines[position.Line]

	character := int(position.Character)
	if character > len(line) {
		character = len(line)
	}

	start := strings.LastIndex(line[:character], " ") + 1
	end := strings.Index(line[character:], " ")
	if end == -1 {
		end = len(line)
	} else {
		end += character
	}

	return strings.TrimSpace(line[start:end])
}

// TextDocumentHover implements protocol.TextDocumentHoverFunc
func TextDocumentHover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI

	content, ok := getDocument(uri)
	if !ok {
		return nil, nil
	}

	word := wordAtPosition(content, params.Position)
	if word == "" {
		return nil, nil
	}
	setHoverWord(uri, word)

	value := fmt.Sprintf("`%s`", word)
	if entry, ok := getDocumentState(uri).Index.Lookup(word); ok {
		value = fmt.Sprintf("`%s`\n\n%s declared in the script region at offsets %d to %d",
			word, entry.Kind, entry.StartOffset, entry.EndOffset)
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
	}, nil
}

// TextDocumentDefinition implements protocol.TextDocumentDefinitionFunc
//
// The lookup key is the document's last hovered word, not the request
// position. Before the first hover, or for words the index does not know,
// the result is empty rather than an error.
func TextDocumentDefinition(context *glsp.Context, params *protocol.DefinitionParams) (interface{}, error) {
	uri := params.TextDocument.URI

	word, ok := getHoverWord(uri)
	if !ok {
		return nil, nil
	}

	documentState := getDocumentState(uri)
	entry, ok := documentState.Index.Lookup(word)
	if !ok {
		return nil, nil
	}

	return []protocol.Location{{
		URI: uri,
		Range: protocol.Range{
			Start: documentState.Table.position(entry.StartOffset),
			// The zero end column is long-standing behavior clients
			// already cope with.
			End: protocol.Position{Line: entry.Line, Character: 0},
		},
	}}, nil
}
