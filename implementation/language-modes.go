package implementation

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// A languageMode answers completion for one of the languages a document is
// made of. The mode is picked by cursor position: inside a script region the
// script mode answers, everywhere else the markup mode does.
type languageMode interface {
	name() string
	completions(uri protocol.DocumentUri, documentState *DocumentState) []protocol.CompletionItem
}

var markupTags = []string{
	"a", "body", "button", "div", "form", "h1", "h2", "h3", "head", "html",
	"img", "input", "li", "link", "meta", "p", "script", "span", "style",
	"table", "template", "title", "ul",
}

type markupMode struct{}

func (markupMode) name() string {
	return "html"
}

func (markupMode) completions(uri protocol.DocumentUri, documentState *DocumentState) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(markupTags))
	for _, tag := range markupTags {
		items = append(items, protocol.CompletionItem{
			Label: tag,
			Kind:  completionKindPtr(protocol.CompletionItemKindProperty),
		})
	}
	return items
}

type scriptMode struct{}

func (scriptMode) name() string {
	return "javascript"
}

func (scriptMode) completions(uri protocol.DocumentUri, documentState *DocumentState) []protocol.CompletionItem {
	names := make([]string, 0, len(documentState.Index))
	for name := range documentState.Index {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		entry := documentState.Index[name]
		items = append(items, protocol.CompletionItem{
			Label: entry.Name,
			Kind:  completionKindPtr(completionKindFor(entry.Kind)),
			Data:  completionItemData{URI: uri, Name: entry.Name},
		})
	}
	return items
}

func modeAtOffset(documentState *DocumentState, offset int) languageMode {
	if regionAt(documentState.Regions, offset) != nil {
		return scriptMode{}
	}
	return markupMode{}
}

// completionItemData survives the completion/resolve round trip as JSON, so
// resolve can find the entry again.
type completionItemData struct {
	URI  protocol.DocumentUri `json:"uri"`
	Name string               `json:"name"`
}

// TextDocumentCompletion implements protocol.TextDocumentCompletionFunc
func TextDocumentCompletion(context *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	uri := params.TextDocument.URI

	content, ok := getDocument(uri)
	if !ok {
		return nil, nil
	}

	documentState := getDocumentState(uri)
	offset := positionToIndex(content, params.Position)
	mode := modeAtOffset(documentState, offset)
	log.Debugf("completion in %s mode at offset %d", mode.name(), offset)

	return mode.completions(uri, documentState), nil
}

// CompletionItemResolve implements protocol.CompletionItemResolveFunc
func CompletionItemResolve(context *glsp.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	if params.Data == nil {
		return params, nil
	}

	encoded, err := json.Marshal(params.Data)
	if err != nil {
		return params, nil
	}
	var data completionItemData
	if err := json.Unmarshal(encoded, &data); err != nil {
		return params, nil
	}

	if entry, ok := getDocumentState(data.URI).Index.Lookup(data.Name); ok {
		params.Detail = stringPtr(fmt.Sprintf("%s %s", entry.Kind, entry.Name))
		params.Documentation = fmt.Sprintf("Declared in the script region at offsets %d to %d.",
			entry.StartOffset, entry.EndOffset)
	}

	return params, nil
}

func completionKindFor(kind DeclarationKind) protocol.CompletionItemKind {
	switch kind {
	case KindFunction:
		return protocol.CompletionItemKindFunction
	case KindClass:
		return protocol.CompletionItemKindClass
	case KindMember:
		return protocol.CompletionItemKindField
	default:
		return protocol.CompletionItemKindVariable
	}
}

func completionKindPtr(kind protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &kind
}
