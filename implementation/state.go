package implementation

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DocumentState holds everything derived from one document's text: its
// script regions, line table, declaration index, and diagnostics. States are
// replaced wholesale on every validation, so entries for declarations that no
// longer exist cannot linger.
type DocumentState struct {
	Regions     []Region
	Table       lineTable
	Index       DeclarationIndex
	Diagnostics []protocol.Diagnostic
}

var documentStates sync.Map // protocol.DocumentUri to *DocumentState

// validateDocumentState rebuilds the state for a document and pushes its
// diagnostics to the client.
func validateDocumentState(uri protocol.DocumentUri, notify glsp.NotifyFunc) *DocumentState {
	documentState := _createDocumentState(uri)
	documentStates.Store(uri, documentState)
	log.Debugf("validated %s: %d regions, %d declarations, %d diagnostics",
		uriToInternalPath(uri), len(documentState.Regions), len(documentState.Index), len(documentState.Diagnostics))

	go notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: documentState.Diagnostics,
	})

	return documentState
}

// getDocumentState returns the current state for a document, building it on
// demand for documents that have not been validated yet.
func getDocumentState(uri protocol.DocumentUri) *DocumentState {
	if documentState, ok := documentStates.Load(uri); ok {
		return documentState.(*DocumentState)
	}
	documentState := _createDocumentState(uri)
	if existing, loaded := documentStates.LoadOrStore(uri, documentState); loaded {
		return existing.(*DocumentState)
	}
	return documentState
}

func deleteDocumentState(uri protocol.DocumentUri) {
	documentStates.Delete(uri)
}

func _createDocumentState(uri protocol.DocumentUri) *DocumentState {
	var documentState DocumentState

	content, _ := getDocument(uri)
	documentState.Table = newLineTable(content)

	var virtual string
	documentState.Regions, virtual = extractScriptRegions(content)

	tree, err := parseScript(virtual)
	if err != nil {
		log.Errorf("%s", err.Error())
		documentState.Index = make(DeclarationIndex)
		documentState.Diagnostics = scanUppercaseRuns(content, getDocumentSettings(uri))
		return &documentState
	}
	defer tree.Close()

	documentState.Index = buildDeclarationIndex(tree.RootNode(), []byte(virtual), documentState.Table)

	if errorNode := firstErrorNode(tree.RootNode()); errorNode != nil {
		documentState.Diagnostics = append(documentState.Diagnostics, syntaxErrorDiagnostic(errorNode, documentState.Table))
	}
	documentState.Diagnostics = append(documentState.Diagnostics,
		scanUppercaseRuns(content, getDocumentSettings(uri))...)

	return &documentState
}
