package implementation

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func stateFor(t *testing.T, uri protocol.DocumentUri, content string) *DocumentState {
	t.Helper()
	setDocument(uri, content)
	t.Cleanup(func() {
		deleteDocument(uri)
		deleteDocumentState(uri)
		deleteDocumentSettings(uri)
		deleteHoverState(uri)
	})
	return getDocumentState(uri)
}
