package implementation

import (
	"github.com/op/go-logging"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const (
	ServerName    = "htmljs-lsp"
	ServerVersion = "0.1.0"
)

var log = logging.MustGetLogger(ServerName)

// Handler routes protocol requests and notifications. Capabilities reported
// by Initialize are derived from which handler functions are set here.
var Handler protocol.Handler

func init() {
	Handler = protocol.Handler{
		Initialize:  Initialize,
		Initialized: Initialized,
		Shutdown:    Shutdown,
		SetTrace:    SetTrace,

		TextDocumentDidOpen:   TextDocumentDidOpen,
		TextDocumentDidChange: TextDocumentDidChange,
		TextDocumentDidSave:   TextDocumentDidSave,
		TextDocumentDidClose:  TextDocumentDidClose,

		TextDocumentHover:          TextDocumentHover,
		TextDocumentDefinition:     TextDocumentDefinition,
		TextDocumentCompletion:     TextDocumentCompletion,
		CompletionItemResolve:      CompletionItemResolve,
		TextDocumentDocumentSymbol: TextDocumentDocumentSymbol,

		WorkspaceDidChangeConfiguration: WorkspaceDidChangeConfiguration,
	}
}
