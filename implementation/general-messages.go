package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// protocol.InitializeFunc signature
func Initialize(context *glsp.Context, params *protocol.InitializeParams) (interface{}, error) {
	capabilities := Handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindIncremental
	capabilities.HoverProvider = true
	capabilities.DefinitionProvider = true
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		ResolveProvider:   boolPtr(true),
		TriggerCharacters: []string{".", "<"},
	}

	// Workspace folders are only advertised when the client knows about them.
	if params.Capabilities.Workspace != nil &&
		params.Capabilities.Workspace.WorkspaceFolders != nil &&
		*params.Capabilities.Workspace.WorkspaceFolders {
		capabilities.Workspace = &protocol.ServerCapabilitiesWorkspace{
			WorkspaceFolders: &protocol.WorkspaceFoldersServerCapabilities{
				Supported: boolPtr(true),
			},
		}
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: stringPtr(ServerVersion),
		},
	}, nil
}

// protocol.InitializedFunc signature
func Initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// protocol.ShutdownFunc signature
func Shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// protocol.SetTraceFunc signature
func SetTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func boolPtr(value bool) *bool {
	return &value
}

func stringPtr(value string) *string {
	return &value
}
