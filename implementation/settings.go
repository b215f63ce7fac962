package implementation

import (
	"encoding/json"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/sync/errgroup"
)

// ServerSettings is the client-controlled configuration, delivered under the
// "htmljs" section of workspace/didChangeConfiguration.
type ServerSettings struct {
	MaxNumberOfProblems int `json:"maxNumberOfProblems"`
}

const defaultMaxNumberOfProblems = 100

var (
	globalSettingsLock sync.Mutex
	globalSettings     = ServerSettings{MaxNumberOfProblems: defaultMaxNumberOfProblems}

	documentSettings sync.Map // protocol.DocumentUri to *ServerSettings
)

// getDocumentSettings resolves the settings for one document, caching the
// result until the next configuration change.
func getDocumentSettings(uri protocol.DocumentUri) *ServerSettings {
	if settings, ok := documentSettings.Load(uri); ok {
		return settings.(*ServerSettings)
	}

	globalSettingsLock.Lock()
	settings := globalSettings
	globalSettingsLock.Unlock()

	documentSettings.Store(uri, &settings)
	return &settings
}

func deleteDocumentSettings(uri protocol.DocumentUri) {
	documentSettings.Delete(uri)
}

// protocol.WorkspaceDidChangeConfigurationFunc signature
func WorkspaceDidChangeConfiguration(context *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	applySettings(params.Settings)

	// The settings cache is stale; drop it and re-validate every open
	// document so pushed diagnostics reflect the new configuration.
	documentSettings.Range(func(key, value interface{}) bool {
		documentSettings.Delete(key)
		return true
	})

	var group errgroup.Group
	forEachDocument(func(uri protocol.DocumentUri, content string) {
		group.Go(func() error {
			validateDocumentState(uri, context.Notify)
			return nil
		})
	})
	return group.Wait()
}

// applySettings decodes the "htmljs" section out of the untyped settings
// payload. Anything unrecognized leaves the previous values in place.
func applySettings(settings interface{}) {
	encoded, err := json.Marshal(settings)
	if err != nil {
		log.Errorf("%s", err.Error())
		return
	}

	var sections struct {
		HTMLJS *ServerSettings `json:"htmljs"`
	}
	if err := json.Unmarshal(encoded, &sections); err != nil {
		log.Errorf("%s", err.Error())
		return
	}
	if sections.HTMLJS == nil {
		return
	}
	if sections.HTMLJS.MaxNumberOfProblems <= 0 {
		sections.HTMLJS.MaxNumberOfProblems = defaultMaxNumberOfProblems
	}

	globalSettingsLock.Lock()
	globalSettings = *sections.HTMLJS
	globalSettingsLock.Unlock()
}
