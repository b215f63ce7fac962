package implementation

import (
	"fmt"
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var uppercaseRun = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// scanUppercaseRuns reports every run of two or more uppercase letters in the
// raw document text as a warning, up to the configured maximum. It works on
// the whole document, not just the script regions, and is independent of the
// declaration index.
func scanUppercaseRuns(content string, settings *ServerSettings) []protocol.Diagnostic {
	matches := uppercaseRun.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	table := newLineTable(content)

	var diagnostics []protocol.Diagnostic
	for _, match := range matches {
		if len(diagnostics) >= settings.MaxNumberOfProblems {
			break
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: table.position(match[0]),
				End:   table.position(match[1]),
			},
			Severity: severityPtr(protocol.DiagnosticSeverityWarning),
			Source:   stringPtr(ServerName),
			Message:  fmt.Sprintf("%s is all uppercase.", content[match[0]:match[1]]),
		})
	}

	return diagnostics
}

// syntaxErrorDiagnostic anchors one warning at the first place the script
// parser lost track of the input.
func syntaxErrorDiagnostic(errorNode *sitter.Node, table lineTable) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: table.position(int(errorNode.StartByte())),
			End:   table.position(int(errorNode.EndByte())),
		},
		Severity: severityPtr(protocol.DiagnosticSeverityWarning),
		Source:   stringPtr(ServerName),
		Message:  "script region contains a syntax error",
	}
}

func severityPtr(severity protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &severity
}
