package implementation

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// parseScript parses the virtual script document. The returned tree must be
// closed by the caller.
func parseScript(content string) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	return parser.ParseCtx(context.Background(), nil, []byte(content))
}

// firstErrorNode returns the first ERROR node in the tree, or nil when the
// parse was clean.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil || !node.HasError() {
		return nil
	}
	if node.Type() == "ERROR" {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
