package implementation

import (
	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type DeclarationKind string

const (
	KindVariable DeclarationKind = "variable"
	KindFunction DeclarationKind = "function"
	KindClass    DeclarationKind = "class"
	KindMember   DeclarationKind = "member"
)

// DeclarationEntry records one top-level declaration found in the script
// region. Offsets are byte offsets of the name token in the document.
type DeclarationEntry struct {
	Name        string
	Kind        DeclarationKind
	StartOffset int
	EndOffset   int
	Line        protocol.UInteger
	Children    []*DeclarationEntry
}

// DeclarationIndex maps an identifier to its last-seen top-level declaration.
// A later declaration with the same name replaces an earlier one; there is no
// scoping and no shadowing.
type DeclarationIndex map[string]*DeclarationEntry

func (index DeclarationIndex) Lookup(name string) (*DeclarationEntry, bool) {
	entry, ok := index[name]
	return entry, ok
}

// buildDeclarationIndex walks the top-level statements of a parsed script and
// records named functions, variables, and classes. Class members become child
// entries. Anonymous declarations and statements of any other kind are
// skipped; nothing below the top level is indexed.
func buildDeclarationIndex(root *sitter.Node, source []byte, table lineTable) DeclarationIndex {
	index := make(DeclarationIndex)
	if root == nil {
		return index
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		statement := root.NamedChild(i)

		switch statement.Type() {
		case "function_declaration", "generator_function_declaration":
			if entry := entryForName(statement, KindFunction, source, table); entry != nil {
				index[entry.Name] = entry
			}

		case "lexical_declaration", "variable_declaration":
			// Only the first declarator of a statement is recorded.
			if declarator := namedChildOfType(statement, "variable_declarator"); declarator != nil {
				if entry := entryForName(declarator, KindVariable, source, table); entry != nil {
					index[entry.Name] = entry
				}
			}

		case "class_declaration":
			entry := entryForName(statement, KindClass, source, table)
			if entry == nil {
				continue
			}
			if body := statement.ChildByFieldName("body"); body != nil {
				for j := 0; j < int(body.NamedChildCount()); j++ {
					member := body.NamedChild(j)
					switch member.Type() {
					case "method_definition", "field_definition":
						if child := entryForName(member, KindMember, source, table); child != nil {
							entry.Children = append(entry.Children, child)
						}
					}
				}
			}
			index[entry.Name] = entry
		}
	}

	return index
}

// entryForName builds an entry from a declaration node's name token,
// returning nil for anonymous declarations. The grammar calls the token
// "name" everywhere except field definitions, where it is "property".
func entryForName(node *sitter.Node, kind DeclarationKind, source []byte, table lineTable) *DeclarationEntry {
	name := node.ChildByFieldName("name")
	if name == nil {
		name = node.ChildByFieldName("property")
	}
	if name == nil {
		return nil
	}

	start := int(name.StartByte())
	return &DeclarationEntry{
		Name:        name.Content(source),
		Kind:        kind,
		StartOffset: start,
		EndOffset:   int(name.EndByte()),
		Line:        table.line(start),
	}
}

func namedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}
