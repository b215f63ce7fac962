package implementation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndexFunctionDeclaration(t *testing.T) {
	document := "<html>\n<script>\nfunction foo(){}\n</script>\n</html>\n"
	documentState := stateFor(t, "file:///index-function.html", document)

	entry, ok := documentState.Index.Lookup("foo")
	if !ok {
		t.Fatalf("index is missing foo: %v", documentState.Index)
	}

	want := &DeclarationEntry{
		Name:        "foo",
		Kind:        KindFunction,
		StartOffset: strings.Index(document, "foo"),
		EndOffset:   strings.Index(document, "foo") + len("foo"),
		Line:        2,
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexClassWithMember(t *testing.T) {
	document := "<script>\nclass C { x = 1; }\n</script>\n"
	documentState := stateFor(t, "file:///index-class.html", document)

	entry, ok := documentState.Index.Lookup("C")
	if !ok {
		t.Fatalf("index is missing C: %v", documentState.Index)
	}
	if entry.Kind != KindClass {
		t.Errorf("kind = %q, want %q", entry.Kind, KindClass)
	}
	if entry.Line != 1 {
		t.Errorf("line = %d, want 1", entry.Line)
	}

	if len(entry.Children) != 1 {
		t.Fatalf("children = %v, want one member", entry.Children)
	}
	member := entry.Children[0]
	if member.Name != "x" || member.Kind != KindMember {
		t.Errorf("member = %s/%s, want x/%s", member.Name, member.Kind, KindMember)
	}
}

func TestIndexVariableOverwrite(t *testing.T) {
	document := "<script>\nvar a = 1;\nvar a = 2;\n</script>\n"
	documentState := stateFor(t, "file:///index-overwrite.html", document)

	count := 0
	for name := range documentState.Index {
		if name == "a" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("index has %d entries for a, want 1", count)
	}

	entry, _ := documentState.Index.Lookup("a")
	if entry.Kind != KindVariable {
		t.Errorf("kind = %q, want %q", entry.Kind, KindVariable)
	}
	if entry.Line != 2 {
		t.Errorf("line = %d, want 2 (second declaration wins)", entry.Line)
	}
	if entry.StartOffset != strings.LastIndex(document, "a =") {
		t.Errorf("startOffset = %d, want %d", entry.StartOffset, strings.LastIndex(document, "a ="))
	}
}

func TestIndexFirstDeclaratorOnly(t *testing.T) {
	document := "<script>\nlet first = 1, second = 2;\n</script>\n"
	documentState := stateFor(t, "file:///index-declarators.html", document)

	if _, ok := documentState.Index.Lookup("first"); !ok {
		t.Errorf("index is missing first")
	}
	if _, ok := documentState.Index.Lookup("second"); ok {
		t.Errorf("index recorded second; only the first declarator of a statement is kept")
	}
}

func TestIndexSkipsAnonymousAndNested(t *testing.T) {
	document := "<script>\n" +
		"export default class {}\n" +
		"function outer() { function inner() {} }\n" +
		"</script>\n"
	documentState := stateFor(t, "file:///index-skips.html", document)

	if _, ok := documentState.Index.Lookup("inner"); ok {
		t.Errorf("index recorded a nested declaration")
	}
	if _, ok := documentState.Index.Lookup("outer"); !ok {
		t.Errorf("index is missing outer")
	}
}

func TestIndexRebuildDropsStaleEntries(t *testing.T) {
	uri := "file:///index-stale.html"
	stateFor(t, uri, "<script>\nfunction gone(){}\n</script>\n")

	setDocument(uri, "<script>\nfunction kept(){}\n</script>\n")
	documentState := validateDocumentState(uri, func(method string, params interface{}) {})

	if _, ok := documentState.Index.Lookup("gone"); ok {
		t.Errorf("stale entry survived the rebuild")
	}
	if _, ok := documentState.Index.Lookup("kept"); !ok {
		t.Errorf("index is missing kept")
	}
}
