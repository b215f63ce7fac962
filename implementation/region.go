package implementation

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
)

// Region is the byte span of one embedded script block's content, between
// the end of its start tag and the start of its end tag.
type Region struct {
	Start int
	End   int
}

func (region Region) contains(offset int) bool {
	return offset >= region.Start && offset < region.End
}

// extractScriptRegions parses the document markup and returns the script
// regions together with the virtual script document: a string of the same
// length as content in which everything outside script content is blanked to
// spaces, newlines kept. Offsets and lines in the virtual document therefore
// coincide with the original, so positions recorded from it need no
// translation back.
func extractScriptRegions(content string) ([]Region, string) {
	parser := sitter.NewParser()
	parser.SetLanguage(html.GetLanguage())

	source := []byte(content)
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		log.Errorf("%s", err.Error())
		return nil, blankDocument(content, nil)
	}
	defer tree.Close()

	var regions []Region
	collectScriptRegions(tree.RootNode(), &regions)

	return regions, blankDocument(content, regions)
}

func collectScriptRegions(node *sitter.Node, regions *[]Region) {
	if node == nil {
		return
	}

	if node.Type() == "script_element" {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "raw_text" {
				*regions = append(*regions, Region{
					Start: int(child.StartByte()),
					End:   int(child.EndByte()),
				})
			}
		}
		return
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectScriptRegions(node.NamedChild(i), regions)
	}
}

func blankDocument(content string, regions []Region) string {
	blanked := []byte(content)
	for index := range blanked {
		if blanked[index] != '\n' {
			blanked[index] = ' '
		}
	}
	for _, region := range regions {
		copy(blanked[region.Start:region.End], content[region.Start:region.End])
	}
	return string(blanked)
}

func regionAt(regions []Region, offset int) *Region {
	for index := range regions {
		if regions[index].contains(offset) {
			return &regions[index]
		}
	}
	return nil
}
