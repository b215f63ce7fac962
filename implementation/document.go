package implementation

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// documents holds the current text of every open document.
var documents sync.Map // protocol.DocumentUri to string

func getDocument(uri protocol.DocumentUri) (string, bool) {
	if content, ok := documents.Load(uri); ok {
		return content.(string), true
	}
	return "", false
}

func setDocument(uri protocol.DocumentUri, content string) {
	documents.Store(uri, content)
}

func deleteDocument(uri protocol.DocumentUri) {
	documents.Delete(uri)
}

func forEachDocument(f func(uri protocol.DocumentUri, content string)) {
	documents.Range(func(key, value interface{}) bool {
		f(key.(protocol.DocumentUri), value.(string))
		return true
	})
}

func uriToInternalPath(uri protocol.DocumentUri) string {
	return strings.TrimPrefix(string(uri), "file://")
}

// rangeToIndex converts a protocol range (UTF-16 line/character) to byte
// indexes in content.
func rangeToIndex(content string, range_ *protocol.Range) (int, int) {
	start := positionToIndex(content, range_.Start)
	end := positionToIndex(content, range_.End)
	if end < start {
		end = start
	}
	return start, end
}

func positionToIndex(content string, position protocol.Position) int {
	index := 0
	for line := protocol.UInteger(0); line < position.Line; line++ {
		next := strings.IndexByte(content[index:], '\n')
		if next == -1 {
			return len(content)
		}
		index += next + 1
	}

	// Character offsets on a line are counted in UTF-16 code units.
	units := protocol.UInteger(0)
	for index < len(content) && units < position.Character {
		r, size := utf8.DecodeRuneInString(content[index:])
		if r == '\n' {
			break
		}
		units++
		if r > 0xFFFF {
			units++
		}
		index += size
	}

	return index
}

// lineTable records the byte offset of every line start, so that offset to
// line/column conversion is a binary search rather than a prefix scan.
type lineTable []int

func newLineTable(content string) lineTable {
	table := lineTable{0}
	for index := 0; index < len(content); index++ {
		if content[index] == '\n' {
			table = append(table, index+1)
		}
	}
	return table
}

func (table lineTable) line(offset int) protocol.UInteger {
	line := sort.SearchInts(table, offset+1) - 1
	return protocol.UInteger(line)
}

func (table lineTable) position(offset int) protocol.Position {
	line := table.line(offset)
	return protocol.Position{
		Line:      line,
		Character: protocol.UInteger(offset - table[line]),
	}
}
