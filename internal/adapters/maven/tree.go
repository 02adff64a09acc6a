package maven

import (
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseTree builds the dependency forest from dependency:tree text output:
//
//	[INFO] com.example:app:jar:1.0.0
//	[INFO] +- org.clojure:clojure:jar:1.11.1:compile
//	[INFO] |  \- org.clojure:spec.alpha:jar:0.3.218:compile
//	[INFO] \- junit:junit:jar:4.13.2:test
//
// Each tree level indents by three columns; the "+-" / "\-" marker column
// gives the depth. Project root lines carry no marker and are containers, not
// dependencies: their children are the top-level forest nodes. Insertion
// order is preserved so flattening yields Maven's own pre-order.
func ParseTree(output string) ([]*domain.Node, error) {
	var forest []*domain.Node

	// parents[d] is the most recent node seen at depth d.
	parents := map[int]*domain.Node{}
	sawRoot := false

	for line := range strings.Lines(output) {
		line = strings.TrimRight(stripLogPrefix(line), "\r\n")

		depth, rest := treeDepth(line)
		if depth == 0 {
			// A bare coordinate line is a project root; anything else is
			// surrounding build log noise.
			if _, err := parseTreeCoordinate(rest); err == nil {
				parents = map[int]*domain.Node{}
				sawRoot = true
			}
			continue
		}

		raw, err := parseTreeCoordinate(rest)
		if err != nil {
			return nil, zerr.With(err, "content", line)
		}
		if !sawRoot {
			return nil, zerr.With(zerr.New("dependency line before any project root"), "content", line)
		}

		node := &domain.Node{Entry: domain.ParseRawEntry(raw)}
		if depth == 1 {
			forest = append(forest, node)
		} else {
			parent, ok := parents[depth-1]
			if !ok {
				return nil, zerr.With(zerr.New("dependency line skips a tree level"), "content", line)
			}
			parent.Children = append(parent.Children, node)
		}
		parents[depth] = node
	}

	return forest, nil
}

// treeDepth finds the "+-" or "\-" marker and returns the 1-based depth plus
// the text after the marker. Lines without a marker are depth 0.
func treeDepth(line string) (int, string) {
	for i := 0; i+2 <= len(line); i += 3 {
		head := line[i : i+2]
		if head == "+-" || head == `\-` {
			return i/3 + 1, strings.TrimSpace(line[i+2:])
		}
		if head != "| " && head != "  " {
			break
		}
	}
	return 0, strings.TrimSpace(line)
}

// parseTreeCoordinate splits a "group:artifact:type[:classifier]:version[:scope]"
// descriptor into a raw hierarchy entry.
func parseTreeCoordinate(s string) (domain.RawEntry, error) {
	fields := strings.Split(s, ":")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	raw := domain.RawEntry{}
	switch len(fields) {
	case 4: // group:artifact:type:version, project roots have no scope
		raw.Version = fields[3]
	case 5: // group:artifact:type:version:scope
		raw.Version = fields[3]
		raw.Scope = scopeName(fields[4])
	case 6: // group:artifact:type:classifier:version:scope
		raw.Version = fields[4]
		raw.Scope = scopeName(fields[5])
	default:
		return domain.RawEntry{}, zerr.New("unrecognized dependency coordinate")
	}

	// Group, artifact and version never contain spaces; this rejects prose
	// that happens to carry colons, such as download progress lines.
	if !coordinateField(fields[0]) || !coordinateField(fields[1]) || !coordinateField(raw.Version) {
		return domain.RawEntry{}, zerr.New("unrecognized dependency coordinate")
	}
	raw.Descriptor = fields[0] + "/" + fields[1]
	return raw, nil
}

func coordinateField(s string) bool {
	return s != "" && !strings.ContainsAny(s, " /")
}

// scopeName strips decorations such as "(optional)" that Maven appends after
// the scope in some output modes.
func scopeName(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return s
}
