package jsonmutator

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cybergodev/jsonmutator/internal"
)

// DiffOp classifies a line of a document diff
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// LineDiff is one line of pretty-printed JSON with how it changed
type LineDiff struct {
	Op   DiffOp
	Text string
}

// Diff compares d with other line by line over their indented JSON, with
// keys sorted so that ordering alone is not reported. other may be anything
// Merge accepts. The result is empty when both hold the same data.
func (d *Document) Diff(other any) []LineDiff {
	normalized, ok := d.normalize(other)
	if !ok {
		normalized = internal.NewMap(0)
	}
	from := diffText(d.items)
	to := diffText(normalized)
	if from == to {
		return nil
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []LineDiff
	for _, diff := range diffs {
		op := DiffEqual
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = DiffInsert
		case diffpatch.DiffDelete:
			op = DiffDelete
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, LineDiff{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

// FormatDiff renders diffs with "+ ", "- " and "  " line prefixes
func FormatDiff(diffs []LineDiff) string {
	var sb strings.Builder
	for _, diff := range diffs {
		switch diff.Op {
		case DiffInsert:
			sb.WriteString("+ ")
		case DiffDelete:
			sb.WriteString("- ")
		default:
			sb.WriteString("  ")
		}
		sb.WriteString(diff.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func diffText(v any) string {
	sorted := internal.Ingest(internal.Export(v), nil)
	data, err := internal.Encode(sorted, internal.EncodeOptions{Pretty: true, Indent: DefaultIndent})
	if err != nil {
		return ""
	}
	return string(data) + "\n"
}
