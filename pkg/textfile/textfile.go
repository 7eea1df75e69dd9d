// Package textfile converts between string tables and a line-based text
// representation. Each line holds one label as LABEL|VALUE, with the literal
// two-character sequence \n standing in for embedded newlines.
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Starkku/CSFTool/pkg/csf"
)

const maxLineSize = 1024 * 1024

// ImportFile reads text lines from the file at path into the table.
func ImportFile(t *csf.StringTable, path string) (added, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening text file: %w", err)
	}
	defer f.Close()

	return ImportLines(t, f)
}

// ImportLines reads LABEL|VALUE lines from r and adds each as a new label.
// Lines that are empty, start with ';', have no '|' separator, or whose
// label token starts with '*' are skipped. Malformed lines never abort the
// import; they only count as skipped.
func ImportLines(t *csf.StringTable, r io.Reader) (added, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		label, value, ok := splitLine(sc.Text())
		if !ok {
			skipped++
			continue
		}
		if t.AddLabel(label, value) {
			added++
		} else {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return added, skipped, fmt.Errorf("reading text lines: %w", err)
	}
	return added, skipped, nil
}

// splitLine applies the skip rules and splits a line on its first '|',
// so the value may itself contain '|'. Literal \n sequences become real
// newlines before the split.
func splitLine(line string) (label, value string, ok bool) {
	if line == "" || strings.HasPrefix(line, ";") {
		return "", "", false
	}
	line = strings.ReplaceAll(line, `\n`, "\n")
	label, value, found := strings.Cut(line, "|")
	if !found || strings.HasPrefix(label, "*") {
		return "", "", false
	}
	return label, value, true
}

// ExportFile writes the table's labels as text lines to the file at path.
func ExportFile(t *csf.StringTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating text file: %w", err)
	}
	if err := ExportLines(t, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportLines writes one LABEL|VALUE line per label to w, label names
// uppercased and sorted ascending by ordinal comparison. Only a label's
// first string exports; additional strings are dropped. A label with zero
// strings exports an empty value.
func ExportLines(t *csf.StringTable, w io.Writer) error {
	labels := t.List()
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Name < labels[j].Name
	})

	bw := bufio.NewWriter(w)
	for _, l := range labels {
		var first string
		if len(l.Texts) > 0 {
			first = l.Texts[0]
		}
		if _, err := fmt.Fprintf(bw, "%s|%s\n", strings.ToUpper(l.Name), escapeNewlines(first)); err != nil {
			return fmt.Errorf("writing text line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing text lines: %w", err)
	}
	return nil
}

// escapeNewlines replaces both CRLF and bare LF with the literal
// two-character \n escape.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	return strings.ReplaceAll(s, "\n", `\n`)
}
