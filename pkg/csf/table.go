package csf

import "strings"

// Record tags defined by the CSF format. Unknown tags read from a file are
// preserved verbatim; only TagExtra triggers extra-data handling.
const (
	TagPlain = " RTS"
	TagExtra = "WRTS"
)

// DefaultVersion is the format version written for newly created tables.
const DefaultVersion = 3

// StringRecord is one localized string entry within a label.
type StringRecord struct {
	Tag       string // 4-byte ASCII record tag, usually " RTS" or "WRTS"
	Text      string // primary decoded string value
	ExtraText string // auxiliary text, only meaningful when Tag is "WRTS"
}

// HasExtra reports whether the record carries auxiliary extra data.
// The comparison is exact and case-sensitive, matching the format.
func (r StringRecord) HasExtra() bool {
	return r.Tag == TagExtra
}

// Label is a named group of string records sharing one identifier.
type Label struct {
	Name    string
	Records []StringRecord
}

// LabelStrings is a snapshot of one label's name and string values.
type LabelStrings struct {
	Name  string
	Texts []string
}

// LabelStringsExtra extends LabelStrings with the extra-data values.
// The Extras slot is empty for records without extra data.
type LabelStringsExtra struct {
	Name   string
	Texts  []string
	Extras []string
}

// StringTable is an in-memory CSF string table.
//
// Labels preserve insertion order and duplicate names are permitted.
// Altered is set by successful AddLabel calls and cleared by Load and Save;
// callers use it to decide whether a save is needed.
type StringTable struct {
	Version  int32
	Language LanguageID
	Labels   []Label
	Altered  bool
	Filename string
}

// NewStringTable returns an empty table with default version and language.
func NewStringTable() *StringTable {
	return &StringTable{
		Version:  DefaultVersion,
		Language: LanguageEnglishUS,
	}
}

// LabelCount returns the number of labels in the table.
func (t *StringTable) LabelCount() int {
	return len(t.Labels)
}

// StringCount returns the total number of string records across all labels.
// It is computed on demand, never cached.
func (t *StringTable) StringCount() int {
	n := 0
	for i := range t.Labels {
		n += len(t.Labels[i].Records)
	}
	return n
}

// AddLabel appends a new label holding a single plain string record.
// It reports false without mutating the table when name is empty.
// An empty text value is valid.
func (t *StringTable) AddLabel(name, text string) bool {
	if name == "" {
		return false
	}
	t.Labels = append(t.Labels, Label{
		Name:    name,
		Records: []StringRecord{{Tag: TagPlain, Text: text}},
	})
	t.Altered = true
	return true
}

// AddLabelExtra appends a new label holding a single record with extra data.
// It reports false without mutating the table when name is empty.
func (t *StringTable) AddLabelExtra(name, text, extra string) bool {
	if name == "" {
		return false
	}
	t.Labels = append(t.Labels, Label{
		Name:    name,
		Records: []StringRecord{{Tag: TagExtra, Text: text, ExtraText: extra}},
	})
	t.Altered = true
	return true
}

// AddLabelStrings appends a new label holding one plain record per text.
// It reports false without mutating the table when name is empty or texts
// is nil or empty.
func (t *StringTable) AddLabelStrings(name string, texts []string) bool {
	if name == "" || len(texts) == 0 {
		return false
	}
	records := make([]StringRecord, len(texts))
	for i, s := range texts {
		records[i] = StringRecord{Tag: TagPlain, Text: s}
	}
	t.Labels = append(t.Labels, Label{Name: name, Records: records})
	t.Altered = true
	return true
}

// AddLabelStringsExtra appends a new label holding one extra-data record per
// text, pairing texts[i] with extras[i]. It reports false without mutating
// the table when name is empty, either slice is nil or empty, or the slice
// lengths differ.
func (t *StringTable) AddLabelStringsExtra(name string, texts, extras []string) bool {
	if name == "" || len(texts) == 0 || len(extras) == 0 || len(texts) != len(extras) {
		return false
	}
	records := make([]StringRecord, len(texts))
	for i, s := range texts {
		records[i] = StringRecord{Tag: TagExtra, Text: s, ExtraText: extras[i]}
	}
	t.Labels = append(t.Labels, Label{Name: name, Records: records})
	t.Altered = true
	return true
}

// Lookup returns the first label whose name matches case-insensitively,
// scanning in storage order. A matched label with zero records reports
// not-found, the same as no match at all.
func (t *StringTable) Lookup(name string) (*Label, bool) {
	for i := range t.Labels {
		if strings.EqualFold(t.Labels[i].Name, name) {
			if len(t.Labels[i].Records) == 0 {
				return nil, false
			}
			return &t.Labels[i], true
		}
	}
	return nil, false
}

// List returns a snapshot of every label's name and primary texts in
// storage order.
func (t *StringTable) List() []LabelStrings {
	out := make([]LabelStrings, len(t.Labels))
	for i := range t.Labels {
		texts := make([]string, len(t.Labels[i].Records))
		for j, r := range t.Labels[i].Records {
			texts[j] = r.Text
		}
		out[i] = LabelStrings{Name: t.Labels[i].Name, Texts: texts}
	}
	return out
}

// ListExtra returns a snapshot like List that also carries extra-data
// values. Records without extra data leave their Extras slot empty.
func (t *StringTable) ListExtra() []LabelStringsExtra {
	out := make([]LabelStringsExtra, len(t.Labels))
	for i := range t.Labels {
		texts := make([]string, len(t.Labels[i].Records))
		extras := make([]string, len(t.Labels[i].Records))
		for j, r := range t.Labels[i].Records {
			texts[j] = r.Text
			if r.HasExtra() {
				extras[j] = r.ExtraText
			}
		}
		out[i] = LabelStringsExtra{Name: t.Labels[i].Name, Texts: texts, Extras: extras}
	}
	return out
}
