package csf

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteParseRoundTrip(t *testing.T) {
	table := NewStringTable()
	table.Language = LanguageGerman
	table.Version = 3

	require.True(t, table.AddLabel("GUI:OK", "OK"))
	require.True(t, table.AddLabel("GUI:Empty", ""))
	require.True(t, table.AddLabelExtra("VOX:Ready", "Unit ready", "iunitrdy"))
	require.True(t, table.AddLabelExtra("VOX:Silent", "No speech", ""))
	require.True(t, table.AddLabelStrings("GUI:Variants", []string{"one", "two", "three"}))
	require.True(t, table.AddLabel("TIP:Build", "first line\nsecond line"))

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	parsed, err := Parse(&buf, "roundtrip")
	require.NoError(t, err)

	assert.Equal(t, table.Version, parsed.Version)
	assert.Equal(t, table.Language, parsed.Language)
	assert.Equal(t, table.Labels, parsed.Labels)
	assert.False(t, parsed.Altered)
}

func TestWriteParseRoundTripUnknownTag(t *testing.T) {
	// Tags other than " RTS" and "WRTS" are preserved verbatim and carry
	// no extra data.
	table := NewStringTable()
	table.Labels = append(table.Labels, Label{
		Name:    "ODD:Tag",
		Records: []StringRecord{{Tag: "XYZW", Text: "kept"}},
	})

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	parsed, err := Parse(&buf, "unknown-tag")
	require.NoError(t, err)
	require.Equal(t, 1, parsed.LabelCount())
	assert.Equal(t, "XYZW", parsed.Labels[0].Records[0].Tag)
	assert.Equal(t, "kept", parsed.Labels[0].Records[0].Text)
}

func TestWriterRecomputesHeaderCounts(t *testing.T) {
	table := NewStringTable()
	require.True(t, table.AddLabelStrings("GUI:Variants", []string{"one", "two"}))
	require.True(t, table.AddLabel("GUI:OK", "OK"))

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	raw := buf.Bytes()
	labelCount := int32(binary.LittleEndian.Uint32(raw[8:12]))
	stringCount := int32(binary.LittleEndian.Uint32(raw[12:16]))
	assert.Equal(t, int32(2), labelCount)
	assert.Equal(t, int32(3), stringCount)
	// Reserved bytes are zero on write.
	assert.Equal(t, []byte{0, 0, 0, 0}, raw[16:20])
}

func TestWriterEmptyStringEmitsNoData(t *testing.T) {
	table := NewStringTable()
	require.True(t, table.AddLabel("E", ""))

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	// magic+header (24) + " LBL"+count+nameLen+name (13) + tag+length (8)
	assert.Equal(t, 24+13+8, buf.Len())

	parsed, err := Parse(bytes.NewReader(buf.Bytes()), "empty-string")
	require.NoError(t, err)
	assert.Equal(t, "", parsed.Labels[0].Records[0].Text)
}

func TestWriterRejectsNonASCIIName(t *testing.T) {
	table := NewStringTable()
	require.True(t, table.AddLabel("GUI:Größe", "value"))

	err := table.Write(&bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonASCIIName)
}

func TestWriterRejectsBadTag(t *testing.T) {
	table := NewStringTable()
	table.Labels = append(table.Labels, Label{
		Name:    "BAD",
		Records: []StringRecord{{Tag: "RTS", Text: "three byte tag"}},
	})

	err := table.Write(&bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadTag)
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := []byte("NOPE\x00\x00\x00\x00")

	_, err := Parse(bytes.NewReader(data), "bad.csf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	// The offending filename is part of the message.
	assert.Contains(t, err.Error(), "bad.csf")
}

func TestParseMagicCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(" fsc")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, fileHeader{Version: 3}))

	parsed, err := Parse(&buf, "lowercase-magic")
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.LabelCount())
}

func TestParseLanguageFallback(t *testing.T) {
	testCases := []struct {
		name string
		raw  int32
		want LanguageID
	}{
		{name: "out of range high", raw: 11, want: LanguageUnknown},
		{name: "independent", raw: -1, want: LanguageIndependent},
		{name: "last named language", raw: 9, want: LanguageChinese},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			buf.WriteString(fileMagic)
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, fileHeader{
				Version:  3,
				Language: tc.raw,
			}))

			parsed, err := Parse(&buf, tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, parsed.Language)
		})
	}
}

func TestParseIgnoresDeclaredCounts(t *testing.T) {
	// Declared header counts are informational; the label loop runs until
	// end of stream.
	table := NewStringTable()
	require.True(t, table.AddLabel("GUI:OK", "OK"))
	require.True(t, table.AddLabel("GUI:Cancel", "Cancel"))

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))
	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[8:12], 99)
	binary.LittleEndian.PutUint32(raw[12:16], 99)

	parsed, err := Parse(bytes.NewReader(raw), "stale-counts")
	require.NoError(t, err)
	assert.Equal(t, 2, parsed.LabelCount())
	assert.Equal(t, 2, parsed.StringCount())
}

func TestParseTruncatedStream(t *testing.T) {
	table := NewStringTable()
	require.True(t, table.AddLabel("GUI:OK", "a long enough value"))

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))
	raw := buf.Bytes()

	for _, cut := range []int{2, 10, 30, len(raw) - 3} {
		_, err := Parse(bytes.NewReader(raw[:cut]), "truncated")
		assert.Error(t, err, "cut at %d bytes", cut)
	}
}

func TestParseRejectsNegativeLengths(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(fileMagic)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, fileHeader{Version: 3}))
	buf.WriteString(labelTag)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(1)))  // string count
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(-5))) // name length

	_, err := Parse(&buf, "negative-length")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.csf")

	table := NewStringTable()
	table.Language = LanguageFrench
	require.True(t, table.AddLabel("GUI:OK", "OK"))
	require.True(t, table.AddLabelExtra("VOX:Ready", "Unit ready", "iunitrdy"))
	require.True(t, table.Altered)

	require.NoError(t, table.Save(path))
	assert.False(t, table.Altered)
	assert.Equal(t, path, table.Filename)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Filename)
	assert.False(t, loaded.Altered)
	assert.Equal(t, table.Labels, loaded.Labels)
	assert.Equal(t, table.Language, loaded.Language)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csf"))
	assert.Error(t, err)
}
