package csf

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// On-disk markers. The magic is matched case-insensitively on read.
const (
	fileMagic = " FSC"
	labelTag  = " LBL"
)

// fileHeader is the fixed 20-byte block following the magic.
type fileHeader struct {
	Version     int32
	LabelCount  int32 // declared total, informational only
	StringCount int32 // declared total, informational only
	Reserved    [4]byte
	Language    int32
}

// Load reads the string table stored in the file at path. The returned
// table is bound to path and reports Altered false.
func Load(path string) (*StringTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening string table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Parse reads a binary string table from r. name identifies the stream in
// error messages and becomes the table's bound filename. On any failure no
// partial table is returned.
func Parse(r io.Reader, name string) (*StringTable, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, 4)
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%s: reading magic: %w", name, err)
	}
	if !bytes.EqualFold(magic, []byte(fileMagic)) {
		return nil, fmt.Errorf("%s: %w: bad magic %q", name, ErrInvalidFormat, magic)
	}

	var hdr fileHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", name, err)
	}

	t := &StringTable{
		Version:  hdr.Version,
		Language: LanguageFromInt(hdr.Language),
		Filename: name,
	}

	// The declared label and string counts are not trusted as loop bounds;
	// labels are read until the stream ends cleanly on a label tag.
	tag := make([]byte, 4)
	for {
		if _, err := io.ReadFull(br, tag); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%s: reading label tag: %w", name, err)
		}
		label, err := readLabel(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t.Labels = append(t.Labels, label)
	}
	return t, nil
}

// readLabel reads one label body. The 4-byte " LBL" tag has already been
// consumed by the caller; its value is trusted, matching the original
// position-based layout.
func readLabel(br *bufio.Reader) (Label, error) {
	var stringCount, nameLen int32
	if err := binary.Read(br, binary.LittleEndian, &stringCount); err != nil {
		return Label{}, fmt.Errorf("reading label string count: %w", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &nameLen); err != nil {
		return Label{}, fmt.Errorf("reading label name length: %w", err)
	}
	if stringCount < 0 || nameLen < 0 {
		return Label{}, fmt.Errorf("%w: negative label field", ErrInvalidFormat)
	}

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(br, name); err != nil {
		return Label{}, fmt.Errorf("reading label name: %w", err)
	}

	label := Label{Name: string(name)}
	for i := int32(0); i < stringCount; i++ {
		record, err := readRecord(br)
		if err != nil {
			return Label{}, fmt.Errorf("label %q: %w", label.Name, err)
		}
		label.Records = append(label.Records, record)
	}
	return label, nil
}

func readRecord(br *bufio.Reader) (StringRecord, error) {
	tag := make([]byte, 4)
	if _, err := io.ReadFull(br, tag); err != nil {
		return StringRecord{}, fmt.Errorf("reading record tag: %w", err)
	}

	// The length field counts UTF-16 code units, not bytes.
	var length int32
	if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
		return StringRecord{}, fmt.Errorf("reading record length: %w", err)
	}
	if length < 0 {
		return StringRecord{}, fmt.Errorf("%w: negative record length", ErrInvalidFormat)
	}

	record := StringRecord{Tag: string(tag)}
	if length > 0 {
		data := make([]byte, int(length)*2)
		if _, err := io.ReadFull(br, data); err != nil {
			return StringRecord{}, fmt.Errorf("reading record data: %w", err)
		}
		record.Text = decodeString(data)
	}

	if record.Tag == TagExtra {
		// The extra length field is a byte count, unlike the primary
		// length field.
		var extraLen int32
		if err := binary.Read(br, binary.LittleEndian, &extraLen); err != nil {
			return StringRecord{}, fmt.Errorf("reading extra data length: %w", err)
		}
		if extraLen < 0 {
			return StringRecord{}, fmt.Errorf("%w: negative extra data length", ErrInvalidFormat)
		}
		if extraLen > 0 {
			data := make([]byte, extraLen)
			if _, err := io.ReadFull(br, data); err != nil {
				return StringRecord{}, fmt.Errorf("reading extra data: %w", err)
			}
			record.ExtraText = decodeString(data)
		}
	}
	return record, nil
}
