package csf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Save serializes the table to the file at path. On success the table's
// Altered flag clears and its bound filename updates to path.
func (t *StringTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating string table: %w", err)
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing string table: %w", err)
	}

	t.Altered = false
	t.Filename = path
	return nil
}

// Write serializes the table to w in the binary CSF layout. The header's
// label and string counts are recomputed from the actual label sequence,
// never taken from cached values.
func (t *StringTable) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(fileMagic); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	hdr := fileHeader{
		Version:     t.Version,
		LabelCount:  int32(t.LabelCount()),
		StringCount: int32(t.StringCount()),
		Language:    int32(t.Language),
	}
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range t.Labels {
		if err := writeLabel(bw, &t.Labels[i]); err != nil {
			return fmt.Errorf("label %q: %w", t.Labels[i].Name, err)
		}
	}
	return bw.Flush()
}

func writeLabel(bw *bufio.Writer, label *Label) error {
	if !isASCII(label.Name) {
		return ErrNonASCIIName
	}

	if _, err := bw.WriteString(labelTag); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, int32(len(label.Records))); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, int32(len(label.Name))); err != nil {
		return err
	}
	if _, err := bw.WriteString(label.Name); err != nil {
		return err
	}

	for i := range label.Records {
		if err := writeRecord(bw, &label.Records[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(bw *bufio.Writer, record *StringRecord) error {
	if len(record.Tag) != 4 {
		return fmt.Errorf("%w: %q", ErrBadTag, record.Tag)
	}

	if _, err := bw.WriteString(record.Tag); err != nil {
		return err
	}
	data := encodeString(record.Text)
	if err := binary.Write(bw, binary.LittleEndian, int32(len(data)/2)); err != nil {
		return err
	}
	if len(data) > 0 {
		if _, err := bw.Write(data); err != nil {
			return err
		}
	}

	if record.Tag == TagExtra {
		extra := encodeString(record.ExtraText)
		if err := binary.Write(bw, binary.LittleEndian, int32(len(extra))); err != nil {
			return err
		}
		if len(extra) > 0 {
			if _, err := bw.Write(extra); err != nil {
				return err
			}
		}
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
