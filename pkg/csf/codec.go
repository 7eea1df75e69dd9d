package csf

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeString reverses the on-disk obfuscation: every byte is bitwise
// complemented and the result is interpreted as UTF-16LE. Zero-length
// input decodes to the empty string.
func decodeString(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	buf := make([]byte, len(data))
	for i, b := range data {
		buf[i] = ^b
	}
	// The UTF-16 decoder substitutes malformed sequences instead of
	// failing, so the error is always nil here.
	out, _ := utf16le.NewDecoder().Bytes(buf)
	return string(out)
}

// encodeString is the inverse of decodeString: UTF-16LE encode, then
// complement every byte. The empty string encodes to nil so callers can
// emit a bare zero length field with no data block.
func encodeString(s string) []byte {
	if s == "" {
		return nil
	}
	buf, _ := utf16le.NewEncoder().Bytes([]byte(s))
	for i, b := range buf {
		buf[i] = ^b
	}
	return buf
}
