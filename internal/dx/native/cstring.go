package native

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// ErrNUL is returned for strings that contain a NUL byte.
var ErrNUL = errors.New("string contains NUL")

// Encoding selects the byte encoding of C strings.
type Encoding int

const (
	// EncodingCP932 is Shift_JIS, the library's default character set.
	EncodingCP932 Encoding = iota
	EncodingUTF8
)

func (e Encoding) String() string {
	switch e {
	case EncodingCP932:
		return "cp932"
	case EncodingUTF8:
		return "utf-8"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding accepts the usual spellings of CP932 and UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cp932", "shift_jis", "shift-jis", "sjis", "windows-31j":
		return EncodingCP932, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", s)
	}
}

// CString encodes s and appends the terminating NUL. Runes CP932 can not
// represent are replaced rather than rejected.
func (e Encoding) CString(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("encode %q: %w", s, ErrNUL)
	}

	switch e {
	case EncodingUTF8:
		buf := make([]byte, len(s)+1)
		copy(buf, s)
		return buf, nil
	case EncodingCP932:
		enc := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
		out, err := enc.Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encode %q as cp932: %w", s, err)
		}
		return append(out, 0), nil
	default:
		return nil, fmt.Errorf("encode %q: unknown encoding %d", s, int(e))
	}
}
