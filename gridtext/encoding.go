package gridtext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// encodings maps accepted names to decoders. nil means the input is UTF-8
// and passed through untouched.
var encodings = map[string]encoding.Encoding{
	"utf-8":        nil,
	"utf8":         nil,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// Encodings lists the canonical encoding names NewReader accepts
func Encodings() []string {
	return []string{"utf-8", "latin1", "windows-1252"}
}

// NewReader wraps r so that it yields UTF-8 text decoded from the named
// encoding. names are matched case-insensitively.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
