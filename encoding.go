package keccak

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// FromString returns the Keccak-256 hash of the UTF-8 bytes of s.
func FromString(s string) [Size]byte {
	return Sum256([]byte(s))
}

// FromStringEncoding returns the Keccak-256 hash of s encoded with enc.
// Runes that enc cannot represent produce an error.
func FromStringEncoding(s string, enc encoding.Encoding) ([Size]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := transform.NewWriter(buf, enc.NewEncoder())
	if _, err := io.WriteString(w, s); err != nil {
		return [Size]byte{}, fmt.Errorf("keccak: encode string: %w", err)
	}
	if err := w.Close(); err != nil {
		return [Size]byte{}, fmt.Errorf("keccak: encode string: %w", err)
	}
	return Sum256(buf.B), nil
}

// LookupEncoding resolves a WHATWG encoding name or label such as "utf-8",
// "utf-16le", "windows-1252" or "shift_jis".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("keccak: encoding %q: %w", name, err)
	}
	return enc, nil
}

// FromHex decodes a hex string, with or without a 0x prefix, and returns
// the Keccak-256 hash of the decoded bytes.
func FromHex(s string) ([Size]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var err error
	buf.B, err = hex.AppendDecode(buf.B[:0], []byte(s))
	if err != nil {
		return [Size]byte{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return Sum256(buf.B), nil
}
