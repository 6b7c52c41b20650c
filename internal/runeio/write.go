package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteANSIRune writes a rune to the given writer:
//   - ASCII runes are written directly as bytes
//   - NEL is written as the more conventional \r\n
//   - all other C1 controls are written in their classic 7-bit form
//     e.g. "\x9b" as "\x1b\x5b" for CSI
//   - all other runes are written in utf8 form
func WriteANSIRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	switch {
	case r < 0x80:
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	case r == 0x85:
		return w.Write([]byte{'\r', '\n'})
	case r <= 0x9f:
		return w.Write([]byte{0x1b, byte(r ^ 0xc0)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(string(r))
	}
	return w.Write([]byte(string(r)))
}

// WriteANSIString writes a string using WriteANSIRune for each rune; a run
// of plain ASCII is written in one go.
func WriteANSIString(w io.Writer, s string) (n int, err error) {
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] < 0x80 {
			i++
		}
		if i > 0 {
			m, err := io.WriteString(w, s[:i])
			n += m
			if err != nil {
				return n, err
			}
			s = s[i:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		m, err := WriteANSIRune(w, r)
		n += m
		if err != nil {
			return n, err
		}
		s = s[size:]
	}
	return n, nil
}
