package loop

import (
	"bufio"
	"time"
	"unicode/utf8"
)

// decodeKey turns one leading byte (plus whatever bufio.Reader bytes follow
// it) into a Key. Escape sequences for arrow keys are recognised; any other
// byte following ESC within the sequence is swallowed, and a bare ESC with
// nothing buffered is reported as KeyEsc.
func decodeKey(b byte, r *bufio.Reader) Key {
	switch b {
	case '\r', '\n':
		return Key{Kind: KeyEnter}
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}
	case 0x03:
		return Key{Kind: KeyCtrlC}
	case 0x09:
		return Key{Kind: KeyTab}
	case 0x1b:
		return decodeEscape(r)
	}

	if b < utf8.RuneSelf {
		return Key{Kind: KeyRune, Rune: rune(b)}
	}
	return decodeMultibyteRune(b, r)
}

// decodeEscape peeks for a CSI arrow sequence ("\x1b[A" etc); bufio.Reader
// has no input pending after a lone ESC (terminal sends it standalone), so
// a short wait covers the gap between ESC and the following bytes of a
// genuine sequence without blocking indefinitely on a bare Escape keypress.
func decodeEscape(r *bufio.Reader) Key {
	if !peekAvailable(r, 50*time.Millisecond) {
		return Key{Kind: KeyEsc}
	}
	b1, err := r.ReadByte()
	if err != nil || b1 != '[' {
		return Key{Kind: KeyEsc}
	}
	b2, err := r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEsc}
	}
	switch b2 {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	default:
		return Key{Kind: KeyEsc}
	}
}

// peekAvailable reports whether at least one byte is already buffered,
// polling briefly since bufio.Reader exposes no blocking-with-timeout peek.
func peekAvailable(r *bufio.Reader, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if r.Buffered() > 0 {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return r.Buffered() > 0
}

func decodeMultibyteRune(first byte, r *bufio.Reader) Key {
	n := utf8ByteSequenceLen(first)
	if n <= 1 {
		return Key{Kind: KeyRune, Rune: rune(first)}
	}
	buf := make([]byte, n)
	buf[0] = first
	for i := 1; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return Key{Kind: KeyRune, Rune: rune(first)}
		}
		buf[i] = b
	}
	ru, _ := utf8.DecodeRune(buf)
	return Key{Kind: KeyRune, Rune: ru}
}

// utf8ByteSequenceLen returns the expected total byte length of a UTF-8
// sequence starting with lead, per the leading-byte bit pattern.
func utf8ByteSequenceLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
