package loop

import (
	"bufio"
	"bytes"
	"testing"
)

func reader(rest string) *bufio.Reader {
	return bufio.NewReader(bytes.NewBufferString(rest))
}

func TestDecodeKeyBasicControls(t *testing.T) {
	cases := map[byte]KeyKind{
		'\r':  KeyEnter,
		0x7f:  KeyBackspace,
		0x03:  KeyCtrlC,
		0x09:  KeyTab,
	}
	for b, want := range cases {
		k := decodeKey(b, reader(""))
		if k.Kind != want {
			t.Fatalf("decodeKey(%#x) = %v, want %v", b, k.Kind, want)
		}
	}
}

func TestDecodeKeyAsciiRune(t *testing.T) {
	k := decodeKey('a', reader(""))
	if k.Kind != KeyRune || k.Rune != 'a' {
		t.Fatalf("decodeKey('a') = %+v, want rune a", k)
	}
}

func TestDecodeEscapeArrowKeys(t *testing.T) {
	// peekAvailable only sees bytes already sitting in the bufio buffer, so
	// the sequence must be pulled in via Peek before decodeKey reads it --
	// matching how a real terminal delivers ESC and the CSI bytes together
	// in one underlying read.
	r1 := reader("[A")
	r1.Peek(1)
	k := decodeKey(0x1b, r1)
	if k.Kind != KeyUp {
		t.Fatalf("decodeKey(esc [A) = %v, want KeyUp", k.Kind)
	}

	r2 := reader("[B")
	r2.Peek(1)
	k = decodeKey(0x1b, r2)
	if k.Kind != KeyDown {
		t.Fatalf("decodeKey(esc [B) = %v, want KeyDown", k.Kind)
	}
}

func TestDecodeEscapeAlone(t *testing.T) {
	k := decodeKey(0x1b, reader(""))
	if k.Kind != KeyEsc {
		t.Fatalf("decodeKey(lone esc) = %v, want KeyEsc", k.Kind)
	}
}

func TestDecodeMultibyteRune(t *testing.T) {
	// 'é' is U+00E9, encoded as 0xC3 0xA9 in UTF-8.
	k := decodeKey(0xC3, reader("\xA9"))
	if k.Kind != KeyRune || k.Rune != 'é' {
		t.Fatalf("decodeKey(multibyte) = %+v, want rune é", k)
	}
}

func TestUtf8ByteSequenceLen(t *testing.T) {
	cases := []struct {
		lead byte
		want int
	}{
		{0x41, 1}, // 'A'
		{0xC3, 2},
		{0xE2, 3},
		{0xF0, 4},
	}
	for _, c := range cases {
		if got := utf8ByteSequenceLen(c.lead); got != c.want {
			t.Fatalf("utf8ByteSequenceLen(%#x) = %d, want %d", c.lead, got, c.want)
		}
	}
}
