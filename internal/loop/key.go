package loop

// KeyKind discriminates symbolic keys from printable runes.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
	KeyTab
	KeyCtrlC
)

// Key is one token produced by the input thread: either a printable rune
// or a symbolic name.
type Key struct {
	Kind KeyKind
	Rune rune
}
