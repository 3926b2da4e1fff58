package screens

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/keytrainer/keytrainer/internal/analyzer"
	"github.com/keytrainer/keytrainer/internal/clock"
	"github.com/keytrainer/keytrainer/internal/engine"
	"github.com/keytrainer/keytrainer/internal/loop"
	"github.com/keytrainer/keytrainer/internal/model"
	"github.com/keytrainer/keytrainer/internal/render"
)

// analyzeEngine runs post-session analysis over a completed engine's
// timeline.
func analyzeEngine(e *engine.Engine) model.SessionAnalysis {
	return analyzer.Analyze(e.Timeline())
}

const (
	lineWidth    = 65
	visibleLines = 3
)

// Typing displays the target text and drives the typing engine from raw
// key input. Ghost-racer and a toggleable live heatmap are additive to the
// zen-mode hide-the-stats-bar behaviour.
type Typing struct {
	Theme  model.Theme
	Source string

	engine       *engine.Engine
	zen          bool
	showHeatmap  bool
	ghostCumMs   []int
	lines        []string
	charToLine   []int
}

// NewTyping constructs a Typing screen for text under source, optionally in
// zen mode and with a previous best-session's ms gaps between correct
// keystrokes for the ghost racer (empty when no prior session exists),
// which it sums into cumulative offsets.
func NewTyping(text, source string, t model.Theme, zen bool, ghostTimingsMs []int) *Typing {
	s := &Typing{
		Theme:  t,
		Source: source,
		engine: engine.New(text, clock.Real{}),
		zen:    zen,
		lines:  render.WrapWords(text, lineWidth),
	}
	cumulative := 0
	for _, ms := range ghostTimingsMs {
		cumulative += ms
		s.ghostCumMs = append(s.ghostCumMs, cumulative)
	}
	s.charToLine = make([]int, len([]rune(text))+1)
	pos := 0
	for li, line := range s.lines {
		for range []rune(line) {
			s.charToLine[pos] = li
			pos++
		}
		if li < len(s.lines)-1 {
			if pos < len(s.charToLine) {
				s.charToLine[pos] = li
			}
			pos++
		}
	}
	return s
}

func (s *Typing) ghostPosition() int {
	if len(s.ghostCumMs) == 0 {
		return -1
	}
	if s.engine.State() == model.StateIdle {
		return 0
	}
	elapsedMs := s.engine.Elapsed().Seconds() * 1000
	pos := 0
	for i, t := range s.ghostCumMs {
		if float64(t) <= elapsedMs {
			pos = i + 1
		} else {
			break
		}
	}
	if pos > len(s.ghostCumMs) {
		pos = len(s.ghostCumMs)
	}
	return pos
}

func (s *Typing) ghostDelta() string {
	gpos := s.ghostPosition()
	if gpos < 0 {
		return ""
	}
	diff := gpos - s.engine.Position()
	switch {
	case diff > 0:
		return "ghost ahead by " + itoa(diff)
	case diff < 0:
		return "you ahead by " + itoa(-diff)
	default:
		return "tied with ghost"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func (s *Typing) Render(width, height int) string {
	t := s.Theme
	var b strings.Builder

	primary := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))

	b.WriteString(primary.Render("  keytrainer"))
	b.WriteString(muted.Render("  ·  " + s.Source))
	if s.zen {
		b.WriteString(secondary.Render("  ·  zen"))
	}
	if len(s.ghostCumMs) > 0 {
		b.WriteString(secondary.Render("  ·  " + s.ghostDelta()))
	}
	b.WriteString("\n\n")

	b.WriteString(s.renderTextBlock())
	b.WriteString("\n\n")

	if !s.zen || s.engine.IsComplete() {
		b.WriteString(render.StatsBar(s.engine.WPM(), s.engine.Accuracy(), s.engine.Elapsed().Seconds(), s.engine.Progress(), t))
	} else {
		b.WriteString(muted.Render("  — zen mode —"))
	}

	if s.showHeatmap {
		b.WriteString("\n\n")
		counts := render.CountsFromKeystrokes(s.engine.Timeline().Keystrokes())
		for _, line := range render.Heatmap(counts, t, true) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	hint := primary.Render("  Esc ") + muted.Render("abandon   ") + primary.Render("h ") + muted.Render("heatmap")
	if s.engine.HasError() {
		errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Error))
		hint += errStyle.Render("   x wrong key")
	}
	b.WriteString(hint)

	border := t.Dim
	if s.engine.HasError() {
		border = t.Error
	} else if s.zen {
		border = t.Secondary
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(border)).Padding(1, 2)
	return box.Render(b.String())
}

func (s *Typing) renderTextBlock() string {
	pos := s.engine.Position()
	currentLine := 0
	if pos < len(s.charToLine) {
		currentLine = s.charToLine[pos]
	} else if len(s.charToLine) > 0 {
		currentLine = s.charToLine[len(s.charToLine)-1]
	}

	startLine := currentLine - 1
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleLines
	if endLine > len(s.lines) {
		endLine = len(s.lines)
	}
	if endLine-startLine < visibleLines {
		startLine = endLine - visibleLines
		if startLine < 0 {
			startLine = 0
		}
	}

	var b strings.Builder
	globalPos := lineStartPos(s.lines, startLine)
	for li := startLine; li < endLine; li++ {
		b.WriteString("  ")
		for _, ch := range []rune(s.lines[li]) {
			b.WriteString(s.styledChar(ch, globalPos))
			globalPos++
		}
		if li < len(s.lines)-1 {
			b.WriteString(s.styledChar(' ', globalPos))
			globalPos++
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Typing) styledChar(ch rune, pos int) string {
	t := s.Theme
	switch s.engine.CharState(pos) {
	case model.CharTyped:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)).Render(string(ch))
	case model.CharCursor:
		display := ch
		if ch == ' ' {
			display = '█'
		}
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color(t.Primary)).Render(string(display))
	case model.CharCursorError:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color(t.Error)).Render("█")
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted)).Render(string(ch))
	}
}

func lineStartPos(lines []string, lineIdx int) int {
	pos := 0
	for i := 0; i < lineIdx; i++ {
		pos += len([]rune(lines[i])) + 1
	}
	return pos
}

func (s *Typing) HandleKey(k loop.Key) *loop.ScreenAction {
	switch k.Kind {
	case loop.KeyEsc:
		return loop.Pop()
	case loop.KeyBackspace:
		s.engine.HandleBackspace()
		return nil
	case loop.KeyRune:
		if k.Rune == 'h' || k.Rune == 'H' {
			s.showHeatmap = !s.showHeatmap
			return nil
		}
		if unicode.IsPrint(k.Rune) {
			s.engine.HandleChar(k.Rune)
			if s.engine.IsComplete() {
				analysis := analyzeEngine(s.engine)
				return loop.SessionComplete(s.Source, analysis, s.engine.Timeline().Keystrokes())
			}
		}
	}
	return nil
}
