// Package screens implements the pushable screens of the typing trainer:
// menu, typing, and results.
package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keytrainer/keytrainer/internal/generator"
	"github.com/keytrainer/keytrainer/internal/loop"
	"github.com/keytrainer/keytrainer/internal/model"
)

const logo = ` _          _
| | _____ _| |_ _ __ __ _(_)_ __   ___ _ __
| |/ / _ \ | __| '__/ _` + "`" + ` | | '_ \ / _ \ '__|
|   <  __/ | |_| | | (_| | | | | |  __/ |
|_|\_\___|_|\__|_|  \__,_|_|_| |_|\___|_|`

var builtinCategories = []string{
	generator.CategoryWords,
	generator.CategorySentences,
	generator.CategoryQuotes,
	generator.CategoryCode,
	generator.CategoryNumbers,
}

var categoryLabels = map[string]string{
	generator.CategoryWords:     "Common Words",
	generator.CategorySentences: "Sentences",
	generator.CategoryQuotes:    "Quotes",
	generator.CategoryCode:      "Code Snippets",
	generator.CategoryNumbers:   "Numbers",
	"wikipedia":                 "Wikipedia",
	"quote-api":                 "Live Quote",
	"focus":                     "Focus Practice",
}

var externalCategories = []string{"wikipedia", "quote-api"}

var wordTargets = []int{25, 50, 100}

var themeNames = []string{"cyberpunk", "nord", "dracula", "monokai", "minimal"}

// allContentKeys is builtin + external + focus, in menu order.
func allContentKeys() []string {
	keys := append([]string{}, builtinCategories...)
	keys = append(keys, externalCategories...)
	keys = append(keys, "focus")
	return keys
}

// Menu is the landing screen: category pick, then session length, then an
// optional theme picker.
type Menu struct {
	Theme     model.Theme
	StatsLine string
	FocusHint string

	stage      int // 0=category 1=length 2=theme
	catIndex   int
	lenIndex   int
	themeIndex int
}

// NewMenu constructs a Menu with the default session length (50 words).
func NewMenu(t model.Theme, statsLine, focusHint string) *Menu {
	return &Menu{Theme: t, StatsLine: statsLine, FocusHint: focusHint, lenIndex: 1}
}

func (m *Menu) Render(width, height int) string {
	t := m.Theme
	var b strings.Builder

	logoStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, logoStyle.Render(logo)))
	b.WriteString("\n\n")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, muted.Render("type better. every session.")))
	b.WriteString("\n\n")

	if m.StatsLine != "" {
		secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, secondary.Render(m.StatsLine)))
		b.WriteString("\n\n")
	}

	switch m.stage {
	case 0:
		b.WriteString(m.renderCategories())
	case 1:
		b.WriteString(m.renderLength())
	case 2:
		b.WriteString(m.renderThemes())
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.renderFooter()))

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Dim)).Padding(1, 4)
	return box.Render(b.String())
}

func (m *Menu) renderCategories() string {
	t := m.Theme
	secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
	var b strings.Builder
	b.WriteString(secondary.Render("  Builtin"))
	b.WriteString("\n")
	for i, key := range builtinCategories {
		b.WriteString(m.catLine(i, categoryLabels[key]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(secondary.Render("  Live"))
	b.WriteString("\n")
	for i, key := range externalCategories {
		b.WriteString(m.catLine(len(builtinCategories)+i, categoryLabels[key]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	focusIdx := len(builtinCategories) + len(externalCategories)
	desc := m.FocusHint
	if desc == "" {
		desc = "targets your weak spots from recent sessions"
	}
	b.WriteString(m.catLineDesc(focusIdx, "Focus Practice", desc))
	b.WriteString("\n\n")

	primary := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	b.WriteString(primary.Render("  t ") + muted.Render(fmt.Sprintf("change theme  (current: %s)", t.Name)))
	return b.String()
}

func (m *Menu) catLine(idx int, label string) string {
	return m.catLineDesc(idx, label, "")
}

func (m *Menu) catLineDesc(idx int, label, desc string) string {
	t := m.Theme
	if idx == m.catIndex {
		primary := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
		secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
		line := primary.Render("  > "+label)
		if desc != "" {
			line += secondary.Render("  — " + desc)
		}
		return line
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	return muted.Render("    " + label)
}

func (m *Menu) renderLength() string {
	t := m.Theme
	key := allContentKeys()[m.catIndex]
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))
	var b strings.Builder
	b.WriteString(primary.Render(fmt.Sprintf("  %s — session length:", categoryLabels[key])))
	b.WriteString("\n")
	for i, n := range wordTargets {
		label := fmt.Sprintf("%10s", fmt.Sprintf("~ %d words", n))
		if i == m.lenIndex {
			style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
			b.WriteString(style.Render("  > " + label))
		} else {
			muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
			b.WriteString(muted.Render("    " + label))
		}
		b.WriteString("\n")
	}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
	b.WriteString("\n" + dim.Render("  <- Backspace to go back"))
	return b.String()
}

func (m *Menu) renderThemes() string {
	t := m.Theme
	var b strings.Builder
	secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
	b.WriteString(secondary.Render("  Select theme:"))
	b.WriteString("\n")
	for i, name := range themeNames {
		active := name == t.Name
		if i == m.themeIndex {
			style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
			line := style.Render("  > " + name)
			if active {
				line += secondary.Render("  [active]")
			}
			b.WriteString(line)
		} else {
			muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
			b.WriteString(muted.Render("    " + name))
		}
		b.WriteString("\n")
	}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
	b.WriteString("\n" + dim.Render("  <- Backspace to go back"))
	return b.String()
}

func (m *Menu) renderFooter() string {
	t := m.Theme
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	return primary.Render("  up/down ") + muted.Render("navigate  ") +
		primary.Render("enter ") + muted.Render("select  ") +
		primary.Render("q ") + muted.Render("quit")
}

func (m *Menu) HandleKey(k loop.Key) *loop.ScreenAction {
	if m.stage == 2 {
		return m.handleThemeKey(k)
	}

	switch k.Kind {
	case loop.KeyUp:
		m.moveIndex(-1)
	case loop.KeyDown:
		m.moveIndex(1)
	case loop.KeyEnter:
		if m.stage == 0 {
			m.stage = 1
		} else {
			return m.launch()
		}
	case loop.KeyBackspace:
		if m.stage == 1 {
			m.stage = 0
		}
	case loop.KeyRune:
		switch k.Rune {
		case 'k':
			m.moveIndex(-1)
		case 'j':
			m.moveIndex(1)
		case 't', 'T':
			if m.stage == 0 {
				for i, n := range themeNames {
					if n == m.Theme.Name {
						m.themeIndex = i
					}
				}
				m.stage = 2
			}
		case 'q', 'Q':
			return loop.Quit()
		}
	}
	return nil
}

func (m *Menu) moveIndex(delta int) {
	if m.stage == 0 {
		n := len(allContentKeys())
		m.catIndex = ((m.catIndex+delta)%n + n) % n
		return
	}
	n := len(wordTargets)
	m.lenIndex = ((m.lenIndex+delta)%n + n) % n
}

func (m *Menu) handleThemeKey(k loop.Key) *loop.ScreenAction {
	n := len(themeNames)
	switch k.Kind {
	case loop.KeyUp:
		m.themeIndex = ((m.themeIndex-1)%n + n) % n
	case loop.KeyDown:
		m.themeIndex = (m.themeIndex + 1) % n
	case loop.KeyEnter:
		chosen := themeNames[m.themeIndex]
		m.stage = 0
		m.catIndex = 0
		return loop.ChangeTheme(chosen)
	case loop.KeyBackspace, loop.KeyEsc:
		m.stage = 0
		m.catIndex = 0
	case loop.KeyRune:
		switch k.Rune {
		case 'k':
			m.themeIndex = ((m.themeIndex-1)%n + n) % n
		case 'j':
			m.themeIndex = (m.themeIndex + 1) % n
		case 'q', 'Q':
			return loop.Quit()
		}
	}
	return nil
}

func (m *Menu) launch() *loop.ScreenAction {
	category := allContentKeys()[m.catIndex]
	wordTarget := wordTargets[m.lenIndex]
	return loop.StartSession(category, wordTarget)
}
