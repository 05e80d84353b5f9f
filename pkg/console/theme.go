package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleWidth is the width of banner rules.
const RuleWidth = 60

var (
	titleColor   = lipgloss.Color("#2196F3")
	errorColor   = lipgloss.Color("#e53935")
	successColor = lipgloss.Color("#8BC34A")
	jokeColor    = lipgloss.Color("#FFC107")
)

// Theme renders banners and status lines.
type Theme struct {
	title   lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	joke    lipgloss.Style
}

// NewTheme creates a theme for out. Colors are only emitted when color is set
// and out supports them.
func NewTheme(out io.Writer, color bool) Theme {
	if !color {
		return PlainTheme()
	}

	r := lipgloss.NewRenderer(out)
	return Theme{
		title:   r.NewStyle().Bold(true).Foreground(titleColor),
		err:     r.NewStyle().Foreground(errorColor),
		success: r.NewStyle().Foreground(successColor),
		joke:    r.NewStyle().Italic(true).Foreground(jokeColor),
	}
}

// PlainTheme renders everything without styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{title: plain, err: plain, success: plain, joke: plain}
}

// Rule returns a line of n copies of ch.
func Rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

// Banner frames a title between an icon rule and a plain rule:
//
//	🎉==========================================================🎉
//	    TITLE
//	============================================================
//
// Each subtitle gets its own indented line under the title.
func (t Theme) Banner(icon, title string, subtitles ...string) string {
	var b strings.Builder
	b.WriteString(icon + Rule("=", RuleWidth-2) + icon + "\n")
	b.WriteString(t.title.Render("    "+title) + "\n")
	for _, sub := range subtitles {
		b.WriteString("    " + sub + "\n")
	}
	b.WriteString(Rule("=", RuleWidth))
	return b.String()
}

// Error renders a failure line.
func (t Theme) Error(msg string) string {
	return t.err.Render("❌ " + msg)
}

// Success renders a confirmation line.
func (t Theme) Success(msg string) string {
	return t.success.Render("✅ " + msg)
}

// Joke renders a joke followed by a closing rule.
func (t Theme) Joke(text string) string {
	return "\n" + t.joke.Render("😂 "+text) + "\n\n" + Rule("=", RuleWidth)
}
