package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/aconf/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "show", "edit", "clear", "quit"}

const previewWidth = 40

// isWordBoundary reports whether r separates words for completion.
// The reference decoration characters are boundaries so that "@[NU"
// completes the word "NU".
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', ',', '@', '[', ']':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor and its byte offsets in input.
// The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(cursor, len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates returns the completion candidates for the current mode.
func (m model) candidates() []string {
	if m.mode == modeCtrl {
		return ctrlCommands
	}

	return m.tr.Constants().Names()
}

// computeMatches ranks the candidates against the word at the cursor.
// An empty word has no matches, which leaves room for the hint line.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	word, wordStart, wordEnd := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	if m.mode == modeEval {
		word = strings.ToUpper(word)
	}

	return fuzzy.Find(word, m.candidates()), wordStart, wordEnd
}

// valueHint returns the rendered value of the constant named by the word at
// the cursor, or "" if the word is not a constant.
func (m model) valueHint() string {
	if m.mode != modeEval {
		return ""
	}

	word, _, _ := wordBounds(m.input.Value(), m.input.Position())
	if !lang.IsIdentifier(word) {
		return ""
	}

	v, ok := m.tr.Constants().Lookup(word)
	if !ok {
		return ""
	}

	return hintStyle.Render(word+" = ") + resultStyle.Render(preview(v))
}

// renderCandidateBar renders the matches on a single line, ellipsized to
// width. The selected candidate is highlighted while tab-cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}

// preview returns the rendered value, shortened to previewWidth.
func preview(v lang.Value) string {
	s := lang.Render(v)
	if utf8.RuneCountInString(s) > previewWidth {
		return string([]rune(s)[:previewWidth-3]) + "..."
	}

	return s
}
