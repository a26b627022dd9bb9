// Package textutil holds small text helpers shared by the page services and the CLI.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

var nonKeyChars = regexp.MustCompile(`[^a-z0-9]+`)

// Truncate keeps the first maxWidth display columns of s and appends an
// ellipsis when anything was cut. Wide runes (CJK, emoji) count as two columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "") + Ellipsis
}

// Key normalizes a category name to a snake_case key: accents are folded,
// letters lowercased and runs of other characters collapsed to one underscore.
// "Backend & Cloud" becomes "backend_cloud" and "AI/ML & GenAI" becomes "ai_ml_genai".
func Key(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	key := nonKeyChars.ReplaceAllString(strings.ToLower(folded), "_")
	return strings.Trim(key, "_")
}

// Title turns a snake_case key back into display text, e.g. "data_engineering"
// becomes "Data Engineering". Short keys such as "ai_ml" are upper-cased.
func Title(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		switch {
		case w == "":
			continue
		case len(w) <= 2:
			words[i] = strings.ToUpper(w)
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Table renders rows as a pipe-delimited table padded to display width. The
// first row is treated as the header and followed by a separator line.
func Table(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for i := range widths {
		// keep separators at least "---"
		widths[i] = max(widths[i], 3)
	}

	lines := make([]string, 0, len(rows)+1)
	for r, row := range rows {
		lines = append(lines, tableLine(row, widths))
		if r == 0 {
			sep := make([]string, cols)
			for i, w := range widths {
				sep[i] = strings.Repeat("-", w)
			}
			lines = append(lines, tableLine(sep, widths))
		}
	}
	return lines
}

func tableLine(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, w))
		sb.WriteString(" |")
	}
	return sb.String()
}
