package cli

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Input formats enforced before anything reaches the core.
var (
	isbnPattern      = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}-\d{2}-\d{1}$`)
	libraryIDPattern = regexp.MustCompile(`^[A-Za-z]{2}\d{5}$`)
)

// Free-text field limits.
const (
	maxBiographyLen   = 300
	maxDescriptionLen = 200
)

var titleCaser = cases.Title(language.English)

// prompter collects and normalizes raw input so the library core only ever
// sees well-formed values. When stdin is not a terminal (piped command
// scripts) the prompts themselves are suppressed.
type prompter struct {
	sc          *bufio.Scanner
	interactive bool
}

// line prints the prompt and reads one trimmed line. ok is false when input
// is exhausted.
func (p *prompter) line(prompt string) (text string, ok bool) {
	if p.interactive {
		fmt.Print(prompt)
	}
	if !p.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.sc.Text()), true
}

// titled reads one line and title-cases it (names, titles, categories).
func (p *prompter) titled(prompt string) (string, bool) {
	text, ok := p.line(prompt)
	if !ok {
		return "", false
	}
	return titleCaser.String(text), true
}

// freeText reads one line and truncates it to max characters (biographies,
// genre descriptions). The limit counts runes, not bytes, so multi-byte
// input is never cut mid-rune.
func (p *prompter) freeText(prompt string, max int) (string, bool) {
	text, ok := p.line(prompt)
	if !ok {
		return "", false
	}
	if runes := []rune(text); len(runes) > max {
		text = string(runes[:max])
	}
	return text, true
}

// isbn re-prompts until the input matches the ISBN format.
func (p *prompter) isbn(prompt string) (string, bool) {
	text, ok := p.line(prompt)
	for ok && !isbnPattern.MatchString(text) {
		text, ok = p.line("Please enter the ISBN in the correct format (example: 978-92-95055-02-5): ")
	}
	return text, ok
}

// libraryID re-prompts until the input matches the library ID format, then
// upper-cases it.
func (p *prompter) libraryID(prompt string) (string, bool) {
	text, ok := p.line(prompt)
	for ok && !libraryIDPattern.MatchString(text) {
		text, ok = p.line("Please enter the library ID in the correct format (example: AZ12345): ")
	}
	return strings.ToUpper(text), ok
}
