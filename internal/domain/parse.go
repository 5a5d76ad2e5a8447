package domain

import (
	"strconv"
	"strings"
)

// DefaultLabel is stored when a parsed line carries no label text.
const DefaultLabel = "ไม่ระบุ"

// CommandPrefix marks a line as a bot command. The parser never touches
// such lines; command routing belongs to the dispatch layer.
const CommandPrefix = "/"

// ParsedEntry is the classification of one free-text line.
type ParsedEntry struct {
	Sign   Sign
	Label  string
	Amount int64
}

// ParseEntryLine classifies a trimmed line of chat text into an entry.
// Grammar: optional leading sign marker ('+' income, '-' or nothing
// expense), free-text label, trailing non-negative integer amount that may
// use comma grouping separators. The second return value is false when the
// line is not a transaction; arbitrary chat text and commands fall out here
// silently rather than as errors.
func ParseEntryLine(line string) (ParsedEntry, bool) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, CommandPrefix) {
		return ParsedEntry{}, false
	}

	sign := SignExpense
	switch text[0] {
	case '+':
		sign = SignIncome
		text = strings.TrimSpace(text[1:])
	case '-':
		text = strings.TrimSpace(text[1:])
	}

	token, rest, ok := splitTrailingAmount(text)
	if !ok {
		return ParsedEntry{}, false
	}

	amount, err := strconv.ParseInt(strings.ReplaceAll(token, ",", ""), 10, 64)
	if err != nil {
		// Numeric-looking chat that overflows or otherwise fails to parse
		// is ignored, not reported.
		return ParsedEntry{}, false
	}

	label := strings.TrimSpace(rest)
	if label == "" {
		label = DefaultLabel
	}

	return ParsedEntry{Sign: sign, Label: label, Amount: amount}, true
}

// splitTrailingAmount scans backwards for the trailing amount token. The
// token may contain commas but must start and end with a digit, so trailing
// separators disqualify the line. The token must sit at the start of the
// text or after a space; a digit glued to a word ("room12") is label text,
// not an amount.
func splitTrailingAmount(text string) (token, rest string, ok bool) {
	i := len(text)
	for i > 0 {
		c := text[i-1]
		if !isDigit(c) && c != ',' {
			break
		}
		i--
	}

	token = text[i:]
	rest = text[:i]

	if token == "" || !isDigit(token[0]) || !isDigit(token[len(token)-1]) {
		return "", "", false
	}

	if rest != "" {
		last := rest[len(rest)-1]
		if last != ' ' && last != '\t' {
			return "", "", false
		}
	}

	return token, rest, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
