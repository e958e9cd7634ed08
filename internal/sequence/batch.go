package sequence

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyChar     = errors.New("batch insert: character is empty")
	ErrInvalidCount  = errors.New("batch insert: count is not a non-negative integer")
	ErrCountTooLarge = errors.New("batch insert: count exceeds limit")
)

// MaxRepeatCount bounds the size of a single batch insert.
const MaxRepeatCount = 1 << 20

// Repeat builds the batch insert text: char repeated count times. count
// must consist of decimal digits only, so signs and blanks are rejected.
func Repeat(char, count string) (string, error) {
	if char == "" {
		return "", ErrEmptyChar
	}
	if !isDigits(count) {
		return "", ErrInvalidCount
	}
	n, err := strconv.Atoi(count)
	if err != nil || n > MaxRepeatCount {
		return "", ErrCountTooLarge
	}
	return strings.Repeat(char, n), nil
}

// InsertAt inserts text into buffer at a rune offset. Out of range
// offsets are clamped to the buffer bounds.
func InsertAt(buffer, text string, offset int) string {
	runes := []rune(buffer)
	offset = clamp(offset, 0, len(runes))

	var sb strings.Builder
	sb.Grow(len(buffer) + len(text))
	sb.WriteString(string(runes[:offset]))
	sb.WriteString(text)
	sb.WriteString(string(runes[offset:]))
	return sb.String()
}

// CursorOffset converts a (row, column) cursor position in a multi-line
// buffer into a rune offset.
func CursorOffset(buffer string, row, col int) int {
	lines := strings.Split(buffer, "\n")
	row = clamp(row, 0, len(lines)-1)

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1
	}
	return offset + clamp(col, 0, len([]rune(lines[row])))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
