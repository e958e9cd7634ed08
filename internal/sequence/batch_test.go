package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeat(t *testing.T) {
	got, err := Repeat("T", "10")
	require.NoError(t, err)
	assert.Equal(t, "TTTTTTTTTT", got)

	got, err = Repeat("AC", "3")
	require.NoError(t, err)
	assert.Equal(t, "ACACAC", got)

	got, err = Repeat("G", "0")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRepeatRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		char  string
		count string
		want  error
	}{
		{"empty char", "", "10", ErrEmptyChar},
		{"empty count", "T", "", ErrInvalidCount},
		{"negative", "T", "-1", ErrInvalidCount},
		{"signed", "T", "+3", ErrInvalidCount},
		{"blank", "T", " 3", ErrInvalidCount},
		{"decimal", "T", "1.5", ErrInvalidCount},
		{"letters", "T", "ten", ErrInvalidCount},
		{"too large", "T", "99999999999999999999", ErrCountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Repeat(tt.char, tt.count)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInsertAt(t *testing.T) {
	insert, err := Repeat("T", "10")
	require.NoError(t, err)

	assert.Equal(t, "GTCATTTTTTTTTT", InsertAt("GTCA", insert, 4))
	assert.Equal(t, "TTGTCA", InsertAt("GTCA", "TT", 0))
	assert.Equal(t, "GTxCA", InsertAt("GTCA", "x", 2))
	assert.Equal(t, "GTCAx", InsertAt("GTCA", "x", 100))
	assert.Equal(t, "xGTCA", InsertAt("GTCA", "x", -3))
}

func TestCursorOffset(t *testing.T) {
	buf := "GTCA\nAC\nT"

	assert.Equal(t, 0, CursorOffset(buf, 0, 0))
	assert.Equal(t, 4, CursorOffset(buf, 0, 4))
	assert.Equal(t, 6, CursorOffset(buf, 1, 1))
	assert.Equal(t, 9, CursorOffset(buf, 2, 1))
	assert.Equal(t, 4, CursorOffset(buf, 0, 50), "column is clamped to the line")
	assert.Equal(t, 9, CursorOffset(buf, 9, 9), "row is clamped to the last line")
	assert.Equal(t, 0, CursorOffset("", 0, 0))
}
