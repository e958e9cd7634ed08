package timing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestMeasure(t *testing.T) {
	tt := NewTracker()
	tt.now = fakeClock(5 * time.Millisecond)

	err := tt.Measure("bundle", func() error { return errors.New("exit 1") })
	assert.EqualError(t, err, "exit 1")

	assert.Equal(t, []time.Duration{5 * time.Millisecond}, tt.GetTimings("bundle"))
}

func TestSummary(t *testing.T) {
	tt := NewTracker()
	tt.now = fakeClock(2 * time.Millisecond)

	tt.Start("write").End()
	tt.Start("write").End()
	tt.Start("cleanup").End()

	assert.Equal(t, []string{"cleanup", "write"}, tt.Operations())
	assert.Equal(t, map[string]interface{}{
		"cleanup_ms": int64(2),
		"write_ms":   int64(4),
	}, tt.Summary())

	tt.Reset()
	assert.Empty(t, tt.Operations())
	assert.Nil(t, tt.GetTimings("write"))
}
