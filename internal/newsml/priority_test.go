package newsml

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPriority_Labels(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"1": "CRAZY-HIGH PRIORITY",
		"2": "High priority",
		"3": "High priority",
		"4": "Medium priority",
		"5": "Medium-low priority",
		"6": "Low priority",
		"7": "Lower priority",
		"8": "Lowest priority",
	}

	for raw, label := range want {
		t.Run(raw, func(t *testing.T) {
			got := ClassifyPriority(raw)
			level, _ := strconv.Atoi(raw)
			assert.Equal(t, level, got.Level)
			assert.Equal(t, label, got.Label)
			assert.Equal(t, level <= 2, got.Urgent)
		})
	}
}

func TestClassifyPriority_NotSet(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", " ", "abc", "0", "9", "12", "-1", "NaN", "four"} {
		t.Run(strconv.Quote(raw), func(t *testing.T) {
			got := ClassifyPriority(raw)
			assert.Equal(t, PriorityNotSet, got.Level)
			assert.Equal(t, "Priority not set", got.Label)
			assert.False(t, got.Urgent)
		})
	}
}

func TestParseLevel_LeadingInteger(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, ParseLevel(" 3 "))
	assert.Equal(t, 2, ParseLevel("2abc"))
	assert.Equal(t, 4, ParseLevel("+4"))
	assert.Equal(t, 5, ParseLevel("5.9"))
}

func TestPriorityLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2: High priority", PriorityLabel(ClassifyPriority("2")))
	assert.Equal(t, "9: Priority not set", PriorityLabel(ClassifyPriority("")))
}

func TestPriorityColor_Anchors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", PriorityColor(1))
	assert.Equal(t, "#ff8000", PriorityColor(2))
	assert.Equal(t, "#ffff00", PriorityColor(3))
	assert.Equal(t, "#008000", PriorityColor(8))
	// extrapolated one step past green, red channel clamped at zero
	assert.Equal(t, "#006700", PriorityColor(PriorityNotSet))
}

func TestPriorityColor_Monotonic(t *testing.T) {
	t.Parallel()

	prevRed, prevGreen := 256, -1
	for level := 1; level <= 8; level++ {
		r, g, b := splitHex(t, PriorityColor(level))
		assert.Zero(t, b)
		assert.LessOrEqual(t, r, prevRed, "red channel grows at level %d", level)
		if level <= 3 {
			assert.GreaterOrEqual(t, g, prevGreen, "green channel shrinks at level %d", level)
		} else {
			assert.LessOrEqual(t, g, prevGreen, "green channel grows at level %d", level)
		}
		prevRed, prevGreen = r, g
	}
}

func splitHex(t *testing.T, color string) (int, int, int) {
	t.Helper()
	require.Len(t, color, 7)
	v, err := strconv.ParseUint(color[1:], 16, 32)
	require.NoError(t, err)
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}
