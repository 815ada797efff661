package newsml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"NewswireNotifier/internal/domain"
)

// PriorityNotSet is the level assigned to missing or unusable priorities.
const PriorityNotSet = 9

var priorityLabels = map[int]string{
	1:              "CRAZY-HIGH PRIORITY",
	2:              "High priority",
	3:              "High priority",
	4:              "Medium priority",
	5:              "Medium-low priority",
	6:              "Low priority",
	7:              "Lower priority",
	8:              "Lowest priority",
	PriorityNotSet: "Priority not set",
}

type rgb struct {
	r, g, b float64
}

var (
	red    = rgb{255, 0, 0}
	yellow = rgb{255, 255, 0}
	green  = rgb{0, 128, 0}
)

// colorStops is the three-point gradient, ordered by ascending level.
var colorStops = []struct {
	level float64
	color rgb
}{
	{1, red},
	{3, yellow},
	{8, green},
}

// ClassifyPriority maps a raw NewsML priority to its level, label and color.
func ClassifyPriority(raw string) domain.PriorityInfo {
	level := ParseLevel(raw)
	return domain.PriorityInfo{
		Level:  level,
		Label:  priorityLabels[level],
		Color:  PriorityColor(level),
		Urgent: level <= 2,
	}
}

// ParseLevel reads the leading integer of raw. Anything outside 1-8 is
// PriorityNotSet.
func ParseLevel(raw string) int {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "+")
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return PriorityNotSet
	}

	level, err := strconv.Atoi(raw[:end])
	if err != nil || level < 1 || level > 8 {
		return PriorityNotSet
	}
	return level
}

// PriorityLabel renders the level the way it appears in notification fields.
func PriorityLabel(p domain.PriorityInfo) string {
	return fmt.Sprintf("%d: %s", p.Level, p.Label)
}

// PriorityColor interpolates linearly between red (1), yellow (3) and green (8).
// The scale is not clamped, so PriorityNotSet lands slightly past green;
// only the resulting channels are clamped into 0-255.
func PriorityColor(level int) string {
	x := float64(level)
	i := 0
	if x > colorStops[1].level {
		i = 1
	}
	lo, hi := colorStops[i], colorStops[i+1]
	t := (x - lo.level) / (hi.level - lo.level)

	return fmt.Sprintf("#%02x%02x%02x",
		channel(lo.color.r+(hi.color.r-lo.color.r)*t),
		channel(lo.color.g+(hi.color.g-lo.color.g)*t),
		channel(lo.color.b+(hi.color.b-lo.color.b)*t),
	)
}

func channel(v float64) int {
	return int(math.Max(0, math.Min(255, math.Round(v))))
}
