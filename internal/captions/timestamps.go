package captions

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSRTTimestamp renders milliseconds as HH:MM:SS,mmm. The hour field
// grows past 24 instead of wrapping.
func FormatSRTTimestamp(ms int64) string {
	return formatClock(ms, ',')
}

// FormatVTTTimestamp renders milliseconds as HH:MM:SS.mmm.
func FormatVTTTimestamp(ms int64) string {
	return formatClock(ms, '.')
}

func formatClock(ms int64, sep byte) string {
	if ms < 0 {
		ms = 0
	}
	millis := ms % 1000
	total := ms / 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, sep, millis)
}

// ParseTimestamp converts an HH:MM:SS,mmm or HH:MM:SS.mmm timestamp to
// milliseconds. Both separators are accepted so SRT and WebVTT share one
// parser.
func ParseTimestamp(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 || millis < 0 || millis > 999 {
		return 0, fmt.Errorf("timestamp %q out of range", value)
	}
	return int64(hours)*3600_000 + int64(minutes)*60_000 + int64(seconds)*1000 + int64(millis), nil
}
