package student

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the external representation of exam and join dates.
	DateLayout = "02/01/2006"
	// InputDateLayout is the layout used by date inputs.
	InputDateLayout = "2006-01-02"
)

// FormatDate formats t as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DD/MM/YYYY date. Each part is read up to its first
// non-digit and out of range values roll over into the next month or year, so
// "31/02/2024" is the 2nd of March. Two digit years are in the 1900s. The
// second return value is false if any part has no leading number.
func ParseDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var nums [3]int
	for i, part := range parts {
		n, ok := leadingInt(part)
		if !ok {
			return time.Time{}, false
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if year >= 0 && year <= 99 {
		year += 1900
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// IsValidDate reports whether s is a strict DD/MM/YYYY calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// leadingInt parses the optionally signed decimal integer at the start of s,
// ignoring leading whitespace.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
