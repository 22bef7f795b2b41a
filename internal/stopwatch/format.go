package stopwatch

import "fmt"

// FormatTime renders seconds as M:SS. Minutes are not capped, so an hour
// renders as 60:00. Negative input renders as 0:00.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
