package stopwatch

// LapRow is one rendered lap entry.
type LapRow struct {
	Position int // 1-based
	Seconds  int
	Split    int // seconds since the previous lap, or Seconds for the first
}

// Index returns the 0-based lap index a delete on this row targets.
func (r LapRow) Index() int {
	return r.Position - 1
}

// Label returns the formatted lap time.
func (r LapRow) Label() string {
	return FormatTime(r.Seconds)
}

// LapRows projects laps into display rows in insertion order. An empty list
// yields no rows.
func LapRows(laps []int) []LapRow {
	if len(laps) == 0 {
		return nil
	}
	rows := make([]LapRow, len(laps))
	prev := 0
	for i, lap := range laps {
		split := lap - prev
		if split < 0 {
			// laps seeded from config need not be ascending
			split = 0
		}
		rows[i] = LapRow{Position: i + 1, Seconds: lap, Split: split}
		prev = lap
	}
	return rows
}
