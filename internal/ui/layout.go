package ui

import "time"

// Fixed rows around the lap list: header, timer box (3), button row (3),
// lap box borders and title (3), footer.
const chromeHeight = 11

// Minimum lap list height so a tiny terminal still shows one row.
const minLapRows = 1

// DefaultTickEvery is the stopwatch resolution.
const DefaultTickEvery = time.Second
