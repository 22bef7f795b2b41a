package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLapRows_EmptyYieldsNoRows(t *testing.T) {
	require.Empty(t, LapRows(nil))
	require.Empty(t, LapRows([]int{}))
}

func TestLapRows_PositionsAndSplits(t *testing.T) {
	rows := LapRows([]int{5, 65, 65})
	require.Equal(t, []LapRow{
		{Position: 1, Seconds: 5, Split: 5},
		{Position: 2, Seconds: 65, Split: 60},
		{Position: 3, Seconds: 65, Split: 0},
	}, rows)

	require.Equal(t, "1:05", rows[1].Label())
	for i, row := range rows {
		require.Equal(t, i, row.Index())
	}
}

func TestLapRows_DescendingSplitClampsToZero(t *testing.T) {
	rows := LapRows([]int{30, 10})
	require.Equal(t, 0, rows[1].Split)
}

func TestLapRows_DeleteTargetsUnderlyingLap(t *testing.T) {
	s := State{Laps: []int{5, 10, 15}}
	row := LapRows(s.Laps)[1]
	s = ApplyDelete(s, row.Index())
	require.Equal(t, []int{5, 15}, s.Laps)
}
