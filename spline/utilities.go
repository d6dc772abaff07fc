package spline

import (
	"fmt"
	"math/cmplx"

	"github.com/npillmayer/racetrack"
)

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []racetrack.Pair, i int, deflt racetrack.Pair) []racetrack.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]racetrack.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []racetrack.Pair, i int, deflt racetrack.Pair) racetrack.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

func ptstring(p racetrack.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
