package interp

import "math"

// LinearAt reads table at the fractional position pos with linear
// interpolation. Positions wrap around the table length, so a single-cycle
// wavetable can be read with an ever-increasing phase. An empty table
// reads as 0 and a non-finite position reads table[0].
func LinearAt(table []float64, pos float64) float64 {
	n := len(table)
	if n == 0 {
		return 0
	}

	i, mu := split(pos, n)

	return Linear(table[i], table[wrap(i+1, n)], mu)
}

// CubicAt reads table at the fractional position pos with [Cubic]
// interpolation, wrapping around the table length.
func CubicAt(table []float64, pos float64) float64 {
	n := len(table)
	if n == 0 {
		return 0
	}

	i, mu := split(pos, n)

	return Cubic(
		table[wrap(i-1, n)],
		table[i],
		table[wrap(i+1, n)],
		table[wrap(i+2, n)],
		mu,
	)
}

func split(pos float64, n int) (int, float64) {
	if !(math.Abs(pos) < math.MaxFloat64) {
		return 0, 0
	}

	fl := math.Floor(pos)
	mu := pos - fl

	i := int(math.Mod(fl, float64(n)))
	if i < 0 {
		i += n
	}

	return i, mu
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
