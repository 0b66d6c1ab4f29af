package gain

import "github.com/cwbudde/algo-synth/dsp/core"

const (
	// MinDB and MaxDB bound the output of AmpToDB.
	MinDB = -192.0
	MaxDB = 96.0

	// MaxAmp bounds the output of DBToAmp.
	MaxAmp = 2.0

	// dbPerOctave is the decibel step of one doubling on the 18·log2 curve.
	dbPerOctave = 18.0

	// minLinear keeps LinearToAmp away from a zero base.
	minLinear = 1e-10
)

// AmpToLinear converts the stored cubic gain to linear amplitude.
// Negative input is treated as 0.
func AmpToLinear(x float64) float64 {
	if x < 0 {
		x = 0
	}

	return x * x * x
}

// LinearToAmp converts linear amplitude to the stored cubic gain.
// The input is clamped to [1e-10, 1] first.
func LinearToAmp(x float64) float64 {
	return mathCbrt(core.Clamp(x, minLinear, 1))
}

// AmpToDB converts a linear amplitude to decibels on the 18·log2 curve,
// clamped to [MinDB, MaxDB]. Zero and negative input map to MinDB.
func AmpToDB(x float64) float64 {
	if !(x > 0) {
		return MinDB
	}

	return core.Clamp(dbPerOctave*mathLog2(x), MinDB, MaxDB)
}

// DBToAmp converts decibels on the 18·log2 curve to linear amplitude,
// clamped to [0, MaxAmp].
func DBToAmp(db float64) float64 {
	if db != db {
		return 0
	}

	return core.Clamp(mathPow2(db/dbPerOctave), 0, MaxAmp)
}

// AmpToLevelDB returns the level of a stored gain in conventional
// 20·log10 decibels of its linear amplitude, for display next to the
// engine's own curve. Zero and negative input give -Inf.
func AmpToLevelDB(x float64) float64 {
	return core.LinearToDB(AmpToLinear(x))
}

// LevelDBToAmp converts a conventional 20·log10 level to the stored cubic
// gain. Levels above 0 dB saturate at 1 like LinearToAmp.
func LevelDBToAmp(db float64) float64 {
	return LinearToAmp(core.DBToLinear(db))
}

// AmpToLinearBlock writes AmpToLinear(src[i]) into dst. Only the common
// length of dst and src is processed.
func AmpToLinearBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = AmpToLinear(src[i])
	}
}

// DBToAmpBlock writes DBToAmp(src[i]) into dst. Only the common length of
// dst and src is processed.
func DBToAmpBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = DBToAmp(src[i])
	}
}
