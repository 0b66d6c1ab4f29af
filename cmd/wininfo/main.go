// Command wininfo prints spectral properties of the engine's window
// functions, windowed-sinc kernels and the gain curve tables.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 -periodic blackman hamming
//	wininfo -kernel 0.25 -size 31 blackman
//	wininfo -curves
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/gain"
	"github.com/cwbudde/algo-synth/dsp/window"
)

type windowEntry struct {
	name string
	typ  window.Type
}

var registry = []windowEntry{
	{"rectangular", window.TypeRectangular},
	{"hann", window.TypeHann},
	{"hamming", window.TypeHamming},
	{"blackman", window.TypeBlackman},
	{"blackman-harris", window.TypeBlackmanHarris4Term},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	all := flag.Bool("all", false, "show all window types")
	list := flag.Bool("list", false, "list available window names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	kernel := flag.Float64("kernel", 0, "print a windowed-sinc kernel with this normalized cutoff (0, 0.5]")
	curves := flag.Bool("curves", false, "print the amp/linear/dB gain curve table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -kernel 0.25 -size 31 blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -curves\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if *curves {
		if err := printCurves(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(os.Stderr, names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	if *kernel != 0 {
		if err := printKernel(os.Stdout, entries[0], *size, *kernel); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	if err := printAnalysis(os.Stdout, entries, *size, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(w io.Writer, names []string) []windowEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []windowEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(w, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(w io.Writer, entries []windowEntry, size int, opts []window.Option) error {
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var coeffs []float64
	for _, e := range entries {
		coeffs = core.EnsureLen(coeffs, size)
		window.GenerateInto(coeffs, e.typ, opts...)

		a, err := window.Analyze(coeffs)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", e.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			e.name,
			size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func printKernel(w io.Writer, e windowEntry, size int, cutoff float64) error {
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}

	taps := make([]float64, size)
	if err := window.SincKernel(taps, cutoff, e.typ); err != nil {
		return fmt.Errorf("%s kernel: %w", e.name, err)
	}

	for i, v := range taps {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, core.FormatFloat(v)); err != nil {
			return fmt.Errorf("write tap: %w", err)
		}
	}

	return nil
}

func printCurves(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Amp\tLinear\tdB\tLevel [dB]\n---\t------\t--\t----------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i <= 8; i++ {
		amp := float64(i) * 0.25
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n",
			core.FormatFloat(amp),
			core.FormatFloat(gain.AmpToLinear(amp)),
			core.FormatFloat(gain.AmpToDB(amp)),
			gain.AmpToLevelDB(amp),
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}
