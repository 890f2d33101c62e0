// Command kernelinfo reports how closely the portable math kernel tracks the
// Go standard library.
//
// Usage:
//
//	kernelinfo [flags] [function ...]
//
// Without arguments it reports every kernel function.
//
// Examples:
//
//	kernelinfo sin cos
//	kernelinfo -samples 10001 exp ln
//	kernelinfo -thd
//	kernelinfo -plot out sqrt atan
//	kernelinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-enginemath/measure/accuracy"
	"github.com/cwbudde/algo-enginemath/measure/plot"
)

func main() {
	samples := flag.Int("samples", 1001, "sweep points per function")
	all := flag.Bool("all", false, "report all functions")
	list := flag.Bool("list", false, "list available function names")
	thd := flag.Bool("thd", false, "measure harmonic distortion of the kernel sine")
	plotDir := flag.String("plot", "", "write WebP error plots into this directory")
	verbose := flag.Bool("v", false, "log sweep details to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags] [function ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reports the error of the math kernel against the standard library.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, reports every function.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo sin cos\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -samples 10001 exp ln\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -plot out sqrt atan\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -list\n")
	}
	flag.Parse()

	if *verbose {
		accuracy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *list {
		printList(os.Stdout)
		return
	}

	names := flag.Args()
	if *all {
		names = nil
	}
	funcs := resolve(names)
	if len(funcs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	opts := []accuracy.Option{accuracy.WithSamples(*samples)}
	if err := printReport(os.Stdout, funcs, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *thd {
		if err := printTHD(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *plotDir != "" {
		if err := writePlots(*plotDir, funcs, *samples); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printList(w io.Writer) {
	var names []string
	for _, f := range accuracy.Functions() {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

// resolve maps names to registry entries; an empty list selects all.
func resolve(names []string) []accuracy.Function {
	if len(names) == 0 {
		return accuracy.Functions()
	}

	var result []accuracy.Function
	for _, name := range names {
		f, err := accuracy.Lookup(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, f)
	}
	return result
}

func printReport(w io.Writer, funcs []accuracy.Function, opts []accuracy.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tRange\tMax Abs\tAt\tRMS\tMax Rel\tFast Max Abs\tFast RMS\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t-------\t--\t---\t-------\t------------\t--------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, f := range funcs {
		row, err := accuracy.Evaluate(f, opts...)
		if err != nil {
			return err
		}

		fastAbs, fastRMS := "-", "-"
		if row.HasFast {
			fastAbs = fmt.Sprintf("%.3e", row.Fast.MaxAbs)
			fastRMS = fmt.Sprintf("%.3e", row.Fast.RMS)
		}

		if _, err := fmt.Fprintf(tw, "%s\t[%g, %g]\t%.3e\t%.4g\t%.3e\t%.3e\t%s\t%s\n",
			f.Name,
			f.Lo, f.Hi,
			row.Kernel.MaxAbs,
			row.Kernel.MaxAbsAt,
			row.Kernel.RMS,
			row.Kernel.MaxRel,
			fastAbs,
			fastRMS,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func printTHD(w io.Writer) error {
	const size, cycles = 4096, 16

	res, err := accuracy.SineTHD(size, cycles)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nsine THD (%d samples, %d cycles, %d harmonics): %.3e (%.1f dB), THD+N %.3e\n",
		size, cycles, res.Harmonics, res.THD, res.THD_dB, res.THDN)
	return err
}

func writePlots(dir string, funcs []accuracy.Function, samples int) error {
	for _, f := range funcs {
		series := make([]plot.Series, 0, 2)

		s, err := plot.ErrorSeries(f, samples)
		if err != nil {
			return err
		}
		series = append(series, s)

		fast, ok, err := plot.FastErrorSeries(f, samples)
		if err != nil {
			return err
		}
		if ok {
			series = append(series, fast)
		}

		img, err := plot.Render(series)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		path := filepath.Join(dir, f.Name+".webp")
		if err := plot.WriteWebP(path, img); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
