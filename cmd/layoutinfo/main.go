// Command layoutinfo prints storage footprints of dual scratch layouts.
//
// Usage:
//
//	layoutinfo [flags]
//
// For the given element count and per-level partial counts it prints, per
// nesting depth, the scalar footprint of one element, the total backing
// capacity a cache provisions, and its size in bytes.
//
// Examples:
//
//	layoutinfo -n 1000
//	layoutinfo -n 50 -levels 12,4
//	layoutinfo -n 200 -levels 8 -chunkinfo
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-scratch/dual"
)

const bytesPerScalar = 8

func main() {
	n := flag.Int("n", 100, "element count of the cached problem")
	levels := flag.String("levels", "", "comma-separated partial counts, innermost first (default: the chunk heuristic)")
	chunkinfo := flag.Bool("chunkinfo", false, "also print the default chunk heuristic for -n")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: layoutinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints storage footprints of dual scratch layouts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  layoutinfo -n 1000\n")
		fmt.Fprintf(os.Stderr, "  layoutinfo -n 50 -levels 12,4\n")
	}
	flag.Parse()

	if *n < 0 {
		fmt.Fprintf(os.Stderr, "layoutinfo: element count must be non-negative, got %d\n", *n)
		os.Exit(1)
	}

	counts, err := parseLevels(*levels, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "layoutinfo: %v\n", err)
		os.Exit(1)
	}

	if *chunkinfo {
		fmt.Printf("default chunk for n=%d: %d partials\n\n", *n, dual.DefaultChunk(*n))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAYOUT\tDEPTH\tSCALARS/ELEM\tCAPACITY\tSIZE")

	printRow(w, dual.Layout{}, *n)
	for depth := 1; depth <= len(counts); depth++ {
		layout := dual.Chunks(counts[:depth]...)
		if err := layout.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "layoutinfo: %v\n", err)
			os.Exit(1)
		}
		printRow(w, layout, *n)
	}
	w.Flush()
}

func printRow(w *tabwriter.Writer, l dual.Layout, n int) {
	capacity := n * l.ScalarsPerElement()
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
		l, l.Depth(), l.ScalarsPerElement(), capacity,
		humanize.IBytes(uint64(capacity)*bytesPerScalar))
}

func parseLevels(s string, n int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{dual.DefaultChunk(n)}, nil
	}
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid level %q", p)
		}
		if v < 0 {
			return nil, fmt.Errorf("level must be non-negative, got %d", v)
		}
		counts = append(counts, v)
	}
	return counts, nil
}
