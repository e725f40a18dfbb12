// Easingtable samples every registered easing function and writes the
// results as CSV, for plotting curves or diffing them across versions.
//
// Usage:
//
//	easingtable [-steps N] [-only name,name] [-o file]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/phanxgames/gameforge/easing"
)

// sample is one CSV row.
type sample struct {
	Name  string  `csv:"name"`
	T     float64 `csv:"t"`
	Value float64 `csv:"value"`
}

func main() {
	steps := flag.Int("steps", 20, "intervals per curve (samples = steps+1)")
	only := flag.String("only", "", "comma-separated easing names (default: all)")
	out := flag.String("o", "", "output file (default: stdout)")
	flag.Parse()

	names := easing.Names()
	if *only != "" {
		names = strings.Split(*only, ",")
	}

	if err := run(names, *steps, *out); err != nil {
		log.Fatalf("easingtable: %v", err)
	}
}

// run samples names and writes the CSV to path, or to stdout when path is
// empty.
func run(names []string, steps int, path string) error {
	rows, err := sampleCurves(names, steps)
	if err != nil {
		return err
	}
	if path == "" {
		return gocsv.Marshal(rows, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// sampleCurves evaluates each named curve at steps+1 evenly spaced points
// from 0 to 1 inclusive.
func sampleCurves(names []string, steps int) ([]*sample, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	rows := make([]*sample, 0, len(names)*(steps+1))
	for _, name := range names {
		name = strings.TrimSpace(name)
		fn, err := easing.ByName(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			rows = append(rows, &sample{Name: name, T: t, Value: fn(t)})
		}
	}
	return rows, nil
}
