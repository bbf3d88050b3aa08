// Command timeslice prints the frame timings recorded by dxdemo -timeslice.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinyrange/dxbridge/internal/timeslice"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	filename := fs.String("filename", "", "Timeslice file to read")
	sums := fs.Bool("sums", false, "Print per kind totals instead of every record")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if *filename == "" {
		fs.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open timeslice file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if *sums {
		stats, err := timeslice.Summarize(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read timeslice file: %v\n", err)
			os.Exit(1)
		}
		for _, s := range stats {
			fmt.Printf("% 20s flags=% 6s count=% 8d sum=% 14s min=% 14s max=% 14s avg=% 14s\n",
				s.Kind, s.Flags, s.Count, s.Sum, s.Min, s.Max, s.Avg())
		}
		return
	}

	if err := timeslice.ReadAll(f, func(rec timeslice.Record) error {
		fmt.Printf("%s %s frame=%d %s\n", rec.Kind, rec.Flags, rec.Frame, rec.Duration)
		return nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read timeslice file: %v\n", err)
		os.Exit(1)
	}
}
