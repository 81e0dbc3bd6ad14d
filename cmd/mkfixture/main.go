// mkfixture cuts a small representative fixture out of a larger claims Parquet file.
// Every denial code keeps up to --per-code claims; the rest is filled in file order.
// Usage: go run ./cmd/mkfixture --in testdata/claims.parquet --out testdata/claims-small.csv --rows 60
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gyeh/claimgen/internal/model"
	"github.com/gyeh/claimgen/internal/parquetread"
	"github.com/gyeh/claimgen/internal/sample"
	"github.com/gyeh/claimgen/internal/sink"
)

func main() {
	in := flag.String("in", "testdata/claims.parquet", "input parquet")
	out := flag.String("out", "testdata/claims-small.csv", "output file (csv, parquet or xlsx by extension)")
	maxRows := flag.Int("rows", 60, "max rows to output")
	perCode := flag.Int("per-code", 4, "claims to keep per denial code")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	reader, err := parquetread.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	var claims []*model.Claim
	err = reader.Each(func(_ int64, c *model.Claim) error {
		claims = append(claims, c)
		return nil
	})
	reader.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scanned %d rows\n", len(claims))

	if *checkOnly {
		printCoverage(claims)
		return
	}

	selected := sample.Select(claims, *maxRows, *perCode)

	w, err := sink.Create(*out, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	err = w.WriteHeader(model.Columns())
	for _, c := range selected {
		if err != nil {
			break
		}
		err = w.Write(c)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	printCoverage(selected)
}

func printCoverage(claims []*model.Claim) {
	counts := sample.Coverage(claims)
	fmt.Println("Denial distribution:")
	for _, d := range model.Denials {
		fmt.Printf("  %-9s %d\n", d.Code, counts[d.Code])
	}
	fmt.Printf("  %-9s %d\n", "paid", counts[model.PaidInFull.Code])
}
