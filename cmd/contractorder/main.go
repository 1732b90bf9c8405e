// Command contractorder reads a JSON tensor-network description and prints
// the minimum-cost pairwise contraction order for it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tnopt/contraction"
)

// tensorJSON mirrors contraction.AbstractTensor for JSON decoding.
type tensorJSON struct {
	Name  string  `json:"name"`
	Shape []uint64 `json:"shape"`
	Legs  []int64 `json:"legs"`
}

func main() {
	flag.Parse()

	path := "input_sample.json"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	start := time.Now()

	log.Printf("Reading %s...", path)
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	var raw []tensorJSON
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		log.Fatalf("Failed to parse JSON: %v", err)
	}

	tensors := make([]contraction.AbstractTensor, len(raw))
	for i, t := range raw {
		tensors[i] = contraction.AbstractTensor{Name: t.Name, Shape: t.Shape, Legs: t.Legs}
	}
	log.Printf("Loaded %d tensors", len(tensors))

	res, warnings, err := contraction.Solve(tensors)
	if err != nil {
		log.Fatalf("Failed to find a contraction order: %v", err)
	}

	for _, w := range warnings {
		switch w.Kind {
		case contraction.WarnOuterProduct:
			log.Printf("warning: tensors at positions %d,%d share no leg (outer product skipped)", w.Tensors[0], w.Tensors[1])
		}
	}

	fmt.Printf("Contraction order (%d steps):\n", len(res.Steps))
	for i, step := range res.Steps {
		fmt.Printf("  step %d: contract legs %v\n", i+1, step)
	}
	fmt.Printf("Total scalar multiplications: %d\n", res.CPU)
	fmt.Printf("Peak memory upper bound (elements): %d\n", res.Mem)

	log.Printf("Done in %s.", time.Since(start).Round(time.Millisecond))
}
