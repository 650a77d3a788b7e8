// Command perft runs the performance-test leaf-counting driver against a
// FEN position and logs the total node count; with -verbose it also prints
// the root board and a per-root-move "divide" breakdown.
//
// Grounded on the teacher's internal/perft/perft.go main(), keeping its
// flag/log/pprof shape; the recursive counting itself lives in package
// perft instead of being duplicated in the command.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dmakarov/chesscore/asciiboard"
	"github.com/dmakarov/chesscore/notation"
	"github.com/dmakarov/chesscore/perft"
	"github.com/dmakarov/chesscore/position"
)

const startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	depth := flag.Int("depth", 1, "perft depth")
	fen := flag.String("fen", startpos, "FEN of the root position")
	verbose := flag.Bool("verbose", false, "print the root board and a per-move divide breakdown")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a heap profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	b, s, err := position.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	if *verbose {
		fmt.Print(asciiboard.Board(b, s))
		fmt.Println()
	}

	start := time.Now()
	entries, total := perft.Divide(b, s, *depth)
	elapsed := time.Since(start)

	if *verbose {
		for _, e := range entries {
			fmt.Printf("%s %d\n", notation.Format(e.Move), e.Nodes)
		}
		fmt.Println()
	}

	log.Printf("Nodes searched: %d", total)
	log.Printf("Elapsed: %s", elapsed)
}
