// Command boardcli parses a position description, renders it and optionally
// lists the generated destinations for a square or writes an SVG diagram.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-board/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "position description string (defaults to the initial position)")
	from := flag.String("from", "", "square to generate moves for, in algebraic form (e.g. e4)")
	svgPath := flag.String("svg", "", "write an SVG diagram of the position to this file")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(2)
	}

	fmt.Print(pos)

	if *from != "" {
		src, err := board.CoordFromAlgebraic(*from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad -from square: %v\n", err)
			os.Exit(2)
		}
		piece := pos.PieceAt(src)
		moves := board.MovesFrom(pos, src)
		board.SortCoords(moves)

		names := make([]string, 0, len(moves))
		for _, c := range moves {
			name, err := c.Algebraic()
			if err != nil {
				fmt.Fprintf(os.Stderr, "unprintable destination %v: %v\n", c, err)
				os.Exit(1)
			}
			names = append(names, name)
		}
		fmt.Printf("%s on %s: %d moves [%s]\n", piece, *from, len(moves), strings.Join(names, " "))
	}

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *svgPath, err)
			os.Exit(1)
		}
		board.WriteSVG(f, pos)
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", *svgPath, err)
			os.Exit(1)
		}
	}
}
