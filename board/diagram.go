package board

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	diagramSquare = 48 // square side in pixels
	diagramSize   = diagramSquare * BoardSize
)

// WriteSVG writes the position as an SVG diagram: a checkered grid with the
// piece glyphs as text, oriented like Position.String (highest row on top).
func WriteSVG(w io.Writer, p *Position) {
	canvas := svg.New(w)
	canvas.Start(diagramSize, diagramSize)

	for file := BoardSize - 1; file >= 0; file-- {
		y := (BoardSize - 1 - file) * diagramSquare
		for rank := 0; rank < BoardSize; rank++ {
			x := rank * diagramSquare
			fill := "fill:#b58863"
			if (file+rank)%2 == 1 {
				fill = "fill:#f0d9b5"
			}
			canvas.Rect(x, y, diagramSquare, diagramSquare, fill)

			piece := p.PieceAt(Coord{file: file, rank: rank})
			if piece == NoPiece {
				continue
			}
			glyphStyle := "text-anchor:middle;font-size:32px;font-family:monospace;fill:#000"
			if piece.IsWhite() {
				glyphStyle = "text-anchor:middle;font-size:32px;font-family:monospace;fill:#fff;stroke:#000"
			}
			canvas.Text(x+diagramSquare/2, y+diagramSquare-12, string(piece.Char()), glyphStyle)
		}
	}

	canvas.End()
}
