package vexport

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/katalvlaran/cubegather/grid"
)

// PixelsPerCell is the rendered edge length of one grid cell, in SVG
// user units — eight subunits per cell, enough to draw a crisp glyph
// (disk, cross, hollow square) without sub-pixel paths.
const PixelsPerCell = 8

var docTemplate = template.Must(template.New("svg").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
{{.Body}}</svg>
`))

type docData struct {
	Width, Height int
	Body          string
}

// Export renders every cube in w to out as a single SVG document. Cells
// are flipped into screen coordinates (Y grows down in SVG, up in the
// grid) and offset so the whole configuration's bounding box starts at
// the origin.
func Export(w *grid.World, out io.Writer) error {
	minX, minY, maxX, maxY, ok := w.Bounds()
	if !ok {
		return docTemplate.Execute(out, docData{Width: PixelsPerCell, Height: PixelsPerCell})
	}

	width := (maxX - minX + 1) * PixelsPerCell
	height := (maxY - minY + 1) * PixelsPerCell

	var body strings.Builder
	for _, c := range w.Cubes() {
		px := (c.Pos.X - minX) * PixelsPerCell
		py := (maxY - c.Pos.Y) * PixelsPerCell
		writeGlyph(&body, c, px, py)
	}

	return docTemplate.Execute(out, docData{Width: width, Height: height, Body: body.String()})
}

func writeGlyph(b *strings.Builder, c grid.Cube, px, py int) {
	fill := fmt.Sprintf("rgb(%d,%d,%d)", c.Color.R, c.Color.G, c.Color.B)
	cx, cy := px+PixelsPerCell/2, py+PixelsPerCell/2
	r := PixelsPerCell / 2

	switch c.Tag {
	case grid.TagChunkStable:
		fmt.Fprintf(b, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", px, py, PixelsPerCell, PixelsPerCell, fill)
	case grid.TagLinkStable:
		fmt.Fprintf(b, "<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"%s\"/>\n", cx, cy, r, fill)
	case grid.TagChunkCut:
		fmt.Fprintf(b, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"%s\"/>\n", px, py, PixelsPerCell, PixelsPerCell, fill)
	case grid.TagLinkCut:
		fmt.Fprintf(b, "<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"none\" stroke=\"%s\"/>\n", cx, cy, r, fill)
	case grid.TagConnector:
		fmt.Fprintf(b, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"%s\"/>\n", px, py, PixelsPerCell, PixelsPerCell, fill)
		fmt.Fprintf(b, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\"/>\n", px, py, px+PixelsPerCell, py+PixelsPerCell, fill)
		fmt.Fprintf(b, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\"/>\n", px+PixelsPerCell, py, px, py+PixelsPerCell, fill)
	default:
		fmt.Fprintf(b, "<circle cx=\"%d\" cy=\"%d\" r=\"1\" fill=\"%s\"/>\n", cx, cy, fill)
	}
}
