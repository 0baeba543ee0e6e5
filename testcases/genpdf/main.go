// seehuhn.de/go/fnplot - adaptive sampling of function graphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf plots all test cases for visual inspection.
// It creates one PDF per test case, showing the sampled graph together with
// the sample points.  If Ghostscript is installed, the PDFs are also
// rendered to PNG.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fnplot"
	"seehuhn.de/go/fnplot/preview"
	"seehuhn.de/go/fnplot/testcases"
)

const plotDir = "testdata/plots"

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(plotDir, name+".pdf")
			pngPath := filepath.Join(plotDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if gsErr != nil {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; the canvas uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	canvas := &preview.Canvas{
		Width:  tc.Width,
		Height: tc.Height,
		Window: tc.Window(),
	}
	m := canvas.Matrix()

	opts := tc.Options
	runs := fnplot.Sample(tc.F, &opts)

	// Keep coordinates near poles within the range PDF viewers accept.
	const margin = 10
	clip := rect.Rect{
		LLx: -margin,
		LLy: -margin,
		URx: float64(tc.Width) + margin,
		URy: float64(tc.Height) + margin,
	}
	p := preview.ClipPath(fnplot.AppendPath(nil, runs, m), clip)

	// Stroke and Fill require a current path.
	if len(p.Cmds) > 0 {
		drawPath(page, p)
	}

	// Mark the sample points which are visible.
	page.SetFillColor(color.DeviceRGB{0.8, 0, 0})
	marked := false
	for _, run := range runs {
		for _, pt := range run {
			x := m[0]*pt.X + m[2]*pt.Y + m[4]
			y := m[1]*pt.X + m[3]*pt.Y + m[5]
			if !(x >= 0 && x <= float64(tc.Width) && y >= 0 && y <= float64(tc.Height)) {
				continue
			}
			page.Rectangle(x-0.75, y-0.75, 1.5, 1.5)
			marked = true
		}
	}
	if marked {
		page.Fill()
	}

	return page.Close()
}

func drawPath(page *document.Page, p *path.Data) {
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := p.Coords[coordIdx]
			page.MoveTo(pt.X, pt.Y)
			coordIdx++
		case path.CmdLineTo:
			pt := p.Coords[coordIdx]
			page.LineTo(pt.X, pt.Y)
			coordIdx++
		}
	}
	page.Stroke()
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144: 2 pixels per point, so that the sample marks are visible
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-dTextAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
