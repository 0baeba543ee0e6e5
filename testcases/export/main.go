// Command export writes the sampled test cases to JSON, for plotting with
// external tools.
// Run from the fnplot module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fnplot"
	"seehuhn.de/go/fnplot/testcases"
)

func main() {
	if err := export("testdata"); err != nil {
		panic(err)
	}
}

// export writes samples.json into dir, creating dir if needed.
func export(dir string) error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "samples.json"))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonTestCase struct {
	Name    string         `json:"name"`
	XMin    float64        `json:"xmin"`
	XMax    float64        `json:"xmax"`
	YMin    float64        `json:"ymin"`
	YMax    float64        `json:"ymax"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Samples int            `json:"samples"`
	Runs    [][][2]float64 `json:"runs"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	window := tc.Window()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		XMin:   window.LLx,
		XMax:   window.URx,
		YMin:   tc.YMin,
		YMax:   tc.YMax,
		Width:  tc.Width,
		Height: tc.Height,
		Runs:   [][][2]float64{},
	}

	// JSON has no NaN, so the break markers of flattened output cannot be
	// represented.
	opts := tc.Options
	opts.Output = fnplot.Segmented

	for _, run := range fnplot.Sample(tc.F, &opts) {
		pts := make([][2]float64, len(run))
		for i, pt := range run {
			pts[i] = [2]float64{pt.X, pt.Y}
		}
		jtc.Runs = append(jtc.Runs, pts)
		jtc.Samples += len(run)
	}
	return jtc
}
