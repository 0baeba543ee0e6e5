package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"smooth":    smoothCases,
	"curvature": curvatureCases,
	"pole":      poleCases,
	"undefined": undefinedCases,
	"flat":      flatCases,
}
