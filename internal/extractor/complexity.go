package extractor

// Complexity is the structural tier of one sample.
type Complexity string

const (
	Simple  Complexity = "simple"
	Medium  Complexity = "medium"
	Complex Complexity = "complex"
	Expert  Complexity = "expert"
)

// Classify grades a sample from its line count, maximum nesting depth, and
// per-instruction counts. Assignment or action instructions, three or more
// links, or depth three and beyond always grade expert, no matter how short
// the sample is.
func Classify(lineCount, depth int, counts map[string]int) Complexity {
	if counts["ASSIGN"] > 0 || counts["ADD_ACTION"] > 0 || counts["LINK"] >= 3 || depth >= 3 {
		return Expert
	}
	if lineCount <= 3 && depth <= 1 {
		return Simple
	}
	if lineCount <= 10 && depth <= 2 {
		return Medium
	}
	return Complex
}
