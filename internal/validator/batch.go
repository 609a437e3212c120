package validator

import "github.com/vk/wwisedsl/internal/sample"

// Report summarizes a batch validation run.
type Report struct {
	Total              int
	Valid              int
	Invalid            int
	SyntaxErrors       int
	SemanticErrors     int
	DependencyWarnings int
}

// ValidateBatch validates records in order, carrying the created-object set
// forward across samples, and returns per-sample verdicts plus a summary.
func (v *Validator) ValidateBatch(records []sample.Record) ([]Verdict, Report) {
	verdicts := make([]Verdict, 0, len(records))
	var rep Report
	for _, rec := range records {
		verdict := v.Validate(rec)
		verdicts = append(verdicts, verdict)

		rep.Total++
		if verdict.Valid {
			rep.Valid++
		} else {
			rep.Invalid++
		}
		if !verdict.SyntaxOK {
			rep.SyntaxErrors++
		}
		if !verdict.SemanticOK {
			rep.SemanticErrors++
		}
		if !verdict.DependencyOK {
			rep.DependencyWarnings += len(verdict.Warnings)
		}
	}
	return verdicts, rep
}
