package audit

import "time"

// Result is one check's outcome. Informational checks report a value but
// never gate the audit.
type Result struct {
	Name          string           `json:"name"`
	Count         int64            `json:"count"`
	Distribution  map[string]int64 `json:"distribution,omitempty"`
	Expected      string           `json:"expected"`
	Pass          bool             `json:"pass"`
	Informational bool             `json:"informational,omitempty"`
	// Issues is how many offending records this check found when it
	// failed; it feeds the quality score.
	Issues int64 `json:"issues,omitempty"`
}

// Report is the structured result set of one battery run, suitable for
// programmatic pass/fail gating by a calling process.
type Report struct {
	GeneratedAt  time.Time `json:"generatedAt"`
	Results      []Result  `json:"results"`
	Passed       bool      `json:"passed"`
	QualityScore float64   `json:"qualityScore"`
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

// finalize computes the overall gate and the quality score: 100 minus one
// point per issue per hundred vertices, floored at zero.
func (r *Report) finalize(totalVertices int64) {
	r.Passed = true
	var issues int64
	for _, res := range r.Results {
		if res.Informational {
			continue
		}
		if !res.Pass {
			r.Passed = false
			issues += res.Issues
		}
	}
	if totalVertices <= 0 {
		r.QualityScore = 100
		return
	}
	score := 100 - float64(issues)/float64(totalVertices)*100
	if score < 0 {
		score = 0
	}
	r.QualityScore = score
}

// Result returns the named check, or nil.
func (r *Report) Result(name string) *Result {
	for i := range r.Results {
		if r.Results[i].Name == name {
			return &r.Results[i]
		}
	}
	return nil
}
