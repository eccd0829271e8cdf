package directory

import (
	"fmt"
	"strings"

	enginesql "github.com/gmsoft-inc/monitor-engine/pkg/sql"
)

// The employee directory schema is externally owned, so the columns we
// can select are discovered at runtime. Each canonical output field has
// an ordered list of candidate source columns; resolution happens ONCE
// against the discovered schema and yields a fixed mapping, so the
// select statement never references a column that does not exist.

// CandidateField names one canonical output column and the source
// columns that may carry it, in priority order.
type CandidateField struct {
	Canonical  string
	Candidates []string
	Required   bool
}

// EmployeeFields are the candidate resolvers for the employee directory.
var EmployeeFields = []CandidateField{
	{Canonical: "employee_id", Candidates: []string{"employee_id"}, Required: true},
	{Canonical: "employee_name", Candidates: []string{"name", "names", "full_name"}},
	{Canonical: "employee_surname", Candidates: []string{"surname", "last_name"}},
	{Canonical: "employee_email", Candidates: []string{"email"}},
}

// ResolvedField maps a discovered source column to its canonical name.
type ResolvedField struct {
	Canonical string
	Source    string
}

// Resolve evaluates the candidate fields against the discovered column
// list and returns the fixed source→canonical mapping. Matching is
// case-insensitive since SQL Server collations commonly are. An error
// is returned only when a required field has no candidate present.
func Resolve(fields []CandidateField, discovered []string) ([]ResolvedField, error) {
	available := make(map[string]string, len(discovered))
	for _, col := range discovered {
		if enginesql.CheckIdentifier(col) != nil {
			// Discovered names are untrusted external input; anything
			// the screen flags never reaches the select statement.
			continue
		}
		available[strings.ToLower(col)] = col
	}

	var resolution []ResolvedField
	for _, f := range fields {
		source := ""
		for _, candidate := range f.Candidates {
			if actual, ok := available[strings.ToLower(candidate)]; ok {
				source = actual
				break
			}
		}
		if source == "" {
			if f.Required {
				return nil, fmt.Errorf("required field %q not present in directory schema", f.Canonical)
			}
			continue
		}
		resolution = append(resolution, ResolvedField{Canonical: f.Canonical, Source: source})
	}

	return resolution, nil
}
