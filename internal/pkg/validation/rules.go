package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Term pattern - four-digit year, a dot, then semester 1 or 2
	TermPattern = `^\d{4}\.[12]$`

	// Grade bounds
	GradeMin = 0.0
	GradeMax = 10.0

	// Course name max length
	NameMaxLength = 120
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Term *regexp.Regexp
}{
	Term: regexp.MustCompile(TermPattern),
}

// IsValidTerm reports whether the term matches the year-dot-semester form.
func IsValidTerm(term string) bool {
	return CompiledPatterns.Term.MatchString(term)
}

// IsValidGrade reports whether the grade falls within the accepted scale.
func IsValidGrade(grade float64) bool {
	return grade >= GradeMin && grade <= GradeMax
}
