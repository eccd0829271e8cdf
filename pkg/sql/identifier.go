// Package sql screens and quotes identifiers discovered from externally
// owned schemas before they are interpolated into statements.
package sql

import (
	"fmt"
	"strings"

	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult describes an identifier that failed screening.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if SQL injection pattern detected
	Fingerprint string // libinjection fingerprint of the detected pattern
	Identifier  string // The identifier that was checked
}

// CheckIdentifier uses libinjection to detect SQL injection patterns in
// a discovered identifier. Schema and column names coming from another
// team's database are untrusted input; anything flagged here must never
// reach a statement.
//
// Returns nil when the identifier is clean.
func CheckIdentifier(name string) *InjectionCheckResult {
	if name == "" {
		return &InjectionCheckResult{Identifier: name}
	}

	isSQLi, fingerprint := libinjection.IsSQLi(name)
	if isSQLi {
		return &InjectionCheckResult{
			IsSQLi:      true,
			Fingerprint: string(fingerprint),
			Identifier:  name,
		}
	}
	return nil
}

// QuoteIdentifier brackets an identifier SQL Server style, escaping ]
// as ]]. Quoting is not a substitute for CheckIdentifier; screened
// names are still quoted so mixed-case and spaced names survive.
func QuoteIdentifier(identifier string) string {
	escaped := strings.ReplaceAll(identifier, "]", "]]")
	return fmt.Sprintf("[%s]", escaped)
}
