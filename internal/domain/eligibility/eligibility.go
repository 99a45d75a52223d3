// Package eligibility filters employees out of payroll outputs by NIP prefix.
// Organisational units are encoded as prefixes on the employee number, so a
// unit-level exclusion is a case-insensitive prefix match.
package eligibility

import "strings"

// PrefixSet is a list of NIP prefixes whose employees are excluded.
type PrefixSet []string

// Excluded reports whether nip starts with any prefix in the set,
// ignoring case.
func (p PrefixSet) Excluded(nip string) bool {
	upper := strings.ToUpper(strings.TrimSpace(nip))
	for _, prefix := range p {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return true
		}
	}
	return false
}

// Reports excludes support and non-civil-servant units from rendered
// allowance reports.
var Reports = PrefixSet{"TATT", "DIRDATAKB", "PPNPN", "DIRPGKP"}

// Extracts excludes units that are paid through a separate channel from
// the payment-system extract.
var Extracts = PrefixSet{"TATT", "PPNPN", "DIRDATA"}
