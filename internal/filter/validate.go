package filter

import (
	"strings"

	"classdiag/internal/diagnostic"
)

// Validate checks a policy's rule lists for entries that can never match.
// Blank or whitespace-padded entries are errors; duplicates are warnings.
func (p *Policy) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	validateRules(&diags, "special_bases", p.SpecialBases)
	validateRules(&diags, "special_interfaces", p.SpecialInterfaces)
	validateRules(&diags, "framework_prefixes", p.FrameworkPrefixes)

	for _, prefix := range p.FrameworkPrefixes {
		if strings.HasPrefix(prefix, "/") || strings.HasSuffix(prefix, "/") {
			diags.AddError("malformed-prefix",
				"framework prefix must not begin or end with '/'", prefix, "")
		}
	}

	return diags
}

// validateRules checks one rule list for unmatched-by-construction entries.
func validateRules(diags *diagnostic.Diagnostics, list string, rules []string) {
	seen := make(map[string]bool)

	for _, rule := range rules {
		if strings.TrimSpace(rule) == "" {
			diags.AddError("empty-rule", "blank entry in "+list, "", "")
			continue
		}

		if rule != strings.TrimSpace(rule) {
			diags.AddError("padded-rule",
				"entry in "+list+" has leading or trailing whitespace", rule, "")
			continue
		}

		if seen[rule] {
			diags.AddWarning("duplicate-rule", "entry listed more than once in "+list, rule, "")
		}

		seen[rule] = true
	}
}
