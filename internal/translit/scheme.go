package translit

import (
	"fmt"
	"strings"
)

// Scheme names a Roman-to-target-script transliteration convention.
type Scheme string

// Schemes understood by the bundled engines, in default preference order.
const (
	SchemeITRANS       Scheme = "itrans"
	SchemeHarvardKyoto Scheme = "hk"
	SchemeIAST         Scheme = "iast"
)

// DefaultSchemeOrder is the ranked fallback chain tried when configuration
// does not override it.
var DefaultSchemeOrder = []Scheme{SchemeITRANS, SchemeHarvardKyoto, SchemeIAST}

// ParseSchemes converts configured scheme names into a ranked order,
// rejecting blanks and duplicates.
func ParseSchemes(names []string) ([]Scheme, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("scheme order is empty")
	}
	seen := make(map[Scheme]struct{}, len(names))
	order := make([]Scheme, 0, len(names))
	for _, name := range names {
		scheme := Scheme(strings.ToLower(strings.TrimSpace(name)))
		if scheme == "" {
			return nil, fmt.Errorf("scheme order contains a blank entry")
		}
		if _, dup := seen[scheme]; dup {
			return nil, fmt.Errorf("scheme %q listed twice", scheme)
		}
		seen[scheme] = struct{}{}
		order = append(order, scheme)
	}
	return order, nil
}
