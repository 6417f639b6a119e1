package address

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variations expands a parsed address into the full set of plausible
// spelling variants for broadening exact-match search against differently
// formatted data sources. Name variants cover upper, lower and title case,
// plus the ordinal word/numeral alternate in the same three casings for
// numbered streets. Type variants cover every spelling registered under the
// type's canonical group, again in three casings; an unregistered type gets
// case variants of the literal token only.
//
// The result is the deduplicated Cartesian product
// "{number} {name} {type}" over all name and type variants, sorted for
// determinism. Set semantics: callers must not rely on any particular order
// beyond it being stable.
func Variations(number, name, streetType string) []string {
	nameVariants := nameVariations(name)
	typeVariants := typeVariations(streetType)

	seen := make(map[string]struct{}, len(nameVariants)*len(typeVariants))
	for _, n := range nameVariants {
		for _, t := range typeVariants {
			seen[joinNonEmpty(number, n, t)] = struct{}{}
		}
	}

	variations := make([]string, 0, len(seen))
	for v := range seen {
		variations = append(variations, v)
	}
	sort.Strings(variations)

	return variations
}

// nameVariations returns the case variants of a street name, plus the
// ordinal alternate ("FIFTH" <-> "5TH") in the same casings when the name
// is a numbered street.
func nameVariations(name string) []string {
	variants := make(map[string]struct{})
	addCasings(variants, name)

	if alternate, ok := OrdinalAlternate(name); ok {
		addCasings(variants, alternate)
	}

	return setToSlice(variants)
}

// typeVariations resolves the type token to its canonical group and returns
// every registered spelling in three casings. Unregistered tokens get case
// variants of the literal only.
func typeVariations(streetType string) []string {
	variants := make(map[string]struct{})

	if canonical, ok := CanonicalType(streetType); ok {
		for _, spelling := range streetTypes[canonical] {
			addCasings(variants, spelling)
		}
	} else {
		addCasings(variants, streetType)
	}

	return setToSlice(variants)
}

func addCasings(set map[string]struct{}, token string) {
	set[strings.ToUpper(token)] = struct{}{}
	set[strings.ToLower(token)] = struct{}{}
	set[cases.Title(language.English).String(strings.ToLower(token))] = struct{}{}
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func joinNonEmpty(tokens ...string) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, " ")
}
