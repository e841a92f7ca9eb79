package merge

import (
	"regexp"
	"sort"
	"strings"

	"which-llm/feature/aa"
	"which-llm/feature/modelsdev"
)

// Match is one resolved catalog entry.
type Match struct {
	ProviderID string
	Model      modelsdev.Model
}

// versionSuffixes are tried in order against the end of a normalized
// slug. Only one suffix is ever stripped.
var versionSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`-(latest|preview|beta)$`),
	regexp.MustCompile(`-\d{8}$`),
	regexp.MustCompile(`-\d{4}-\d{2}(-\d{2})?$`),
	regexp.MustCompile(`-\d{3,}$`),
}

// normalizeProvider canonicalizes a creator or provider name so
// "Meta AI", "meta-ai" and "meta" all collapse to the same key.
func normalizeProvider(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.TrimSuffix(s, "-ai")
	return s
}

// normalizeModel canonicalizes a model identifier for comparison.
func normalizeModel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripVersion removes one trailing version suffix, if any.
func stripVersion(s string) string {
	for _, re := range versionSuffixes {
		if re.MatchString(s) {
			return re.ReplaceAllString(s, "")
		}
	}
	return s
}

// FindMatch resolves a benchmark record to a catalog entry. Candidate
// providers whose identity matches the model's creator are searched
// first; if none match, the whole catalog is searched. Within the
// candidate set an exact slug match always beats a normalized one, and
// a normalized match beats a version-stripped one.
func FindMatch(m aa.Model, catalog modelsdev.Catalog) (Match, bool) {
	providerIDs := candidateProviders(m, catalog)

	slug := m.Slug
	normalized := normalizeModel(slug)
	stripped := stripVersion(normalized)

	type tier func(key string) bool
	tiers := []tier{
		func(key string) bool { return key == slug },
		func(key string) bool { return normalizeModel(key) == normalized },
		func(key string) bool { return stripVersion(normalizeModel(key)) == stripped },
	}

	for _, matches := range tiers {
		for _, pid := range providerIDs {
			p := catalog[pid]

			modelIDs := make([]string, 0, len(p.Models))
			for id := range p.Models {
				modelIDs = append(modelIDs, id)
			}
			sort.Strings(modelIDs)

			for _, mid := range modelIDs {
				if matches(mid) {
					return Match{ProviderID: pid, Model: p.Models[mid]}, true
				}
			}
		}
	}

	return Match{}, false
}

// candidateProviders returns the providers to search, creator matches
// first, in sorted order. With no creator match every provider is a
// candidate.
func candidateProviders(m aa.Model, catalog modelsdev.Catalog) []string {
	wanted := map[string]bool{
		normalizeProvider(m.Creator.Name): true,
	}
	if m.Creator.Slug != nil {
		wanted[normalizeProvider(*m.Creator.Slug)] = true
	}

	var matched []string
	for id, p := range catalog {
		if wanted[normalizeProvider(id)] || wanted[normalizeProvider(p.Name)] {
			matched = append(matched, id)
		}
	}
	if len(matched) > 0 {
		sort.Strings(matched)
		return matched
	}

	all := make([]string, 0, len(catalog))
	for id := range catalog {
		all = append(all, id)
	}
	sort.Strings(all)
	return all
}
