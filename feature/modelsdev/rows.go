package modelsdev

import (
	"sort"
	"strings"
)

// opt unwraps an optional field into a driver value, nil for absent.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// joined renders a modality list as a comma-joined string, nil if empty.
func joined(items []string) any {
	if len(items) == 0 {
		return nil
	}
	return strings.Join(items, ",")
}

// Flatten turns the nested catalog into raw rows in models_dev column
// order. Rows are sorted by provider ID then model ID so output is
// stable across runs.
func Flatten(catalog Catalog) [][]any {
	providerIDs := make([]string, 0, len(catalog))
	for id := range catalog {
		providerIDs = append(providerIDs, id)
	}
	sort.Strings(providerIDs)

	var rows [][]any
	for _, pid := range providerIDs {
		p := catalog[pid]

		modelIDs := make([]string, 0, len(p.Models))
		for id := range p.Models {
			modelIDs = append(modelIDs, id)
		}
		sort.Strings(modelIDs)

		for _, mid := range modelIDs {
			m := p.Models[mid]

			limit := m.Limit
			if limit == nil {
				limit = &Limit{}
			}
			cost := m.Cost
			if cost == nil {
				cost = &Cost{}
			}
			modalities := m.Modalities
			if modalities == nil {
				modalities = &Modalities{}
			}

			rows = append(rows, []any{
				p.ID,
				p.Name,
				joined(p.Env),
				opt(p.Npm),
				opt(p.API),
				opt(p.Doc),
				m.ID,
				m.Name,
				opt(m.Family),
				opt(m.Attachment),
				opt(m.Reasoning),
				opt(m.ToolCall),
				opt(m.StructuredOutput),
				opt(m.Temperature),
				opt(m.Knowledge),
				opt(m.ReleaseDate),
				opt(m.LastUpdated),
				opt(m.OpenWeights),
				opt(m.Status),
				opt(limit.Context),
				opt(limit.Input),
				opt(limit.Output),
				opt(cost.Input),
				opt(cost.Output),
				opt(cost.CacheRead),
				opt(cost.CacheWrite),
				joined(modalities.Input),
				joined(modalities.Output),
			})
		}
	}
	return rows
}
