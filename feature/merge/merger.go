package merge

import (
	"strings"

	"go.uber.org/zap"

	"which-llm/feature/aa"
	"which-llm/feature/modelsdev"
)

// MergeModels joins each benchmark record with its catalog entry.
// Output order follows the input order. A record with no catalog match
// still produces a row, with the capability fields left empty.
func MergeModels(models []aa.Model, catalog modelsdev.Catalog, logger *zap.Logger) []UnifiedModel {
	unified := make([]UnifiedModel, 0, len(models))
	unmatched := 0

	for _, m := range models {
		u := fromBenchmark(m)

		if match, ok := FindMatch(m, catalog); ok {
			enrich(&u, match, logger)
		} else {
			unmatched++
			logger.Debug("no catalog match", zap.String("slug", m.Slug))
		}

		unified = append(unified, u)
	}

	if unmatched > 0 {
		logger.Info("merged model data",
			zap.Int("total", len(models)),
			zap.Int("unmatched", unmatched))
	}

	return unified
}

// fromBenchmark seeds a unified model from the benchmark record alone.
func fromBenchmark(m aa.Model) UnifiedModel {
	u := UnifiedModel{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Creator:     m.Creator.Name,
		CreatorSlug: m.Creator.Slug,
		ReleaseDate: m.ReleaseDate,
		TPS:         m.TPS,
		Latency:     m.Latency,
	}

	if ev := m.Evaluations; ev != nil {
		u.Intelligence = ev.Intelligence
		u.Coding = ev.Coding
		u.Math = ev.Math
		u.MMLUPro = ev.MMLUPro
		u.GPQA = ev.GPQA
		u.HLE = ev.HLE
		u.LiveCodeBench = ev.LiveCodeBench
		u.SciCode = ev.SciCode
		u.Math500 = ev.Math500
		u.AIME = ev.AIME
	}
	if pr := m.Pricing; pr != nil {
		u.InputPrice = pr.Input
		u.OutputPrice = pr.Output
		u.Price = pr.Blended
	}

	return u
}

// enrich copies catalog fields onto a unified model. Benchmark fields
// always win where both sources carry a value; the catalog only fills
// gaps.
func enrich(u *UnifiedModel, match Match, logger *zap.Logger) {
	m := match.Model
	u.Matched = true

	u.Reasoning = m.Reasoning
	u.ToolCall = m.ToolCall
	u.StructuredOutput = m.StructuredOutput
	u.Attachment = m.Attachment
	u.Temperature = m.Temperature
	u.KnowledgeCutoff = m.Knowledge
	u.OpenWeights = m.OpenWeights
	u.LastUpdated = m.LastUpdated

	if limit := m.Limit; limit != nil {
		u.ContextWindow = limit.Context
		u.MaxInputTokens = limit.Input
		u.MaxOutputTokens = limit.Output
	}

	if mod := m.Modalities; mod != nil {
		u.InputModalities = joinModalities(mod.Input, m.ID, logger)
		u.OutputModalities = joinModalities(mod.Output, m.ID, logger)
	} else {
		logger.Debug("catalog entry without modalities",
			zap.String("provider", match.ProviderID),
			zap.String("model", m.ID))
	}

	if u.ReleaseDate == nil {
		u.ReleaseDate = m.ReleaseDate
	}
}

// joinModalities renders a modality list as one comma-joined string. A
// token containing the delimiter would not round-trip; that is a data
// quality problem in the catalog, logged and kept as-is.
func joinModalities(tokens []string, modelID string, logger *zap.Logger) *string {
	if len(tokens) == 0 {
		return nil
	}
	for _, tok := range tokens {
		if strings.Contains(tok, ",") {
			logger.Warn("modality token contains the list delimiter",
				zap.String("model", modelID), zap.String("token", tok))
		}
	}
	joined := strings.Join(tokens, ",")
	return &joined
}

// Search returns models whose name, slug or creator contains the query,
// case-insensitively. An exact slug match is returned alone.
func Search(models []UnifiedModel, query string) []UnifiedModel {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models
	}

	var matched []UnifiedModel
	for _, m := range models {
		if strings.ToLower(m.Slug) == q {
			return []UnifiedModel{m}
		}
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Slug), q) ||
			strings.Contains(strings.ToLower(m.Creator), q) {
			matched = append(matched, m)
		}
	}
	return matched
}

// FindOne resolves a query to exactly one model: an exact slug match,
// or a unique substring match. Ambiguous and empty results return the
// candidate list for the caller to report.
func FindOne(models []UnifiedModel, query string) (UnifiedModel, []UnifiedModel, bool) {
	matched := Search(models, query)
	if len(matched) == 1 {
		return matched[0], nil, true
	}
	return UnifiedModel{}, matched, false
}
