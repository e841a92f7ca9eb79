package aa

// opt unwraps an optional field into a driver value, nil for absent.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// BenchmarkRows flattens LLM records into raw benchmark table rows.
// Column order follows the benchmarks table definition.
func BenchmarkRows(models []Model) [][]any {
	rows := make([][]any, 0, len(models))
	for _, m := range models {
		ev := m.Evaluations
		if ev == nil {
			ev = &Evaluations{}
		}
		pr := m.Pricing
		if pr == nil {
			pr = &Pricing{}
		}

		rows = append(rows, []any{
			m.ID,
			m.Name,
			m.Slug,
			m.Creator.Name,
			opt(m.Creator.Slug),
			opt(m.ReleaseDate),
			opt(ev.Intelligence),
			opt(ev.Coding),
			opt(ev.Math),
			opt(ev.MMLUPro),
			opt(ev.GPQA),
			opt(ev.HLE),
			opt(ev.LiveCodeBench),
			opt(ev.SciCode),
			opt(ev.Math500),
			opt(ev.AIME),
			opt(pr.Input),
			opt(pr.Output),
			opt(pr.Blended),
			opt(m.TPS),
			opt(m.Latency),
		})
	}
	return rows
}

// MediaRows flattens media-arena records into media table rows.
func MediaRows(models []MediaModel) [][]any {
	rows := make([][]any, 0, len(models))
	for _, m := range models {
		rows = append(rows, []any{
			m.ID,
			m.Name,
			m.Slug,
			m.Creator.Name,
			opt(m.Elo),
			opt(m.Rank),
			opt(m.ReleaseDate),
		})
	}
	return rows
}
