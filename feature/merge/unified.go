package merge

// UnifiedModel is one benchmark record enriched with catalog data.
// Fields after Latency come from the catalog and stay nil when the
// record found no catalog match.
type UnifiedModel struct {
	ID          string
	Name        string
	Slug        string
	Creator     string
	CreatorSlug *string
	ReleaseDate *string

	Intelligence  *float64
	Coding        *float64
	Math          *float64
	MMLUPro       *float64
	GPQA          *float64
	HLE           *float64
	LiveCodeBench *float64
	SciCode       *float64
	Math500       *float64
	AIME          *float64

	InputPrice  *float64
	OutputPrice *float64
	Price       *float64
	TPS         *float64
	Latency     *float64

	Reasoning        *bool
	ToolCall         *bool
	StructuredOutput *bool
	Attachment       *bool
	Temperature      *bool

	ContextWindow   *int64
	MaxInputTokens  *int64
	MaxOutputTokens *int64

	InputModalities  *string
	OutputModalities *string
	KnowledgeCutoff  *string
	OpenWeights      *bool
	LastUpdated      *string

	Matched bool
}

// opt unwraps an optional field into a driver value, nil for absent.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Row flattens the model in llms table column order.
func (u UnifiedModel) Row() []any {
	return []any{
		u.ID,
		u.Name,
		u.Slug,
		u.Creator,
		opt(u.CreatorSlug),
		opt(u.ReleaseDate),
		opt(u.Intelligence),
		opt(u.Coding),
		opt(u.Math),
		opt(u.MMLUPro),
		opt(u.GPQA),
		opt(u.HLE),
		opt(u.LiveCodeBench),
		opt(u.SciCode),
		opt(u.Math500),
		opt(u.AIME),
		opt(u.InputPrice),
		opt(u.OutputPrice),
		opt(u.Price),
		opt(u.TPS),
		opt(u.Latency),
		opt(u.Reasoning),
		opt(u.ToolCall),
		opt(u.StructuredOutput),
		opt(u.Attachment),
		opt(u.Temperature),
		opt(u.ContextWindow),
		opt(u.MaxInputTokens),
		opt(u.MaxOutputTokens),
		opt(u.InputModalities),
		opt(u.OutputModalities),
		opt(u.KnowledgeCutoff),
		opt(u.OpenWeights),
		opt(u.LastUpdated),
		u.Matched,
	}
}

// Rows flattens a model list.
func Rows(models []UnifiedModel) [][]any {
	rows := make([][]any, len(models))
	for i, m := range models {
		rows[i] = m.Row()
	}
	return rows
}
