package aa

// Envelope is the generic API response wrapper.
type Envelope[T any] struct {
	Status int `json:"status"`
	Data   T   `json:"data"`
}

// Model is one LLM record from the API. Identity fields are always
// present; everything else is independently optional.
type Model struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	ReleaseDate *string      `json:"release_date"`
	Creator     Creator      `json:"model_creator"`
	Evaluations *Evaluations `json:"evaluations"`
	Pricing     *Pricing     `json:"pricing"`
	// Output generation speed (tokens per second)
	TPS *float64 `json:"median_output_tokens_per_second"`
	// Time to first token (seconds)
	Latency *float64 `json:"median_time_to_first_token_seconds"`
}

// Creator identifies who built a model.
type Creator struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Slug *string `json:"slug"`
}

// Evaluations carries the benchmark indices.
type Evaluations struct {
	Intelligence  *float64 `json:"artificial_analysis_intelligence_index"`
	Coding        *float64 `json:"artificial_analysis_coding_index"`
	Math          *float64 `json:"artificial_analysis_math_index"`
	MMLUPro       *float64 `json:"mmlu_pro"`
	GPQA          *float64 `json:"gpqa"`
	HLE           *float64 `json:"hle"`
	LiveCodeBench *float64 `json:"livecodebench"`
	SciCode       *float64 `json:"scicode"`
	Math500       *float64 `json:"math_500"`
	AIME          *float64 `json:"aime"`
}

// Pricing is USD per million tokens.
type Pricing struct {
	// Blended price (3:1 input:output ratio)
	Blended *float64 `json:"price_1m_blended_3_to_1"`
	Input   *float64 `json:"price_1m_input_tokens"`
	Output  *float64 `json:"price_1m_output_tokens"`
}

// MediaModel is one media-arena record (text-to-image, video, speech).
type MediaModel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Creator     Creator  `json:"model_creator"`
	Elo         *float64 `json:"elo"`
	Rank        *int32   `json:"rank"`
	ReleaseDate *string  `json:"release_date"`
}

// CreatorSlug returns the creator slug or empty string.
func (m Model) CreatorSlug() string {
	if m.Creator.Slug == nil {
		return ""
	}
	return *m.Creator.Slug
}

// Intelligence returns the intelligence index if present.
func (m Model) Intelligence() *float64 {
	if m.Evaluations == nil {
		return nil
	}
	return m.Evaluations.Intelligence
}

// InputPrice returns the input token price per million if present.
func (m Model) InputPrice() *float64 {
	if m.Pricing == nil {
		return nil
	}
	return m.Pricing.Input
}

// OutputPrice returns the output token price per million if present.
func (m Model) OutputPrice() *float64 {
	if m.Pricing == nil {
		return nil
	}
	return m.Pricing.Output
}
