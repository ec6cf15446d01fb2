package hltext

// Config holds the full configuration of a Textbox. It is set once at
// construction and never mutated afterwards.
type Config struct {
	// CombineAdjacent merges consecutive same-label segments during
	// postprocessing.
	CombineAdjacent bool
	// AdjacentSeparator joins the text of merged segments.
	AdjacentSeparator string
	// ColorMap maps category names to colors (hex codes or names) for the
	// host's legend and span rendering. Carried as data only.
	ColorMap map[string]string
	// ShowLegend asks the host to render span categories in a legend.
	ShowLegend bool
	// LegendLabel titles the legend when non-empty.
	LegendLabel string
	// Separator splits input into tokens for interpretation.
	Separator string
	// Replacement substitutes for dropped tokens in leave-one-out variants;
	// nil removes the token.
	Replacement *string
	// NormalizeInput applies NFKC normalization to host input during
	// preprocessing.
	NormalizeInput bool
}

// Option configures a Textbox at construction.
type Option func(*Config)

// WithCombineAdjacent enables merging of adjacent same-label segments,
// joined by separator.
func WithCombineAdjacent(separator string) Option {
	return func(c *Config) {
		c.CombineAdjacent = true
		c.AdjacentSeparator = separator
	}
}

// WithColorMap sets the category-to-color mapping passed through to the
// host, e.g. {"person": "red", "location": "#FFEE22"}.
func WithColorMap(colorMap map[string]string) Option {
	return func(c *Config) {
		c.ColorMap = colorMap
	}
}

// WithLegend asks the host to show a span-category legend, optionally
// titled by label.
func WithLegend(label string) Option {
	return func(c *Config) {
		c.ShowLegend = true
		c.LegendLabel = label
	}
}

// WithInterpretation sets the token separator and leave-one-out replacement
// used by the interpreter. A nil replacement removes tokens instead of
// substituting them.
func WithInterpretation(separator string, replacement *string) Option {
	return func(c *Config) {
		if separator != "" {
			c.Separator = separator
		}
		c.Replacement = replacement
	}
}

// WithNormalizeInput enables NFKC normalization of host input during
// preprocessing.
func WithNormalizeInput() Option {
	return func(c *Config) {
		c.NormalizeInput = true
	}
}

func defaultConfig() *Config {
	return &Config{Separator: " "}
}

func applyOptions(opts ...Option) *Config {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}
