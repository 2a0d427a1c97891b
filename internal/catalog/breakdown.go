package catalog

// BreakdownDefinition é uma dimensão de segmentação aplicável às extrações
type BreakdownDefinition struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"display_name"`
	APIField         string   `json:"api_field"`
	PossibleValues   []string `json:"possible_values,omitempty"`
	IncompatibleWith []string `json:"incompatible_with,omitempty"`
}
