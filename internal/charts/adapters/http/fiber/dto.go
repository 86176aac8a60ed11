package fiber

type SeriesPointResponse struct {
	Label   string `json:"label"`
	Count   int64  `json:"count"`
	Tooltip string `json:"tooltip"`
}

// ChartResponse carries one display-ready series. An empty points list
// with max_count 0 means "no data to display"; renderers show the
// placeholder instead of an all-zero chart.
type ChartResponse struct {
	Kind       string                `json:"kind"`
	Window     string                `json:"window,omitempty"`
	GrandTotal int64                 `json:"grand_total"`
	MaxCount   int64                 `json:"max_count"`
	Points     []SeriesPointResponse `json:"points"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_chart"`
	Message string `json:"message" example:"Chart query is invalid"`
}
