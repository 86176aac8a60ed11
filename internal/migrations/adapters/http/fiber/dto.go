package fiber

type MigrationResponse struct {
	CustomerName      string  `json:"customer_name"`
	LastIngestionAt   *int64  `json:"last_ingestion_at,omitempty"`
	TotalIngestions   *int64  `json:"total_ingestions,omitempty"`
	IngestionStarts   []int64 `json:"ingestion_starts"`
	IngestionAttempts int     `json:"ingestion_attempts"`
}

type MigrationListResponse struct {
	Migrations []MigrationResponse `json:"migrations"`
	Count      int                 `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"Listing query is invalid"`
}
