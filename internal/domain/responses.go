package domain

// IndexResponse is the static metadata served at the service root.
type IndexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse is the liveness payload. Timestamp is RFC 3339.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
