package health

// Response represents the health check response
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// IndexResponse represents the service information response
type IndexResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
