package types

type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "UP"
	HealthStatusDegraded HealthStatus = "DEGRADED"
)

// HealthCheck reports service liveness and which storage backend is serving
// requests. StorageMode is "postgres" normally and "memory" when the service
// started in the degraded fallback mode.
type HealthCheck struct {
	Status      HealthStatus `json:"status"`
	StorageMode string       `json:"storageMode"`
	Version     string       `json:"version,omitempty"`
	Timestamp   string       `json:"timestamp"`
	Uptime      string       `json:"uptime"`
}
