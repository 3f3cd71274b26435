package dto

const (
	HealthStatusSuccess = "success"
	HealthStatusError   = "error"
)

type HealthCheckResult struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Success"`
	Title   string `json:"title,omitempty"`
}
