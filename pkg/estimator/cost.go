package estimator

import "github.com/infercast/infercast/pkg/errors"

// CloudCostEstimate holds a rented-hardware cost projection with
// TotalCost = HourlyRate * DurationHours.
type CloudCostEstimate struct {
	HourlyRate    float64 `json:"hourly_rate"`
	DurationHours float64 `json:"duration_hours"`
	TotalCost     float64 `json:"total_cost"`
}

// EstimateCloudCost projects the cost of renting hardware for a duration.
// Unlike the zero-degrading helpers, negative inputs here are rejected: a
// negative rate or duration is never an "unset form field", it is invalid.
func EstimateCloudCost(hourlyRate, durationHours float64) (CloudCostEstimate, error) {
	if hourlyRate < 0 {
		return CloudCostEstimate{}, errors.NewValidationError(
			"hourlyRate", hourlyRate, "must not be negative")
	}
	if durationHours < 0 {
		return CloudCostEstimate{}, errors.NewValidationError(
			"durationHours", durationHours, "must not be negative")
	}

	return CloudCostEstimate{
		HourlyRate:    hourlyRate,
		DurationHours: durationHours,
		TotalCost:     hourlyRate * durationHours,
	}, nil
}
