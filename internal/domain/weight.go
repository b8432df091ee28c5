package domain

// Legal limits per axle group in pounds.
type AxleLimits struct {
	SteerAxle   float64 `json:"steer_axle"`
	DriveAxles  float64 `json:"drive_axles"`
	TrailerAxle float64 `json:"trailer_axle"`
	Gross       float64 `json:"gross"`
}

type AxleWeights struct {
	Steer   float64 `json:"steer"`
	Drive   float64 `json:"drive"`
	Trailer float64 `json:"trailer"`
	Kingpin float64 `json:"kingpin"`
	Total   float64 `json:"total"`
}

// Derived description of how a load sits on its truck.
// It is computed on demand and never stored apart from the load.
type WeightDistributionResult struct {
	AxleWeights      AxleWeights `json:"axle_weights"`
	CenterOfGravityX float64     `json:"center_of_gravity_x"`
	CenterOfGravityZ float64     `json:"center_of_gravity_z"`
	CenterOfGravityY float64     `json:"center_of_gravity_y"`
	BalanceScore     float64     `json:"balance_score"`
	AxleViolations   []string    `json:"axle_violations"`
	GrossViolation   bool        `json:"gross_violation"`
	WithinAxleLimits bool        `json:"within_axle_limits"`
	Warnings         []string    `json:"warnings"`
}
