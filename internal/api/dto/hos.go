package dto

import "heavy-haul-service/internal/domain"

type HOSStatusRequest struct {
	DrivingHoursRemaining float64 `json:"driving_hours_remaining" validate:"gte=0,lte=11"`
	DutyWindowRemaining   float64 `json:"duty_window_remaining" validate:"gte=0,lte=14"`
	CycleHoursRemaining   float64 `json:"cycle_hours_remaining" validate:"gte=0,lte=70"`
	HoursSinceBreak       float64 `json:"hours_since_break" validate:"gte=0"`
}

func (r HOSStatusRequest) ToDomain(cycle domain.HOSCycle) domain.HOSStatus {
	return domain.HOSStatus{
		DrivingHoursRemaining: r.DrivingHoursRemaining,
		DutyWindowRemaining:   r.DutyWindowRemaining,
		CycleHoursRemaining:   r.CycleHoursRemaining,
		HoursSinceBreak:       r.HoursSinceBreak,
		Cycle:                 cycle,
	}
}

// HOSValidateRequest takes either driving hours or miles; miles are converted
// at AverageSpeedMPH.
type HOSValidateRequest struct {
	DrivingHours    float64           `json:"driving_hours" validate:"gte=0,lte=500,required_without=Miles"`
	Miles           float64           `json:"miles" validate:"gte=0,lte=20000"`
	AverageSpeedMPH float64           `json:"average_speed_mph" validate:"gte=0,lte=80"`
	Cycle           string            `json:"cycle" validate:"omitempty,oneof=60/7 70/8"`
	SleeperSplit    string            `json:"sleeper_split" validate:"omitempty,oneof=7/3 8/2"`
	Status          *HOSStatusRequest `json:"status"`
}

type HOSValidateResponse struct {
	DrivingHours float64                  `json:"driving_hours"`
	Validation   domain.TripHOSValidation `json:"validation"`
}
