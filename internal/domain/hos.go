package domain

type HOSCycle string

const (
	Cycle60Hour7Day HOSCycle = "60/7"
	Cycle70Hour8Day HOSCycle = "70/8"
)

type SleeperSplit string

const (
	SplitNone SleeperSplit = ""
	Split7_3  SleeperSplit = "7/3"
	Split8_2  SleeperSplit = "8/2"
)

// Driver's remaining hours at trip start.
type HOSStatus struct {
	DrivingHoursRemaining float64  `json:"driving_hours_remaining"`
	DutyWindowRemaining   float64  `json:"duty_window_remaining"`
	CycleHoursRemaining   float64  `json:"cycle_hours_remaining"`
	HoursSinceBreak       float64  `json:"hours_since_break"`
	Cycle                 HOSCycle `json:"cycle"`
}

type RestStopType string

const (
	RestBreak30      RestStopType = "30_minute_break"
	RestOffDuty10    RestStopType = "10_hour_off_duty"
	RestSleeperSplit RestStopType = "sleeper_berth_split"
	RestRestart34    RestStopType = "34_hour_restart"
)

type RestStop struct {
	Type        RestStopType `json:"type"`
	TriggerHour float64      `json:"trigger_hour"`
	Duration    float64      `json:"duration"`
	Reason      string       `json:"reason"`
}

type TripHOSValidation struct {
	Feasible          bool       `json:"feasible"`
	TotalDrivingHours float64    `json:"total_driving_hours"`
	TotalRestHours    float64    `json:"total_rest_hours"`
	TotalTripHours    float64    `json:"total_trip_hours"`
	DrivingDays       int        `json:"driving_days"`
	RequiredStops     []RestStop `json:"required_stops"`
	Warnings          []string   `json:"warnings"`
}
