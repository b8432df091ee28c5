package dto

type QuoteRequest struct {
	Items              []LoadItemRequest     `json:"items" validate:"required,min=1,max=200,dive"`
	Origin             string                `json:"origin" validate:"required_without=Route,max=256"`
	Destination        string                `json:"destination" validate:"required_without=Route,max=256"`
	Route              []StateMileageRequest `json:"route" validate:"max=60,dive"`
	FuelPricePerGallon float64               `json:"fuel_price_per_gallon" validate:"gte=0,lte=50"`
	AverageSpeedMPH    float64               `json:"average_speed_mph" validate:"gte=0,lte=80"`
	Cycle              string                `json:"cycle" validate:"omitempty,oneof=60/7 70/8"`
	SleeperSplit       string                `json:"sleeper_split" validate:"omitempty,oneof=7/3 8/2"`
	HOSStatus          *HOSStatusRequest     `json:"hos_status"`
}
