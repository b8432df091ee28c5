package domain

// Federal legal limits used by truck scoring.
const (
	LegalHeightFt     = 13.5
	LegalWidthFt      = 8.5
	LegalGrossWeight  = 80000.0
	TractorWeightLbs  = 20000.0
	TractorLengthFt   = 22.0
	PoundsPerTon      = 2000.0
	MilesPerEscortDay = 300.0
	EscortHoursPerDay = 8.0
)
