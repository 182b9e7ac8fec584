package models

// PricingTier is one bracket of the progressive tariff. Tiers are ordered,
// non-overlapping km ranges, each with its own per-km rate.
type PricingTier struct {
	MinKm      int    `json:"min_km" db:"min_km"`
	MaxKm      int    `json:"max_km" db:"max_km"`
	PricePerKm int64  `json:"price_per_km" db:"price_per_km"`
	Label      string `json:"label" db:"label"`
}

// VehicleType is a bookable vehicle class with its fare multiplier
type VehicleType struct {
	ID              string  `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	Seats           int     `json:"seats" db:"seats"`
	PriceMultiplier float64 `json:"price_multiplier" db:"price_multiplier"`
}

// FareTierBreakdown is the per-tier share of a computed fare
type FareTierBreakdown struct {
	Label      string `json:"label"`
	Km         int    `json:"km"`
	PricePerKm int64  `json:"price_per_km"`
	Subtotal   int64  `json:"subtotal"`
}

// Fare is the result of the base tiered calculation
type Fare struct {
	Total       int64               `json:"total"`
	Breakdown   []FareTierBreakdown `json:"breakdown"`
	DistanceKm  int                 `json:"distance_km"`
	VehicleType string              `json:"vehicle_type"`
	Multiplier  float64             `json:"multiplier"`
}

// QuoteRequest asks for a plain tiered fare
type QuoteRequest struct {
	DistanceKm  int    `json:"distance_km" validate:"required,gt=0"`
	VehicleType string `json:"vehicle_type,omitempty"`
}

// EstimateRequest asks for a dynamic fare with time and holiday adjustments
type EstimateRequest struct {
	DistanceKm   int    `json:"distance_km" validate:"required,gt=0"`
	VehicleType  string `json:"vehicle_type,omitempty"`
	PickupTime   string `json:"pickup_time,omitempty"`
	IsReturnTrip bool   `json:"is_return_trip,omitempty"`
}

// Estimate is the result of the dynamic calculation, rounded to 1000 VND
type Estimate struct {
	BaseFare          int64               `json:"base_fare"`
	VehicleMultiplier float64             `json:"vehicle_multiplier"`
	TimeMultiplier    float64             `json:"time_multiplier"`
	HolidaySurcharge  float64             `json:"holiday_surcharge"`
	ReturnDiscount    float64             `json:"return_discount"`
	FinalFare         int64               `json:"final_fare"`
	Breakdown         []FareTierBreakdown `json:"breakdown"`
	Notes             []string            `json:"notes,omitempty"`
}
