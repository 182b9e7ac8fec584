package usecase

import "github.com/NicholasChen868/xedulichvogia/internal/pkg/models"

// Static tariff used when the pricing tables are empty or unreachable.
// Mirrors the seeded production data.
var defaultPricingTiers = []models.PricingTier{
	{MinKm: 1, MaxKm: 70, PricePerKm: 15000, Label: "1 - 70 km"},
	{MinKm: 71, MaxKm: 150, PricePerKm: 10000, Label: "70 - 150 km"},
	{MinKm: 151, MaxKm: 250, PricePerKm: 9000, Label: "150 - 250 km"},
	{MinKm: 251, MaxKm: 99999, PricePerKm: 8000, Label: "Tu 250 km"},
}

var defaultVehicleTypes = []models.VehicleType{
	{ID: "sedan-4", Name: "Xe 4 cho", Seats: 4, PriceMultiplier: 1.0},
	{ID: "suv-7", Name: "Xe 7 cho", Seats: 7, PriceMultiplier: 1.3},
	{ID: "van-16", Name: "Xe 16 cho", Seats: 16, PriceMultiplier: 1.8},
	{ID: "limousine-9", Name: "Limousine 9 cho", Seats: 9, PriceMultiplier: 2.2},
	{ID: "bus-29", Name: "Xe 29 cho", Seats: 29, PriceMultiplier: 2.5},
	{ID: "bus-45", Name: "Xe 45 cho", Seats: 45, PriceMultiplier: 3.0},
	{ID: "luxury", Name: "Xe hang sang", Seats: 4, PriceMultiplier: 3.5},
}

// Fixed-date Vietnamese public holidays (MM-DD)
var holidayDates = map[string]bool{
	"01-01": true, // New Year
	"04-30": true, // Reunification Day
	"05-01": true, // Labour Day
	"09-02": true, // National Day
}

// Lunar New Year is movable; explicit date ranges per year (inclusive)
type dateRange struct {
	start string // YYYY-MM-DD
	end   string
}

var tetRanges = []dateRange{
	{start: "2026-02-14", end: "2026-02-22"},
	{start: "2027-02-03", end: "2027-02-11"},
}

const (
	peakHourMultiplier  = 1.15
	lateNightMultiplier = 1.25
	holidaySurcharge    = 0.30
	tetSurcharge        = 0.50
	returnTripDiscount  = 0.15
)
