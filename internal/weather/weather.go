// Package weather defines the shared weather record and its versioned
// binary wire format. Records travel between processes as a
// [version][size][payload] frame so newer writers stay readable by
// older readers: unknown trailing fields are skipped by size.
package weather

import "time"

// #region types

// Temperature units.
const (
	UnitCelsius    = 1
	UnitFahrenheit = 2
)

// Wind speed units.
const (
	UnitKph = 1
	UnitMph = 2
)

// Condition codes, matching the fixed vocabulary of the wire format.
const (
	ConditionSunny         = 32
	ConditionCloudy        = 26
	ConditionPartlyCloudy  = 30
	ConditionShowers       = 11
	ConditionThunderstorms = 4
	ConditionSnow          = 16
	ConditionFoggy         = 20
	ConditionWindy         = 24
	ConditionNotAvailable  = 3200
)

// DayForecast is one day of outlook inside an Info record.
type DayForecast struct {
	Low           float64
	High          float64
	Condition     string
	ConditionCode int
}

// Info is a complete weather observation for a city. The zero value is
// not valid on the wire; use New to apply defaults.
type Info struct {
	CityID          string
	City            string
	Condition       string
	ConditionCode   int
	Temperature     float64
	TemperatureUnit int
	Humidity        float64
	Wind            float64
	WindDirection   float64
	WindUnit        int
	Forecasts       []DayForecast
	UpdatedAt       time.Time
}

// New returns an Info with the given observation and sane defaults for
// the rest: condition not-available, metric units, timestamp now.
func New(city string, temperature float64, unit int) Info {
	return Info{
		City:            city,
		ConditionCode:   ConditionNotAvailable,
		Temperature:     temperature,
		TemperatureUnit: unit,
		WindUnit:        UnitKph,
		UpdatedAt:       time.Now(),
	}
}

// #endregion types
