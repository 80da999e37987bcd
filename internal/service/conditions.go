package service

import (
	"fmt"
	"math"
	"strconv"
)

var conditionLabels = map[int]string{
	0:  "Clear Sky",
	1:  "Mostly Clear",
	2:  "Partly Cloudy",
	3:  "Cloudy",
	45: "Foggy",
	48: "Dense Fog",
	51: "Drizzle",
	61: "Light Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	71: "Light Snow",
	73: "Moderate Snow",
	75: "Heavy Snow",
	95: "Thunderstorm",
}

// ConditionLabel maps an Open-Meteo weather code to its display label.
func ConditionLabel(code int) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}
	return ConditionUnknown
}

// RoundTemperature rounds half-way values toward positive infinity, so -2.5 becomes -2.
func RoundTemperature(t float64) int {
	return int(math.Floor(t + 0.5))
}

func FormatTemperature(t float64) string {
	return strconv.Itoa(RoundTemperature(t))
}

// FormatRange renders the band of three degrees either side of t.
func FormatRange(t float64) string {
	return fmt.Sprintf("%d°C — %d°C", RoundTemperature(t-3), RoundTemperature(t+3))
}
