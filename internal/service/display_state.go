package service

const (
	PlaceFetching         = "Fetching location..."
	TemperaturePending    = "--"
	ConditionLoading      = "Loading..."
	RangePending          = "--°C — --°C"
	PlacePermissionDenied = "Location permission denied"
	PlaceLocationError    = "Location error"
	PlaceUnknown          = "Unknown Location"
	PlaceLookupError      = "City name error"
	ConditionUnavailable  = "Weather data unavailable"
	ConditionWeatherError = "Weather error"
	ConditionUnknown      = "Unknown Weather"
)

// DisplayState is what the home screen renders. Every field holds either
// resolved data or a short placeholder.
type DisplayState struct {
	Place       string `json:"place"`
	Temperature string `json:"temperatureCelsius"`
	Condition   string `json:"conditionLabel"`
	Range       string `json:"displayRange"`
}

func InitialDisplayState() DisplayState {
	return DisplayState{
		Place:       PlaceFetching,
		Temperature: TemperaturePending,
		Condition:   ConditionLoading,
		Range:       RangePending,
	}
}

// Update carries the fields owned by one completion. Nil fields are left alone.
type Update struct {
	Place       *string
	Temperature *string
	Condition   *string
	Range       *string
}

func (s DisplayState) Merge(u Update) DisplayState {
	if u.Place != nil {
		s.Place = *u.Place
	}
	if u.Temperature != nil {
		s.Temperature = *u.Temperature
	}
	if u.Condition != nil {
		s.Condition = *u.Condition
	}
	if u.Range != nil {
		s.Range = *u.Range
	}
	return s
}

func placeUpdate(place string) Update {
	return Update{Place: &place}
}

func conditionUpdate(condition string) Update {
	return Update{Condition: &condition}
}

func weatherUpdate(temperature float64, code int) Update {
	t := FormatTemperature(temperature)
	c := ConditionLabel(code)
	r := FormatRange(temperature)
	return Update{Temperature: &t, Condition: &c, Range: &r}
}
