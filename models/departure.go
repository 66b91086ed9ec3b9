// departure.go - Departure cities shown in the navigation

package models

// Departure is a city tours leave from. Code is the URL key stored on Tour.Departure.
type Departure struct {
	Code string
	Name string // i18n key of the display name
}

// Departures lists the known departure cities in navigation order.
var Departures = []Departure{
	{Code: "kyiv", Name: "departure.kyiv"},
	{Code: "lviv", Name: "departure.lviv"},
	{Code: "odesa", Name: "departure.odesa"},
	{Code: "kharkiv", Name: "departure.kharkiv"},
	{Code: "dnipro", Name: "departure.dnipro"},
}

// LookupDeparture returns the departure with the given code.
func LookupDeparture(code string) (Departure, bool) {
	for _, d := range Departures {
		if d.Code == code {
			return d, true
		}
	}
	return Departure{}, false
}
