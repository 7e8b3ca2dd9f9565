package models

// CurrentWeather is the current conditions at the trip destination.
type CurrentWeather struct {
	Temp        int    `json:"temp"`      // °C
	FeelsLike   int    `json:"feelsLike"` // °C
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`  // %
	WindSpeed   int    `json:"windSpeed"` // km/h
}

// ForecastDay summarizes one upcoming day (today excluded).
type ForecastDay struct {
	Date        string `json:"date"` // YYYY-MM-DD
	DayName     string `json:"dayName"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Pop         int    `json:"pop"` // precipitation probability, %
}

// WeatherReport bundles current conditions with the daily forecast.
type WeatherReport struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
}
