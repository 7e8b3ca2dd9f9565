// Package weather wraps the OpenWeather current-conditions and
// 5-day forecast endpoints for the trip destination.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/trip-planner-go/internal/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("weather: weather service not configured")

// Client calls the OpenWeather API for a fixed destination center.
type Client struct {
	apiKey     string
	baseURL    string
	lat, lng   float64
	httpClient *http.Client

	// now is swappable in tests for a stable "today"
	now func() time.Time
}

// NewClient creates a weather client for the given center coordinate.
func NewClient(apiKey string, lat, lng float64) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		lat:        lat,
		lng:        lng,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(apiKey string, lat, lng float64, baseURL string) *Client {
	c := NewClient(apiKey, lat, lng)
	c.baseURL = baseURL
	return c
}

type weatherEntry struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []weatherEntry `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
}

type forecastItem struct {
	DtTxt string `json:"dt_txt"` // "YYYY-MM-DD HH:MM:SS"
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []weatherEntry `json:"weather"`
	Pop     float64        `json:"pop"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

// Report fetches current conditions and the multi-day forecast
// concurrently and aggregates the 3-hourly forecast into daily
// summaries, excluding today.
func (c *Client) Report(ctx context.Context) (*models.WeatherReport, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var current currentResponse
	var forecast forecastResponse

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.get(ctx, "/weather", &current) })
	g.Go(func() error { return c.get(ctx, "/forecast", &forecast) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.WeatherReport{
		Current: models.CurrentWeather{
			Temp:      int(math.Round(current.Main.Temp)),
			FeelsLike: int(math.Round(current.Main.FeelsLike)),
			Humidity:  current.Main.Humidity,
			WindSpeed: int(math.Round(current.Wind.Speed * 3.6)), // m/s → km/h
		},
		Forecast: summarizeForecast(forecast.List, c.now().UTC().Format("2006-01-02")),
	}
	if len(current.Weather) > 0 {
		report.Current.Description = current.Weather[0].Description
		report.Current.Icon = current.Weather[0].Icon
	}
	return report, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", c.lat))
	q.Set("lon", fmt.Sprintf("%f", c.lng))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("weather returned status %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// maxForecastDays caps the daily forecast length.
const maxForecastDays = 5

// summarizeForecast collapses 3-hourly forecast items into one summary
// per day, skipping entries for today. High/low are the day's extreme
// temperatures; icon and description come from the middle entry (the
// midday slot for a full day); pop is the day's maximum.
func summarizeForecast(items []forecastItem, today string) []models.ForecastDay {
	type dayAgg struct {
		temps []float64
		icons []string
		descs []string
		pops  []float64
	}

	var order []string
	byDate := make(map[string]*dayAgg)

	for _, item := range items {
		date, _, ok := strings.Cut(item.DtTxt, " ")
		if !ok || date == today {
			continue
		}
		agg := byDate[date]
		if agg == nil {
			agg = &dayAgg{}
			byDate[date] = agg
			order = append(order, date)
		}
		agg.temps = append(agg.temps, item.Main.Temp)
		if len(item.Weather) > 0 {
			agg.icons = append(agg.icons, item.Weather[0].Icon)
			agg.descs = append(agg.descs, item.Weather[0].Description)
		}
		agg.pops = append(agg.pops, item.Pop)
	}

	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	days := make([]models.ForecastDay, 0, len(order))
	for _, date := range order {
		agg := byDate[date]
		day := models.ForecastDay{
			Date: date,
			High: int(math.Round(maxOf(agg.temps))),
			Low:  int(math.Round(minOf(agg.temps))),
			Pop:  int(math.Round(maxOf(agg.pops) * 100)),
		}
		if t, err := time.Parse("2006-01-02", date); err == nil {
			day.DayName = t.Format("Mon")
		}
		if n := len(agg.icons); n > 0 {
			day.Icon = agg.icons[n/2]
			day.Description = agg.descs[n/2]
		}
		days = append(days, day)
	}
	return days
}

func maxOf(vals []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(vals []float64) float64 {
	m := math.Inf(1)
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}
