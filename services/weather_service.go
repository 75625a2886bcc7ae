package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// fallbackTemperatureC stands in whenever OpenWeatherMap cannot answer.
const fallbackTemperatureC = 20.0

// WeatherService fetches the current temperature for a city from the
// OpenWeatherMap API.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Temperature returns the current temperature in °C. It never fails outward:
// a missing key, network error, non-200 status or a bad payload is logged
// and replaced by the fallback value.
func (s *WeatherService) Temperature(ctx context.Context, city string) float64 {
	if s.apiKey == "" {
		return fallbackTemperatureC
	}

	u := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		s.baseURL, url.QueryEscape(city), s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("weather: failed to build request: %v", err)
		return fallbackTemperatureC
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("weather: failed to call OpenWeatherMap: %v", err)
		return fallbackTemperatureC
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("weather: failed to read response: %v", err)
		return fallbackTemperatureC
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("weather: OpenWeatherMap error %d: %s", resp.StatusCode, string(body))
		return fallbackTemperatureC
	}

	var wr weatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		log.Printf("weather: failed to parse JSON: %v", err)
		return fallbackTemperatureC
	}
	return wr.Main.Temp
}
