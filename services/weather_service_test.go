package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testWeatherService(apiKey, baseURL string) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Second},
	}
}

func TestTemperatureParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Москва" {
			t.Errorf("query city = %q, want Москва", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units = %q, want metric", got)
		}
		w.Write([]byte(`{"main":{"temp":27.3}}`))
	}))
	defer srv.Close()

	got := testWeatherService("key", srv.URL).Temperature(context.Background(), "Москва")
	if got != 27.3 {
		t.Fatalf("Temperature() = %v, want 27.3", got)
	}
}

func TestTemperatureFallsBackWithoutAPIKey(t *testing.T) {
	got := testWeatherService("", "http://127.0.0.1:0").Temperature(context.Background(), "Москва")
	if got != fallbackTemperatureC {
		t.Fatalf("Temperature() without key = %v, want %v", got, fallbackTemperatureC)
	}
}

func TestTemperatureFallsBackOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	got := testWeatherService("key", srv.URL).Temperature(context.Background(), "Нарния")
	if got != fallbackTemperatureC {
		t.Fatalf("Temperature() on 404 = %v, want %v", got, fallbackTemperatureC)
	}
}

func TestTemperatureFallsBackOnNetworkError(t *testing.T) {
	got := testWeatherService("key", "http://127.0.0.1:1").Temperature(context.Background(), "Москва")
	if got != fallbackTemperatureC {
		t.Fatalf("Temperature() on connect error = %v, want %v", got, fallbackTemperatureC)
	}
}

func TestTemperatureFallsBackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	got := testWeatherService("key", srv.URL).Temperature(context.Background(), "Москва")
	if got != fallbackTemperatureC {
		t.Fatalf("Temperature() on bad JSON = %v, want %v", got, fallbackTemperatureC)
	}
}
