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

	"github.com/VShilovich/fitness-bot/models"
)

// FoodService resolves a product name to its calorie density via the
// Spoonacular API. The lookup is a two-step protocol: search for the best
// matching ingredient id, then fetch its nutrient breakdown for 100 grams.
// Only the combined result or ErrFoodNotFound is exposed to callers.
type FoodService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFoodService(apiKey string) *FoodService {
	return &FoodService{
		apiKey:  apiKey,
		baseURL: "https://api.spoonacular.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type ingredientSearchResponse struct {
	Results []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"results"`
}

type ingredientInfoResponse struct {
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// Lookup finds the product and its calories per 100 g. Every failure mode —
// unknown product, missing API key, network or API error — collapses to
// ErrFoodNotFound: there is no safe default calorie density. A response
// without a "Calories" nutrient yields 0, which callers must treat as
// unknown and reject.
func (s *FoodService) Lookup(ctx context.Context, query string) (models.FoodInfo, error) {
	if s.apiKey == "" {
		log.Println("food: SPOONACULAR_API_KEY is not set")
		return models.FoodInfo{}, ErrFoodNotFound
	}

	id, name, err := s.searchIngredient(ctx, query)
	if err != nil {
		log.Printf("food: search %q: %v", query, err)
		return models.FoodInfo{}, ErrFoodNotFound
	}

	calories, err := s.caloriesPer100g(ctx, id)
	if err != nil {
		log.Printf("food: nutrient info for %q (id %d): %v", name, id, err)
		return models.FoodInfo{}, ErrFoodNotFound
	}

	return models.FoodInfo{Name: name, CaloriesPer100g: calories}, nil
}

func (s *FoodService) searchIngredient(ctx context.Context, query string) (int, string, error) {
	u := fmt.Sprintf("%s/food/ingredients/search?query=%s&number=1&apiKey=%s",
		s.baseURL, url.QueryEscape(query), s.apiKey)

	body, err := s.get(ctx, u)
	if err != nil {
		return 0, "", err
	}

	var sr ingredientSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return 0, "", fmt.Errorf("failed to parse search JSON: %w", err)
	}
	if len(sr.Results) == 0 {
		return 0, "", fmt.Errorf("no results")
	}
	return sr.Results[0].ID, sr.Results[0].Name, nil
}

func (s *FoodService) caloriesPer100g(ctx context.Context, id int) (float64, error) {
	u := fmt.Sprintf("%s/food/ingredients/%d/information?amount=100&unit=grams&apiKey=%s",
		s.baseURL, id, s.apiKey)

	body, err := s.get(ctx, u)
	if err != nil {
		return 0, err
	}

	var ir ingredientInfoResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return 0, fmt.Errorf("failed to parse information JSON: %w", err)
	}

	for _, n := range ir.Nutrition.Nutrients {
		if n.Name == "Calories" {
			return n.Amount, nil
		}
	}
	return 0, nil
}

func (s *FoodService) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
