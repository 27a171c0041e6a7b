// Package catalog implements the remote recipe catalog over TheMealDB
// public API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

type MealDBClient struct {
	baseURL string
	client  *http.Client
}

func NewMealDBClient(baseURL string) *MealDBClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MealDBClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// mealDTO mirrors TheMealDB's wire format. Only the fields the storefront
// uses are decoded.
type mealDTO struct {
	IDMeal          string `json:"idMeal"`
	StrMeal         string `json:"strMeal"`
	StrMealThumb    string `json:"strMealThumb"`
	StrCategory     string `json:"strCategory"`
	StrArea         string `json:"strArea"`
	StrInstructions string `json:"strInstructions"`
	StrYoutube      string `json:"strYoutube"`
}

// mealsResponse wraps every endpoint's payload. A null meals array is the
// API's way of saying "no match" and is not an error.
type mealsResponse struct {
	Meals []mealDTO `json:"meals"`
}

func (c *MealDBClient) fetch(ctx context.Context, path string, query url.Values) (*mealsResponse, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	var out mealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &out, nil
}

func (c *MealDBClient) ListCategories(ctx context.Context) ([]string, error) {
	resp, err := c.fetch(ctx, "/list.php", url.Values{"c": {"list"}})
	if err != nil {
		return nil, err
	}
	cats := make([]string, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		cats = append(cats, m.StrCategory)
	}
	sort.Strings(cats)
	return cats, nil
}

func (c *MealDBClient) FilterByCategory(ctx context.Context, category string) ([]domain.MealSummary, error) {
	resp, err := c.fetch(ctx, "/filter.php", url.Values{"c": {category}})
	if err != nil {
		return nil, err
	}
	return toSummaries(resp.Meals), nil
}

func (c *MealDBClient) SearchByName(ctx context.Context, query string) ([]domain.MealSummary, error) {
	resp, err := c.fetch(ctx, "/search.php", url.Values{"s": {query}})
	if err != nil {
		return nil, err
	}
	return toSummaries(resp.Meals), nil
}

func (c *MealDBClient) GetDetails(ctx context.Context, id string) (*domain.Meal, error) {
	resp, err := c.fetch(ctx, "/lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, nil
	}
	m := resp.Meals[0]
	return &domain.Meal{
		ID:           m.IDMeal,
		Name:         m.StrMeal,
		Thumb:        m.StrMealThumb,
		Category:     m.StrCategory,
		Area:         m.StrArea,
		Instructions: m.StrInstructions,
		Youtube:      m.StrYoutube,
	}, nil
}

func toSummaries(meals []mealDTO) []domain.MealSummary {
	out := make([]domain.MealSummary, 0, len(meals))
	for _, m := range meals {
		out = append(out, domain.MealSummary{
			ID:    m.IDMeal,
			Name:  m.StrMeal,
			Thumb: m.StrMealThumb,
		})
	}
	return out
}
