package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListStarsParams narrows the admin star listing; zero values are omitted
// from the query string.
type ListStarsParams struct {
	Page     int
	Limit    int
	SeasonID int
}

// CreateStarInput is the body for CreateStar.
type CreateStarInput struct {
	SeasonID         int      `json:"seasonId"`
	Name             string   `json:"name"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Description      *string  `json:"description,omitempty"`
	WeatherInfo      *string  `json:"weatherInfo,omitempty"`
	AgriculturalInfo []string `json:"agriculturalInfo,omitempty"`
	Tips             []string `json:"tips,omitempty"`
}

// UpdateStarInput carries optional fields for UpdateStar.
type UpdateStarInput struct {
	SeasonID         *int     `json:"seasonId,omitempty"`
	Name             *string  `json:"name,omitempty"`
	StartDate        *string  `json:"startDate,omitempty"`
	EndDate          *string  `json:"endDate,omitempty"`
	Description      *string  `json:"description,omitempty"`
	WeatherInfo      *string  `json:"weatherInfo,omitempty"`
	AgriculturalInfo []string `json:"agriculturalInfo,omitempty"`
	Tips             []string `json:"tips,omitempty"`
}

type rawStarPage struct {
	Stars      []rawStar `json:"stars"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

// ListStars fetches one page of stars; pagination metadata is returned
// exactly as the backend computed it.
func (c *Client) ListStars(ctx context.Context, params ListStarsParams) (StarPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.SeasonID > 0 {
		query.Set("seasonId", strconv.Itoa(params.SeasonID))
	}

	var raw rawStarPage
	if err := c.do(ctx, http.MethodGet, "/admin/stars", query, nil, &raw); err != nil {
		return StarPage{}, err
	}

	page := StarPage{
		Stars:      make([]Star, 0, len(raw.Stars)),
		Total:      raw.Total,
		Page:       raw.Page,
		Limit:      raw.Limit,
		TotalPages: raw.TotalPages,
	}
	for _, r := range raw.Stars {
		star, err := adaptStar(r, nil, nil)
		if err != nil {
			return StarPage{}, err
		}
		page.Stars = append(page.Stars, star)
	}
	return page, nil
}

func (c *Client) GetStar(ctx context.Context, id int) (Star, error) {
	var raw rawStar
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/stars/%d", id), nil, nil, &raw); err != nil {
		return Star{}, err
	}
	return adaptStar(raw, nil, nil)
}

func (c *Client) CreateStar(ctx context.Context, input CreateStarInput) (Star, error) {
	var raw rawStar
	if err := c.do(ctx, http.MethodPost, "/admin/stars", nil, input, &raw); err != nil {
		return Star{}, err
	}
	return adaptStar(raw, nil, nil)
}

func (c *Client) UpdateStar(ctx context.Context, id int, input UpdateStarInput) (Star, error) {
	var raw rawStar
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/stars/%d", id), nil, input, &raw); err != nil {
		return Star{}, err
	}
	return adaptStar(raw, nil, nil)
}

func (c *Client) DeleteStar(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/stars/%d", id), nil, nil, nil)
}

// GetCalendar fetches the public calendar: every season with its stars
// nested, each star stamped with the parent season's id and name.
func (c *Client) GetCalendar(ctx context.Context) ([]CalendarSeason, error) {
	var raw []rawCalendarSeason
	if err := c.do(ctx, http.MethodGet, "/stars/calendar", nil, nil, &raw); err != nil {
		return nil, err
	}

	out := make([]CalendarSeason, 0, len(raw))
	for _, r := range raw {
		season, err := adaptCalendarSeason(r)
		if err != nil {
			return nil, err
		}
		out = append(out, season)
	}
	return out, nil
}
