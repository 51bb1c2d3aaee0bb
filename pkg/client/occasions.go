package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListParams paginates the admin occasion and prayer listings; zero values
// are omitted from the query string.
type ListParams struct {
	Page  int
	Limit int
}

func (p ListParams) query() url.Values {
	query := url.Values{}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	return query
}

// CreateOccasionInput is the body for CreateOccasion.
type CreateOccasionInput struct {
	HijriMonth  int     `json:"hijriMonth"`
	HijriDay    int     `json:"hijriDay"`
	Title       string  `json:"title"`
	PrayerTitle string  `json:"prayerTitle"`
	PrayerText  *string `json:"prayerText,omitempty"`
}

// UpdateOccasionInput carries optional fields for UpdateOccasion.
type UpdateOccasionInput struct {
	HijriMonth  *int    `json:"hijriMonth,omitempty"`
	HijriDay    *int    `json:"hijriDay,omitempty"`
	Title       *string `json:"title,omitempty"`
	PrayerTitle *string `json:"prayerTitle,omitempty"`
	PrayerText  *string `json:"prayerText,omitempty"`
}

type rawOccasionSections struct {
	Today        []rawOccasion `json:"today"`
	CurrentMonth []rawOccasion `json:"currentMonth"`
	NextMonth    []rawOccasion `json:"nextMonth"`
	Year         []rawOccasion `json:"year"`
}

type rawOccasionPage struct {
	Occasions  []rawOccasion `json:"occasions"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// GetOccasionsSections fetches the public four-way sectioned occasions view.
func (c *Client) GetOccasionsSections(ctx context.Context) (OccasionsSections, error) {
	var raw rawOccasionSections
	if err := c.do(ctx, http.MethodGet, "/occasions", nil, nil, &raw); err != nil {
		return OccasionsSections{}, err
	}

	var out OccasionsSections
	var err error
	if out.Today, err = adaptOccasions(raw.Today); err != nil {
		return OccasionsSections{}, err
	}
	if out.CurrentMonth, err = adaptOccasions(raw.CurrentMonth); err != nil {
		return OccasionsSections{}, err
	}
	if out.NextMonth, err = adaptOccasions(raw.NextMonth); err != nil {
		return OccasionsSections{}, err
	}
	if out.Year, err = adaptOccasions(raw.Year); err != nil {
		return OccasionsSections{}, err
	}
	return out, nil
}

func (c *Client) ListOccasions(ctx context.Context, params ListParams) (OccasionPage, error) {
	var raw rawOccasionPage
	if err := c.do(ctx, http.MethodGet, "/admin/occasions", params.query(), nil, &raw); err != nil {
		return OccasionPage{}, err
	}

	occasions, err := adaptOccasions(raw.Occasions)
	if err != nil {
		return OccasionPage{}, err
	}
	return OccasionPage{
		Occasions:  occasions,
		Total:      raw.Total,
		Page:       raw.Page,
		Limit:      raw.Limit,
		TotalPages: raw.TotalPages,
	}, nil
}

func (c *Client) GetOccasion(ctx context.Context, id int) (Occasion, error) {
	var raw rawOccasion
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/occasions/%d", id), nil, nil, &raw); err != nil {
		return Occasion{}, err
	}
	return adaptOccasion(raw)
}

func (c *Client) CreateOccasion(ctx context.Context, input CreateOccasionInput) (Occasion, error) {
	var raw rawOccasion
	if err := c.do(ctx, http.MethodPost, "/admin/occasions", nil, input, &raw); err != nil {
		return Occasion{}, err
	}
	return adaptOccasion(raw)
}

func (c *Client) UpdateOccasion(ctx context.Context, id int, input UpdateOccasionInput) (Occasion, error) {
	var raw rawOccasion
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/occasions/%d", id), nil, input, &raw); err != nil {
		return Occasion{}, err
	}
	return adaptOccasion(raw)
}

func (c *Client) DeleteOccasion(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/occasions/%d", id), nil, nil, nil)
}
