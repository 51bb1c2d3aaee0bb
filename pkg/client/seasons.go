package client

import (
	"context"
	"fmt"
	"net/http"
)

// Seasons are the one resource family whose wire shape already matches the
// domain shape, so these operations decode directly.

// CreateSeasonInput is the body for CreateSeason.
type CreateSeasonInput struct {
	Name      string `json:"name"`
	ColorHex  string `json:"colorHex"`
	IconName  string `json:"iconName"`
	Duration  string `json:"duration"`
	SortOrder int    `json:"sortOrder"`
}

// UpdateSeasonInput carries optional fields for UpdateSeason; nil fields are
// left unchanged.
type UpdateSeasonInput struct {
	Name      *string `json:"name,omitempty"`
	ColorHex  *string `json:"colorHex,omitempty"`
	IconName  *string `json:"iconName,omitempty"`
	Duration  *string `json:"duration,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

func (c *Client) ListSeasons(ctx context.Context) ([]Season, error) {
	var seasons []Season
	err := c.do(ctx, http.MethodGet, "/admin/seasons", nil, nil, &seasons)
	return seasons, err
}

func (c *Client) GetSeason(ctx context.Context, id int) (Season, error) {
	var season Season
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/seasons/%d", id), nil, nil, &season)
	return season, err
}

func (c *Client) CreateSeason(ctx context.Context, input CreateSeasonInput) (Season, error) {
	var season Season
	err := c.do(ctx, http.MethodPost, "/admin/seasons", nil, input, &season)
	return season, err
}

func (c *Client) UpdateSeason(ctx context.Context, id int, input UpdateSeasonInput) (Season, error) {
	var season Season
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/seasons/%d", id), nil, input, &season)
	return season, err
}

func (c *Client) DeleteSeason(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/seasons/%d", id), nil, nil, nil)
}
