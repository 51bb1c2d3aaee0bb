package client

import (
	"context"
	"fmt"
	"net/http"
)

// CreatePrayerInput is the body for CreatePrayer.
type CreatePrayerInput struct {
	Text string `json:"text"`
}

// UpdatePrayerInput carries the optional fields for UpdatePrayer.
type UpdatePrayerInput struct {
	Text *string `json:"text,omitempty"`
}

type rawPrayerPage struct {
	Prayers    []rawPrayer `json:"prayers"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

func (c *Client) ListPrayers(ctx context.Context, params ListParams) (PrayerPage, error) {
	var raw rawPrayerPage
	if err := c.do(ctx, http.MethodGet, "/admin/prayers", params.query(), nil, &raw); err != nil {
		return PrayerPage{}, err
	}

	prayers := make([]Prayer, 0, len(raw.Prayers))
	for _, r := range raw.Prayers {
		prayer, err := adaptPrayer(r)
		if err != nil {
			return PrayerPage{}, err
		}
		prayers = append(prayers, prayer)
	}
	return PrayerPage{
		Prayers:    prayers,
		Total:      raw.Total,
		Page:       raw.Page,
		Limit:      raw.Limit,
		TotalPages: raw.TotalPages,
	}, nil
}

func (c *Client) GetPrayer(ctx context.Context, id int) (Prayer, error) {
	var raw rawPrayer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/prayers/%d", id), nil, nil, &raw); err != nil {
		return Prayer{}, err
	}
	return adaptPrayer(raw)
}

func (c *Client) CreatePrayer(ctx context.Context, input CreatePrayerInput) (Prayer, error) {
	var raw rawPrayer
	if err := c.do(ctx, http.MethodPost, "/admin/prayers", nil, input, &raw); err != nil {
		return Prayer{}, err
	}
	return adaptPrayer(raw)
}

func (c *Client) UpdatePrayer(ctx context.Context, id int, input UpdatePrayerInput) (Prayer, error) {
	var raw rawPrayer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/prayers/%d", id), nil, input, &raw); err != nil {
		return Prayer{}, err
	}
	return adaptPrayer(raw)
}

func (c *Client) DeletePrayer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/prayers/%d", id), nil, nil, nil)
}
