package endpoints

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/api/packets"
	"github.com/MahmoudAkram21/um-qura/internal/model"
	"github.com/MahmoudAkram21/um-qura/internal/mqtt"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

type StarController struct {
	store    db.Store
	cache    redis.Cache
	notifier mqtt.Notifier
}

func newStarController(store db.Store, cache redis.Cache, notifier mqtt.Notifier) *StarController {
	return &StarController{store: store, cache: cache, notifier: notifier}
}

// StarModule mounts the authenticated /stars endpoints.
func StarModule(store db.Store, cache redis.Cache, notifier mqtt.Notifier) api.Module {
	ctl := newStarController(store, cache, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/stars", ctl.listStars)
		c.POST("/stars", ctl.createStar)
		c.GET("/stars/:id", ctl.getStar)
		c.PUT("/stars/:id", ctl.updateStar)
		c.DELETE("/stars/:id", ctl.deleteStar)
	})
}

func (s *StarController) invalidate(action string) {
	s.cache.Delete(context.Background(), redis.KeyCalendar)
	s.notifier.NotifyChanged("stars", action)
}

// GET /api/v1/admin/stars?page=&limit=&seasonId=
func (s *StarController) listStars(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	page, limit := parsePagination(ctx)

	var seasonID *int
	if raw := ctx.Query("seasonId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid seasonId"}
		}
		seasonID = &id
	}

	stars, total, err := s.store.ListStars(page, limit, seasonID)
	if err != nil {
		return nil, internalError(err)
	}

	out := packets.StarListResponse{
		Stars:      make([]packets.StarResponse, 0, len(stars)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}
	for _, star := range stars {
		out.Stars = append(out.Stars, packets.NewStarResponse(star))
	}
	return out, nil
}

// GET /api/v1/admin/stars/:id
func (s *StarController) getStar(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	star, err := s.store.GetStarByID(id)
	if err != nil {
		return nil, storeError(err, "star not found")
	}
	return packets.NewStarResponse(star), nil
}

// POST /api/v1/admin/stars
func (s *StarController) createStar(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	var request packets.CreateStarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.StartDate > request.EndDate {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "startDate must not be after endDate"}
	}
	if _, err := s.store.GetSeasonByID(request.SeasonID); err != nil {
		return nil, storeError(err, "season not found")
	}

	star, err := s.store.CreateStar(db.NewStar{
		SeasonID:         request.SeasonID,
		Name:             request.Name,
		StartDate:        request.StartDate,
		EndDate:          request.EndDate,
		Description:      request.Description,
		WeatherInfo:      request.WeatherInfo,
		AgriculturalInfo: request.AgriculturalInfo,
		Tips:             request.Tips,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create star")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create star"}
	}

	s.invalidate("created")
	return packets.NewStarResponse(star), nil
}

// PUT /api/v1/admin/stars/:id
func (s *StarController) updateStar(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateStarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	// a one-sided date change is validated against the stored counterpart
	if request.StartDate != nil || request.EndDate != nil {
		existing, err := s.store.GetStarByID(id)
		if err != nil {
			return nil, storeError(err, "star not found")
		}
		start, end := existing.StartDate, existing.EndDate
		if request.StartDate != nil {
			start = *request.StartDate
		}
		if request.EndDate != nil {
			end = *request.EndDate
		}
		if start > end {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "startDate must not be after endDate"}
		}
	}
	if request.SeasonID != nil {
		if _, err := s.store.GetSeasonByID(*request.SeasonID); err != nil {
			return nil, storeError(err, "season not found")
		}
	}

	err := s.store.UpdateStar(id, db.StarPatch{
		SeasonID:         request.SeasonID,
		Name:             request.Name,
		StartDate:        request.StartDate,
		EndDate:          request.EndDate,
		Description:      request.Description,
		WeatherInfo:      request.WeatherInfo,
		AgriculturalInfo: request.AgriculturalInfo,
		Tips:             request.Tips,
	})
	if err != nil {
		return nil, storeError(err, "star not found")
	}

	star, err := s.store.GetStarByID(id)
	if err != nil {
		return nil, storeError(err, "star not found")
	}

	s.invalidate("updated")
	return packets.NewStarResponse(star), nil
}

// DELETE /api/v1/admin/stars/:id
func (s *StarController) deleteStar(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := s.store.DeleteStar(id); err != nil {
		return nil, storeError(err, "star not found")
	}

	s.invalidate("deleted")
	return gin.H{"deleted": true}, nil
}
