package endpoints

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/api/packets"
	"github.com/MahmoudAkram21/um-qura/internal/model"
	"github.com/MahmoudAkram21/um-qura/internal/mqtt"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

type SeasonController struct {
	store    db.Store
	cache    redis.Cache
	notifier mqtt.Notifier
}

func newSeasonController(store db.Store, cache redis.Cache, notifier mqtt.Notifier) *SeasonController {
	return &SeasonController{store: store, cache: cache, notifier: notifier}
}

// SeasonModule mounts the authenticated /seasons endpoints.
func SeasonModule(store db.Store, cache redis.Cache, notifier mqtt.Notifier) api.Module {
	ctl := newSeasonController(store, cache, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/seasons", ctl.listSeasons)
		c.POST("/seasons", ctl.createSeason)
		c.GET("/seasons/:id", ctl.getSeason)
		c.PUT("/seasons/:id", ctl.updateSeason)
		c.DELETE("/seasons/:id", ctl.deleteSeason)
	})
}

// seasons and stars feed the public calendar view, so any mutation drops the
// cached payload and announces the change.
func (s *SeasonController) invalidate(action string) {
	s.cache.Delete(context.Background(), redis.KeyCalendar)
	s.notifier.NotifyChanged("seasons", action)
}

// GET /api/v1/admin/seasons
func (s *SeasonController) listSeasons(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	all, err := s.store.ListSeasons()
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]packets.SeasonResponse, 0, len(all))
	for _, season := range all {
		out = append(out, packets.NewSeasonResponse(season))
	}
	return out, nil
}

// GET /api/v1/admin/seasons/:id
func (s *SeasonController) getSeason(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	season, err := s.store.GetSeasonByID(id)
	if err != nil {
		return nil, storeError(err, "season not found")
	}
	return packets.NewSeasonResponse(season), nil
}

// POST /api/v1/admin/seasons
func (s *SeasonController) createSeason(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	var request packets.CreateSeasonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	season, err := s.store.CreateSeason(request.Name, request.ColorHex, request.IconName, request.Duration, request.SortOrder)
	if err != nil {
		log.Error().Err(err).Msg("failed to create season")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create season"}
	}

	s.invalidate("created")
	return packets.NewSeasonResponse(season), nil
}

// PUT /api/v1/admin/seasons/:id
func (s *SeasonController) updateSeason(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateSeasonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.UpdateSeason(id, request.Name, request.ColorHex, request.IconName, request.Duration, request.SortOrder); err != nil {
		return nil, storeError(err, "season not found")
	}

	season, err := s.store.GetSeasonByID(id)
	if err != nil {
		return nil, storeError(err, "season not found")
	}

	s.invalidate("updated")
	return packets.NewSeasonResponse(season), nil
}

// DELETE /api/v1/admin/seasons/:id
func (s *SeasonController) deleteSeason(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := s.store.DeleteSeason(id); err != nil {
		return nil, storeError(err, "season not found")
	}

	s.invalidate("deleted")
	return gin.H{"deleted": true}, nil
}
