package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/api/packets"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

type CalendarController struct {
	store db.Store
	cache redis.Cache
}

func newCalendarController(store db.Store, cache redis.Cache) *CalendarController {
	return &CalendarController{store: store, cache: cache}
}

// CalendarModule mounts the public calendar view: every season with its stars
// nested, no auth required.
func CalendarModule(store db.Store, cache redis.Cache) api.Module {
	ctl := newCalendarController(store, cache)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/stars/calendar", ctl.getCalendar)
	})
}

func internalError(err error) *api.APIError {
	log.Error().Err(err).Msg("store operation failed")
	return &api.APIError{Code: http.StatusInternalServerError, Message: "internal error"}
}

// GET /api/v1/stars/calendar
func (cc *CalendarController) getCalendar(ctx *gin.Context) (any, *api.APIError) {
	if cached, ok := cc.cache.Get(ctx.Request.Context(), redis.KeyCalendar); ok {
		return json.RawMessage(cached), nil
	}

	seasons, err := cc.store.ListSeasons()
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]packets.CalendarSeasonResponse, 0, len(seasons))
	for _, season := range seasons {
		stars, err := cc.store.ListStarsBySeason(season.ID)
		if err != nil {
			return nil, internalError(err)
		}
		out = append(out, packets.NewCalendarSeasonResponse(season, stars))
	}

	if payload, err := json.Marshal(out); err == nil {
		cc.cache.Set(ctx.Request.Context(), redis.KeyCalendar, string(payload), redis.DefaultTTL)
	} else {
		log.Error().Err(err).Msg("failed to marshal calendar for cache")
	}
	return out, nil
}
