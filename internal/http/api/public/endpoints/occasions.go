package endpoints

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/hijri"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/api/packets"
	"github.com/MahmoudAkram21/um-qura/internal/model"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

type OccasionsController struct {
	store db.Store
	cache redis.Cache
	now   func() time.Time
}

func newOccasionsController(store db.Store, cache redis.Cache, now func() time.Time) *OccasionsController {
	if now == nil {
		now = time.Now
	}
	return &OccasionsController{store: store, cache: cache, now: now}
}

// OccasionsModule mounts the public sectioned occasions view. now is
// injectable so tests can pin the Hijri date; pass nil for wall-clock time.
func OccasionsModule(store db.Store, cache redis.Cache, now func() time.Time) api.Module {
	ctl := newOccasionsController(store, cache, now)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/occasions", ctl.getSections)
	})
}

// GET /api/v1/occasions
func (oc *OccasionsController) getSections(ctx *gin.Context) (any, *api.APIError) {
	if cached, ok := oc.cache.Get(ctx.Request.Context(), redis.KeyOccasions); ok {
		return json.RawMessage(cached), nil
	}

	all, err := oc.store.ListAllOccasions()
	if err != nil {
		return nil, internalError(err)
	}

	out := sectionOccasions(all, hijri.FromTime(oc.now()))

	if payload, err := json.Marshal(out); err == nil {
		oc.cache.Set(ctx.Request.Context(), redis.KeyOccasions, string(payload), redis.DefaultTTL)
	} else {
		log.Error().Err(err).Msg("failed to marshal occasions for cache")
	}
	return out, nil
}

// sectionOccasions partitions occasions by relevance to the given Hijri date.
// Buckets overlap: an occasion landing today is also in currentMonth and year.
func sectionOccasions(all []model.Occasion, today hijri.Date) packets.OccasionsSectionsResponse {
	out := packets.OccasionsSectionsResponse{
		Today:        []packets.OccasionResponse{},
		CurrentMonth: []packets.OccasionResponse{},
		NextMonth:    []packets.OccasionResponse{},
		Year:         packets.NewOccasionResponses(all),
	}
	next := hijri.NextMonth(today.Month)

	for _, o := range all {
		resp := packets.NewOccasionResponse(o)
		if o.HijriMonth == today.Month && o.HijriDay == today.Day {
			out.Today = append(out.Today, resp)
		}
		if o.HijriMonth == today.Month {
			out.CurrentMonth = append(out.CurrentMonth, resp)
		}
		if o.HijriMonth == next {
			out.NextMonth = append(out.NextMonth, resp)
		}
	}
	return out
}
