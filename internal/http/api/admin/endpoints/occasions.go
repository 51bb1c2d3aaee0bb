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

type OccasionController struct {
	store    db.Store
	cache    redis.Cache
	notifier mqtt.Notifier
}

func newOccasionController(store db.Store, cache redis.Cache, notifier mqtt.Notifier) *OccasionController {
	return &OccasionController{store: store, cache: cache, notifier: notifier}
}

// OccasionModule mounts the authenticated /occasions endpoints.
func OccasionModule(store db.Store, cache redis.Cache, notifier mqtt.Notifier) api.Module {
	ctl := newOccasionController(store, cache, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/occasions", ctl.listOccasions)
		c.POST("/occasions", ctl.createOccasion)
		c.GET("/occasions/:id", ctl.getOccasion)
		c.PUT("/occasions/:id", ctl.updateOccasion)
		c.DELETE("/occasions/:id", ctl.deleteOccasion)
	})
}

func (o *OccasionController) invalidate(action string) {
	o.cache.Delete(context.Background(), redis.KeyOccasions)
	o.notifier.NotifyChanged("occasions", action)
}

// GET /api/v1/admin/occasions?page=&limit=
func (o *OccasionController) listOccasions(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	page, limit := parsePagination(ctx)

	occasions, total, err := o.store.ListOccasions(page, limit)
	if err != nil {
		return nil, internalError(err)
	}

	return packets.OccasionListResponse{
		Occasions:  packets.NewOccasionResponses(occasions),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// GET /api/v1/admin/occasions/:id
func (o *OccasionController) getOccasion(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	occasion, err := o.store.GetOccasionByID(id)
	if err != nil {
		return nil, storeError(err, "occasion not found")
	}
	return packets.NewOccasionResponse(occasion), nil
}

// POST /api/v1/admin/occasions
func (o *OccasionController) createOccasion(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	var request packets.CreateOccasionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	occasion, err := o.store.CreateOccasion(db.NewOccasion{
		HijriMonth:  request.HijriMonth,
		HijriDay:    request.HijriDay,
		Title:       request.Title,
		PrayerTitle: request.PrayerTitle,
		PrayerText:  request.PrayerText,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create occasion")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create occasion"}
	}

	o.invalidate("created")
	return packets.NewOccasionResponse(occasion), nil
}

// PUT /api/v1/admin/occasions/:id
func (o *OccasionController) updateOccasion(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateOccasionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := o.store.UpdateOccasion(id, db.OccasionPatch{
		HijriMonth:  request.HijriMonth,
		HijriDay:    request.HijriDay,
		Title:       request.Title,
		PrayerTitle: request.PrayerTitle,
		PrayerText:  request.PrayerText,
	})
	if err != nil {
		return nil, storeError(err, "occasion not found")
	}

	occasion, err := o.store.GetOccasionByID(id)
	if err != nil {
		return nil, storeError(err, "occasion not found")
	}

	o.invalidate("updated")
	return packets.NewOccasionResponse(occasion), nil
}

// DELETE /api/v1/admin/occasions/:id
func (o *OccasionController) deleteOccasion(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := o.store.DeleteOccasion(id); err != nil {
		return nil, storeError(err, "occasion not found")
	}

	o.invalidate("deleted")
	return gin.H{"deleted": true}, nil
}
