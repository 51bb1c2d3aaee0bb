package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/api/packets"
	"github.com/MahmoudAkram21/um-qura/internal/model"
	"github.com/MahmoudAkram21/um-qura/internal/mqtt"
)

type PrayerController struct {
	store    db.Store
	notifier mqtt.Notifier
}

func newPrayerController(store db.Store, notifier mqtt.Notifier) *PrayerController {
	return &PrayerController{store: store, notifier: notifier}
}

// PrayerModule mounts the authenticated /prayers endpoints. Prayers feed no
// cached public view, so there is nothing to invalidate.
func PrayerModule(store db.Store, notifier mqtt.Notifier) api.Module {
	ctl := newPrayerController(store, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayers", ctl.listPrayers)
		c.POST("/prayers", ctl.createPrayer)
		c.GET("/prayers/:id", ctl.getPrayer)
		c.PUT("/prayers/:id", ctl.updatePrayer)
		c.DELETE("/prayers/:id", ctl.deletePrayer)
	})
}

// GET /api/v1/admin/prayers?page=&limit=
func (p *PrayerController) listPrayers(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	page, limit := parsePagination(ctx)

	prayers, total, err := p.store.ListPrayers(page, limit)
	if err != nil {
		return nil, internalError(err)
	}

	out := packets.PrayerListResponse{
		Prayers:    make([]packets.PrayerResponse, 0, len(prayers)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}
	for _, prayer := range prayers {
		out.Prayers = append(out.Prayers, packets.NewPrayerResponse(prayer))
	}
	return out, nil
}

// GET /api/v1/admin/prayers/:id
func (p *PrayerController) getPrayer(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	prayer, err := p.store.GetPrayerByID(id)
	if err != nil {
		return nil, storeError(err, "prayer not found")
	}
	return packets.NewPrayerResponse(prayer), nil
}

// POST /api/v1/admin/prayers
func (p *PrayerController) createPrayer(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	var request packets.CreatePrayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	prayer, err := p.store.CreatePrayer(request.Text)
	if err != nil {
		log.Error().Err(err).Msg("failed to create prayer")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create prayer"}
	}

	p.notifier.NotifyChanged("prayers", "created")
	return packets.NewPrayerResponse(prayer), nil
}

// PUT /api/v1/admin/prayers/:id
func (p *PrayerController) updatePrayer(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdatePrayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.UpdatePrayer(id, request.Text); err != nil {
		return nil, storeError(err, "prayer not found")
	}

	prayer, err := p.store.GetPrayerByID(id)
	if err != nil {
		return nil, storeError(err, "prayer not found")
	}

	p.notifier.NotifyChanged("prayers", "updated")
	return packets.NewPrayerResponse(prayer), nil
}

// DELETE /api/v1/admin/prayers/:id
func (p *PrayerController) deletePrayer(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := p.store.DeletePrayer(id); err != nil {
		return nil, storeError(err, "prayer not found")
	}

	p.notifier.NotifyChanged("prayers", "deleted")
	return gin.H{"deleted": true}, nil
}
