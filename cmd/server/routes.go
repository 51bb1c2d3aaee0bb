package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	adminapi "github.com/MahmoudAkram21/um-qura/internal/http/api/admin/endpoints"
	publicapi "github.com/MahmoudAkram21/um-qura/internal/http/api/public/endpoints"
	"github.com/MahmoudAkram21/um-qura/internal/mqtt"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, cache redis.Cache, notifier mqtt.Notifier) {
	// the dashboard SPA is served from another origin
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/v1",
		Auth:   false,
	},
		adminapi.AuthPublicModule(env.SecretKey, store),
		publicapi.CalendarModule(store, cache),
		publicapi.OccasionsModule(store, cache, nil),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/v1/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.SeasonModule(store, cache, notifier),
		adminapi.StarModule(store, cache, notifier),
		adminapi.OccasionModule(store, cache, notifier),
		adminapi.PrayerModule(store, notifier),
		adminapi.AuthSessionModule(env.SecretKey, store),
	)
}
