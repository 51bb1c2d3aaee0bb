package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
	"github.com/MahmoudAkram21/um-qura/internal/http/api/packets"
	"github.com/MahmoudAkram21/um-qura/internal/http/middleware"
	"github.com/MahmoudAkram21/um-qura/internal/model"
)

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

// AuthPublicModule mounts the login endpoint (no token required).
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/login", ctl.adminLogin)
	})
}

// AuthSessionModule mounts the profile endpoint (JWT required).
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
	})
}

// POST /api/v1/auth/login
func (a *AccountManager) adminLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	admin, err := a.store.GetAdminByEmail(request.Email)
	if err != nil || admin == nil || !middleware.CheckPassword(admin.HashedPassword, request.Password) {
		log.Warn().Str("email", request.Email).Msg("failed login attempt")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(admin.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return packets.LoginResponse{
		Token: token,
		Admin: packets.AdminProfile{ID: admin.ID, Email: admin.Email, Name: admin.Name},
	}, nil
}

// GET /api/v1/admin/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, admin *model.Admin) (any, *api.APIError) {
	return packets.AdminProfile{ID: admin.ID, Email: admin.Email, Name: admin.Name}, nil
}
