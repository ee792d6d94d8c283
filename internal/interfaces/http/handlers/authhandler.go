// Package handlers binds HTTP requests to the application usecases.
package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wordnest/internal/application/user/usecases"
	"wordnest/internal/domain/user"
	"wordnest/internal/interfaces/http/middleware"
	"wordnest/internal/shared/config"
	"wordnest/internal/shared/constants"
	"wordnest/internal/shared/logger"
	"wordnest/internal/shared/utils"
)

type AuthHandler struct {
	registerUC       *usecases.RegisterWithPasswordUseCase
	loginUC          *usecases.LoginWithPasswordUseCase
	verifyEmailUC    *usecases.VerifyEmailUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	initiateOAuthUC  *usecases.InitiateOAuthUseCase
	callbackUC       *usecases.HandleOAuthCallbackUseCase
	unlinkUC         *usecases.UnlinkProviderUseCase
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase

	cookieCfg      config.CookieConfig
	sessionSeconds int
	frontendURL    string
	logger         logger.Interface
}

type AuthHandlerConfig struct {
	RegisterUC       *usecases.RegisterWithPasswordUseCase
	LoginUC          *usecases.LoginWithPasswordUseCase
	VerifyEmailUC    *usecases.VerifyEmailUseCase
	ChangePasswordUC *usecases.ChangePasswordUseCase
	InitiateOAuthUC  *usecases.InitiateOAuthUseCase
	CallbackUC       *usecases.HandleOAuthCallbackUseCase
	UnlinkUC         *usecases.UnlinkProviderUseCase
	GetProfileUC     *usecases.GetProfileUseCase
	UpdateProfileUC  *usecases.UpdateProfileUseCase

	CookieCfg      config.CookieConfig
	SessionSeconds int
	// FrontendURL is where OAuth callbacks land after the session is set.
	FrontendURL string
	Logger      logger.Interface
}

func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		registerUC:       cfg.RegisterUC,
		loginUC:          cfg.LoginUC,
		verifyEmailUC:    cfg.VerifyEmailUC,
		changePasswordUC: cfg.ChangePasswordUC,
		initiateOAuthUC:  cfg.InitiateOAuthUC,
		callbackUC:       cfg.CallbackUC,
		unlinkUC:         cfg.UnlinkUC,
		getProfileUC:     cfg.GetProfileUC,
		updateProfileUC:  cfg.UpdateProfileUC,
		cookieCfg:        cfg.CookieCfg,
		sessionSeconds:   cfg.SessionSeconds,
		frontendURL:      cfg.FrontendURL,
		logger:           cfg.Logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Name     string `json:"name" binding:"required" validate:"required,min=1,max=100"`
	Password string `json:"password" binding:"required" validate:"required,min=8,max=100"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieCfg, result.SessionToken, h.sessionSeconds)
	utils.SuccessResponse(c, http.StatusCreated, "registered", userPayload(result.User, nil))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieCfg, result.SessionToken, h.sessionSeconds)
	utils.SuccessResponse(c, http.StatusOK, "logged in", userPayload(result.User, nil))
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieCfg)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var body struct {
			Token string `json:"token"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			token = body.Token
		}
	}

	if err := h.verifyEmailUC.Execute(c.Request.Context(), usecases.VerifyEmailCommand{Token: token}); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "email verified", nil)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          middleware.UserID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "password updated", nil)
}

// InitiateOAuth starts the provider round trip and redirects the browser
// to the provider's consent page.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	provider := c.Param("provider")
	mode := c.DefaultQuery("mode", constants.StateModeSignIn)

	cmd := usecases.InitiateOAuthCommand{
		Provider: provider,
		Mode:     mode,
		Redirect: sanitizeRedirect(c.Query("redirect")),
	}
	if mode == constants.StateModeLink {
		userID := middleware.UserID(c)
		if userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "sign in before linking a provider")
			return
		}
		cmd.UserID = userID
	}

	result, err := h.initiateOAuthUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// HandleOAuthCallback completes the round trip, sets the session cookie,
// and sends the browser back to the frontend.
func (h *AuthHandler) HandleOAuthCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("oauth provider returned error", "error", errParam)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendRedirect("", "oauth_failed"))
		return
	}

	result, err := h.callbackUC.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		Provider: c.Param("provider"),
		Code:     c.Query("code"),
		State:    c.Query("state"),
	})
	if err != nil {
		h.logger.Warnw("oauth callback failed", "error", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendRedirect("", "oauth_failed"))
		return
	}

	utils.SetSessionCookie(c, h.cookieCfg, result.SessionToken, h.sessionSeconds)
	c.Redirect(http.StatusTemporaryRedirect, h.frontendRedirect(result.Redirect, ""))
}

type unlinkRequest struct {
	Provider string `json:"provider" binding:"required"`
}

func (h *AuthHandler) UnlinkProvider(c *gin.Context) {
	var req unlinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.unlinkUC.Execute(c.Request.Context(), usecases.UnlinkProviderCommand{
		UserID:   middleware.UserID(c),
		Provider: req.Provider,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "provider unlinked", nil)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", userPayload(result.User, result.LinkedProviders))
}

type updateProfileRequest struct {
	Name      string `json:"name" binding:"required" validate:"required,min=1,max=100"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,max=500"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	updated, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:    middleware.UserID(c),
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "profile updated", userPayload(updated, nil))
}

func (h *AuthHandler) frontendRedirect(path, errCode string) string {
	target := h.frontendURL
	if errCode != "" {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		return target + sep + "error=" + url.QueryEscape(errCode)
	}
	if path != "" {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		return target + sep + "redirect=" + url.QueryEscape(path)
	}
	return target
}

// sanitizeRedirect keeps post-login redirects on-site. Absolute URLs and
// protocol-relative paths are dropped.
func sanitizeRedirect(redirect string) string {
	if redirect == "" || !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		return ""
	}
	return redirect
}

func userPayload(u *user.User, linked []*user.OAuthAccount) gin.H {
	payload := gin.H{
		"id":             u.ID(),
		"email":          u.Email().String(),
		"name":           u.Name().String(),
		"role":           u.Role(),
		"avatar_url":     u.AvatarURL(),
		"email_verified": u.EmailVerified(),
		"has_password":   u.HasPassword(),
		"created_at":     u.CreatedAt().Format(time.RFC3339),
	}
	if linked != nil {
		providers := make([]gin.H, 0, len(linked))
		for _, account := range linked {
			providers = append(providers, gin.H{
				"provider":       account.Provider,
				"provider_email": account.ProviderEmail,
				"linked_at":      account.CreatedAt.Format(time.RFC3339),
			})
		}
		payload["linked_providers"] = providers
	}
	return payload
}
