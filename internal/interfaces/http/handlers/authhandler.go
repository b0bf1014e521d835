// Package handlers contains the Gin HTTP handlers. Every resource handler
// follows the same shape: bind input, authorize through the access guard,
// mutate inside a transaction, record the granted decision, respond.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth/usecases"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	apperrors "github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

type AuthHandler struct {
	signup          *usecases.SignupUseCase
	login           *usecases.LoginUseCase
	logout          *usecases.LogoutUseCase
	renew           *usecases.RenewSessionUseCase
	changePassword  *usecases.ChangePasswordUseCase
	deleteAccount   *usecases.DeleteAccountUseCase
	preferences     *usecases.PreferencesUseCase
	sessions        *auth.SessionManager
	cookieSettings  utils.CookieSettings
	sessionLifetime int
}

func NewAuthHandler(
	signup *usecases.SignupUseCase,
	login *usecases.LoginUseCase,
	logout *usecases.LogoutUseCase,
	renew *usecases.RenewSessionUseCase,
	changePassword *usecases.ChangePasswordUseCase,
	deleteAccount *usecases.DeleteAccountUseCase,
	preferences *usecases.PreferencesUseCase,
	sessions *auth.SessionManager,
	cookieSettings utils.CookieSettings,
	sessionLifetimeSeconds int,
) *AuthHandler {
	return &AuthHandler{
		signup:          signup,
		login:           login,
		logout:          logout,
		renew:           renew,
		changePassword:  changePassword,
		deleteAccount:   deleteAccount,
		preferences:     preferences,
		sessions:        sessions,
		cookieSettings:  cookieSettings,
		sessionLifetime: sessionLifetimeSeconds,
	}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and password are required")
		return
	}

	newUser, err := h.signup.Execute(c.Request.Context(), usecases.SignupCommand{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrNameTaken) {
			utils.ErrorResponse(c, http.StatusConflict, "user name is already taken")
			return
		}
		if appErr := apperrors.GetAppError(err); appErr != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, "account created", toUserResponse(newUser))
}

type loginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and password are required")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginCommand{
		Name:      req.Name,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid name or password")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetTokenCookie(c, h.cookieSettings, result.Token, h.sessionLifetime)
	utils.SuccessResponse(c, http.StatusOK, "logged in", toUserResponse(result.User))
}

// Logout deactivates the presented session. Revocation is soft: the row
// stays, its active flag flips, and the cookie is cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetTokenFromCookie(c)

	if err := h.logout.Execute(c.Request.Context(), token); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearTokenCookie(c, h.cookieSettings)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Renew issues a brand-new session for a valid token presented from the IP
// the session was created with. The old token keeps its own expiry.
func (h *AuthHandler) Renew(c *gin.Context) {
	token := utils.GetTokenFromCookie(c)

	newToken, err := h.renew.Execute(c.Request.Context(), usecases.RenewSessionCommand{
		Token:     token,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSession) || errors.Is(err, auth.ErrRenewalAddressMismatch) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session renewal refused")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetTokenCookie(c, h.cookieSettings, newToken, h.sessionLifetime)
	utils.SuccessResponse(c, http.StatusOK, "session renewed", nil)
}

// Validate reports whether the presented token is a live session. It never
// errors: invalid is a normal answer.
func (h *AuthHandler) Validate(c *gin.Context) {
	token := utils.GetTokenFromCookie(c)
	valid, _ := h.sessions.VerifySessionForAccess(c.Request.Context(), token)
	utils.SuccessResponse(c, http.StatusOK, "session checked", gin.H{"valid": valid})
}

type changePasswordRequest struct {
	Name            string `json:"name" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, current_password, and new_password are required")
		return
	}

	err := h.changePassword.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		Token:           utils.GetTokenFromCookie(c),
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSession) || errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "credentials rejected")
			return
		}
		if appErr := apperrors.GetAppError(err); appErr != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

type deleteAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and password are required")
		return
	}

	err := h.deleteAccount.Execute(c.Request.Context(), usecases.DeleteAccountCommand{
		Token:    utils.GetTokenFromCookie(c),
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSession) || errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "credentials rejected")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearTokenCookie(c, h.cookieSettings)
	utils.SuccessResponse(c, http.StatusOK, "account deleted", nil)
}

func (h *AuthHandler) GetPreferences(c *gin.Context) {
	valid, sess := h.sessions.VerifySessionForAccess(c.Request.Context(), utils.GetTokenFromCookie(c))
	if !valid {
		utils.ErrorResponseWithError(c, apperrors.NewInvalidSessionError())
		return
	}

	prefs, err := h.preferences.Get(c.Request.Context(), sess.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preferences", gin.H{"preferences": prefs})
}

type updatePreferencesRequest struct {
	Preferences string `json:"preferences" binding:"required"`
}

func (h *AuthHandler) UpdatePreferences(c *gin.Context) {
	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "preferences is required")
		return
	}

	valid, sess := h.sessions.VerifySessionForAccess(c.Request.Context(), utils.GetTokenFromCookie(c))
	if !valid {
		utils.ErrorResponseWithError(c, apperrors.NewInvalidSessionError())
		return
	}

	if err := h.preferences.Update(c.Request.Context(), sess.UserID, req.Preferences); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preferences updated", nil)
}
