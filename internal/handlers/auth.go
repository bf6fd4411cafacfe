package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/harborview/marina-api/internal/auth"
	"github.com/harborview/marina-api/internal/constants"
	"github.com/harborview/marina-api/internal/dto"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/services"
	"golang.org/x/oauth2"
)

const sessionKeyState = "oauth_state"

// AuthHandler drives the OAuth login flow against the identity
// provider and the lazy user creation on first callback.
type AuthHandler struct {
	domain       string
	clientID     string
	clientSecret string
	baseURL      string
	verifier     *auth.Verifier
	userService  *services.UserService
	httpClient   *http.Client
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(domain, clientID, clientSecret, baseURL string, verifier *auth.Verifier, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		domain:       domain,
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		verifier:     verifier,
		userService:  userService,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *AuthHandler) oauthConfig(c *gin.Context) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.clientID,
		ClientSecret: h.clientSecret,
		RedirectURL:  dto.RequestBase(c, h.baseURL) + "/callback",
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://" + h.domain + "/authorize",
			TokenURL: "https://" + h.domain + "/oauth/token",
		},
	}
}

// Home handles GET /
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

// LoginRedirect handles GET /login: send the browser to the provider's
// authorize page with a session-bound state nonce.
func (h *AuthHandler) LoginRedirect(c *gin.Context) {
	state := uuid.NewString()

	session := sessions.Default(c)
	session.Set(sessionKeyState, state)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.Redirect(http.StatusFound, h.oauthConfig(c).AuthCodeURL(state))
}

// LoginPassword handles POST /login: proxy a resource-owner-password
// grant to the provider's token endpoint and relay its JSON answer.
func (h *AuthHandler) LoginPassword(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	body, err := json.Marshal(map[string]string{
		"grant_type":    "password",
		"username":      req.Username,
		"password":      req.Password,
		"client_id":     h.clientID,
		"client_secret": h.clientSecret,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	tokenURL := "https://" + h.domain + "/oauth/token"
	res, err := h.httpClient.Post(tokenURL, constants.MIMEJSON, bytes.NewReader(body))
	if err != nil {
		apierrors.InternalError(c, "Failed to reach identity provider")
		return
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		apierrors.InternalError(c, "Failed to read identity provider response")
		return
	}

	c.Data(res.StatusCode, constants.MIMEJSON, payload)
}

// Callback handles GET/POST /callback: verify state, exchange the code
// for an identity token, validate it, find or create the user, and
// render the user info page with the raw token.
func (h *AuthHandler) Callback(c *gin.Context) {
	session := sessions.Default(c)
	expected, _ := session.Get(sessionKeyState).(string)
	session.Delete(sessionKeyState)
	_ = session.Save()

	if expected == "" || c.Query("state") != expected {
		apierrors.Unauthorized(c, "Invalid OAuth state")
		return
	}

	code := c.Query("code")
	if code == "" {
		apierrors.Unauthorized(c, "Missing authorization code")
		return
	}

	token, err := h.oauthConfig(c).Exchange(c.Request.Context(), code)
	if err != nil {
		apierrors.Unauthorized(c, "Failed to exchange authorization code")
		return
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		apierrors.Unauthorized(c, "Identity provider returned no id token")
		return
	}

	claims, err := h.verifier.Verify(c.Request.Context(), idToken)
	if err != nil {
		apierrors.Unauthorized(c, "Invalid identity token")
		return
	}

	user, err := h.userService.FindOrCreate(claims.Subject, claims.Name)
	if err != nil {
		apierrors.InternalError(c, "Failed to store user")
		return
	}

	c.HTML(http.StatusOK, "user_info.html", gin.H{
		"UserID": user.ID,
		"JWT":    idToken,
	})
}
