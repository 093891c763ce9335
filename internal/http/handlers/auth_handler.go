// Auth HTTP handlers.
//
// This file exposes the GitHub sign-in flow:
//   - GET /auth/github/login     (redirect to GitHub with a state cookie)
//   - GET /auth/github/callback  (code exchange, account upsert, session)
//
// The callback sets the session cookie for browser clients and also returns
// the token in the JSON body for API clients. The OAuth state parameter is
// pinned to a short-lived cookie so the callback only honors flows this
// server started.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/promptlog/go-experience-backend/internal/auth"
	"github.com/promptlog/go-experience-backend/internal/domain"
	"github.com/promptlog/go-experience-backend/internal/http/middleware"
	"github.com/promptlog/go-experience-backend/internal/services"
)

// stateCookieName holds the OAuth state between the login redirect and the
// provider callback.
const stateCookieName = "oauth_state"

// stateCookieTTL bounds how long a started login flow stays valid.
const stateCookieTTL = 10 * time.Minute

// OAuthProvider drives the authorization-code flow. Implemented by
// auth.GitHubProvider.
type OAuthProvider interface {
	// AuthURL returns the provider's authorization URL carrying state.
	AuthURL(state string) string
	// Exchange trades the callback code for the provider's user profile.
	Exchange(ctx context.Context, code string) (*auth.GitHubUser, error)
}

// SessionIssuer mints session tokens. Implemented by auth.TokenService.
type SessionIssuer interface {
	Generate(userID string) (string, error)
}

// AccountService resolves provider identities to local accounts.
type AccountService interface {
	UpsertFromGitHub(ctx context.Context, p services.GitHubProfile) (*domain.User, error)
}

// AuthHandlers groups the sign-in endpoints. Split from Handlers because its
// dependencies (OAuth provider, token issuer) are auth-specific.
type AuthHandlers struct {
	provider OAuthProvider
	tokens   SessionIssuer
	accounts AccountService

	sessionTTL    time.Duration
	secureCookies bool // Secure flag on cookies; true behind HTTPS
}

// NewAuth constructs the auth endpoints.
func NewAuth(provider OAuthProvider, tokens SessionIssuer, accounts AccountService,
	sessionTTL time.Duration, secureCookies bool) *AuthHandlers {
	return &AuthHandlers{
		provider:      provider,
		tokens:        tokens,
		accounts:      accounts,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

// SessionResponse is the JSON body returned by a successful callback.
type SessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// GitHubLogin godoc
// @ID          githubLogin
// @Summary     Start GitHub sign-in
// @Description Redirects to GitHub's authorization page. A state cookie pins the flow to this browser.
// @Tags        Auth
//
// @Success     302  {string}  string  "Redirect to GitHub"
// @Router      /auth/github/login [get]
func (h *AuthHandlers) GitHubLogin(c *gin.Context) {
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, int(stateCookieTTL.Seconds()), "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, h.provider.AuthURL(state))
}

// GitHubCallback godoc
// @ID          githubCallback
// @Summary     Complete GitHub sign-in
// @Description Exchanges the authorization code, upserts the account, and issues a session token (cookie + JSON body).
// @Tags        Auth
// @Produce     json
//
// @Param       code   query  string  true  "Authorization code from GitHub"
// @Param       state  query  string  true  "State echoed by GitHub"
//
// @Success     200  {object}  handlers.SessionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing code or state"
// @Failure     401  {object}  handlers.ErrorResponse  "State mismatch or exchange rejected"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/github/callback [get]
func (h *AuthHandlers) GitHubCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "code and state are required")
		return
	}
	wantState, err := c.Cookie(stateCookieName)
	if err != nil || wantState == "" || state != wantState {
		fail(c, http.StatusUnauthorized, ErrCodeAuthFailed, "OAuth state mismatch")
		return
	}
	// One shot per state.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, "", -1, "/", "", h.secureCookies, true)

	gh, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		fail(c, http.StatusUnauthorized, ErrCodeAuthFailed, "GitHub rejected the authorization code")
		return
	}

	u, err := h.accounts.UpsertFromGitHub(c.Request.Context(), services.GitHubProfile{
		ID:        gh.ID,
		Login:     gh.Login,
		Name:      gh.Name,
		Email:     gh.Email,
		AvatarURL: gh.AvatarURL,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	token, err := h.tokens.Generate(u.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", h.secureCookies, true)
	ok(c, http.StatusOK, SessionResponse{Token: token, User: u})
}
