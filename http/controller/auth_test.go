package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	t.Run("creates a user without exposing the hash", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "gamer@example.com", "password": "supersecret1"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "gamer@example.com", resp["email"])
		assert.NotZero(t, resp["id"])
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate email conflicts regardless of case", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "GAMER@EXAMPLE.COM", "password": "supersecret1"}, "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, utils.CodeConflict, decodeError(t, w).Error.Code)
	})

	t.Run("short password fails validation with details", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "other@example.com", "password": "short"}, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeError(t, w)
		assert.Equal(t, utils.CodeValidation, env.Error.Code)
		require.NotEmpty(t, env.Error.Details)
		assert.Equal(t, "password", env.Error.Details[0].Field)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "gamer@example.com")

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrongPass := env.request(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "gamer@example.com", "password": "wrongwrongwrong"}, "")
		unknown := env.request(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "nobody@example.com", "password": "supersecret1"}, "")

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	})

	t.Run("successful login returns a bearer token", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "Gamer@Example.com", "password": "supersecret1"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresIn   int    `json:"expires_in"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, env.cfg.EnvConfig.JWT.ExpireMinutes*60, resp.ExpiresIn)
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "gamer@example.com")

	t.Run("valid token resolves the current user", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "gamer@example.com")
	})

	t.Run("missing token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, utils.CodeAuth, decodeError(t, w).Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/me", nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := *env.cfg.EnvConfig
		expiredCfg.JWT.ExpireMinutes = -1
		expired, _, err := utils.CreateAccessToken(1, &expiredCfg)
		require.NoError(t, err)

		w := env.request(t, http.MethodGet, "/api/me", nil, expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		orphan, _, err := utils.CreateAccessToken(9999, env.cfg.EnvConfig)
		require.NoError(t, err)

		w := env.request(t, http.MethodGet, "/api/me", nil, orphan)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
