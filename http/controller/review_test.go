package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewItem struct {
	ID      uint    `json:"id"`
	GameID  uint    `json:"game_id"`
	UserID  *uint   `json:"user_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

func TestCreateReview(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "critic@example.com")
	game := createGame(t, env, "Hades", "PC")

	t.Run("requires authentication", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/reviews",
			map[string]interface{}{"game_id": game.ID, "rating": 5}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("out-of-range ratings fail validation", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			w := env.request(t, http.MethodPost, "/api/reviews",
				map[string]interface{}{"game_id": game.ID, "rating": rating}, token)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "rating %d", rating)
			assert.Equal(t, utils.CodeValidation, decodeError(t, w).Error.Code)
		}
	})

	t.Run("boundary ratings succeed", func(t *testing.T) {
		for _, rating := range []int{1, 5} {
			w := env.request(t, http.MethodPost, "/api/reviews",
				map[string]interface{}{"game_id": game.ID, "rating": rating}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
	})

	t.Run("unknown game is not found even when authenticated", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/reviews",
			map[string]interface{}{"game_id": 9999, "rating": 3}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, utils.CodeNotFound, decodeError(t, w).Error.Code)
	})

	t.Run("overlong comment fails validation", func(t *testing.T) {
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}
		w := env.request(t, http.MethodPost, "/api/reviews",
			map[string]interface{}{"game_id": game.ID, "rating": 3, "comment": string(long)}, token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("review records the posting user", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/reviews",
			map[string]interface{}{"game_id": game.ID, "rating": 4, "comment": "tight combat"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var review reviewItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
		require.NotNil(t, review.UserID)
		require.NotNil(t, review.Comment)
		assert.Equal(t, "tight combat", *review.Comment)
	})
}

func TestListReviews(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "critic@example.com")
	game := createGame(t, env, "Hades", "PC")

	for _, rating := range []int{2, 4, 5} {
		w := env.request(t, http.MethodPost, "/api/reviews",
			map[string]interface{}{"game_id": game.ID, "rating": rating}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("missing game_id fails validation", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/reviews", nil, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("reviews come back newest first", func(t *testing.T) {
		w := env.request(t, http.MethodGet, fmt.Sprintf("/api/reviews?game_id=%d", game.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var reviews []reviewItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
		require.Len(t, reviews, 3)
		assert.Equal(t, 5, reviews[0].Rating)
		assert.Equal(t, 4, reviews[1].Rating)
		assert.Equal(t, 2, reviews[2].Rating)
	})

	t.Run("unknown game lists empty", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/reviews?game_id=9999", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
