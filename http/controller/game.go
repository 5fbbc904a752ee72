package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gamereviewhub/game-review-service/entity"
	"github.com/gamereviewhub/game-review-service/http/controller/dto"
	"github.com/gamereviewhub/game-review-service/repository"
	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const releaseDateLayout = "2006-01-02"

func (ctrl *Controller) ListGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 1
	}
	if limit > repository.MaxPageLimit {
		limit = repository.MaxPageLimit
	}
	sort := c.DefaultQuery("sort", repository.DefaultSort)

	items, total, err := ctrl.Repository.GameRepo.List(page, limit, sort)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "[Game] Failed to list games")
		utils.JSON400(c, "Integrity error")
		return
	}

	resp := dto.ListGamesResponse{
		Items: make([]dto.GameResponse, 0, len(items)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, gameResponse(&item.Game, item.AvgRating))
	}

	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) CreateGame(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Invalid request body", utils.BindingErrorDetails(err)...)
		return
	}

	title := strings.TrimSpace(req.Title)
	platform := strings.TrimSpace(req.Platform)
	var details []utils.ErrorDetail
	if title == "" {
		details = append(details, utils.ErrorDetail{Field: "title", Message: "must not be blank"})
	}
	if platform == "" {
		details = append(details, utils.ErrorDetail{Field: "platform", Message: "must not be blank"})
	}
	if len(details) > 0 {
		utils.JSON422(c, "Invalid request body", details...)
		return
	}

	game := entity.Game{
		Title:    title,
		Platform: platform,
	}
	if req.ReleasedOn != nil {
		parsed, err := time.Parse(releaseDateLayout, *req.ReleasedOn)
		if err != nil {
			utils.JSON422(c, "Invalid request body",
				utils.ErrorDetail{Field: "released_on", Message: "must match the format 2006-01-02"})
			return
		}
		released := datatypes.Date(parsed)
		game.ReleasedOn = &released
	}

	// Pre-check and insert share one transaction; a case variant that
	// races past the check still trips the functional unique index.
	err := ctrl.Infra.Postgres.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := ctrl.Repository.WithTransaction(tx)
		exists, err := txRepo.GameRepo.ExistsByTitleAndPlatform(title, platform)
		if err != nil {
			return err
		}
		if exists {
			return gorm.ErrDuplicatedKey
		}
		return txRepo.GameRepo.Create(&game)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.JSON409(c, "Game already exists for this platform")
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Game] Failed to create game")
		utils.JSON400(c, "Integrity error")
		return
	}

	c.JSON(http.StatusCreated, gameResponse(&game, 0.0))
}

func gameResponse(game *entity.Game, avgRating float64) dto.GameResponse {
	resp := dto.GameResponse{
		ID:        game.ID,
		Title:     game.Title,
		Platform:  game.Platform,
		CreatedAt: game.CreatedAt,
		AvgRating: avgRating,
	}
	if game.ReleasedOn != nil {
		formatted := time.Time(*game.ReleasedOn).Format(releaseDateLayout)
		resp.ReleasedOn = &formatted
	}
	return resp
}
