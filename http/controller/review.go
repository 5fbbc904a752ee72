package controller

import (
	"net/http"
	"strconv"

	"github.com/gamereviewhub/game-review-service/entity"
	"github.com/gamereviewhub/game-review-service/http/controller/dto"
	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/gin-gonic/gin"
)

func (ctrl *Controller) ListReviews(c *gin.Context) {
	gameIDStr := c.Query("game_id")
	if gameIDStr == "" {
		utils.JSON422(c, "Invalid request",
			utils.ErrorDetail{Field: "game_id", Message: "is required"})
		return
	}
	gameID, err := strconv.ParseUint(gameIDStr, 10, 64)
	if err != nil {
		utils.JSON422(c, "Invalid request",
			utils.ErrorDetail{Field: "game_id", Message: "must be a positive integer"})
		return
	}

	reviews, err := ctrl.Repository.ReviewRepo.FindByGameID(uint(gameID))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "[Review] Failed to list reviews")
		utils.JSON400(c, "Integrity error")
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, reviewResponse(&review))
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) CreateReview(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Invalid request body", utils.BindingErrorDetails(err)...)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	// The game must exist before the insert; a dangling game_id is a
	// 404, not a constraint error.
	if _, err := ctrl.Repository.GameRepo.FindByID(req.GameID); err != nil {
		utils.JSON404(c, "Game not found")
		return
	}

	review := entity.Review{
		GameID:  req.GameID,
		UserID:  &userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := ctrl.Repository.ReviewRepo.Create(&review); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to create review")
		utils.JSON400(c, "Integrity error")
		return
	}

	c.JSON(http.StatusCreated, reviewResponse(&review))
}

func reviewResponse(review *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		GameID:    review.GameID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
