package controller

import (
	"errors"
	"net/http"

	"github.com/gamereviewhub/game-review-service/entity"
	"github.com/gamereviewhub/game-review-service/http/controller/dto"
	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (ctrl *Controller) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Invalid request body", utils.BindingErrorDetails(err)...)
		return
	}

	if _, err := ctrl.Repository.UserRepo.FindByEmail(req.Email); err == nil {
		utils.JSON409(c, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to check existing email")
		utils.JSON400(c, "Integrity error")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to hash password")
		utils.JSON400(c, "Integrity error")
		return
	}

	user := entity.User{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := ctrl.Repository.UserRepo.Create(&user); err != nil {
		// A racing registration can still hit the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.JSON409(c, "Email already registered")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to create user")
		utils.JSON400(c, "Integrity error")
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

func (ctrl *Controller) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Invalid request body", utils.BindingErrorDetails(err)...)
		return
	}

	// Unknown email and wrong password answer identically so the
	// response does not reveal which factor failed.
	user, err := ctrl.Repository.UserRepo.FindByEmail(req.Email)
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.JSON401(c, "Invalid email or password")
		return
	}

	token, expiresIn, err := utils.CreateAccessToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "[Auth] Failed to sign access token")
		utils.JSON400(c, "Integrity error")
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}

func (ctrl *Controller) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByID(userID)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
