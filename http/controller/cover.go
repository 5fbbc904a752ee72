package controller

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gamereviewhub/game-review-service/entity"
	"github.com/gamereviewhub/game-review-service/http/controller/dto"
	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (ctrl *Controller) UploadCover(c *gin.Context) {
	ctx := c.Request.Context()

	game, ok := ctrl.gameFromPath(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "A file upload is required")
		return
	}
	if fileHeader.Size == 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "Uploaded file is empty")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Cover] Failed to open uploaded file")
		utils.JSON400(c, "Integrity error")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Cover] Failed to read uploaded file")
		utils.JSON400(c, "Integrity error")
		return
	}
	if len(data) == 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "Uploaded file is empty")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	random := strings.ReplaceAll(uuid.New().String(), "-", "")
	coverKey := fmt.Sprintf("covers/%d/%s_%s", game.ID, random, filepath.Base(fileHeader.Filename))

	if err := ctrl.Blobs.PutObject(ctx, coverKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Cover] Failed to store cover for game %d", game.ID)
		utils.JSON400(c, "Integrity error")
		return
	}

	// Thumbnail derivation is best-effort: a cover that cannot be
	// decoded or re-stored still uploads, it just has no thumb key.
	var thumbKey *string
	if thumbData, err := ctrl.Infra.Thumbnailer.Generate(data); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Cover] Thumbnail generation failed for game %d: %v", game.ID, err)
	} else {
		key := fmt.Sprintf("covers/%d/thumb_%s.jpg", game.ID, random)
		if err := ctrl.Blobs.PutObject(ctx, key, bytes.NewReader(thumbData), int64(len(thumbData)), "image/jpeg"); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Cover] Failed to store thumbnail for game %d: %v", game.ID, err)
		} else {
			thumbKey = &key
		}
	}

	previousCover := game.CoverKey
	previousThumb := game.ThumbKey

	if err := ctrl.Repository.GameRepo.UpdateCoverKeys(game.ID, &coverKey, thumbKey); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Cover] Failed to persist cover keys for game %d", game.ID)
		utils.JSON400(c, "Integrity error")
		return
	}

	// Replaced blobs are removed best-effort so the bucket does not
	// accumulate unreferenced covers.
	ctrl.removeBlobQuietly(c, previousCover)
	ctrl.removeBlobQuietly(c, previousThumb)

	url, err := ctrl.Blobs.PresignedGetURL(ctx, coverKey,
		time.Duration(ctrl.Config.EnvConfig.Cover.PresignTTLSeconds)*time.Second)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Cover] Failed to presign cover URL for game %d", game.ID)
		utils.JSON400(c, "Integrity error")
		return
	}

	c.JSON(http.StatusCreated, dto.CoverResponse{CoverURL: url})
}

func (ctrl *Controller) DeleteCover(c *gin.Context) {
	game, ok := ctrl.gameFromPath(c)
	if !ok {
		return
	}

	ctrl.removeBlobQuietly(c, game.CoverKey)
	ctrl.removeBlobQuietly(c, game.ThumbKey)

	// References are cleared even when the blob removal failed, which
	// also makes repeat deletes a no-op.
	if err := ctrl.Repository.GameRepo.UpdateCoverKeys(game.ID, nil, nil); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "[Cover] Failed to clear cover keys for game %d", game.ID)
		utils.JSON400(c, "Integrity error")
		return
	}

	c.Status(http.StatusNoContent)
}

func (ctrl *Controller) GetCover(c *gin.Context) {
	ctx := c.Request.Context()

	game, ok := ctrl.gameFromPath(c)
	if !ok {
		return
	}
	if game.CoverKey == nil {
		utils.JSON404(c, "Cover not found")
		return
	}

	key := *game.CoverKey
	if c.Query("size") == "thumb" && game.ThumbKey != nil {
		key = *game.ThumbKey
	}

	obj, stat, err := ctrl.Blobs.GetObject(ctx, key)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Cover] Failed to fetch blob %s", key)
		utils.JSON404(c, "Cover not found")
		return
	}
	defer obj.Close()

	c.DataFromReader(http.StatusOK, stat.Size, stat.ContentType, obj, nil)
}

// gameFromPath resolves the :id route parameter to a game row,
// answering 400/404 itself when it cannot.
func (ctrl *Controller) gameFromPath(c *gin.Context) (*entity.Game, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "Invalid game id")
		return nil, false
	}
	game, err := ctrl.Repository.GameRepo.FindByID(uint(id))
	if err != nil {
		utils.JSON404(c, "Game not found")
		return nil, false
	}
	return game, true
}

func (ctrl *Controller) removeBlobQuietly(c *gin.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := ctrl.Blobs.RemoveObject(c.Request.Context(), *key); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(c.Request.Context(), "[Cover] Failed to remove blob %s: %v", *key, err)
	}
}
