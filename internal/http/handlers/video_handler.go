package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/jovial-backend/internal/dto"
	"github.com/ignatzorin/jovial-backend/internal/http/handlers/common"
	"github.com/ignatzorin/jovial-backend/internal/http/middleware"
	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/service"
)

// VideoMutator операции владельца над роликами.
type VideoMutator interface {
	GetVideo(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.UploadedVideo, error)
	UploadVideo(ctx context.Context, actor models.Actor, in service.UploadVideoInput) (*models.UploadedVideo, error)
	EditVideo(ctx context.Context, actor models.Actor, id uuid.UUID, in service.EditVideoInput) (*models.UploadedVideo, error)
	DeleteVideo(ctx context.Context, actor models.Actor, id uuid.UUID) error
}

// VideoHandler управляет загрузкой, правкой и удалением роликов владельцем.
// После успешной мутации отвечает заново собранным портфолио.
type VideoHandler struct {
	videos         VideoMutator
	aggregator     service.AggregateLoader
	maxUploadBytes int64
}

// NewVideoHandler создаёт хэндлер.
func NewVideoHandler(videos VideoMutator, aggregator service.AggregateLoader, maxUploadMB int64) *VideoHandler {
	return &VideoHandler{videos: videos, aggregator: aggregator, maxUploadBytes: maxUploadMB * 1024 * 1024}
}

// Upload обрабатывает POST /api/owner/videos.
func (h *VideoHandler) Upload(c *gin.Context) {
	var form dto.UploadVideoForm
	if err := c.ShouldBind(&form); err != nil {
		common.FailValidation(c, "некорректная форма: "+err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.FailValidation(c, "file: обязательное поле")
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		common.RespondError(c, http.StatusRequestEntityTooLarge, "файл превышает допустимый размер")
		return
	}
	video, err := openUpload("file", fileHeader, allowedVideoTypes)
	if err != nil {
		common.Fail(c, err)
		return
	}
	defer video.Close()

	in := service.UploadVideoInput{
		Title:           form.Title,
		Description:     form.Description,
		Category:        models.ContentCategory(form.Category),
		Featured:        form.Featured,
		DurationSeconds: form.DurationSeconds,
		File:            service.AssetInput{FileName: fileHeader.Filename, Reader: video},
	}

	thumbHeader, err := c.FormFile("thumbnail")
	switch {
	case err == nil:
		thumb, err := openUpload("thumbnail", thumbHeader, allowedImageTypes)
		if err != nil {
			common.Fail(c, err)
			return
		}
		defer thumb.Close()
		in.Thumbnail = &service.AssetInput{FileName: thumbHeader.Filename, Reader: thumb}
	case !errors.Is(err, http.ErrMissingFile):
		common.FailValidation(c, "thumbnail: некорректный файл")
		return
	}

	created, err := h.videos.UploadVideo(c.Request.Context(), middleware.CurrentActor(c), in)
	if err != nil {
		common.Fail(c, err)
		return
	}
	h.respondMutation(c, http.StatusCreated, created)
}

// Get обрабатывает GET /api/owner/videos/:id.
func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := middleware.ParamUUID(c, "id")
	if !ok {
		common.FailValidation(c, "id: должен быть валидным UUID")
		return
	}

	video, err := h.videos.GetVideo(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// Edit обрабатывает PUT /api/owner/videos/:id.
func (h *VideoHandler) Edit(c *gin.Context) {
	id, ok := middleware.ParamUUID(c, "id")
	if !ok {
		common.FailValidation(c, "id: должен быть валидным UUID")
		return
	}

	var in service.EditVideoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.FailValidation(c, "некорректный JSON")
		return
	}

	updated, err := h.videos.EditVideo(c.Request.Context(), middleware.CurrentActor(c), id, in)
	if err != nil {
		common.Fail(c, err)
		return
	}
	h.respondMutation(c, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/owner/videos/:id?confirm=true.
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := middleware.ParamUUID(c, "id")
	if !ok {
		common.FailValidation(c, "id: должен быть валидным UUID")
		return
	}
	if c.Query("confirm") != "true" {
		common.FailValidation(c, "confirm: удаление необратимо и требует подтверждения")
		return
	}

	if err := h.videos.DeleteVideo(c.Request.Context(), middleware.CurrentActor(c), id); err != nil {
		common.Fail(c, err)
		return
	}
	h.respondMutation(c, http.StatusOK, nil)
}

// respondMutation пересобирает портфолио. Ошибка пересборки не отменяет успешную мутацию.
func (h *VideoHandler) respondMutation(c *gin.Context, status int, video *models.UploadedVideo) {
	view := service.NewView(h.aggregator, service.SurfacePortfolioPage, 0)
	err := view.Mount(c.Request.Context())

	resp := dto.VideoMutationResponse{Video: video, Portfolio: renderView(view)}
	if err != nil {
		logger.WithComponent("videos").WithError(err).Warn("portfolio reload after mutation failed")
		_, resp.Portfolio.Error = middleware.ResolveError(err)
	}
	c.JSON(status, resp)
}
