package dto

import (
	"github.com/ignatzorin/jovial-backend/internal/models"
)

// ErrorResponse стандартный ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PortfolioItemResponse элемент портфолио в том виде, в каком его рисует сайт.
// Поля варианта заполняются только для своего kind.
type PortfolioItemResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    models.Category `json:"category"`
	Kind        models.ItemKind `json:"kind"`

	MediaURL        string `json:"media_url,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
	DurationLabel   string `json:"duration_label,omitempty"`

	ExternalURL          string `json:"external_url,omitempty"`
	ExternalID           string `json:"external_id,omitempty"`
	ThumbnailURL         string `json:"thumbnail_url,omitempty"`
	FallbackThumbnailURL string `json:"fallback_thumbnail_url,omitempty"`

	DemoURL     string `json:"demo_url,omitempty"`
	EmbedTarget string `json:"embed_target,omitempty"`
}

// ThumbnailFallback строит запасное превью по id внешнего ролика.
type ThumbnailFallback func(externalID string) string

// NewPortfolioItemResponse раскладывает вариант элемента по полям ответа.
func NewPortfolioItemResponse(item models.PortfolioItem, fallback ThumbnailFallback) PortfolioItemResponse {
	resp := PortfolioItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Kind:        item.Kind(),
	}

	switch media := item.Media.(type) {
	case models.VideoMedia:
		resp.MediaURL = media.MediaURL
		if media.ThumbnailURL != nil {
			resp.ThumbnailURL = *media.ThumbnailURL
		}
		if media.DurationSeconds != nil {
			resp.DurationSeconds = media.DurationSeconds
			resp.DurationLabel = models.FormatDuration(*media.DurationSeconds)
		}
	case models.ExternalVideoMedia:
		resp.ExternalURL = media.ExternalURL
		resp.ExternalID = media.ExternalID
		resp.ThumbnailURL = media.ThumbnailURL
		if fallback != nil {
			resp.FallbackThumbnailURL = fallback(media.ExternalID)
		}
	case models.DemoMedia:
		resp.DemoURL = media.DemoURL
		resp.EmbedTarget = media.EmbedTarget
	case models.ShowcaseMedia, nil:
	}
	return resp
}

// ViewResponse состояние представления портфолио на поверхности сайта.
type ViewResponse struct {
	Surface    string                  `json:"surface"`
	State      string                  `json:"state"`
	Category   models.Category         `json:"category"`
	Categories []models.Category       `json:"categories"`
	Items      []PortfolioItemResponse `json:"items"`
	Total      int                     `json:"total"`
	Error      string                  `json:"error,omitempty"`
}

// NewViewResponse собирает ответ из видимых элементов. total это размер всего агрегата.
func NewViewResponse(surface, state string, category models.Category, visible []models.PortfolioItem, total int, fallback ThumbnailFallback) ViewResponse {
	items := make([]PortfolioItemResponse, 0, len(visible))
	for _, item := range visible {
		items = append(items, NewPortfolioItemResponse(item, fallback))
	}
	return ViewResponse{
		Surface:    surface,
		State:      state,
		Category:   category,
		Categories: append([]models.Category{models.CategoryAll}, models.DisplayCategories...),
		Items:      items,
		Total:      total,
	}
}

// VideoMutationResponse ответ на загрузку или правку ролика вместе с пересобранным портфолио.
type VideoMutationResponse struct {
	Video     *models.UploadedVideo `json:"video,omitempty"`
	Portfolio ViewResponse          `json:"portfolio"`
}

// MailtoResponse ссылка для открытия почтового клиента.
type MailtoResponse struct {
	Mailto string `json:"mailto"`
}
