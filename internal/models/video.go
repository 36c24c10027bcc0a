package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentCategory тематика загруженного ролика. Описательные метаданные, в фильтрации портфолио не участвует.
type ContentCategory string

const (
	ContentFood       ContentCategory = "food"
	ContentFitness    ContentCategory = "fitness"
	ContentRetail     ContentCategory = "retail"
	ContentAutomotive ContentCategory = "automotive"
	ContentRealEstate ContentCategory = "real_estate"
	ContentBeauty     ContentCategory = "beauty"
)

// ValidContentCategories список допустимых тематик при записи.
var ValidContentCategories = map[ContentCategory]struct{}{
	ContentFood:       {},
	ContentFitness:    {},
	ContentRetail:     {},
	ContentAutomotive: {},
	ContentRealEstate: {},
	ContentBeauty:     {},
}

// UploadedVideo строка таблицы uploaded_videos.
type UploadedVideo struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Title           string          `db:"title" json:"title"`
	Description     *string         `db:"description" json:"description,omitempty"`
	Category        ContentCategory `db:"category" json:"category"`
	MediaURL        string          `db:"media_url" json:"media_url"`
	ThumbnailURL    *string         `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	DurationSeconds *int            `db:"duration_seconds" json:"duration_seconds,omitempty"`
	FileSizeBytes   int64           `db:"file_size_bytes" json:"file_size_bytes"`
	IsFeatured      bool            `db:"is_featured" json:"is_featured"`
	UploaderID      uuid.UUID       `db:"uploader_id" json:"uploader_id"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// VideoFields редактируемые поля ролика. Медиа после загрузки не меняется.
type VideoFields struct {
	Title       string
	Description *string
	Category    ContentCategory
}

// ExternalVideo строка таблицы external_videos. Только чтение.
type ExternalVideo struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description,omitempty"`
	ExternalURL  string    `db:"external_url" json:"external_url"`
	ExternalID   string    `db:"external_id" json:"external_id"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
}
