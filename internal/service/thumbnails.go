package service

import (
	"net/url"
	"strings"
)

const (
	externalThumbnailTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"
	fallbackThumbnailTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"
)

// ExternalThumbnailURL превью высокого разрешения для внешнего ролика.
func ExternalThumbnailURL(externalID string) string {
	return thumbnailFromTemplate(externalThumbnailTemplate, externalID)
}

// FallbackThumbnailURL превью низкого разрешения, которое клиент грузит, если основное не загрузилось.
func FallbackThumbnailURL(externalID string) string {
	return thumbnailFromTemplate(fallbackThumbnailTemplate, externalID)
}

func thumbnailFromTemplate(template, externalID string) string {
	id := strings.TrimSpace(externalID)
	if id == "" {
		return ""
	}
	return strings.Replace(template, "%s", url.PathEscape(id), 1)
}
