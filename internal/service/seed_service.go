package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/models"
)

// ExternalVideoWriter добавляет ссылки на внешние ролики.
type ExternalVideoWriter interface {
	InsertIfAbsent(ctx context.Context, video *models.ExternalVideo) (bool, error)
}

type seedLink struct {
	title       string
	description string
	externalID  string
}

// Демонстрационные ролики AI агентов для локальной разработки
var seedLinks = []seedLink{
	{title: "Голосовой агент записи на приём", description: "Агент принимает звонки и записывает клиентов", externalID: "jvAgentRec1"},
	{title: "Агент поддержки интернет магазина", description: "Отвечает на вопросы о доставке и возвратах", externalID: "jvAgentSup2"},
	{title: "Агент квалификации лидов", externalID: "jvAgentLead"},
}

// SeedService заполняет пустую базу демонстрационными внешними роликами.
type SeedService struct {
	externals ExternalVideoWriter
}

// NewSeedService создаёт новый сервис для генерации данных.
func NewSeedService(externals ExternalVideoWriter) *SeedService {
	return &SeedService{externals: externals}
}

// SeedExternalVideos добавляет недостающие демонстрационные ссылки и возвращает число новых строк.
// Повторный вызов ничего не дублирует.
func (s *SeedService) SeedExternalVideos(ctx context.Context) (int, error) {
	inserted := 0
	for i, link := range seedLinks {
		thumbnail := ExternalThumbnailURL(link.externalID)
		video := &models.ExternalVideo{
			Title:        link.title,
			Description:  nonEmpty(&link.description),
			ExternalURL:  "https://www.youtube.com/watch?v=" + link.externalID,
			ExternalID:   link.externalID,
			ThumbnailURL: &thumbnail,
			DisplayOrder: i + 1,
			IsActive:     true,
		}

		ok, err := s.externals.InsertIfAbsent(ctx, video)
		if err != nil {
			return inserted, fmt.Errorf("seed service: failed to insert %s: %w", link.externalID, err)
		}
		if ok {
			inserted++
		}
	}

	logger.WithComponent("seed").WithFields(logrus.Fields{
		"inserted": inserted,
		"total":    len(seedLinks),
	}).Info("external videos seeded")
	return inserted, nil
}
