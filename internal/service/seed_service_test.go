package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/models"
)

type fakeExternalWriter struct {
	rows map[string]models.ExternalVideo
	err  error
}

func (f *fakeExternalWriter) InsertIfAbsent(ctx context.Context, video *models.ExternalVideo) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.rows[video.ExternalID]; ok {
		return false, nil
	}
	f.rows[video.ExternalID] = *video
	return true, nil
}

func TestSeedService_SeedExternalVideos_Idempotent(t *testing.T) {
	logger.Discard()
	writer := &fakeExternalWriter{rows: map[string]models.ExternalVideo{}}
	svc := NewSeedService(writer)

	inserted, err := svc.SeedExternalVideos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(seedLinks), inserted)

	inserted, err = svc.SeedExternalVideos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	row := writer.rows["jvAgentLead"]
	assert.True(t, row.IsActive)
	assert.Nil(t, row.Description)
	require.NotNil(t, row.ThumbnailURL)
	assert.Equal(t, "https://img.youtube.com/vi/jvAgentLead/maxresdefault.jpg", *row.ThumbnailURL)
	assert.Equal(t, len(seedLinks), row.DisplayOrder)
}

func TestSeedService_SeedExternalVideos_StoreError(t *testing.T) {
	svc := NewSeedService(&fakeExternalWriter{err: errStoreDown})

	_, err := svc.SeedExternalVideos(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
