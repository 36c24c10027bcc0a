package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/repository"
)

func ptr[T any](v T) *T { return &v }

// fakeVideoStore хранит ролики в памяти, новые первыми.
type fakeVideoStore struct {
	mu   sync.Mutex
	rows []models.UploadedVideo
	err  error
	now  time.Time
}

func (s *fakeVideoStore) ListNewestFirst(ctx context.Context) ([]models.UploadedVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.UploadedVideo(nil), s.rows...), nil
}

func (s *fakeVideoStore) GetByID(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.ID == id {
			return &row, nil
		}
	}
	return nil, repository.ErrVideoNotFound
}

func (s *fakeVideoStore) Create(ctx context.Context, video *models.UploadedVideo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(time.Second)
	video.ID = uuid.New()
	video.CreatedAt = s.now
	video.UpdatedAt = s.now
	s.rows = append([]models.UploadedVideo{*video}, s.rows...)
	return nil
}

func (s *fakeVideoStore) Update(ctx context.Context, id uuid.UUID, fields models.VideoFields) (*models.UploadedVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Title = fields.Title
			s.rows[i].Description = fields.Description
			s.rows[i].Category = fields.Category
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, repository.ErrVideoNotFound
}

func (s *fakeVideoStore) Delete(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, repository.ErrVideoNotFound
}

type fakeExternalStore struct {
	rows []models.ExternalVideo
	err  error
}

func (s *fakeExternalStore) ListActive(ctx context.Context) ([]models.ExternalVideo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.ExternalVideo(nil), s.rows...), nil
}

// fakeAssets хранилище файлов в памяти.
type fakeAssets struct {
	mu        sync.Mutex
	objects   map[string]string
	seq       int
	failPut   map[string]error
	deleteErr error
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{objects: map[string]string{}, failPut: map[string]error{}}
}

func (a *fakeAssets) UniqueName(original string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++
	ext := ""
	if i := strings.LastIndex(original, "."); i >= 0 {
		ext = strings.ToLower(original[i:])
	}
	return time.Unix(1700000000, 0).Add(time.Duration(a.seq)).Format("20060102150405.000000000") + ext
}

func (a *fakeAssets) Upload(ctx context.Context, bucket, name string, r io.Reader) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failPut[bucket]; err != nil {
		return 0, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	a.objects[bucket+"/"+name] = string(data)
	return int64(len(data)), nil
}

func (a *fakeAssets) PublicURL(bucket, name string) string {
	return "http://cdn.local/media/" + bucket + "/" + name
}

func (a *fakeAssets) ObjectFromURL(u string) (string, string, bool) {
	rest, ok := strings.CutPrefix(u, "http://cdn.local/media/")
	if !ok {
		return "", "", false
	}
	return strings.Cut(rest, "/")
}

func (a *fakeAssets) Delete(ctx context.Context, bucket, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.deleteErr != nil {
		return a.deleteErr
	}
	delete(a.objects, bucket+"/"+name)
	return nil
}

func (a *fakeAssets) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.objects)
}

type mockVideoRepo struct {
	mock.Mock
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedVideo), args.Error(1)
}

func (m *mockVideoRepo) Create(ctx context.Context, video *models.UploadedVideo) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *mockVideoRepo) Update(ctx context.Context, id uuid.UUID, fields models.VideoFields) (*models.UploadedVideo, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedVideo), args.Error(1)
}

func (m *mockVideoRepo) Delete(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedVideo), args.Error(1)
}

var errStoreDown = errors.New("connection refused")

// countingLoader считает вызовы загрузки агрегата.
type countingLoader struct {
	calls int
	items []models.PortfolioItem
	err   error
}

func (l *countingLoader) LoadAggregate(ctx context.Context) ([]models.PortfolioItem, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.items, nil
}
