package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrTooLarge возвращается, когда файл превышает лимит загрузки.
var ErrTooLarge = errors.New("storage: размер файла превышает лимит")

// AssetStorage файловое хранилище опубликованных медиа. Бакеты это подкаталоги корня.
type AssetStorage struct {
	rootPath       string
	publicBaseURL  string
	maxUploadBytes int64
	now            func() time.Time
}

// NewAssetStorage создаёт хранилище и каталог под него.
func NewAssetStorage(rootPath, publicBaseURL string, maxUploadMB int64) (*AssetStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &AssetStorage{
		rootPath:       rootPath,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		maxUploadBytes: maxUploadMB * 1024 * 1024,
		now:            time.Now,
	}, nil
}

// RootPath корень хранилища, его раздаёт HTTP сервер.
func (s *AssetStorage) RootPath() string {
	return s.rootPath
}

// UniqueName строит имя объекта из метки времени и очищенного расширения оригинала.
func (s *AssetStorage) UniqueName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(sanitizeFilename(originalName)))
	return fmt.Sprintf("%d%s", s.now().UnixNano(), ext)
}

// Upload сохраняет поток в bucket/fileName и возвращает записанный размер.
func (s *AssetStorage) Upload(ctx context.Context, bucket, fileName string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	targetPath, err := s.objectPath(bucket, fileName)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return 0, fmt.Errorf("storage: не удалось создать бакет %s: %w", bucket, err)
	}

	tempPath := targetPath + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limited := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tempPath)
		return 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return 0, fmt.Errorf("%w (%d байт)", ErrTooLarge, s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return written, nil
}

// PublicURL публичный адрес объекта.
func (s *AssetStorage) PublicURL(bucket, fileName string) string {
	return s.publicBaseURL + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(fileName)
}

// ObjectFromURL разбирает публичный адрес обратно в бакет и имя.
func (s *AssetStorage) ObjectFromURL(publicURL string) (bucket, fileName string, ok bool) {
	rest, found := strings.CutPrefix(publicURL, s.publicBaseURL+"/")
	if !found {
		return "", "", false
	}
	bucket, fileName, found = strings.Cut(rest, "/")
	if !found || bucket == "" || fileName == "" || strings.Contains(fileName, "/") {
		return "", "", false
	}

	bucket, errB := url.PathUnescape(bucket)
	fileName, errF := url.PathUnescape(fileName)
	if errB != nil || errF != nil {
		return "", "", false
	}
	return bucket, fileName, true
}

// Delete удаляет объект. Отсутствующий объект не считается ошибкой.
func (s *AssetStorage) Delete(ctx context.Context, bucket, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.objectPath(bucket, fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// objectPath не даёт выйти за пределы корня.
func (s *AssetStorage) objectPath(bucket, fileName string) (string, error) {
	if bucket == "" || bucket != sanitizeFilename(bucket) {
		return "", fmt.Errorf("storage: некорректный бакет %q", bucket)
	}
	if fileName == "" || fileName != sanitizeFilename(fileName) {
		return "", fmt.Errorf("storage: некорректное имя файла %q", fileName)
	}
	return filepath.Join(s.rootPath, bucket, fileName), nil
}

// sanitizeFilename удаляет потенциально опасные символы.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "." {
		return ""
	}
	return name
}
