package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"

	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
)

// Разрешённые типы роликов
var allowedVideoTypes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"video/x-matroska": true,
}

// Разрешённые типы превью
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// openUpload открывает файл формы и проверяет его реальный тип по магическим байтам.
// Расширение имени должно совпадать с реальным типом.
func openUpload(field string, file *multipart.FileHeader, allowed map[string]bool) (multipart.File, error) {
	if file.Size == 0 {
		return nil, validationError(field, "файл не может быть пустым")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeUploadFailed, "не удалось прочитать файл")
	}

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		src.Close()
		return nil, validationError(field, "не удалось прочитать файл")
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil || kind == filetype.Unknown {
		src.Close()
		return nil, validationError(field, "не удалось определить тип файла")
	}

	contentType := kind.MIME.Value
	if !allowed[contentType] {
		src.Close()
		return nil, validationError(field, fmt.Sprintf("неподдерживаемый тип файла (%s), разрешены: %s", contentType, strings.Join(allowedList(allowed), ", ")))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	expectedExt := "." + kind.Extension
	if ext != expectedExt && !(sameJPEG(ext) && sameJPEG(expectedExt)) {
		src.Close()
		return nil, validationError(field, fmt.Sprintf("расширение файла (%s) не соответствует реальному типу (%s)", ext, expectedExt))
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		src.Close()
		return nil, apperror.Wrap(err, apperror.ErrCodeUploadFailed, "не удалось прочитать файл")
	}
	return src, nil
}

func sameJPEG(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg"
}

func validationError(field, message string) error {
	return apperror.New(apperror.ErrCodeValidation, field+": "+message)
}

func allowedList(allowed map[string]bool) []string {
	out := make([]string, 0, len(allowed))
	for t := range allowed {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
