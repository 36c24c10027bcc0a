package common

import "errors"

// ErrNotFound базовая ошибка отсутствующей записи для всех репозиториев.
var ErrNotFound = errors.New("entity not found")
