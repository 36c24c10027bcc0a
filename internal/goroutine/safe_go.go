package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/jovial-backend/internal/logger"
)

// Guard оборачивает задачу для errgroup: panic превращается в ошибку и пишется в лог
func Guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.WithFields(logrus.Fields{
					"task":  name,
					"stack": string(debug.Stack()),
				}).Errorf("Panic in goroutine: %v", r)
				err = fmt.Errorf("%s: panic: %v", name, r)
			}
		}()
		return fn()
	}
}

// SafeGo запускает горутину с обработкой panic
func SafeGo(name string, fn func()) {
	go func() {
		_ = Guard(name, func() error {
			fn()
			return nil
		})()
	}()
}
