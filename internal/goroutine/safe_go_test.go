package goroutine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/jovial-backend/internal/logger"
)

func TestGuard_PassesThroughError(t *testing.T) {
	want := errors.New("boom")
	err := Guard("task", func() error { return want })()
	assert.ErrorIs(t, err, want)
}

func TestGuard_RecoversPanic(t *testing.T) {
	logger.Discard()

	err := Guard("uploaded videos", func() error { panic("nil row") })()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uploaded videos")
	assert.Contains(t, err.Error(), "nil row")
}

func TestSafeGo_RunsFunction(t *testing.T) {
	done := make(chan struct{})
	SafeGo("worker", func() { close(done) })
	<-done
}
