package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"yqhp/minbench/pkg/logger"
)

func TestSafeGo_RunsFunction(t *testing.T) {
	var wg sync.WaitGroup
	ran := false

	wg.Add(1)
	SafeGo("ok", func() {
		defer wg.Done()
		ran = true
	}, nil)
	wg.Wait()

	assert.True(t, ran)
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(nil) })

	done := make(chan any, 1)
	SafeGo("worker-7", func() {
		panic("boom")
	}, func(r any) {
		done <- r
	})

	assert.Equal(t, "boom", <-done)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "worker-7", logs.All()[0].ContextMap()["goroutine"])
}
