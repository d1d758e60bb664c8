package trace_test

import (
	"runtime"
	"testing"

	"github.com/on-the-ground/monad_ive_go/monads/deferredio"
	"github.com/on-the-ground/monad_ive_go/monads/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestTraced_StaysLazy(t *testing.T) {
	logger, logs := newObservedLogger()
	calls := 0
	io := trace.Traced(logger, trace.NewConfig("answer", zapcore.InfoLevel), deferredio.New(func() int {
		calls++
		return 42
	}))
	io = deferredio.Map(io, func(n int) int { return n + 1 })

	assert.Zero(t, calls)
	assert.Zero(t, logs.Len())

	assert.Equal(t, 43, io.Run())
	assert.Equal(t, 1, calls)
}

func TestTraced_LogsStartAndFinish(t *testing.T) {
	logger, logs := newObservedLogger()
	io := trace.Traced(logger, trace.NewConfig("answer", zapcore.InfoLevel), deferredio.Of(42))

	assert.Equal(t, 42, io.Run())

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, trace.MsgStarted, entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, trace.MsgFinished, entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)

	started := entries[0].ContextMap()
	finished := entries[1].ContextMap()
	assert.Equal(t, "answer", started["name"])
	assert.NotEmpty(t, started["runId"])
	assert.Equal(t, started["runId"], finished["runId"])
	assert.Contains(t, finished, "elapsed")
	assert.Contains(t, finished, "startedAt")
}

func TestTraced_EachRunGetsItsOwnId(t *testing.T) {
	logger, logs := newObservedLogger()
	io := trace.Traced(logger, trace.Config{}, deferredio.Of("x"))

	io.Run()
	io.Run()

	finished := logs.FilterMessage(trace.MsgFinished).All()
	require.Len(t, finished, 2)
	assert.NotEqual(t, finished[0].ContextMap()["runId"], finished[1].ContextMap()["runId"])
	assert.Equal(t, "deferredio", finished[0].ContextMap()["name"])
}

func TestTraced_GoexitIsLoggedAsAborted(t *testing.T) {
	logger, logs := newObservedLogger()
	io := trace.Traced(logger, trace.Config{}, deferredio.New(func() int {
		runtime.Goexit()
		return 0
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		io.Run()
	}()
	<-done

	aborted := logs.FilterMessage(trace.MsgAborted).All()
	require.Len(t, aborted, 1)
	assert.Equal(t, zapcore.ErrorLevel, aborted[0].Level)
	assert.Zero(t, logs.FilterMessage(trace.MsgFinished).Len())
}

func TestTraced_PanicIsLoggedAndPropagated(t *testing.T) {
	logger, logs := newObservedLogger()
	io := trace.Traced(logger, trace.NewConfig("", zapcore.DebugLevel), deferredio.New(func() int {
		panic("boom")
	}))

	assert.PanicsWithValue(t, "boom", func() { io.Run() })

	aborted := logs.FilterMessage(trace.MsgAborted).All()
	require.Len(t, aborted, 1)
	assert.Equal(t, zapcore.ErrorLevel, aborted[0].Level)
	assert.Zero(t, logs.FilterMessage(trace.MsgFinished).Len())
}

func TestTraced_NilLoggerDiscards(t *testing.T) {
	io := trace.Traced(nil, trace.Config{}, deferredio.Of(7))
	assert.Equal(t, 7, io.Run())
}

func TestTraced_BelowLevelIsSilent(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	io := trace.Traced(zap.New(core), trace.NewConfig("quiet", zapcore.DebugLevel), deferredio.Of(1))

	assert.Equal(t, 1, io.Run())
	assert.Zero(t, logs.Len())
}

func TestNewConsoleLogger(t *testing.T) {
	logger := trace.NewConsoleLogger()
	io := trace.Traced(logger, trace.NewConfig("console", zapcore.DebugLevel), deferredio.Of("ok"))
	assert.Equal(t, "ok", io.Run())
	_ = logger.Sync()
}
