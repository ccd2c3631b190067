package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEngineHooks{}
	e.OnBuildStart(ctx, "exhaustive", 6)
	e.OnBuildComplete(ctx, "exhaustive", 120, time.Second, nil)
	e.OnWalkComplete(ctx, 40, time.Millisecond, errors.New("inconsistent"))
	e.OnCheckComplete(ctx, true, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "build")
	c.OnCacheMiss(ctx, "build")
	c.OnCacheSet(ctx, "build", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customEngine := &testEngineHooks{}
	SetEngineHooks(customEngine)
	if Engine() != customEngine {
		t.Error("SetEngineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Engine().OnBuildStart(context.Background(), "restricted", 4)
	if customEngine.builds != 1 {
		t.Errorf("custom hook saw %d builds, want 1", customEngine.builds)
	}

	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset() should restore NoopEngineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testEngineHooks{}
	SetEngineHooks(custom)
	SetEngineHooks(nil)
	if Engine() != custom {
		t.Error("SetEngineHooks(nil) should be ignored")
	}

	cache := &testCacheHooks{}
	SetCacheHooks(cache)
	SetCacheHooks(nil)
	if Cache() != cache {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

// Test implementations
type testEngineHooks struct {
	NoopEngineHooks
	builds int
}

func (h *testEngineHooks) OnBuildStart(context.Context, string, int) { h.builds++ }

type testCacheHooks struct{ NoopCacheHooks }
