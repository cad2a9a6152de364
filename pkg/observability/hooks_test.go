package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Harvest hooks
	h := NoopHarvestHooks{}
	h.OnQueryStart(ctx, "react", 40)
	h.OnPageFetched(ctx, "react", 0, 40, 250)
	h.OnQueryComplete(ctx, "react", 12, time.Second, nil)
	h.OnOutputWritten(ctx, "react", "react_new_emails.txt", 12)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "search:react:0:250")
	c.OnCacheMiss(ctx, "search:react:1:250")
	c.OnCacheSet(ctx, "search:react:1:250", 1024)

	// HTTP hooks
	n := NoopHTTPHooks{}
	n.OnRequest(ctx, "GET", "registry.npmjs.org", "/-/v1/search")
	n.OnResponse(ctx, "GET", "registry.npmjs.org", "/-/v1/search", 200, time.Second)
	n.OnError(ctx, "GET", "registry.npmjs.org", "/-/v1/search", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Harvest().(NoopHarvestHooks); !ok {
		t.Error("Harvest() should return NoopHarvestHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customHarvest := &testHarvestHooks{}
	SetHarvestHooks(customHarvest)
	if Harvest() != customHarvest {
		t.Error("SetHarvestHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Harvest().(NoopHarvestHooks); !ok {
		t.Error("Reset() should restore NoopHarvestHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHarvestHooks{}
	SetHarvestHooks(custom)

	SetHarvestHooks(nil)

	if Harvest() != custom {
		t.Error("SetHarvestHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testHarvestHooks struct{ NoopHarvestHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
