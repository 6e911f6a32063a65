package providers

import (
	"sort"
	"testing"
)

func TestRegistryReload(t *testing.T) {
	r := NewRegistry()

	r.Reload(RegistryConfig{Providers: map[string]Config{
		"gemini":   {Type: "gemini", APIKey: "key", Enabled: true},
		"openai":   {Type: "openai", APIKey: "key", Enabled: true},
		"disabled": {Type: "gemini", APIKey: "key", Enabled: false},
		"nokey":    {Type: "gemini", Enabled: true},
		"weird":    {Type: "quantum", Enabled: true},
	}})

	names := r.List()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "gemini" || names[1] != "openai" {
		t.Errorf("registered = %v", names)
	}

	if !r.Has("gemini") {
		t.Error("gemini not registered")
	}
	if r.Has("disabled") || r.Has("nokey") || r.Has("weird") {
		t.Error("invalid providers were registered")
	}
}

func TestRegistryReloadReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register("old", NewMockGenerator("old", nil))

	r.Reload(RegistryConfig{Providers: map[string]Config{
		"fresh": {Type: "mock", Enabled: true},
	}})

	if r.Has("old") {
		t.Error("reload kept a stale generator")
	}
	if !r.Has("fresh") {
		t.Error("reload dropped the new generator")
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	mock := NewMockGenerator("mock", nil)
	r.Register("mock", mock)

	g, err := r.Get("mock")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.Name() != "mock" {
		t.Errorf("name = %q", g.Name())
	}

	if _, err := r.Get("absent"); err == nil {
		t.Error("expected error for unknown generator")
	}
}
