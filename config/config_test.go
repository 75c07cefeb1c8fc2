package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := Default()
	if c.Upstream.TimeoutSeconds != 15 {
		t.Fatalf("upstream timeout = %d", c.Upstream.TimeoutSeconds)
	}
	if c.Dashboard.PageSize != 10 || c.Dashboard.DebounceMillis != 300 {
		t.Fatalf("dashboard defaults = %+v", c.Dashboard)
	}
	if !c.Dashboard.KeepModalOnError {
		t.Fatalf("keep_modal_on_error should default to true")
	}
	if c.Dashboard.CategoryRequired {
		t.Fatalf("category_required should default to false")
	}
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	c := Default()
	if err := c.LoadFile(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatalf("missing file must be tolerated: %v", err)
	}
}

func TestLoadFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"upstream":{"base_url":"http://localhost:8000/api/web/v1"},"dashboard":{"category_required":true}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Default()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Upstream.BaseURL != "http://localhost:8000/api/web/v1" {
		t.Fatalf("base url = %q", c.Upstream.BaseURL)
	}
	if !c.Dashboard.CategoryRequired {
		t.Fatalf("category_required not merged")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://upstream:9000")
	t.Setenv("PRODASH_CATEGORY_REQUIRED", "true")
	t.Setenv("PRODASH_KEEP_MODAL_ON_ERROR", "false")
	t.Setenv("PORT", "9090")

	c := Default()
	c.LoadFromEnv()

	if c.Upstream.BaseURL != "http://upstream:9000" {
		t.Fatalf("base url = %q", c.Upstream.BaseURL)
	}
	if !c.Dashboard.CategoryRequired {
		t.Fatalf("category_required override ignored")
	}
	if c.Dashboard.KeepModalOnError {
		t.Fatalf("keep_modal_on_error override ignored")
	}
	if c.Server.Port != 9090 {
		t.Fatalf("port = %d", c.Server.Port)
	}
}
