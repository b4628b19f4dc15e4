package pipeline

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"flowpathc/internal/testutil"
	"flowpathc/report"
)

func TestFieldMappingSetAndIDFor(t *testing.T) {
	fm := NewFieldMapping()
	fm.Set("eth", "src", 7)

	if got := fm.IDFor(nil, "eth", "src"); got != 7 {
		t.Fatalf("IDFor = %d, want 7", got)
	}
	if fm.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", fm.Len())
	}
}

func TestFieldMappingIDForUnknownRaises(t *testing.T) {
	fm := NewFieldMapping()

	recovered := testutil.AssertPanics(t, func() {
		fm.IDFor(nil, "eth", "src")
	})
	lce, ok := recovered.(*report.LocalCompileError)
	if !ok {
		t.Fatalf("expected *report.LocalCompileError, got %T", recovered)
	}
	if lce.Kind != report.KindUnextractedField {
		t.Fatalf("expected KindUnextractedField, got %s", lce.Kind)
	}
}

func TestLoadFieldMappingFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.toml")

	contents := `
[[field]]
layout = "eth"
path = "src"
id = 7

[[field]]
layout = "eth"
path = "dst"
id = 8
`
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}

	fm, err := LoadFieldMapping(path)
	testutil.AssertNoError(t, err)

	if got := fm.IDFor(nil, "eth", "src"); got != 7 {
		t.Fatalf("IDFor(eth, src) = %d, want 7", got)
	}
	if got := fm.IDFor(nil, "eth", "dst"); got != 8 {
		t.Fatalf("IDFor(eth, dst) = %d, want 8", got)
	}
}

func TestLoadFieldMappingMissingFile(t *testing.T) {
	_, err := LoadFieldMapping(filepath.Join(os.TempDir(), "does-not-exist-flowpathc.toml"))
	if err == nil {
		t.Fatalf("expected an error for a missing field-mapping file")
	}
}
