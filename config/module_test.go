package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"flowpathc/common"
	"flowpathc/internal/testutil"
	"flowpathc/report"
)

func writeProjectFile(t *testing.T, dir, contents string) {
	t.Helper()
	path := filepath.Join(dir, common.ModuleFileName)
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}
}

func TestLoadProjectDefaults(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `name = "border_router"`)

	proj, err := LoadProject(dir)
	testutil.AssertNoError(t, err)

	if proj.Name != "border_router" {
		t.Fatalf("Name = %q, want border_router", proj.Name)
	}
	if proj.LogLevel != report.LogLevelWarn {
		t.Fatalf("LogLevel = %d, want LogLevelWarn", proj.LogLevel)
	}
	if proj.FieldMappingPath != "" {
		t.Fatalf("expected no field-mapping path, got %q", proj.FieldMappingPath)
	}
}

func TestLoadProjectFieldMappingAndLogLevel(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `
name = "border_router"
field-mapping = "fields.toml"
log-level = "verbose"
`)

	proj, err := LoadProject(dir)
	testutil.AssertNoError(t, err)

	want := filepath.Join(dir, "fields.toml")
	if proj.FieldMappingPath != want {
		t.Fatalf("FieldMappingPath = %q, want %q", proj.FieldMappingPath, want)
	}
	if proj.LogLevel != report.LogLevelVerbose {
		t.Fatalf("LogLevel = %d, want LogLevelVerbose", proj.LogLevel)
	}
}

func TestLoadProjectRejectsBadName(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `name = "not a valid name"`)

	_, err := LoadProject(dir)
	if err == nil {
		t.Fatalf("expected an error for an invalid module name")
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadProject(dir)
	if err == nil {
		t.Fatalf("expected an error for a missing project file")
	}
}
