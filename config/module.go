// Package config loads a flowpath project's configuration file: the module
// name, the field-mapping file the pipeline checker produced, and the
// default log level.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml"

	"flowpathc/common"
	"flowpathc/report"
)

// tomlProject is a flowpath project as it is encoded in TOML.
type tomlProject struct {
	Name           string `toml:"name"`
	FieldMapping   string `toml:"field-mapping"`
	FlowpathVer    string `toml:"flowpath-version"`
	DefaultLogging string `toml:"log-level"`
}

// Project is a loaded, validated flowpath project.
type Project struct {
	// AbsPath is the absolute path to the project's root directory (the
	// directory the project file lives in).
	AbsPath string

	// Name is the project's module name.
	Name string

	// FieldMappingPath is the absolute path to the project's field-mapping
	// file, or "" if it does not declare one.
	FieldMappingPath string

	// LogLevel is one of the report.LogLevel* constants, defaulted to
	// LogLevelWarn if the project file omits log-level.
	LogLevel int
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadProject loads and validates the project file at
// filepath.Join(rootAbsPath, common.ModuleFileName).
func LoadProject(rootAbsPath string) (*Project, error) {
	path := filepath.Join(rootAbsPath, common.ModuleFileName)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open project file at `%s`: %w", path, err)
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file at `%s`: %w", path, err)
	}

	tp := &tomlProject{}
	if err := toml.Unmarshal(buf, tp); err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %w", path, err)
	}

	if tp.Name == "" {
		return nil, fmt.Errorf("project file at `%s` is missing a module name", path)
	}
	if !identifierPattern.MatchString(tp.Name) {
		return nil, fmt.Errorf("module name `%s` must be a valid identifier", tp.Name)
	}

	proj := &Project{
		AbsPath: rootAbsPath,
		Name:    tp.Name,
		LogLevel: logLevelFromString(tp.DefaultLogging),
	}

	if tp.FieldMapping != "" {
		proj.FieldMappingPath = filepath.Join(rootAbsPath, tp.FieldMapping)
	}

	return proj, nil
}

func logLevelFromString(s string) int {
	switch s {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "verbose":
		return report.LogLevelVerbose
	case "warn", "":
		return report.LogLevelWarn
	default:
		return report.LogLevelWarn
	}
}
