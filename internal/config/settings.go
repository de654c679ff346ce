// Package config loads the optional plansmith.yaml settings file. Every
// field has a working default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "plansmith.yaml"

// Settings is the full plansmith configuration document.
type Settings struct {
	Directories Directories `yaml:"directories,omitempty"`
	LLM         LLM         `yaml:"llm,omitempty"`
	SMTP        SMTP        `yaml:"smtp,omitempty"`
	Notify      Notify      `yaml:"notify,omitempty"`
}

// Directories holds the workspace layout.
type Directories struct {
	Plans  string `yaml:"plans,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// LLM selects and tunes the plan generation backend.
type LLM struct {
	Backend        string `yaml:"backend,omitempty" validate:"omitempty,oneof=anthropic gemini"`
	Model          string `yaml:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=3600"`
}

// SMTP configures notification delivery. The password always comes from the
// SMTP_PASSWORD environment variable, never from the file.
type SMTP struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	From     string `yaml:"from,omitempty" validate:"omitempty,email"`
	Username string `yaml:"username,omitempty"`
}

// Notify overrides the repository coordinates used for links in
// notification emails. Empty fields fall back to git metadata and the
// GITHUB_* environment variables.
type Notify struct {
	Repository string `yaml:"repository,omitempty"`
	ServerURL  string `yaml:"server_url,omitempty" validate:"omitempty,url"`
	Branch     string `yaml:"branch,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Directories: Directories{
			Plans:  "plans",
			Output: "output",
		},
		LLM: LLM{
			// Backend and Model stay empty so backend detection can fall back
			// on whichever API key is present and each backend can apply its
			// own model default.
			TimeoutSeconds: 600,
		},
		SMTP: SMTP{
			Port: 587,
		},
		Notify: Notify{
			ServerURL: "https://github.com",
			Branch:    "main",
		},
	}
}

// Load reads settings from path, layering the file over the defaults. An
// empty path means DefaultPath; a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			settings := Default()
			return &settings, nil
		}
		return nil, planerrors.NewParseError(path, err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, planerrors.NewParseError(path, err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks field constraints on a settings document.
func Validate(s *Settings) error {
	if s == nil {
		return planerrors.NewValidationError("settings", "settings is nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			ve := ves[0]
			field := strings.ToLower(ve.StructNamespace())
			return planerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag()), err)
		}
		return planerrors.NewValidationError("settings", err.Error(), err)
	}

	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}
