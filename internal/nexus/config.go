package nexus

import (
	"context"
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError carries a stable code alongside the cause.
type ConfigError struct {
	Code    string
	Message string
	Field   string
	Cause   error
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound = "CONFIG_FILE_NOT_FOUND"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
	ErrCodeSelfCheck    = "CONFIG_SELF_CHECK_FAILED"
)

// SelfValidator is implemented by config structs with rules beyond struct tags.
type SelfValidator interface {
	Validate() error
}

// LoaderOptions contains configuration for the loader
type LoaderOptions struct {
	DefaultFileName string
	FileFlag        string
	FileName        string
	OnlyEnvironment bool
	Timeout         time.Duration
}

// Loader reads env vars, optionally overlays a config file and validates.
type Loader struct {
	options  LoaderOptions
	validate *validator.Validate
}

// LoaderOption is a functional option for configuring the loader
type LoaderOption func(*LoaderOptions)

// WithDefaultFileName sets the file used when no flag is given and it exists.
func WithDefaultFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DefaultFileName = fileName
	}
}

// WithFileFlag sets the command line flag naming the configuration file.
func WithFileFlag(name string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileFlag = name
		o.FileName = ""
	}
}

// WithFileName pins a configuration file.
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
		o.FileFlag = ""
	}
}

// WithOnlyEnvironment disables file loading.
func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileFlag = ""
		o.FileName = ""
	}
}

// WithTimeout bounds the whole load.
func WithTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.Timeout = timeout
	}
}

// NewLoader creates a new configuration loader with options
func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
		FileFlag:        "config",
		Timeout:         10 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Loader{options: options, validate: validator.New()}
}

// Load loads configuration into cfg, which must be a pointer to a struct.
func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

// LoadWithContext loads configuration with context support
func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	if l.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.options.Timeout)
		defer cancel()
	}

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{Code: ErrCodeEnvironment, Message: "failed to read environment variables", Cause: err}
	}

	if !l.options.OnlyEnvironment {
		if fileName := l.resolveFileName(); fileName != "" {
			if err := l.loadFromFile(cfg, fileName); err != nil {
				return err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := l.validate.Struct(cfg); err != nil {
		return &ConfigError{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
	}

	if sv, ok := cfg.(SelfValidator); ok {
		if err := sv.Validate(); err != nil {
			return &ConfigError{Code: ErrCodeSelfCheck, Message: "configuration self-check failed", Cause: err}
		}
	}

	return nil
}

func (l *Loader) loadFromFile(cfg interface{}, fileName string) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(fileName, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileNotFound,
			Message: fmt.Sprintf("failed to read configuration file: %s", fileName),
			Cause:   err,
		}
	}

	// file values win over env-defaults; explicit zero values in the file do not
	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return &ConfigError{Code: ErrCodeMerge, Message: "failed to merge configuration sources", Cause: err}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.FileName != "" {
		return l.options.FileName
	}
	if l.options.FileFlag == "" {
		return ""
	}

	if f := flag.Lookup(l.options.FileFlag); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}

	if l.options.DefaultFileName == "" {
		return ""
	}
	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}
	return ""
}
