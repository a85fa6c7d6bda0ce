package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath    = "."
	defaultBaseURL = "http://localhost:8000/api"

	// EnvPrefix scopes environment overrides, e.g. STOREFRONT_API_BASEURL -> api.baseURL
	EnvPrefix = "STOREFRONT_"
)

// Credential storage drivers.
const (
	CredentialDriverSQLite = "sqlite"
	CredentialDriverBlob   = "blob"
	CredentialDriverMemory = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	API APIConfig `json:"api" yaml:"api"`

	Credential CredentialConfig `json:"credential" yaml:"credential"`

	Store StoreConfig `json:"store" yaml:"store"`

	// FakeAPI configures the in-memory storefront API served by `storefront fake-api`
	FakeAPI FakeAPIConfig `json:"fakeAPI" yaml:"fakeAPI"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig describes the remote storefront API.
type APIConfig struct {
	BaseURL  string        `json:"baseURL" yaml:"baseURL"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	PageSize int           `json:"pageSize" yaml:"pageSize"`

	// SignOutPath receives a best-effort token invalidation on sign-out; empty disables it
	SignOutPath string `json:"signOutPath" yaml:"signOutPath"`
}

// CredentialConfig selects where the access/refresh pair is persisted.
type CredentialConfig struct {
	Driver    string `json:"driver" yaml:"driver"`
	Path      string `json:"path" yaml:"path"`
	BucketURL string `json:"bucketURL" yaml:"bucketURL"`
}

// StoreConfig tunes the state stores.
type StoreConfig struct {
	// DiscardStaleResults drops settlements older than the last applied one for the same operation
	DiscardStaleResults bool `json:"discardStaleResults" yaml:"discardStaleResults"`
}

type FakeAPIConfig struct {
	Port          int           `json:"port" yaml:"port"`
	AccessSecret  string        `json:"accessSecret" yaml:"accessSecret"`
	RefreshSecret string        `json:"refreshSecret" yaml:"refreshSecret"`
	AccessTTL     time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL    time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// Default returns the configuration used when no file or variable overrides a value.
func Default() *Config {
	cfg := &Config{}
	cfg.Env.Env = "local"
	cfg.Env.ServiceName = "storefront"
	cfg.Env.Log = Log{Pretty: true, Level: "info"}
	cfg.API = APIConfig{
		BaseURL:     defaultBaseURL,
		Timeout:     30 * time.Second,
		PageSize:    10,
		SignOutPath: "/users/token/blacklist/",
	}
	cfg.Credential = CredentialConfig{
		Driver: CredentialDriverSQLite,
		Path:   filepath.Join("data", "storefront.db"),
	}
	cfg.Store = StoreConfig{DiscardStaleResults: true}
	cfg.FakeAPI = FakeAPIConfig{
		Port:          8000,
		AccessSecret:  "fake-access-secret",
		RefreshSecret: "fake-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	}

	return cfg
}

// LoadWithEnv loads <currEnv>.yaml through koanf on top of base, then applies
// environment variables. A missing file leaves base untouched.
func LoadWithEnv[T any](base *T, currEnv string, configPath ...string) (*T, error) {
	cfg := base
	if cfg == nil {
		cfg = new(T)
	}
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", candidate)
		}

		break
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// STOREFRONT_API_BASEURL -> api.baseURL when the YAML already has that key
			return canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv(Default(), "config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.PageSize <= 0 {
		c.API.PageSize = 10
	}

	switch c.Credential.Driver {
	case CredentialDriverSQLite, CredentialDriverMemory:
	case CredentialDriverBlob:
		if c.Credential.BucketURL == "" {
			return errors.New("credential.bucketURL is required for the blob driver")
		}
	default:
		return errors.Errorf("unknown credential driver: %s", c.Credential.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
