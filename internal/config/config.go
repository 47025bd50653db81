package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultOrigin       = "https://tsgfulfillment.com"
	defaultBrand        = "TSG Fulfillment Services"
	defaultContentDir   = "content"
	defaultPublicDir    = "public"
	defaultLogLevel     = "info"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultListingSize  = 6
)

// Config captures the web server configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Paths   PathConfig
	Listing ListingConfig
	Log     LogConfig
	DevMode bool
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr returns the listen address derived from Port.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// SiteConfig holds the public identity used for canonical URLs and titles.
type SiteConfig struct {
	Origin       string
	Brand        string
	Description  string
	DefaultImage string
	TwitterSite  string
	Languages    []string
}

// PathConfig lists on-disk inputs. Empty values fall back to built-in data.
type PathConfig struct {
	RedirectsFile string
	ContentDir    string
	PublicDir     string
	ShellFile     string
	LocalesDir    string
}

// ListingConfig controls pagination of the services and industries listings.
type ListingConfig struct {
	PageSize int
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// ValidationError is returned when configuration values are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults and TSG_WEB_* environment variables.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			return os.LookupEnv(key)
		}
		return "", false
	}

	// Port resolution: prefer TSG_WEB_PORT, then the platform's PORT, else 8080
	port := stringWithDefault(lookup, "TSG_WEB_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  durationWithDefault(lookup, "TSG_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "TSG_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "TSG_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			Origin:       strings.TrimRight(stringWithDefault(lookup, "TSG_WEB_ORIGIN", defaultOrigin), "/"),
			Brand:        strings.TrimSpace(stringWithDefault(lookup, "TSG_WEB_BRAND", defaultBrand)),
			Description:  strings.TrimSpace(stringWithDefault(lookup, "TSG_WEB_DESCRIPTION", "")),
			DefaultImage: stringWithDefault(lookup, "TSG_WEB_DEFAULT_OG_IMAGE", ""),
			TwitterSite:  stringWithDefault(lookup, "TSG_WEB_TWITTER_SITE", ""),
			Languages:    csvWithDefault(lookup, "TSG_WEB_LANGUAGES", []string{"en"}),
		},
		Paths: PathConfig{
			RedirectsFile: stringWithDefault(lookup, "TSG_WEB_REDIRECTS_FILE", ""),
			ContentDir:    stringWithDefault(lookup, "TSG_WEB_CONTENT_DIR", defaultContentDir),
			PublicDir:     stringWithDefault(lookup, "TSG_WEB_PUBLIC_DIR", defaultPublicDir),
			ShellFile:     stringWithDefault(lookup, "TSG_WEB_SHELL", ""),
			LocalesDir:    stringWithDefault(lookup, "TSG_WEB_LOCALES_DIR", ""),
		},
		Listing: ListingConfig{
			PageSize: intWithDefault(lookup, "TSG_WEB_LISTING_PAGE_SIZE", defaultListingSize),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
		},
		// Dev mode: prefer TSG_WEB_DEV, fallback to DEV
		DevMode: boolWithDefault(lookup, "TSG_WEB_DEV", false) || boolWithDefault(lookup, "DEV", false),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var fields []string
	if c.Server.Port == "" {
		fields = append(fields, "Server.Port")
	} else if _, err := strconv.Atoi(c.Server.Port); err != nil {
		fields = append(fields, "Server.Port")
	}
	if u, err := url.Parse(c.Site.Origin); err != nil || u.Scheme == "" || u.Host == "" {
		fields = append(fields, "Site.Origin")
	}
	if c.Site.Brand == "" {
		fields = append(fields, "Site.Brand")
	}
	if len(c.Site.Languages) == 0 {
		fields = append(fields, "Site.Languages")
	}
	if c.Listing.PageSize <= 0 {
		fields = append(fields, "Listing.PageSize")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func csvWithDefault(lookup func(string) (string, bool), key string, fallback []string) []string {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return append([]string(nil), fallback...)
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
