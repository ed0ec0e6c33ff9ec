package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Paging modes a category can declare.
const (
	ModeNone           = "none"
	ModePagination     = "pagination"
	ModeLoadMore       = "load_more"
	ModeInfiniteScroll = "infinite_scroll"
)

const (
	DefaultMaxPages     = 12
	DefaultScrollSteps  = 25
	DefaultScrollWaitMS = 400
)

// Config is the immutable run configuration, loaded once at startup.
type Config struct {
	Headless  bool       `yaml:"headless"`
	UserAgent string     `yaml:"user_agent"`
	Suppliers []Supplier `yaml:"suppliers"`

	// Env-derived settings, not part of the YAML document.
	Debug   Debug   `yaml:"-"`
	Logging Logging `yaml:"-"`
}

type Supplier struct {
	Supplier       string     `yaml:"supplier"`
	BaseURL        string     `yaml:"base_url"`
	ConsentButtons []string   `yaml:"consent_buttons"`
	Categories     []Category `yaml:"categories"`
}

type Category struct {
	Name      string    `yaml:"name"`
	URL       string    `yaml:"url"`
	Selectors Selectors `yaml:"selectors"`
	Paging    Paging    `yaml:"paging"`
}

// Selectors carries the required card selector plus optional per-field
// cascade overrides. Empty lists fall back to the built-in generic cascades.
type Selectors struct {
	Card  string   `yaml:"card"`
	Name  []string `yaml:"name"`
	Price []string `yaml:"price"`
	Brand []string `yaml:"brand"`
	Unit  []string `yaml:"unit"`
	Image []string `yaml:"image"`
	Link  []string `yaml:"link"`
}

type Paging struct {
	Mode           string `yaml:"mode"`
	NextButton     string `yaml:"next_button"`
	MaxPages       int    `yaml:"max_pages"`
	LoadMoreButton string `yaml:"load_more_button"`
	ScrollSteps    int    `yaml:"scroll_steps"`
	ScrollWaitMS   int    `yaml:"scroll_wait_ms"`
}

func (p Paging) ScrollWait() time.Duration {
	return time.Duration(p.ScrollWaitMS) * time.Millisecond
}

type Debug struct {
	Screenshots bool
	DataDir     string
}

type Logging struct {
	Level  string
	Format string
}

// Load reads and validates the YAML run configuration. Any failure here is
// fatal to the run; no browsing starts on a broken config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{Headless: true}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.Debug = Debug{
		Screenshots: getBoolOrDefault("SCRAPER_SCREENSHOTS", false),
		DataDir:     getEnvOrDefault("SCRAPER_DATA_DIR", "data"),
	}
	cfg.Logging = Logging{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	for si := range c.Suppliers {
		for ci := range c.Suppliers[si].Categories {
			p := &c.Suppliers[si].Categories[ci].Paging
			if p.Mode == "" {
				p.Mode = ModeNone
			}
			if p.MaxPages <= 0 {
				p.MaxPages = DefaultMaxPages
			}
			if p.ScrollSteps <= 0 {
				p.ScrollSteps = DefaultScrollSteps
			}
			if p.ScrollWaitMS <= 0 {
				p.ScrollWaitMS = DefaultScrollWaitMS
			}
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Suppliers) == 0 {
		return fmt.Errorf("config has no suppliers")
	}
	for _, sup := range c.Suppliers {
		if sup.Supplier == "" {
			return fmt.Errorf("supplier name is required")
		}
		if sup.BaseURL == "" {
			return fmt.Errorf("supplier %q: base_url is required", sup.Supplier)
		}
		if len(sup.Categories) == 0 {
			return fmt.Errorf("supplier %q: at least one category is required", sup.Supplier)
		}
		for _, cat := range sup.Categories {
			if cat.Name == "" {
				return fmt.Errorf("supplier %q: category name is required", sup.Supplier)
			}
			if cat.URL == "" {
				return fmt.Errorf("supplier %q, category %q: url is required", sup.Supplier, cat.Name)
			}
			if cat.Selectors.Card == "" {
				return fmt.Errorf("supplier %q, category %q: selectors.card is required", sup.Supplier, cat.Name)
			}
			switch cat.Paging.Mode {
			case ModeNone, ModePagination, ModeLoadMore, ModeInfiniteScroll:
			default:
				return fmt.Errorf("supplier %q, category %q: unknown paging mode %q",
					sup.Supplier, cat.Name, cat.Paging.Mode)
			}
			if cat.Paging.Mode == ModePagination && cat.Paging.NextButton == "" {
				return fmt.Errorf("supplier %q, category %q: pagination mode requires next_button",
					sup.Supplier, cat.Name)
			}
			if cat.Paging.Mode == ModeLoadMore && cat.Paging.LoadMoreButton == "" {
				return fmt.Errorf("supplier %q, category %q: load_more mode requires load_more_button",
					sup.Supplier, cat.Name)
			}
		}
	}
	return nil
}

// TotalCategories returns the number of configured (supplier, category)
// pairs; the per-category item target divides the global goal by this.
func (c *Config) TotalCategories() int {
	n := 0
	for _, sup := range c.Suppliers {
		n += len(sup.Categories)
	}
	return n
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
