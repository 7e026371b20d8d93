package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API, e.g. "https://api.example.com".
//   - RequestTimeout: per-request HTTP timeout.
//   - StoragePath: SQLite file holding the session; empty keeps it in memory.
//   - Locale: "en" or "ar", language of error and checkout texts.
//   - LogLevel, LogFormat: see logging.New.
//   - WhatsAppPhone: shop number that receives checkout messages.
//   - ShopURL: storefront origin used to build cart links in orders.
//   - PassThroughHeaders: sent with every request.
type Config struct {
	APIBaseURL         string        `env:"API_BASE_URL"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	StoragePath        string        `env:"STORAGE_PATH"`
	Locale             string        `env:"LOCALE"`
	LogLevel           string        `env:"LOG_LEVEL"`
	LogFormat          string        `env:"LOG_FORMAT"`
	WhatsAppPhone      string        `env:"WHATSAPP_PHONE"`
	ShopURL            string        `env:"SHOP_URL"`
	PassThroughHeaders map[string]string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.RequestTimeout = 15 * time.Second
	c.StoragePath = "session.db"
	c.Locale = "en"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.WhatsAppPhone = "970569027059"
	c.ShopURL = ""
	c.PassThroughHeaders = map[string]string{"ngrok-skip-browser-warning": "true"}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
