package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gownshop/internal/flagx"
	"github.com/dmitrijs2005/gownshop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from "empty", so a file that only sets the base URL
// leaves the other defaults alone.
type JsonConfig struct {
	APIBaseURL         *string           `json:"api_base_url"`
	RequestTimeout     *timex.Duration   `json:"request_timeout"`
	StoragePath        *string           `json:"storage_path"`
	Locale             *string           `json:"locale"`
	LogLevel           *string           `json:"log_level"`
	LogFormat          *string           `json:"log_format"`
	WhatsAppPhone      *string           `json:"whatsapp_phone"`
	ShopURL            *string           `json:"shop_url"`
	PassThroughHeaders map[string]string `json:"pass_through_headers"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.StoragePath, jc.StoragePath)
	setString(&cfg.Locale, jc.Locale)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.WhatsAppPhone, jc.WhatsAppPhone)
	setString(&cfg.ShopURL, jc.ShopURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PassThroughHeaders != nil {
		cfg.PassThroughHeaders = jc.PassThroughHeaders
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
