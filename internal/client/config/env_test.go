package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.shop.example")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("LOCALE", "ar")
	t.Setenv("LOG_FORMAT", "zerolog")
	t.Setenv("WHATSAPP_PHONE", "972500000000")
	t.Setenv("SHOP_URL", "https://shop.example")

	cfg := defaults()
	parseEnv(cfg)

	want := defaults()
	want.APIBaseURL = "https://api.shop.example"
	want.RequestTimeout = 5 * time.Second
	want.StoragePath = ""
	want.Locale = "ar"
	want.LogFormat = "zerolog"
	want.WhatsAppPhone = "972500000000"
	want.ShopURL = "https://shop.example"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_UnsetKeepsValues(t *testing.T) {
	cfg := defaults()
	parseEnv(cfg)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	require.Panics(t, func() { parseEnv(defaults()) })
}
