package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"guestCart": map[string]any{
			"bucketUrl": "mem://",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"cart": map[string]any{
			"guestMerge": map[string]any{
				"enabled": false,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GUESTCART_BUCKETURL", want: "guestCart.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CART_GUESTMERGE_ENABLED", want: "cart.guestMerge.enabled"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 100, cfg.Catalog.MaxPageSize)
	if assert.NotNil(t, cfg.GuestCart) {
		assert.Equal(t, "mem://", cfg.GuestCart.BucketURL)
		assert.Equal(t, "guest-carts/", cfg.GuestCart.KeyPrefix)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = "memory"
	cfg.Catalog.DefaultPageSize = 24
	cfg.GuestCart = &GuestCartConfig{BucketURL: "file:///tmp/guest"}
	applyDefaults(cfg)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 24, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, "file:///tmp/guest", cfg.GuestCart.BucketURL)
	assert.Equal(t, "guest-carts/", cfg.GuestCart.KeyPrefix)
}
