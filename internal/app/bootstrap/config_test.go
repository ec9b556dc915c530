package bootstrap

import (
	"reflect"
	"testing"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:                 "mongodb://localhost:27017",
		MongoDatabase:            "hydrasite",
		APIEnabled:               true,
		APIBaseURL:               "http://localhost:8080/api",
		BaseURL:                  "http://localhost:8080",
		DefaultLocale:            "en",
		StorageType:              "local",
		ContactRateLimitEnabled:  true,
		ContactRateLimitAttempts: 5,
	}
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", func(*AppConfig) {}, false},
		{"arabic default", func(c *AppConfig) { c.DefaultLocale = "ar" }, false},
		{"unknown locale", func(c *AppConfig) { c.DefaultLocale = "fr" }, true},
		{"relative api url", func(c *AppConfig) { c.APIBaseURL = "/api" }, true},
		{"ftp api url", func(c *AppConfig) { c.APIBaseURL = "ftp://example.com/api" }, true},
		{"bad base url", func(c *AppConfig) { c.BaseURL = "" }, true},
		{"bad mongo uri without api", func(c *AppConfig) {
			c.MongoURI = "postgres://db"
			c.APIEnabled = false
		}, false},
		{"zero rate limit", func(c *AppConfig) { c.ContactRateLimitAttempts = 0 }, true},
		{"rate limit off", func(c *AppConfig) {
			c.ContactRateLimitAttempts = 0
			c.ContactRateLimitEnabled = false
		}, false},
		{"unknown storage", func(c *AppConfig) { c.StorageType = "ftp" }, true},
		{"trusted proxies", func(c *AppConfig) { c.TrustedProxies = "10.0.0.0/8, 192.0.2.10" }, false},
		{"bad trusted proxy", func(c *AppConfig) { c.TrustedProxies = "10.0.0.0/8,lb.internal" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAppConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsAPIPath(t *testing.T) {
	tests := map[string]bool{
		"/api":          true,
		"/api/":         true,
		"/api/contact/": true,
		"/apiary":       false,
		"/contact":      false,
		"/products/api": false,
	}
	for path, want := range tests {
		if got := isAPIPath(path); got != want {
			t.Errorf("isAPIPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" https://a.example , ,https://b.example,")
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\") = %v, want nil", got)
	}
}
