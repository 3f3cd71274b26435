package model

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DataSourceConfig is the resolved configuration of one data-source instance.
// It is never mutated after construction.
type DataSourceConfig struct {
	BaseURL   string
	OrgName   string
	AppNames  []string
	APIKey    string
	RateLimit float64
}

// StoredSettings is the persisted form of the settings surface.
type StoredSettings struct {
	URL       string  `json:"url"`
	OrgName   string  `json:"orgName"`
	AppName   string  `json:"appName"`
	APIKey    string  `json:"apiKey"`
	RateLimit float64 `json:"rateLimit"`
}

func (s StoredSettings) DataSourceConfig() DataSourceConfig {
	return NewDataSourceConfig(s.URL, s.OrgName, s.AppName, s.APIKey, s.RateLimit)
}

func NewDataSourceConfig(baseURL, orgName, appNames, apiKey string, rateLimit float64) DataSourceConfig {
	return DataSourceConfig{
		BaseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		OrgName:   strings.TrimSpace(orgName),
		AppNames:  ParseAppNames(appNames),
		APIKey:    apiKey,
		RateLimit: rateLimit,
	}
}

// ParseAppNames splits a semicolon-delimited app list, dropping blanks and repeats.
func ParseAppNames(raw string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, name := range strings.Split(raw, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// SanitizeName replaces every run of whitespace with a single dash.
func SanitizeName(name string) string {
	return whitespaceRun.ReplaceAllString(name, "-")
}
