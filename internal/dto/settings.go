package dto

// SettingsResponse is the settings surface as shown to the UI. The API key
// itself is never returned; Key is a masked echo of it.
type SettingsResponse struct {
	URL              string  `json:"url" example:"https://api.appcenter.ms"`
	OrgName          string  `json:"orgName" example:"my-org"`
	AppName          string  `json:"appName" example:"ios-app;android-app"`
	Key              string  `json:"key" example:"****f00d"`
	APIKeyConfigured bool    `json:"apiKeyConfigured"`
	RateLimit        float64 `json:"rateLimit" example:"0"`
}

// UpdateSettingsRequest replaces the settings surface. An empty APIKey (and
// Key) keeps the stored key.
type UpdateSettingsRequest struct {
	URL       string  `json:"url"`
	OrgName   string  `json:"orgName"`
	AppName   string  `json:"appName"`
	Key       string  `json:"key"`
	APIKey    string  `json:"apiKey"`
	RateLimit float64 `json:"rateLimit" binding:"gte=0"`
}
