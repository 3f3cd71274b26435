package appcenter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Path templates under the configured base URL. Placeholders are {name}.
const (
	PathOrgs                = "/v0.1/orgs"
	PathApps                = "/v0.1/orgs/{org}/apps"
	PathErrorGroups         = "/v0.1/apps/{org}/{app}/errors/errorGroups"
	PathErrorGroupErrors    = PathErrorGroups + "/{errorGroupId}/errors"
	PathEvents              = "/v0.1/apps/{org}/{app}/analytics/events"
	PathEventProperties     = PathEvents + "/{eventName}/properties"
	PathEventPropertyCounts = PathEventProperties + "/{eventPropertyName}/counts"
)

// Root array keys of the endpoint payloads.
const (
	RootErrorGroups     = "errorGroups"
	RootErrors          = "errors"
	RootEvents          = "events"
	RootEventProperties = "event_properties"
	RootValues          = "values"
)

// Expand substitutes the given placeholders, path-escaping each value.
// Placeholders without a value are left in place.
func Expand(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", url.PathEscape(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// DecodeRoot decodes the array stored under rootKey of a JSON object.
// A missing or null key yields no items.
func DecodeRoot[T any](body []byte, rootKey string) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	raw, ok := envelope[rootKey]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", rootKey, err)
	}
	return items, nil
}

// DecodeList decodes an endpoint that answers with a bare JSON array. An
// object body (the fail-open placeholder included) yields no items.
func DecodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return items, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
