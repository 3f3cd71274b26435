package dto

import (
	"bytes"
	"encoding/json"
)

const DefaultLimit = 30

// QueryType is the selected query kind. The UI sends it either as a plain
// string or as a selectable option {"value": ..., "label": ...}.
type QueryType string

func (q *QueryType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var option struct {
			Value *string `json:"value"`
		}
		if err := json.Unmarshal(data, &option); err != nil {
			return err
		}
		if option.Value == nil {
			*q = ""
			return nil
		}
		*q = QueryType(*option.Value)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*q = QueryType(s)
	return nil
}

type TimeRange struct {
	From string `json:"from" binding:"required" example:"2024-06-01T00:00:00Z"`
	To   string `json:"to" binding:"required" example:"2024-06-07T23:59:59Z"`
}

type DataQuery struct {
	RefID string    `json:"refId" example:"A"`
	Type  QueryType `json:"type" swaggertype:"string" example:"Error groups"`
	Limit *int      `json:"limit,omitempty" example:"30"`
}

// EffectiveLimit is the requested limit, or DefaultLimit when unset or not positive.
func (q DataQuery) EffectiveLimit() int {
	if q.Limit == nil || *q.Limit <= 0 {
		return DefaultLimit
	}
	return *q.Limit
}

type QueryDataRequest struct {
	Range     TimeRange         `json:"range" binding:"required"`
	Timezone  string            `json:"timezone" example:"Europe/Berlin"`
	Variables map[string]string `json:"variables,omitempty"`
	Queries   []DataQuery       `json:"queries" binding:"required,min=1,dive"`
}
