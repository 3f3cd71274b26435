package dto

import "appcenter-datasource-backend/internal/frame"

// DataResponse is the outcome of one query: frames, or the error that aborted it.
type DataResponse struct {
	Frames []*frame.Frame `json:"frames,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type QueryDataResponse struct {
	RequestID string                  `json:"requestId"`
	Results   map[string]DataResponse `json:"results"`
}
