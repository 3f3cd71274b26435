package model

import (
	"encoding/json"
	"time"
)

// Org is one entry of GET /v0.1/orgs.
type Org struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// App is one entry of GET /v0.1/orgs/{org}/apps.
type App struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	OS          string `json:"os"`
	Platform    string `json:"platform"`
}

type ErrorGroup struct {
	ErrorGroupID     string    `json:"errorGroupId"`
	AppVersion       string    `json:"appVersion"`
	AppBuild         string    `json:"appBuild"`
	Count            int64     `json:"count"`
	DeviceCount      int64     `json:"deviceCount"`
	FirstOccurrence  time.Time `json:"firstOccurrence"`
	LastOccurrence   time.Time `json:"lastOccurrence"`
	ExceptionType    string    `json:"exceptionType"`
	ExceptionMessage *string   `json:"exceptionMessage"`
	CodeRaw          *string   `json:"codeRaw"`
	State            string    `json:"state"`

	AppName string `json:"-"`
}

func (g *ErrorGroup) SetAppName(name string) { g.AppName = name }

// Message is the exception message, or the raw code for native crashes.
func (g *ErrorGroup) Message() string {
	if g.ExceptionMessage != nil {
		return *g.ExceptionMessage
	}
	if g.CodeRaw != nil {
		return *g.CodeRaw
	}
	return ""
}

func (g *ErrorGroup) Field(name string) interface{} {
	switch name {
	case "count":
		return g.Count
	case "deviceCount":
		return g.DeviceCount
	case "appVersion":
		return g.AppVersion
	case "appBuild":
		return g.AppBuild
	case "appName":
		return g.AppName
	case "firstOccurrence":
		return g.FirstOccurrence
	case "lastOccurrence":
		return g.LastOccurrence
	case "state":
		return g.State
	}
	return nil
}

type ErrorRecord struct {
	ErrorID    string    `json:"errorId"`
	Timestamp  time.Time `json:"timestamp"`
	DeviceName string    `json:"deviceName"`
	OSType     string    `json:"osType"`
	OSVersion  string    `json:"osVersion"`
	UserID     string    `json:"userId"`
	ErrorType  string    `json:"errorType"`

	AppName    string `json:"-"`
	AppVersion string `json:"-"`
}

func (e *ErrorRecord) SetAppName(name string) { e.AppName = name }

func (e *ErrorRecord) Field(name string) interface{} {
	switch name {
	case "timestamp":
		return e.Timestamp
	case "appName":
		return e.AppName
	case "appVersion":
		return e.AppVersion
	case "deviceName":
		return e.DeviceName
	case "osType":
		return e.OSType
	}
	return nil
}

type Event struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	DeviceCount         int64   `json:"device_count"`
	PreviousDeviceCount int64   `json:"previous_device_count"`
	Count               int64   `json:"count"`
	PreviousCount       int64   `json:"previous_count"`
	CountPerDevice      float64 `json:"count_per_device"`

	AppName string `json:"-"`
}

func (e *Event) SetAppName(name string) { e.AppName = name }

func (e *Event) Field(name string) interface{} {
	switch name {
	case "count":
		return e.Count
	case "device_count":
		return e.DeviceCount
	case "name":
		return e.Name
	case "appName":
		return e.AppName
	}
	return nil
}

// EventProperty is one property name of a custom event. App Center lists
// them as bare strings.
type EventProperty struct {
	Name string

	AppName string
}

func (p *EventProperty) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.Name)
}

func (p *EventProperty) SetAppName(name string) { p.AppName = name }

// EventPropertyValue is one value bucket of an event property.
type EventPropertyValue struct {
	Name          string `json:"name"`
	Count         int64  `json:"count"`
	PreviousCount int64  `json:"previous_count"`

	AppName string `json:"-"`
}

func (v *EventPropertyValue) SetAppName(name string) { v.AppName = name }

func (v *EventPropertyValue) Field(name string) interface{} {
	switch name {
	case "count":
		return v.Count
	case "name":
		return v.Name
	}
	return nil
}
