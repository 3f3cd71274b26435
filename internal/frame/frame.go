// Package frame builds the column-oriented tables returned for every query.
package frame

import (
	"errors"
	"fmt"
)

type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeTime   FieldType = "time"
)

var (
	ErrRowLength   = errors.New("row length does not match field count")
	ErrFieldLength = errors.New("field length does not match row count")
)

type FieldSpec struct {
	Name string
	Type FieldType
}

type Field struct {
	Name   string        `json:"name"`
	Type   FieldType     `json:"type"`
	Values []interface{} `json:"values"`
}

type Notice struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

type Meta struct {
	PreferredVisualisationType string   `json:"preferredVisualisationType,omitempty"`
	Notices                    []Notice `json:"notices,omitempty"`
}

type Frame struct {
	RefID  string   `json:"refId"`
	Fields []*Field `json:"fields"`
	Meta   *Meta    `json:"meta,omitempty"`
}

func New(refID string, specs ...FieldSpec) *Frame {
	f := &Frame{RefID: refID, Fields: make([]*Field, 0, len(specs))}
	for _, spec := range specs {
		f.Fields = append(f.Fields, &Field{Name: spec.Name, Type: spec.Type, Values: []interface{}{}})
	}
	return f
}

// AppendRow adds one value per field, in declared field order.
func (f *Frame) AppendRow(values ...interface{}) error {
	if len(values) != len(f.Fields) {
		return fmt.Errorf("%w: got %d values for %d fields", ErrRowLength, len(values), len(f.Fields))
	}
	for i, v := range values {
		f.Fields[i].Values = append(f.Fields[i].Values, v)
	}
	return nil
}

// AddField appends a whole column. Once the frame has fields, the column must
// match the current row count.
func (f *Frame) AddField(name string, typ FieldType, values []interface{}) error {
	if len(f.Fields) > 0 && len(values) != f.Rows() {
		return fmt.Errorf("%w: field %q has %d values, frame has %d rows", ErrFieldLength, name, len(values), f.Rows())
	}
	if values == nil {
		values = []interface{}{}
	}
	f.Fields = append(f.Fields, &Field{Name: name, Type: typ, Values: values})
	return nil
}

func (f *Frame) Rows() int {
	if len(f.Fields) == 0 {
		return 0
	}
	return len(f.Fields[0].Values)
}

func (f *Frame) Field(name string) *Field {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

func (f *Frame) SetVisualisation(kind string) {
	f.meta().PreferredVisualisationType = kind
}

func (f *Frame) AddNotice(severity, text string) {
	m := f.meta()
	m.Notices = append(m.Notices, Notice{Severity: severity, Text: text})
}

func (f *Frame) meta() *Meta {
	if f.Meta == nil {
		f.Meta = &Meta{}
	}
	return f.Meta
}
