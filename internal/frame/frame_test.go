package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appcenter-datasource-backend/internal/frame"
)

func TestFrame_AppendRow(t *testing.T) {
	f := frame.New("A",
		frame.FieldSpec{Name: "Id", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Count", Type: frame.FieldTypeNumber},
	)

	require.NoError(t, f.AppendRow("g1", int64(3)))
	require.NoError(t, f.AppendRow("g2", int64(1)))

	assert.Equal(t, "A", f.RefID)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []interface{}{"g1", "g2"}, f.Field("Id").Values)
	assert.Equal(t, []interface{}{int64(3), int64(1)}, f.Field("Count").Values)
}

func TestFrame_AppendRowWrongLength(t *testing.T) {
	f := frame.New("A",
		frame.FieldSpec{Name: "Id", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Count", Type: frame.FieldTypeNumber},
	)

	err := f.AppendRow("only-one")
	assert.ErrorIs(t, err, frame.ErrRowLength)
	assert.Equal(t, 0, f.Rows())
	assert.Empty(t, f.Field("Count").Values)
}

func TestFrame_AddField(t *testing.T) {
	f := frame.New("B")
	require.NoError(t, f.AddField("time", frame.FieldTypeTime, []interface{}{1, 2}))
	require.NoError(t, f.AddField("v1", frame.FieldTypeNumber, []interface{}{3, 0}))

	err := f.AddField("v2", frame.FieldTypeNumber, []interface{}{1})
	assert.ErrorIs(t, err, frame.ErrFieldLength)
	assert.Len(t, f.Fields, 2)
}

func TestFrame_Meta(t *testing.T) {
	f := frame.New("C")
	assert.Nil(t, f.Meta)

	f.SetVisualisation("graph")
	f.AddNotice("warning", "partial")

	require.NotNil(t, f.Meta)
	assert.Equal(t, "graph", f.Meta.PreferredVisualisationType)
	assert.Equal(t, []frame.Notice{{Severity: "warning", Text: "partial"}}, f.Meta.Notices)
	assert.Nil(t, f.Field("missing"))
}
