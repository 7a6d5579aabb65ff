package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNodeRecordValidateFlat(t *testing.T) {
	tests := []struct {
		name    string
		record  NodeRecord
		wantErr error
	}{
		{name: "root record", record: NodeRecord{ID: "dumb", Tag: "Dumb people"}},
		{name: "child record", record: NodeRecord{ID: "rich", Parent: "dumb"}},
		{name: "missing id", record: NodeRecord{Tag: "x"}, wantErr: ErrRecordIDEmpty},
		{name: "blank id", record: NodeRecord{ID: " "}, wantErr: ErrRecordIDEmpty},
		{
			name:    "nested children",
			record:  NodeRecord{ID: "a", Children: []NodeRecord{{ID: "b"}}},
			wantErr: ErrRecordHasChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.ValidateFlat()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNodeRecordCount(t *testing.T) {
	r := NodeRecord{ID: "a", Children: []NodeRecord{
		{ID: "b", Children: []NodeRecord{{ID: "c"}}},
		{ID: "d"},
	}}

	assert.Equal(t, 4, r.Count())
}

func TestNodeRecordDecodesNestedDocuments(t *testing.T) {
	const doc = `
id: dumb
tag: Dumb people
value: 3
children:
  - id: rich-dumb
    tag: Rich dumb people
    value: 6
`
	var fromYAML NodeRecord
	require.NoError(t, yaml.Unmarshal([]byte(doc), &fromYAML))

	var fromJSON NodeRecord
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"dumb","tag":"Dumb people","value":3,"children":[{"id":"rich-dumb","tag":"Rich dumb people","value":6}]}`),
		&fromJSON))

	for _, r := range []NodeRecord{fromYAML, fromJSON} {
		assert.Equal(t, "dumb", r.ID)
		assert.Equal(t, "Dumb people", r.Tag)
		require.Len(t, r.Children, 1)
		assert.Equal(t, "rich-dumb", r.Children[0].ID)
	}
	assert.Equal(t, 3, fromYAML.Value)
	assert.Equal(t, float64(3), fromJSON.Value)
}
