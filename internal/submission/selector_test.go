package submission

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []string
		path   []string
		want   bool
	}{
		{name: "bare leaf", fields: []string{"q3"}, path: []string{"group1", "q3"}, want: true},
		{name: "bare group selects children", fields: []string{"subgroup1"}, path: []string{"group2", "subgroup1", "q4"}, want: true},
		{name: "bare name misses", fields: []string{"q3"}, path: []string{"group1", "q1"}, want: false},
		{name: "qualified leaf", fields: []string{"group1/q3"}, path: []string{"group1", "q3"}, want: true},
		{name: "qualified group", fields: []string{"group2/subgroup1"}, path: []string{"group2", "subgroup1", "q5"}, want: true},
		{name: "qualified is anchored", fields: []string{"subgroup1/q4"}, path: []string{"group2", "subgroup1", "q4"}, want: false},
		{name: "dotted path", fields: []string{"group2.subgroup1"}, path: []string{"group2", "subgroup1", "q6"}, want: true},
		{name: "dotted name kept literal", fields: []string{"q.1"}, path: []string{"g", "q.1"}, want: true},
		{name: "leading slash is bare", fields: []string{"/q3"}, path: []string{"group1", "q3"}, want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sel, err := NewSelector(tc.fields, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, sel.Match(tc.path))
		})
	}
}

func TestNewSelectorInvalidFields(t *testing.T) {
	t.Parallel()

	sel, err := NewSelector([]string{"", "group1//q3", "q3"}, "_id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFieldSpec))
	assert.False(t, sel.all)
	assert.True(t, sel.Match([]string{"group1", "q3"}))
	assert.False(t, sel.Match([]string{"group1", "q1"}))
}

func TestNewSelectorEmptyKeepsEverything(t *testing.T) {
	t.Parallel()

	sel, err := NewSelector(nil, "_id")
	require.NoError(t, err)
	assert.True(t, sel.all)
	assert.True(t, sel.Match([]string{"anything", "at", "all"}))

	sel, err = NewSelector([]string{"  "}, "_id")
	require.ErrorIs(t, err, ErrInvalidFieldSpec)
	assert.True(t, sel.all)
}

func TestSelectorIdentifies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		idField string
		path    []string
		want    bool
	}{
		{name: "default top level", idField: "", path: []string{"_id"}, want: true},
		{name: "bare name at any depth", idField: "instanceID", path: []string{"meta", "instanceID"}, want: true},
		{name: "bare name is a leaf name", idField: "instanceID", path: []string{"instanceID", "x"}, want: false},
		{name: "qualified exact", idField: "meta/instanceID", path: []string{"meta", "instanceID"}, want: true},
		{name: "group name is not the identifier", idField: "meta", path: []string{"meta", "instanceID"}, want: false},
		{name: "qualified misses other group", idField: "meta/instanceID", path: []string{"other", "instanceID"}, want: false},
		{name: "qualified needs full length", idField: "meta/instanceID", path: []string{"meta", "instanceID", "x"}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sel, err := NewSelector([]string{"q3"}, tc.idField)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sel.identifies(tc.path))
			assert.False(t, sel.Match(tc.path), "the identifier is not a subset rule")
		})
	}
}
