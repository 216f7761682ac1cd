package helpers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestData is a test struct with header tags.
type TestData struct {
	Name  string `header:"Name" json:"name" yaml:"name"`
	Value int    `header:"Value" json:"value" yaml:"value"`
	Extra string `json:"-" yaml:"-"` // No header tag, should be ignored
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  OutputFormat
		wantErr bool
	}{
		{name: "table formatter", format: FormatTable},
		{name: "json formatter", format: FormatJSON},
		{name: "yaml formatter", format: FormatYAML},
		{name: "csv formatter", format: FormatCSV},
		{name: "text has no formatter", format: FormatText, wantErr: true},
		{name: "unsupported format", format: OutputFormat("unsupported"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFormatter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func sample() []TestData {
	return []TestData{
		{Name: "test1", Value: 1, Extra: "ignored"},
		{Name: "test2", Value: 2, Extra: "also ignored"},
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, (&JSONFormatter{}).Format(sample(), buf))

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "test1", got[0]["name"])
	assert.NotContains(t, buf.String(), "ignored")
}

func TestYAMLFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, (&YAMLFormatter{}).Format(sample(), buf))

	var got []TestData
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "test2", got[1].Name)
	assert.Equal(t, 2, got[1].Value)
}

func TestTableFormatter_Format(t *testing.T) {
	tests := []struct {
		name         string
		data         interface{}
		wantErr      bool
		wantContains []string
	}{
		{
			name:         "format slice of structs",
			data:         sample(),
			wantContains: []string{"Name", "Value", "test1", "test2"},
		},
		{
			name: "format empty slice",
			data: []TestData{},
		},
		{
			name:    "format non-slice data",
			data:    TestData{Name: "single", Value: 42},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := (&TableFormatter{}).Format(tt.data, buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.NotContains(t, buf.String(), "ignored")
		})
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, (&CSVFormatter{}).Format(sample(), buf))
	assert.Equal(t, "Name,Value\ntest1,1\ntest2,2\n", buf.String())

	buf.Reset()
	require.NoError(t, (&CSVFormatter{}).Format([]TestData{}, buf))
	assert.Empty(t, buf.String())

	err := (&CSVFormatter{}).Format(TestData{}, buf)
	assert.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	supported := []OutputFormat{FormatText, FormatJSON}

	assert.NoError(t, ValidateFormat("json", supported))

	err := ValidateFormat("xml", supported)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "text, json"))
}
