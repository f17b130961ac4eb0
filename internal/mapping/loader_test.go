package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-flattener/internal/schema"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
mode: user-schema
columns: [Title, Skills, Role]
placeholder: ""
decode_unicode: false
strip_html: true
normalize_unicode: true
fold_keys: true
crlf: true
workers: 4
rules:
  - column: Role
    kind: prefix_scan
    from: Others
    prefix: "Role: "
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, schema.ModeUser, cfg.Mode)
	assert.Equal(t, StringOrArray{"Title", "Skills", "Role"}, cfg.Columns)
	require.NotNil(t, cfg.Placeholder)
	assert.Equal(t, "", *cfg.Placeholder)
	assert.True(t, cfg.StripHTML)
	assert.True(t, cfg.NormalizeUnicode)
	assert.True(t, cfg.FoldKeys)
	assert.True(t, cfg.CRLF)
	assert.Equal(t, 4, cfg.Workers)

	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, RulePrefixScan, cfg.Rules[0].Kind)
	assert.Equal(t, "Others", cfg.Rules[0].Source())

	p := cfg.Policy()
	assert.Equal(t, "", p.Placeholder)
	assert.False(t, p.DecodeUnicode)
	assert.True(t, p.StripHTML)
	assert.True(t, p.NormalizeUnicode)
}

func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		mode       schema.Mode
		wantDecode bool
	}{
		{"empty file is fixed mode", "", schema.ModeFixed, true},
		{"fixed mode decodes", "mode: fixed-schema", schema.ModeFixed, true},
		{"auto mode does not decode", "mode: auto-schema", schema.ModeAuto, false},
		{"user mode does not decode", "mode: user\ncolumns: Title", schema.ModeUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			assert.Equal(t, CurrentVersion, cfg.Version)
			assert.Equal(t, tt.mode, cfg.Mode)
			assert.Equal(t, 1, cfg.Workers)
			assert.Equal(t, "0", cfg.Policy().Placeholder)
			assert.Equal(t, tt.wantDecode, cfg.Policy().DecodeUnicode)
		})
	}
}

func TestParse_ColumnsScalar(t *testing.T) {
	cfg, err := Parse([]byte("mode: user\ncolumns: Title\n"))
	require.NoError(t, err)
	assert.Equal(t, StringOrArray{"Title"}, cfg.Columns)
	assert.True(t, cfg.Columns.Contains("Title"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown mode", "mode: xml"},
		{"columns as map", "columns: {a: b}"},
		{"not yaml", "mode: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse config YAML")
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	placeholder := "N/A"
	decode := true
	cfg := &Config{
		Version:       CurrentVersion,
		Mode:          schema.ModeAuto,
		Placeholder:   &placeholder,
		DecodeUnicode: &decode,
		Workers:       2,
		Rules: []RuleDef{
			{Column: "About", Kind: RuleStripLabel, Prefix: "About\n"},
		},
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestStringOrArray_MarshalYAML(t *testing.T) {
	v, err := StringOrArray{"one"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	v, err = StringOrArray{"a", "b"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestDecode_NoDefaults(t *testing.T) {
	cfg, err := Decode([]byte("mode: auto"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Version)
	assert.Nil(t, cfg.Placeholder)
	assert.Nil(t, cfg.DecodeUnicode)
	assert.Zero(t, cfg.Workers)

	ApplyDefaults(cfg)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.False(t, *cfg.DecodeUnicode)
}
