package formdesign

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_EmbeddedAdapters(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Contains(t, registry.Names(), "v2")

	adapter, err := registry.Get("v2")
	require.NoError(t, err)
	assert.Equal(t, "FormDesign/DocumentDesignType", adapter.Endpoints.DocumentTypes)
	assert.Equal(t, []string{"id", "value", "typeId"}, adapter.DocumentTypes.Candidates("value"))
	assert.Equal(t, []string{"data", "result", "designs", "items"}, adapter.Designs.Wrappers)

	_, err = registry.Get("missing")
	assert.Error(t, err)
}

func TestRegistry_LoadFile(t *testing.T) {
	valid := `name: custom
endpoints:
  document_types: types
  designs_by_type: types/{docTypeId}/designs
  design_versions: designs/{formDesignId}/versions
document_types:
  wrappers: [items]
  fields:
    value: [code]
    label: [title]
    description: [summary]
designs:
  wrappers: [items]
  fields:
    id: [key]
    name: [title]
    description: [summary]
    createdDate: [created]
    status: [state]
    version: [rev]
`

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "valid adapter", content: valid},
		{
			name:    "empty candidate chain",
			content: valid[:len(valid)-len("    version: [rev]\n")] + "    version: []\n",
			wantErr: `field "version" has no candidate members`,
		},
		{
			name:    "missing placeholder",
			content: strings.Replace(valid, "types/{docTypeId}/designs", "types/designs", 1),
			wantErr: "{docTypeId}",
		},
		{
			name:    "missing name",
			content: strings.Replace(valid, "name: custom", "name: \"\"", 1),
			wantErr: "cannot be blank",
		},
		{
			name:    "not yaml",
			content: "name: [unterminated",
			wantErr: "failed to unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "adapter.yaml")
			require.NoError(t, os.WriteFile(file, []byte(tt.content), 0o600))

			registry, err := NewRegistry()
			require.NoError(t, err)

			adapter, err := registry.LoadFile(file)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "custom", adapter.Name)

			got, err := registry.Get("custom")
			require.NoError(t, err)
			assert.Same(t, adapter, got)
			assert.Equal(t, []string{"custom", "v2"}, registry.Names())
		})
	}
}

func TestRegistry_LoadFileMissing(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	_, err = registry.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
