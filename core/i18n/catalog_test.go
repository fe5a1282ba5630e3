package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Translate(t *testing.T) {
	catalog, err := NewCatalog("en", "en", map[string]map[string]string{
		"en": {
			"Hello":   "hello {0}, you are {1}",
			"Plain":   "plain",
			"Repeat":  "{0} and {0}",
			"Ordered": "{1} before {0}",
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		key  string
		args []any
		want string
	}{
		{"Positional", "Hello", []any{"Bob", 20}, "hello Bob, you are 20"},
		{"NoArgs", "Plain", nil, "plain"},
		{"Repeated", "Repeat", []any{"x"}, "x and x"},
		{"Reordered", "Ordered", []any{"a", "b"}, "b before a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Translate(tt.key, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_MissingKey(t *testing.T) {
	catalog, err := NewCatalog("en", "en", map[string]map[string]string{"en": {}})
	require.NoError(t, err)

	_, err = catalog.Translate("PropertyNameHealth")
	assert.ErrorIs(t, err, ErrMissingTranslation)
	assert.Contains(t, err.Error(), "PropertyNameHealth")
}

func TestCatalog_LocaleMatchingAndFallback(t *testing.T) {
	catalog, err := NewCatalog("de-AT", "en", map[string]map[string]string{
		"en": {"Only": "only english", "Both": "english"},
		"de": {"Both": "deutsch"},
	})
	require.NoError(t, err)
	assert.Equal(t, "de", catalog.Locale())

	got, err := catalog.Translate("Both")
	require.NoError(t, err)
	assert.Equal(t, "deutsch", got)

	got, err = catalog.Translate("Only")
	require.NoError(t, err)
	assert.Equal(t, "only english", got)
}

func TestNewCatalog_Errors(t *testing.T) {
	_, err := NewCatalog("en", "en", nil)
	assert.Error(t, err)

	_, err = NewCatalog("en", "", map[string]map[string]string{"not a locale!": {}})
	assert.Error(t, err)
}

func TestLoad_Embedded(t *testing.T) {
	catalog, err := Load(Config{Locale: "en", Fallback: "en"})
	require.NoError(t, err)

	got, err := catalog.Translate("CompareDifferenceValueChanged", "10", "20")
	require.NoError(t, err)
	assert.Equal(t, "changed from 10 to 20", got)

	got, err = catalog.Translate("CompareDifferenceFieldChanged", "hp")
	require.NoError(t, err)
	assert.Equal(t, "field hp changed", got)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.yaml"), []byte("Greeting: \"bonjour {0}\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	catalog, err := Load(Config{Locale: "fr", Path: dir})
	require.NoError(t, err)

	got, err := catalog.Translate("Greeting", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "bonjour Alice", got)
}
