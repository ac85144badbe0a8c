package profilestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/profilestore"
	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingIsEmpty(t *testing.T) {
	cfg, err := profilestore.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Profiles)
	assert.Empty(t, cfg.GlobalDefaults)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := profilestore.New()

	in := domain.ProfileConfig{
		Profiles: map[string]domain.Profile{
			"frontend": {Name: "frontend", Sections: map[string]string{"overview": "SPA app"}},
		},
		GlobalDefaults: map[string]string{"ci": "GitHub Actions"},
	}
	require.NoError(t, st.Save(dir, in))

	out, err := st.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_SaveReplacesWholeFile(t *testing.T) {
	dir := t.TempDir()
	st := profilestore.New()

	require.NoError(t, st.Save(dir, domain.ProfileConfig{
		GlobalDefaults: map[string]string{"a": "1", "b": "2"},
	}))
	require.NoError(t, st.Save(dir, domain.ProfileConfig{
		GlobalDefaults: map[string]string{"a": "changed"},
	}))

	out, err := st.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "changed"}, out.GlobalDefaults, "save is whole-file replace, not merge")
}

func TestStore_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".doccheck"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".doccheck", "profiles.json"), []byte("{bad"), 0644))

	_, err := profilestore.New().Load(dir)
	assert.Error(t, err)
}
