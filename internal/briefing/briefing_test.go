package briefing_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaramelBytes/wealth360-cli/internal/briefing"
	"github.com/KaramelBytes/wealth360-cli/internal/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildAllSections(t *testing.T) {
	c := persona.Builtin()
	b := briefing.Build(c, "relationship_manager")

	assert.NotEmpty(t, b.ID)
	assert.False(t, b.FallbackPersona)
	assert.Equal(t, "relationship_manager", b.Persona.ID)
	assert.Equal(t, c.AllSectionInsights("relationship_manager"), b.Sections)
}

func TestBuildSelectedSections(t *testing.T) {
	c := persona.Builtin()
	b := briefing.Build(c, "compliance_officer", "home", "nowhere")

	require.Len(t, b.Sections, 2)
	assert.Equal(t, []string{"home", "nowhere"}, b.Sections.IDs())
	home, _ := b.Sections.Get("home")
	assert.Equal(t, []string{"Compliance Rate", "Open Alerts", "KYC Status"}, home.PrimaryMetrics)
	nowhere, _ := b.Sections.Get("nowhere")
	assert.Equal(t, persona.DefaultSectionTitle, nowhere.SectionTitle)
	assert.True(t, nowhere.Empty())
}

func TestBuildUnknownPersonaUsesDefault(t *testing.T) {
	c := persona.Builtin()
	b := briefing.Build(c, "intern")

	assert.True(t, b.FallbackPersona)
	assert.Equal(t, "intern", b.RequestedPersona)
	assert.Equal(t, "executive", b.Persona.ID)
	home, ok := b.Sections.Get("home")
	require.True(t, ok)
	assert.False(t, home.Empty())
}

func TestSaveLoadList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "briefings")
	c := persona.Builtin()

	first := briefing.Build(c, "wealth_advisor")
	first.GeneratedAt = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	second := briefing.Build(c, "executive", "home")
	second.GeneratedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	p1, err := first.Save(dir)
	require.NoError(t, err)
	_, err = second.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, first.ID+".json"), p1)

	loaded, err := briefing.Load(p1)
	require.NoError(t, err)
	assert.Equal(t, first.Persona, loaded.Persona)
	assert.Equal(t, first.Sections, loaded.Sections)

	// stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	all, err := briefing.List(dir, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestListMissingDir(t *testing.T) {
	all, err := briefing.List(filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	good := briefing.Build(persona.Builtin(), "operations_manager", "home")
	_, err := good.Save(dir)
	require.NoError(t, err)
	bad := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	all, err := briefing.List(dir, zap.New(core))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, good.ID, all[0].ID)

	entries := logs.FilterMessage("skipping unreadable briefing").All()
	require.Len(t, entries, 1)
	assert.Equal(t, bad, entries[0].ContextMap()["path"])
}

func TestLoadMissing(t *testing.T) {
	_, err := briefing.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
