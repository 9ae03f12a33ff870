package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essaydesk/internal/config"
	"essaydesk/internal/eventbus"
)

const pdfBody = "%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n"

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	return home
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAttachSingleKeepsFirstAcceptedFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	notes := writeFile(t, dir, "notes.txt", "plain words")
	essay := writeFile(t, dir, "essay.pdf", pdfBody)
	other := writeFile(t, dir, "other.pdf", pdfBody)

	out, err := run(t, "attach", notes, essay, other)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "pdf-document")
	assert.Contains(t, lines[0], "essay.pdf")
	assert.Contains(t, lines[0], "file://"+filepath.ToSlash(essay))
	assert.NotContains(t, out, " / ", "single mode prints no count")
}

func TestAttachMultipleTruncatesToMax(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", pdfBody)
	b := writeFile(t, dir, "b.pdf", pdfBody)
	c := writeFile(t, dir, "c.pdf", pdfBody)

	out, err := run(t, "attach", "--multiple", "--max-files", "2", a, b, c)
	require.NoError(t, err)

	assert.Contains(t, out, "a.pdf")
	assert.Contains(t, out, "b.pdf")
	assert.NotContains(t, out, "c.pdf")
	assert.Contains(t, out, "2 / 2 files")
}

func TestAttachTypeFlagOverridesDefault(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	notes := writeFile(t, dir, "notes.txt", "plain words")
	essay := writeFile(t, dir, "essay.pdf", pdfBody)

	out, err := run(t, "attach", "--type", "text/plain", essay, notes)
	require.NoError(t, err)

	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "generic-document")
	assert.NotContains(t, out, "essay.pdf")
}

func TestAttachNothingAccepted(t *testing.T) {
	isolate(t)
	notes := writeFile(t, t.TempDir(), "notes.txt", "plain words")

	out, err := run(t, "attach", notes)
	require.NoError(t, err)
	assert.Contains(t, out, "no documents selected")
}

func TestAttachMissingFileFails(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	essay := writeFile(t, dir, "essay.pdf", pdfBody)

	out, err := run(t, "attach", essay, filepath.Join(dir, "typo.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "typo.pdf")
	assert.NotContains(t, out, "no documents selected")
}

func TestAttachCopyUsesCache(t *testing.T) {
	home := isolate(t)
	essay := writeFile(t, t.TempDir(), "essay.pdf", pdfBody)

	out, err := run(t, "attach", "--copy", essay)
	require.NoError(t, err)

	assert.Contains(t, out, "essay.pdf")
	assert.Contains(t, out, filepath.ToSlash(filepath.Join(home, ".cache", "essaydesk", "DocumentPicker")))
	assert.NotContains(t, out, "file://"+filepath.ToSlash(essay))
}

func TestAttachReadsExplicitConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Uploader.Multiple = true
	cfg.Uploader.MaxFiles = 5
	cfgPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, config.NewServiceForPath(cfgPath).SaveToPath(cfg, cfgPath))
	a := writeFile(t, dir, "a.pdf", pdfBody)
	b := writeFile(t, dir, "b.pdf", pdfBody)

	out, err := run(t, "--config", cfgPath, "attach", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "2 / 5 files")
}

func TestAttachMissingExplicitConfig(t *testing.T) {
	isolate(t)
	a := writeFile(t, t.TempDir(), "a.pdf", pdfBody)

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "attach", a)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNotFound)
}

func TestConfigInit(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := run(t, "config", "init", dir)
	require.NoError(t, err)
	path := filepath.Join(dir, config.FileName)
	assert.Contains(t, out, path)

	loaded, err := config.NewServiceForPath(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, err = run(t, "config", "init", dir)
	assert.Error(t, err, "refuses to overwrite")

	_, err = run(t, "config", "init", "--force", dir)
	assert.NoError(t, err)
}

func TestRootRejectsMissingDirectory(t *testing.T) {
	isolate(t)

	_, err := run(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestApplyOnlyChangedFlags(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--max-files", "4"}))

	cfg := config.DefaultConfig()
	cfg.Uploader.Multiple = true
	cfg.Uploader.FileTypes = []string{"image/*"}
	opts := &options{maxFiles: 4}
	opts.apply(cmd, cfg)

	assert.Equal(t, 4, cfg.Uploader.MaxFiles)
	assert.True(t, cfg.Uploader.Multiple, "unset flags keep config values")
	assert.Equal(t, []string{"image/*"}, cfg.Uploader.FileTypes)
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	_, err := setupLogging(config.LogSettings{Level: "loud"})
	assert.Error(t, err)
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	closeLog, err := setupLogging(config.LogSettings{File: path, Level: "debug"})
	require.NoError(t, err)

	logEvent(eventbus.AppReadyEvent{HasExistingConfig: true})
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AppReady")
}

// syncBus delivers events on the publishing goroutine
type syncBus struct {
	mu       sync.Mutex
	handlers map[eventbus.EventType][]eventbus.EventHandler
}

func (b *syncBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	hs := append([]eventbus.EventHandler(nil), b.handlers[e.Type()]...)
	b.mu.Unlock()
	for _, h := range hs {
		h(e)
	}
}

func (b *syncBus) Subscribe(t eventbus.EventType, h eventbus.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = make(map[eventbus.EventType][]eventbus.EventHandler)
	}
	b.handlers[t] = append(b.handlers[t], h)
	return func() {}
}

func (b *syncBus) Close() {}

func TestStartLoggingRecordsConfigLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	bus := &syncBus{}

	stop, err := startLogging(config.LogSettings{File: path, Level: "debug"}, bus, eventbus.ConfigLoadedEvent{Path: "/work/.essaydesk.toml"})
	require.NoError(t, err)
	stop()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ConfigLoaded")
	assert.Contains(t, string(data), "/work/.essaydesk.toml")
}
