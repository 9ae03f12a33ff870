package uploader

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essaydesk/internal/attachments"
	"essaydesk/internal/domain"
	"essaydesk/internal/ui/views"
)

func raw(name, mimeType string, size int64) attachments.RawItem {
	return attachments.RawItem{
		Locator:     "file:///cache/" + name,
		DisplayName: name,
		MimeType:    mo.Some(mimeType),
		ByteSize:    mo.Some(size),
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type harness struct {
	m       *Model
	calls   int
	changes [][]domain.FileDescriptor
	picks   []attachments.PickRequest
}

func newHarness(t *testing.T, opts attachments.Options, results ...attachments.PickResult) *harness {
	t.Helper()
	h := &harness{}
	gw := attachments.GatewayFunc(func(_ context.Context, _ attachments.PickRequest) (attachments.PickResult, error) {
		h.calls++
		if len(results) == 0 {
			return attachments.Cancelled(), nil
		}
		res := results[0]
		results = results[1:]
		return res, nil
	})
	h.m = New(context.Background(), opts, gw, views.NewStyles(), func(files []domain.FileDescriptor) {
		h.changes = append(h.changes, files)
	})
	h.m.OnPick(func(req attachments.PickRequest) { h.picks = append(h.picks, req) })
	h.m.Focus()
	return h
}

// press feeds a key and drains the resulting command chain
func (h *harness) press(t *testing.T, s string) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	cmd := h.m.Update(keyMsg(s))
	for cmd != nil {
		msg := cmd()
		out = append(out, msg)
		cmd = h.m.Update(msg)
	}
	return out
}

func TestPickAppendsFiles(t *testing.T) {
	opts := attachments.Options{AllowMultiple: true, MaxCount: 3}
	h := newHarness(t, opts,
		attachments.Picked(raw("a.pdf", attachments.MimePDF, 10), raw("b.pdf", attachments.MimePDF, 20)),
	)

	h.press(t, "enter")

	assert.Equal(t, 1, h.calls)
	require.Len(t, h.changes, 1)
	assert.Len(t, h.changes[0], 2)
	assert.False(t, h.m.Store().Picking())
	require.Len(t, h.picks, 1)
	assert.True(t, h.picks[0].Multiple)
	assert.True(t, h.picks[0].CacheLocally)
}

func TestPickBlockedWhenFull(t *testing.T) {
	opts := attachments.Options{AllowMultiple: true, MaxCount: 1}
	h := newHarness(t, opts, attachments.Picked(raw("a.pdf", attachments.MimePDF, 10)))

	h.press(t, "enter")
	require.Equal(t, 1, h.calls)

	h.press(t, "enter")
	assert.Equal(t, 1, h.calls, "chooser must not open when full")
	assert.Contains(t, h.m.View(), "1 / 1 files")
}

func TestPickIgnoredWhileOutstanding(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions())

	first := h.m.Update(keyMsg("enter"))
	require.NotNil(t, first)
	second := h.m.Update(keyMsg("enter"))
	assert.Nil(t, second)
	assert.True(t, h.m.Store().Picking())

	h.m.Update(first())
	assert.False(t, h.m.Store().Picking())
}

func TestCancelReportsAndKeepsFiles(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions())

	msgs := h.press(t, "enter")

	require.Len(t, msgs, 2)
	assert.IsType(t, PickCancelledMsg{}, msgs[1])
	assert.Empty(t, h.changes)
}

func TestGatewayErrorSurfaces(t *testing.T) {
	boom := errors.New("chooser crashed")
	gw := attachments.GatewayFunc(func(context.Context, attachments.PickRequest) (attachments.PickResult, error) {
		return attachments.PickResult{}, boom
	})
	m := New(context.Background(), attachments.DefaultOptions(), gw, views.NewStyles(), nil)
	m.Focus()

	finished := m.Update(keyMsg("enter"))()
	failed := m.Update(finished)()

	require.IsType(t, PickFailedMsg{}, failed)
	assert.ErrorIs(t, failed.(PickFailedMsg).Err, boom)
	assert.False(t, m.Store().Picking())
	assert.Zero(t, m.Store().Len())
}

func TestRemoveFromCursor(t *testing.T) {
	opts := attachments.Options{AllowMultiple: true, MaxCount: 3}
	h := newHarness(t, opts, attachments.Picked(
		raw("a.pdf", attachments.MimePDF, 1),
		raw("b.pdf", attachments.MimePDF, 2),
		raw("c.pdf", attachments.MimePDF, 3),
	))
	h.press(t, "enter")

	h.press(t, "down")
	h.press(t, "down")
	assert.Equal(t, 1, h.m.Cursor())
	h.press(t, "x")

	files := h.m.Store().Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Name)
	assert.Equal(t, "c.pdf", files[1].Name)
	assert.Len(t, h.changes, 2)

	h.press(t, "down")
	h.press(t, "x")
	assert.Equal(t, 0, h.m.Cursor(), "cursor stays on the last row")
}

func TestRemoveOnDropzoneIsNoop(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions(), attachments.Picked(raw("a.pdf", attachments.MimePDF, 1)))
	h.press(t, "enter")

	h.press(t, "x")

	assert.Equal(t, 1, h.m.Store().Len())
}

func TestIgnoresKeysWhenBlurred(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions())
	h.m.Blur()

	assert.Nil(t, h.m.Update(keyMsg("enter")))
	assert.Zero(t, h.calls)
}

func TestIgnoresOtherUploadersResults(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions())
	other := PickFinishedMsg{id: h.m.id + 1000, Result: attachments.Picked(raw("a.pdf", attachments.MimePDF, 1))}

	assert.Nil(t, h.m.Update(other))
	assert.Zero(t, h.m.Store().Len())
}

func TestViewShowsRows(t *testing.T) {
	opts := attachments.Options{AllowMultiple: true, MaxCount: 3, Placeholder: "Drop your essay"}
	noSize := attachments.RawItem{Locator: "file:///cache/notes.txt", DisplayName: "notes.txt"}
	h := newHarness(t, opts, attachments.Picked(
		raw("photo.png", "image/png", 2048),
		noSize,
	))
	h.m.SetWidth(50)

	view := h.m.View()
	assert.Contains(t, view, "Drop your essay")
	assert.Contains(t, view, "0 / 3 files")

	h.press(t, "enter")
	view = h.m.View()
	assert.Contains(t, view, "photo.png")
	assert.Contains(t, view, "2.0 KB")
	assert.Contains(t, view, iconGlyphs[attachments.IconImage])
	assert.Contains(t, view, "notes.txt")
	assert.Contains(t, view, iconGlyphs[attachments.IconDocument])
	assert.Contains(t, view, "2 / 3 files")
}

func TestViewSingleModeHasNoCount(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions())

	assert.NotContains(t, h.m.View(), "files")
	assert.Contains(t, h.m.View(), attachments.DefaultPlaceholder)
}

func TestLongNamesAreTruncated(t *testing.T) {
	h := newHarness(t, attachments.DefaultOptions(), attachments.Picked(
		raw("a-very-long-document-name-that-will-not-fit-anywhere.pdf", attachments.MimePDF, 1),
	))
	h.m.SetWidth(30)
	h.press(t, "enter")

	view := h.m.View()
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "anywhere.pdf")
}

type terminalStub struct {
	stdin  io.Reader
	stdout io.Writer
}

func (s *terminalStub) Pick(context.Context, attachments.PickRequest) (attachments.PickResult, error) {
	return attachments.Picked(raw("t.pdf", attachments.MimePDF, 1)), nil
}
func (s *terminalStub) SetStdin(r io.Reader)  { s.stdin = r }
func (s *terminalStub) SetStdout(w io.Writer) { s.stdout = w }

func TestPickCommandForwardsTerminal(t *testing.T) {
	stub := &terminalStub{}
	c := &pickCommand{ctx: context.Background(), gateway: stub}
	c.SetStdin(io.NopCloser(nil))
	c.SetStdout(io.Discard)

	require.NoError(t, c.Run())
	assert.NotNil(t, stub.stdin)
	assert.Equal(t, io.Discard, stub.stdout)
	assert.Len(t, c.result.Items(), 1)
}
