package attachments

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"essaydesk/internal/domain"
)

// Listener receives the committed file list after every change
type Listener func(files []domain.FileDescriptor)

// State holds the selection owned by one uploader
type State struct {
	Files   []domain.FileDescriptor
	Picking bool // a chooser call is outstanding
}

// Store holds the selected files under the capacity policy.
// It runs on the UI loop and is not safe for concurrent use.
type Store struct {
	opts     Options
	state    State
	listener Listener
}

// NewStore creates an empty store for the given options
func NewStore(opts Options) *Store {
	return &Store{opts: opts.Normalize()}
}

// OnChange registers the owner listener, replacing any previous one
func (s *Store) OnChange(fn Listener) {
	s.listener = fn
}

// Options returns the normalized configuration
func (s *Store) Options() Options {
	opts := s.opts
	opts.AcceptedTypes = append([]string(nil), s.opts.AcceptedTypes...)
	return opts
}

// Files returns a snapshot of the current selection
func (s *Store) Files() []domain.FileDescriptor {
	return slices.Clone(s.state.Files)
}

// Len returns the number of selected files
func (s *Store) Len() int {
	return len(s.state.Files)
}

// Capacity returns the effective capacity
func (s *Store) Capacity() int {
	return s.opts.Capacity()
}

// Picking reports whether a chooser call is outstanding
func (s *Store) Picking() bool {
	return s.state.Picking
}

// CanAdd reports whether opening the chooser would be allowed.
// Single mode always allows a pick since it replaces the current file.
func (s *Store) CanAdd() bool {
	if s.state.Picking {
		return false
	}
	return !(s.opts.AllowMultiple && len(s.state.Files) >= s.opts.MaxCount)
}

// Request builds the chooser request for this store
func (s *Store) Request() PickRequest {
	return PickRequest{
		TypeFilters:  append([]string(nil), s.opts.AcceptedTypes...),
		CacheLocally: true,
		Multiple:     s.opts.AllowMultiple,
	}
}

// BeginPick marks a chooser call as outstanding. It returns false, and the
// chooser must not be opened, when the selection is full or a call is
// already in flight.
func (s *Store) BeginPick() (PickRequest, bool) {
	if !s.CanAdd() {
		logrus.WithFields(logrus.Fields{
			"files":    len(s.state.Files),
			"capacity": s.Capacity(),
			"picking":  s.state.Picking,
		}).Debug("attachments: pick skipped")
		return PickRequest{}, false
	}
	s.state.Picking = true
	return s.Request(), true
}

// FinishPick ends an outstanding chooser call. A chooser error is returned
// unchanged in meaning and leaves the selection untouched.
func (s *Store) FinishPick(res PickResult, err error) error {
	s.state.Picking = false
	if err != nil {
		return fmt.Errorf("pick documents: %w", err)
	}
	s.Apply(res)
	return nil
}

// RequestAdd opens the chooser through gw and merges the outcome
func (s *Store) RequestAdd(ctx context.Context, gw Gateway) error {
	req, ok := s.BeginPick()
	if !ok {
		return nil
	}
	res, err := gw.Pick(ctx, req)
	return s.FinishPick(res, err)
}

// Apply merges a chooser result into the selection and reports whether a
// new list was committed. Cancelled results change nothing.
func (s *Store) Apply(res PickResult) bool {
	if res.IsCancelled() {
		logrus.Debug("attachments: pick cancelled")
		return false
	}

	picked := make([]domain.FileDescriptor, 0, len(res.items))
	for _, item := range res.items {
		fd, ok := Describe(item)
		if !ok {
			logrus.WithField("name", item.DisplayName).Warn("attachments: dropping item without locator")
			continue
		}
		picked = append(picked, fd)
	}
	if len(picked) == 0 {
		return false
	}

	var next []domain.FileDescriptor
	if s.opts.AllowMultiple {
		next = append(slices.Clone(s.state.Files), picked...)
		if len(next) > s.opts.MaxCount {
			logrus.WithField("dropped", len(next)-s.opts.MaxCount).Debug("attachments: selection truncated")
			next = next[:s.opts.MaxCount]
		}
	} else {
		next = []domain.FileDescriptor{picked[0]}
	}

	return s.commit(next)
}

// RequestRemove drops the file at index; out-of-range indices are ignored
func (s *Store) RequestRemove(index int) bool {
	if index < 0 || index >= len(s.state.Files) {
		return false
	}
	next := slices.Delete(slices.Clone(s.state.Files), index, index+1)
	return s.commit(next)
}

// Clear drops every file
func (s *Store) Clear() bool {
	return s.commit(nil)
}

func (s *Store) commit(next []domain.FileDescriptor) bool {
	if slices.EqualFunc(s.state.Files, next, domain.FileDescriptor.Equal) {
		return false
	}
	s.state.Files = next

	logrus.WithField("files", len(next)).Debug("attachments: selection committed")

	if s.listener != nil {
		s.listener(slices.Clone(next))
	}
	return true
}
