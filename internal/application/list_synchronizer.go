package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/logging"
	"github.com/bnema/gifportal/internal/ports"
	"github.com/google/uuid"
)

type ViewListener func(view domain.ListView)

type ListSynchronizerOption func(*ListSynchronizer)

// WithListWriter makes appends write through to the list account. Without a writer appends stay local.
func WithListWriter(writer ports.ListWriter) ListSynchronizerOption {
	return func(s *ListSynchronizer) {
		s.writer = writer
	}
}

func WithEntryIDs(newID func() string) ListSynchronizerOption {
	return func(s *ListSynchronizer) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// ListSynchronizer hydrates the local list view from the list account and applies optimistic appends.
type ListSynchronizer struct {
	reader  ports.ListReader
	writer  ports.ListWriter
	address domain.ListAddress
	newID   func() string

	mu          sync.Mutex
	view        domain.ListView
	input       string
	identity    domain.Identity
	generation  uint64
	cancelFetch context.CancelFunc
	listeners   []ViewListener

	// inflight counts background fetches and writes; idle is signalled when it drops to zero.
	inflight int
	idle     *sync.Cond
}

func NewListSynchronizer(reader ports.ListReader, address domain.ListAddress, opts ...ListSynchronizerOption) *ListSynchronizer {
	s := &ListSynchronizer{
		reader:  reader,
		address: address,
		newID:   uuid.NewString,
		view:    domain.EmptyView(),
	}
	s.idle = sync.NewCond(&s.mu)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *ListSynchronizer) View() domain.ListView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view.Clone()
}

func (s *ListSynchronizer) Address() domain.ListAddress {
	return s.address
}

func (s *ListSynchronizer) WritesThrough() bool {
	return s.writer != nil
}

func (s *ListSynchronizer) Subscribe(listener ViewListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *ListSynchronizer) SetInput(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = value
}

func (s *ListSynchronizer) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.input
}

// Wait blocks until every background fetch and write has settled, including work started while waiting.
func (s *ListSynchronizer) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.inflight > 0 {
		s.idle.Wait()
	}
}

func (s *ListSynchronizer) workDone() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if s.inflight == 0 {
		s.idle.Broadcast()
	}
}

// OnAuthenticated starts one fetch for the new identity. Any fetch still in flight is cancelled and
// its result dropped when it arrives.
func (s *ListSynchronizer) OnAuthenticated(ctx context.Context, identity domain.Identity) {
	s.mu.Lock()
	if s.cancelFetch != nil {
		s.cancelFetch()
	}
	s.generation++
	generation := s.generation
	s.identity = identity

	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancelFetch = cancel
	s.view.Loading = true
	s.inflight++
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)

	go func() {
		defer s.workDone()
		defer cancel()
		s.fetchRemoteList(fetchCtx, generation)
	}()
}

func (s *ListSynchronizer) fetchRemoteList(ctx context.Context, generation uint64) {
	ctx = logging.WithComponent(ctx, "list_sync")
	log := logging.FromContext(ctx)

	remote, err := s.fetch(ctx)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		log.Debug().Uint64("generation", generation).Msg("discarding superseded list fetch")
		return
	}
	s.cancelFetch = nil

	if err != nil {
		s.view = domain.UnavailableView()
	} else {
		s.view = viewFromRemote(remote)
	}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Str("address", s.address.String()).Msg("list unavailable")
	} else {
		log.Info().Int("entries", len(snapshot.Entries)).Msg("list fetched")
	}
	notify(listeners, snapshot)
}

func (s *ListSynchronizer) fetch(ctx context.Context) (domain.RemoteList, error) {
	if s.address == "" {
		return domain.RemoteList{}, fmt.Errorf("%w: %w", domain.ErrFetchFailed, domain.ErrListNotConfigured)
	}

	remote, err := s.reader.FetchList(ctx, s.address)
	if err != nil {
		return domain.RemoteList{}, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	return remote, nil
}

// AppendLocal validates link and appends it to the view right away, clearing the input buffer.
// The session must be authenticated first (OnAuthenticated called), otherwise it returns
// domain.ErrNotConnected and leaves the view untouched.
func (s *ListSynchronizer) AppendLocal(ctx context.Context, raw string) (domain.Entry, error) {
	link, err := domain.ParseMediaLink(raw)
	if err != nil {
		return domain.Entry{}, err
	}

	s.mu.Lock()
	if s.identity == "" {
		s.mu.Unlock()
		return domain.Entry{}, domain.ErrNotConnected
	}

	entry := domain.Entry{
		ID:        s.newID(),
		Link:      link,
		Submitter: s.identity,
		State:     domain.EntryLocal,
	}
	if s.writer != nil {
		entry.State = domain.EntryPending
	}

	if !s.view.Available {
		loading := s.view.Loading
		s.view = domain.EmptyView()
		s.view.Loading = loading
	}
	s.view.Entries = append(s.view.Entries, entry)
	s.input = ""
	if s.writer != nil {
		s.inflight++
	}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)

	if s.writer != nil {
		go func() {
			defer s.workDone()
			s.writeEntry(ctx, entry)
		}()
	}

	return entry, nil
}

// Submit appends the current input buffer.
func (s *ListSynchronizer) Submit(ctx context.Context) (domain.Entry, error) {
	return s.AppendLocal(ctx, s.Input())
}

func (s *ListSynchronizer) writeEntry(ctx context.Context, entry domain.Entry) {
	ctx = logging.WithComponent(ctx, "list_sync")
	log := logging.FromContext(ctx)

	signature, err := s.writer.AppendEntry(ctx, s.address, entry.Link)
	if err != nil {
		log.Error().Err(err).Str("link", string(entry.Link)).Msg("append entry to list account")
	} else {
		log.Info().Str("signature", signature).Str("link", string(entry.Link)).Msg("entry confirmed")
	}

	s.mu.Lock()
	index := -1
	for i := range s.view.Entries {
		if s.view.Entries[i].ID == entry.ID {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		log.Debug().Str("entry", entry.ID).Msg("entry replaced by a newer fetch before its write settled")
		return
	}

	if err != nil {
		s.view.Entries[index].State = domain.EntryFailed
		s.view.Entries[index].Err = err.Error()
	} else {
		s.view.Entries[index].State = domain.EntryConfirmed
		s.view.Entries[index].Signature = signature
	}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
}

func (s *ListSynchronizer) snapshotLocked() (domain.ListView, []ViewListener) {
	return s.view.Clone(), append([]ViewListener(nil), s.listeners...)
}

func notify(listeners []ViewListener, view domain.ListView) {
	for _, listener := range listeners {
		listener(view)
	}
}

func viewFromRemote(remote domain.RemoteList) domain.ListView {
	entries := make([]domain.Entry, 0, len(remote.Items))
	for i, item := range remote.Items {
		entries = append(entries, domain.Entry{
			ID:        fmt.Sprintf("%s#%d", remote.Address, i),
			Link:      item.Link,
			Submitter: item.Submitter,
			State:     domain.EntryConfirmed,
		})
	}

	return domain.ListView{Available: true, Entries: entries}
}
