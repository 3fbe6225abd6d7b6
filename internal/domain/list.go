package domain

import (
	"fmt"
	"strings"
)

// MediaLink is an opaque URL-like string pointing at a GIF. Only non-emptiness is checked.
type MediaLink string

// ParseMediaLink rejects blank input and otherwise keeps the link exactly as entered.
func ParseMediaLink(raw string) (MediaLink, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: media link is empty", ErrInvalidInput)
	}

	return MediaLink(raw), nil
}

// ListAddress is the address of the program account holding the shared list.
type ListAddress string

func (a ListAddress) String() string {
	return string(a)
}

type RemoteItem struct {
	Link      MediaLink
	Submitter Identity
}

// RemoteList is the authoritative copy of the list account, fetched wholesale.
type RemoteList struct {
	Address    ListAddress
	TotalCount uint64
	Items      []RemoteItem
}

type EntryState string

const (
	// EntryConfirmed entries came from the remote list or had their write confirmed.
	EntryConfirmed EntryState = "confirmed"
	// EntryLocal entries exist only in the local view and are lost on reload.
	EntryLocal   EntryState = "local"
	EntryPending EntryState = "pending"
	EntryFailed  EntryState = "failed"
)

type Entry struct {
	ID        string
	Link      MediaLink
	Submitter Identity
	State     EntryState
	Signature string
	Err       string
}

// ListView is the list shown to the user: a projection of RemoteList plus optimistic entries.
type ListView struct {
	Available bool
	Loading   bool
	Entries   []Entry
}

func EmptyView() ListView {
	return ListView{Available: true, Entries: []Entry{}}
}

// UnavailableView is the sentinel set after a failed fetch.
func UnavailableView() ListView {
	return ListView{Available: false}
}

func (v ListView) Links() []MediaLink {
	links := make([]MediaLink, 0, len(v.Entries))
	for _, entry := range v.Entries {
		links = append(links, entry.Link)
	}

	return links
}

func (v ListView) Clone() ListView {
	clone := v
	if v.Entries != nil {
		clone.Entries = append([]Entry(nil), v.Entries...)
	}

	return clone
}

// CountByState reports how many entries are in the given state.
func (v ListView) CountByState(state EntryState) int {
	count := 0
	for _, entry := range v.Entries {
		if entry.State == state {
			count++
		}
	}

	return count
}
