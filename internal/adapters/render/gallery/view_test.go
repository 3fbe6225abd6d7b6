package gallery

import (
	"strings"
	"testing"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSubmitter = domain.Identity("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")

func TestRenderEntries(t *testing.T) {
	view := domain.ListView{
		Available: true,
		Entries: []domain.Entry{
			{ID: "a", Link: "https://media.giphy.com/a.gif", Submitter: testSubmitter, State: domain.EntryConfirmed},
			{ID: "b", Link: "https://media.giphy.com/b.gif", Submitter: testSubmitter, State: domain.EntryPending},
			{ID: "c", Link: "https://media.giphy.com/c.gif", Submitter: testSubmitter, State: domain.EntryFailed, Err: "insufficient funds"},
		},
	}

	output, err := Render(view, RenderOptions{Address: "9wVgdfXgv7ZmdmXb1iQ4JLxSr5PFG6uZE3UHuJjcbkK5", Columns: 3, CardWidth: 40})
	require.NoError(t, err)

	assert.Contains(t, output, "GIF Portal")
	assert.Contains(t, output, "list: 9wVg…kK5")
	assert.Contains(t, output, "gifs: 3")
	assert.Contains(t, output, "pending: 1")
	assert.Contains(t, output, "failed: 1")
	assert.Contains(t, output, "https://media.giphy.com/a.gif")
	assert.Contains(t, output, "[confirmed]")
	assert.Contains(t, output, "by 7xKX…AsU")
	assert.Contains(t, output, "insufficient funds")
}

func TestRenderKeepsEntryOrder(t *testing.T) {
	view := domain.ListView{
		Available: true,
		Entries: []domain.Entry{
			{Link: "first.gif", State: domain.EntryConfirmed},
			{Link: "second.gif", State: domain.EntryConfirmed},
			{Link: "third.gif", State: domain.EntryLocal},
		},
	}

	output := RenderView(view, RenderOptions{Columns: 1, Plain: true}, NewStyles())

	first := strings.Index(output, "first.gif")
	second := strings.Index(output, "second.gif")
	third := strings.Index(output, "third.gif")
	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.NotContains(t, output, "GIF Portal")
}

func TestRenderEmptyAndUnavailable(t *testing.T) {
	tests := []struct {
		name string
		view domain.ListView
		want string
	}{
		{name: "empty", view: domain.EmptyView(), want: "No GIFs yet"},
		{name: "unavailable", view: domain.UnavailableView(), want: "List unavailable"},
		{name: "loading", view: domain.ListView{Available: true, Loading: true}, want: "Loading list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Render(tt.view, RenderOptions{})
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
			assert.Contains(t, output, "gifs: 0")
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
