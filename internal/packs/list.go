package packs

import (
	"context"
	"sync"

	"adminctl/internal/api"
	"adminctl/internal/notice"
	"adminctl/pkg/logging"
)

// List is the pack overview both forms navigate back to.
type List struct {
	client  Client
	notices notice.Sink

	mu      sync.Mutex
	packs   []api.Pack
	loaded  bool
	loading bool
}

// NewList creates an empty list.
func NewList(c Client, sink notice.Sink) *List {
	if sink == nil {
		sink = notice.Discard
	}
	return &List{client: c, notices: sink}
}

// Fetch replaces the list with the server's. On failure the previous list
// is kept and one error notice is emitted; a cancelled ctx is silent.
func (l *List) Fetch(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()

	packs, err := l.client.ListPacks(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn(subsystem, "list packs: %v", err)
		l.notices.Notify(notice.Notice{Level: notice.Error, Text: api.MessageOr(err, "Could not load packs")})
		return err
	}

	l.mu.Lock()
	l.packs = packs
	l.loaded = true
	l.mu.Unlock()
	logging.Debug(subsystem, "loaded %d packs", len(packs))
	return nil
}

// Packs returns a copy of the current list.
func (l *List) Packs() []api.Pack {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]api.Pack(nil), l.packs...)
}

// Loaded reports whether a fetch has succeeded at least once.
func (l *List) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

func (l *List) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Find returns the pack with id from the current list.
func (l *List) Find(id int64) (api.Pack, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.packs {
		if p.ID == id {
			return p, true
		}
	}
	return api.Pack{}, false
}
