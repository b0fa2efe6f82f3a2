package chat

import (
	"context"
	"sync"
	"time"

	"github.com/clarityimpactfinance/portal/pkg/idx"
)

// Registry owns the live conversations. Each one belongs to the browser
// session that created it and is invisible to every other session.
type Registry struct {
	base context.Context
	opts Options

	mu    sync.RWMutex
	convs map[string]*Conversation
}

// NewRegistry creates conversations whose delayed replies stop when base is
// cancelled.
func NewRegistry(base context.Context, opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{base: base, opts: opts, convs: make(map[string]*Conversation)}
}

func (r *Registry) Create(owner string) *Conversation {
	c := newConversation(r.base, idx.NewAt(r.opts.Now()).String(), owner, r.opts)

	r.mu.Lock()
	r.convs[c.ID()] = c
	r.mu.Unlock()

	return c
}

// Get returns ErrConversationNotFound for unknown ids and for conversations
// owned by another session.
func (r *Registry) Get(id, owner string) (*Conversation, error) {
	r.mu.RLock()
	c, ok := r.convs[id]
	r.mu.RUnlock()

	if !ok || c.Owner() != owner {
		return nil, ErrConversationNotFound
	}
	return c, nil
}

// Delete closes and forgets a conversation.
func (r *Registry) Delete(id, owner string) error {
	r.mu.Lock()
	c, ok := r.convs[id]
	if !ok || c.Owner() != owner {
		r.mu.Unlock()
		return ErrConversationNotFound
	}
	delete(r.convs, id)
	r.mu.Unlock()

	c.Close()
	return nil
}

// EvictIdle closes every conversation untouched since before.
func (r *Registry) EvictIdle(before time.Time) int {
	r.mu.Lock()
	var stale []*Conversation
	for id, c := range r.convs {
		if c.UpdatedAt().Before(before) {
			stale = append(stale, c)
			delete(r.convs, id)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.convs)
}

// CloseAll is called on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	convs := r.convs
	r.convs = make(map[string]*Conversation)
	r.mu.Unlock()

	for _, c := range convs {
		c.Close()
	}
}
