package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/faq"
	"github.com/clarityimpactfinance/portal/pkg/asyncx"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

type Conversation struct {
	id    string
	owner string
	opts  Options

	mu sync.Mutex

	// lifetime is cancelled by Reset and Close; every delayed reply runs
	// under it. gen guards replies that already passed their delay.
	base     context.Context
	lifetime context.Context
	cancel   context.CancelFunc
	gen      uint64

	messages     []domain.ChatMessage
	category     faq.Category
	showExamples bool
	formOpen     bool
	form         ContactForm
	formErrors   map[string]string
	processing   bool
	sending      bool
	closed       bool
	updatedAt    time.Time
}

func newConversation(base context.Context, id, owner string, opts Options) *Conversation {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &Conversation{id: id, owner: owner, opts: opts, base: base}
	c.lifetime, c.cancel = context.WithCancel(base)
	c.resetLocked()
	return c
}

func (c *Conversation) ID() string    { return c.id }
func (c *Conversation) Owner() string { return c.owner }

// Submit answers free text after the reply latency. Blank input is ignored.
// A question nobody can answer gets the contact prompt with a Contact Us
// action, pruning the transcript first when it has grown long.
func (c *Conversation) Submit(ctx context.Context, text string) (Snapshot, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return c.Snapshot(), nil
	}

	c.mu.Lock()
	if err := c.readyLocked(); err != nil {
		c.mu.Unlock()
		return Snapshot{}, err
	}

	c.messages = append(c.messages, domain.UserMessage(text))
	c.showExamples = false
	c.processing = true
	c.touchLocked()

	category := c.category
	task := c.scheduleLocked(c.opts.ReplyLatency, func() {
		c.processing = false
		c.answerLocked(text, category)
	})
	c.mu.Unlock()

	slogx.FromContext(ctx).Debug("chat reply scheduled",
		slog.String("conversation_id", c.id),
		slog.String("category", string(category)),
	)

	return c.await(ctx, task)
}

// AskExample answers a popular question using the FAQ intents only. The
// Contact Us example opens the contact form instead.
func (c *Conversation) AskExample(ctx context.Context, question string) (Snapshot, error) {
	if question == faq.ContactUs {
		return c.OpenContactForm()
	}

	c.mu.Lock()
	if err := c.readyLocked(); err != nil {
		c.mu.Unlock()
		return Snapshot{}, err
	}

	reply := faq.Fallback
	if resp, ok := faq.MatchFAQ(question); ok {
		reply = resp.Text
	} else if c.category != faq.CategoryNone {
		reply = faq.StillLearning(c.category)
	}

	c.messages = append(c.messages, domain.UserMessage(question))
	c.processing = true
	c.touchLocked()

	task := c.scheduleLocked(c.opts.ReplyLatency, func() {
		c.processing = false
		c.messages = append(c.messages, domain.BotMessage(reply))
	})
	c.mu.Unlock()

	return c.await(ctx, task)
}

// SelectCategory scopes later questions to a topic and posts its greeting
// after the greeting latency.
func (c *Conversation) SelectCategory(ctx context.Context, category faq.Category) (Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Snapshot{}, ErrClosed
	}

	c.category = category
	c.showExamples = false
	c.touchLocked()

	greeting := faq.CategoryGreeting(category)
	task := c.scheduleLocked(c.opts.GreetingLatency, func() {
		c.messages = append(c.messages, domain.BotMessage(greeting))
	})
	c.mu.Unlock()

	return c.await(ctx, task)
}

// ClearCategory returns to the general scope and shows the examples again.
func (c *Conversation) ClearCategory() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Snapshot{}, ErrClosed
	}

	c.category = faq.CategoryNone
	c.showExamples = true
	c.touchLocked()
	return c.snapshotLocked(), nil
}

func (c *Conversation) OpenContactForm() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Snapshot{}, ErrClosed
	}

	c.messages = prune(c.messages, formPruneLimit, formKeepLast)
	c.formOpen = true
	c.touchLocked()
	return c.snapshotLocked(), nil
}

// CancelContactForm closes the form and discards what was typed.
func (c *Conversation) CancelContactForm() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Snapshot{}, ErrClosed
	}

	c.formOpen = false
	c.form = ContactForm{}
	c.formErrors = nil
	c.touchLocked()
	return c.snapshotLocked(), nil
}

// SubmitContactForm validates the form and relays it exactly once. Invalid
// forms keep their field errors and never reach the Sender. A failed relay
// leaves the form open so the visitor can retry.
func (c *Conversation) SubmitContactForm(ctx context.Context, form ContactForm) (Snapshot, error) {
	log := slogx.FromContext(ctx)

	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return Snapshot{}, ErrClosed
	case !c.formOpen:
		c.mu.Unlock()
		return Snapshot{}, ErrContactFormClosed
	case c.sending:
		c.mu.Unlock()
		return Snapshot{}, ErrBusy
	}

	c.form = form
	c.touchLocked()

	if err := form.message().Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.formErrors = verr.Fields
		}
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}

	c.formErrors = nil
	c.sending = true
	gen := c.gen
	c.mu.Unlock()

	var err error
	if c.opts.Sender == nil {
		err = errors.New("chat: no contact sender configured")
	} else {
		err = c.opts.Sender.SendContactMessage(ctx, form.message())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sending = false
	if c.closed {
		return Snapshot{}, ErrClosed
	}
	if c.gen != gen {
		// Reset while the relay was in flight; the old transcript is gone.
		return c.snapshotLocked(), err
	}

	if err != nil {
		log.Error("failed to relay chat contact form",
			slog.String("conversation_id", c.id),
			slog.Any("error", err),
		)
		c.messages = append(c.messages, domain.BotMessage(ContactFailed))
		return c.snapshotLocked(), fmt.Errorf("chat: send contact form: %w", err)
	}

	c.messages = append(c.messages, domain.BotMessage(fmt.Sprintf(ContactSentTemplate, form.Name, form.Email)))
	c.form = ContactForm{}
	c.formOpen = false
	c.touchLocked()
	return c.snapshotLocked(), nil
}

// Reset drops any pending reply and leaves only the greeting.
func (c *Conversation) Reset() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Snapshot{}, ErrClosed
	}

	c.cancel()
	c.lifetime, c.cancel = context.WithCancel(c.base)
	c.resetLocked()
	return c.snapshotLocked(), nil
}

// Close cancels pending replies. Replies that complete later are dropped.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	c.cancel()
}

func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Conversation) UpdatedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatedAt
}

func (c *Conversation) resetLocked() {
	c.gen++
	c.messages = []domain.ChatMessage{domain.BotMessage(faq.Greeting)}
	c.category = faq.CategoryNone
	c.showExamples = true
	c.formOpen = false
	c.form = ContactForm{}
	c.formErrors = nil
	c.processing = false
	c.sending = false
	c.touchLocked()
}

func (c *Conversation) readyLocked() error {
	switch {
	case c.closed:
		return ErrClosed
	case c.processing:
		return ErrBusy
	}
	return nil
}

func (c *Conversation) answerLocked(text string, category faq.Category) {
	reply := faq.Fallback
	if resp, ok := faq.Match(text, category); ok {
		reply = resp.Text
	}

	if !faq.IsUnanswered(reply) {
		c.messages = append(c.messages, domain.BotMessage(reply))
		return
	}

	c.messages = prune(c.messages, promptPruneLimit, promptKeepLast)
	c.messages = append(c.messages, domain.ChatMessage{
		Type:    domain.SenderBot,
		Text:    reply + faq.ContactPrompt,
		Actions: []domain.ChatAction{{Label: faq.ContactUs, Action: domain.ActionContactUs}},
	})
}

// scheduleLocked runs apply under the lock after delay, unless the
// conversation was reset or closed in the meantime.
func (c *Conversation) scheduleLocked(delay time.Duration, apply func()) *asyncx.Task[struct{}] {
	gen := c.gen
	return asyncx.After(c.lifetime, delay, func(context.Context) (struct{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.closed || c.gen != gen {
			return struct{}{}, asyncx.ErrCancelled
		}
		apply()
		c.touchLocked()
		return struct{}{}, nil
	})
}

// await blocks until the reply lands. A reply dropped by Reset is not an
// error; one dropped by Close is.
func (c *Conversation) await(ctx context.Context, task *asyncx.Task[struct{}]) (Snapshot, error) {
	_, err := task.Wait(ctx)
	if errors.Is(err, asyncx.ErrCancelled) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return Snapshot{}, ErrClosed
		}
		return c.snapshotLocked(), nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

func (c *Conversation) touchLocked() { c.updatedAt = c.opts.Now() }

func (c *Conversation) stateLocked() State {
	switch {
	case c.processing:
		return StateProcessing
	case c.formOpen:
		return StateAwaitingContactForm
	case c.category != faq.CategoryNone:
		return StateCategorySelected
	default:
		return StateIdle
	}
}

func (c *Conversation) snapshotLocked() Snapshot {
	return Snapshot{
		ID:                c.id,
		State:             c.stateLocked(),
		Category:          string(c.category),
		ShowExamples:      c.showExamples,
		ShowContactForm:   c.formOpen,
		ContactForm:       c.form,
		ContactFormErrors: maps.Clone(c.formErrors),
		Messages:          slices.Clone(c.messages),
		UpdatedAt:         c.updatedAt,
	}
}
