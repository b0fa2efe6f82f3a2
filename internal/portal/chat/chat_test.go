package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/faq"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []domain.ContactMessage
	err  error
}

func (s *recordingSender) SendContactMessage(_ context.Context, msg domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newTestConversation(t *testing.T, sender Sender) *Conversation {
	t.Helper()
	r := NewRegistry(context.Background(), Options{Sender: sender})
	c := r.Create("sid-1")
	t.Cleanup(c.Close)
	return c
}

func TestNewConversationStartsWithGreeting(t *testing.T) {
	t.Parallel()

	snap := newTestConversation(t, nil).Snapshot()
	require.Equal(t, StateIdle, snap.State)
	require.True(t, snap.ShowExamples)
	require.Len(t, snap.Messages, 1)
	require.Equal(t, faq.Greeting, snap.Messages[0].Text)
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("blank input is ignored", func(t *testing.T) {
		c := newTestConversation(t, nil)
		snap, err := c.Submit(ctx, "   ")
		require.NoError(t, err)
		require.Len(t, snap.Messages, 1)
		require.True(t, snap.ShowExamples)
	})

	t.Run("matched question", func(t *testing.T) {
		c := newTestConversation(t, nil)
		snap, err := c.Submit(ctx, "Where are you located?")
		require.NoError(t, err)
		require.Equal(t, StateIdle, snap.State)
		require.False(t, snap.ShowExamples)
		require.Len(t, snap.Messages, 3)
		require.Equal(t, domain.SenderUser, snap.Messages[1].Type)
		require.Equal(t, "We are based in New York but work with clients nationally.", snap.Messages[2].Text)
		require.Empty(t, snap.Messages[2].Actions)
	})

	t.Run("unanswered question offers contact", func(t *testing.T) {
		c := newTestConversation(t, nil)
		snap, err := c.Submit(ctx, "what is it")
		require.NoError(t, err)

		last := snap.Messages[len(snap.Messages)-1]
		require.Equal(t, faq.Fallback+faq.ContactPrompt, last.Text)
		require.Equal(t, []domain.ChatAction{{Label: faq.ContactUs, Action: domain.ActionContactUs}}, last.Actions)
	})

	t.Run("category scoping", func(t *testing.T) {
		c := newTestConversation(t, nil)
		_, err := c.SelectCategory(ctx, faq.CategoryNMTC)
		require.NoError(t, err)

		snap, err := c.Submit(ctx, "what is it")
		require.NoError(t, err)
		require.Equal(t, StateCategorySelected, snap.State)
		require.Contains(t, snap.Messages[len(snap.Messages)-1].Text, "The New Markets Tax Credit (NMTC) Program")
	})
}

func TestSubmitPrunesBeforeContactPrompt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestConversation(t, nil)

	// greeting, user, bot
	_, err := c.Submit(ctx, "Where are you located?")
	require.NoError(t, err)

	// transcript incl. the new user message is 4: no pruning yet
	snap, err := c.Submit(ctx, "what is it")
	require.NoError(t, err)
	require.Len(t, snap.Messages, 5)

	// 6 with the new user message: keep greeting + last 3, then the prompt
	snap, err = c.Submit(ctx, "zzz qqq")
	require.NoError(t, err)
	require.Len(t, snap.Messages, 5)
	require.Equal(t, faq.Greeting, snap.Messages[0].Text)
	require.Equal(t, "what is it", snap.Messages[1].Text)
	require.Equal(t, "zzz qqq", snap.Messages[3].Text)
	require.Equal(t, faq.Fallback+faq.ContactPrompt, snap.Messages[4].Text)
}

func TestSubmitSmallTalkDoesNotPrune(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestConversation(t, nil)

	_, err := c.Submit(ctx, "Where are you located?")
	require.NoError(t, err)
	_, err = c.Submit(ctx, "what is it")
	require.NoError(t, err)

	// "anything" contains "hi", which the greeting rule answers
	snap, err := c.Submit(ctx, "anything else?")
	require.NoError(t, err)
	require.Len(t, snap.Messages, 7)
	require.Equal(t, faq.Greeting, snap.Messages[0].Text)
	require.Equal(t, "Where are you located?", snap.Messages[1].Text)
	require.Equal(t, "anything else?", snap.Messages[5].Text)
	require.NotEqual(t, faq.Fallback+faq.ContactPrompt, snap.Messages[6].Text)
}

func TestAskExample(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("faq answer", func(t *testing.T) {
		c := newTestConversation(t, nil)
		snap, err := c.AskExample(ctx, "What is your pricing?")
		require.NoError(t, err)
		require.Len(t, snap.Messages, 3)
		require.Equal(t, "Let's discuss your specific needs to determine the right pricing for your organization.", snap.Messages[2].Text)
	})

	t.Run("miss inside a category", func(t *testing.T) {
		c := newTestConversation(t, nil)
		_, err := c.SelectCategory(ctx, faq.CategoryCDFI)
		require.NoError(t, err)

		snap, err := c.AskExample(ctx, "Tell me a story")
		require.NoError(t, err)
		require.Equal(t, faq.StillLearning(faq.CategoryCDFI), snap.Messages[len(snap.Messages)-1].Text)
	})

	t.Run("miss without a category", func(t *testing.T) {
		c := newTestConversation(t, nil)
		snap, err := c.AskExample(ctx, "Tell me a story")
		require.NoError(t, err)
		last := snap.Messages[len(snap.Messages)-1]
		require.Equal(t, faq.Fallback, last.Text)
		require.Empty(t, last.Actions)
	})

	t.Run("contact us opens the form", func(t *testing.T) {
		c := newTestConversation(t, nil)
		snap, err := c.AskExample(ctx, faq.ContactUs)
		require.NoError(t, err)
		require.Equal(t, StateAwaitingContactForm, snap.State)
		require.Len(t, snap.Messages, 1)
	})
}

func TestCategorySelection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestConversation(t, nil)

	snap, err := c.SelectCategory(ctx, faq.CategoryCharterSchools)
	require.NoError(t, err)
	require.Equal(t, StateCategorySelected, snap.State)
	require.Equal(t, "charterSchools", snap.Category)
	require.False(t, snap.ShowExamples)
	require.Equal(t, faq.CategoryGreeting(faq.CategoryCharterSchools), snap.Messages[len(snap.Messages)-1].Text)

	snap, err = c.ClearCategory()
	require.NoError(t, err)
	require.Equal(t, StateIdle, snap.State)
	require.Empty(t, snap.Category)
	require.True(t, snap.ShowExamples)
}

func TestContactForm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty message is rejected without dispatch", func(t *testing.T) {
		sender := &recordingSender{}
		c := newTestConversation(t, sender)
		_, err := c.OpenContactForm()
		require.NoError(t, err)

		snap, err := c.SubmitContactForm(ctx, ContactForm{Name: "Jane", Email: "jane@example.org"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Message is required", snap.ContactFormErrors["message"])
		require.Zero(t, sender.calls())
		require.Equal(t, StateAwaitingContactForm, snap.State)
	})

	t.Run("valid form relays once", func(t *testing.T) {
		sender := &recordingSender{}
		c := newTestConversation(t, sender)
		_, err := c.OpenContactForm()
		require.NoError(t, err)
		before := len(c.Snapshot().Messages)

		snap, err := c.SubmitContactForm(ctx, ContactForm{Name: "Jane", Email: "jane@example.org", Message: "Hello"})
		require.NoError(t, err)
		require.Equal(t, 1, sender.calls())
		require.Len(t, snap.Messages, before+1)
		require.Equal(t, "Thank you, Jane! Your message has been sent. We'll get back to you at jane@example.org as soon as possible.", snap.Messages[before].Text)
		require.False(t, snap.ShowContactForm)
		require.Equal(t, ContactForm{}, snap.ContactForm)
		require.Equal(t, domain.ContactMessage{Name: "Jane", Email: "jane@example.org", Message: "Hello"}, sender.sent[0])
	})

	t.Run("relay failure keeps the form open", func(t *testing.T) {
		boom := errors.New("boom")
		sender := &recordingSender{err: boom}
		c := newTestConversation(t, sender)
		_, err := c.OpenContactForm()
		require.NoError(t, err)

		snap, err := c.SubmitContactForm(ctx, ContactForm{Name: "Jane", Email: "jane@example.org", Message: "Hello"})
		require.ErrorIs(t, err, boom)
		require.True(t, snap.ShowContactForm)
		require.Equal(t, ContactFailed, snap.Messages[len(snap.Messages)-1].Text)
	})

	t.Run("submit requires an open form", func(t *testing.T) {
		c := newTestConversation(t, &recordingSender{})
		_, err := c.SubmitContactForm(ctx, ContactForm{Name: "Jane", Email: "jane@example.org", Message: "Hello"})
		require.ErrorIs(t, err, ErrContactFormClosed)
	})

	t.Run("cancel clears fields and errors", func(t *testing.T) {
		c := newTestConversation(t, &recordingSender{})
		_, err := c.OpenContactForm()
		require.NoError(t, err)
		_, err = c.SubmitContactForm(ctx, ContactForm{Name: "Jane", Email: "not-an-email"})
		require.Error(t, err)

		snap, err := c.CancelContactForm()
		require.NoError(t, err)
		require.False(t, snap.ShowContactForm)
		require.Empty(t, snap.ContactFormErrors)
		require.Equal(t, ContactForm{}, snap.ContactForm)
		require.Equal(t, StateIdle, snap.State)
	})

	t.Run("opening prunes a long transcript", func(t *testing.T) {
		c := newTestConversation(t, nil)
		_, err := c.Submit(ctx, "Where are you located?")
		require.NoError(t, err)
		_, err = c.Submit(ctx, "What do you offer?")
		require.NoError(t, err)

		snap, err := c.OpenContactForm()
		require.NoError(t, err)
		require.Len(t, snap.Messages, 3)
		require.Equal(t, faq.Greeting, snap.Messages[0].Text)
		require.Equal(t, "What do you offer?", snap.Messages[1].Text)
	})
}

func TestResetAlwaysLeavesOnlyTheGreeting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestConversation(t, nil)

	for _, q := range []string{"hello", "what is it", "pricing?", "where?"} {
		_, err := c.Submit(ctx, q)
		require.NoError(t, err)
	}
	_, err := c.SelectCategory(ctx, faq.CategoryNMTC)
	require.NoError(t, err)
	_, err = c.OpenContactForm()
	require.NoError(t, err)

	snap, err := c.Reset()
	require.NoError(t, err)
	require.Len(t, snap.Messages, 1)
	require.Equal(t, faq.Greeting, snap.Messages[0].Text)
	require.Equal(t, StateIdle, snap.State)
	require.True(t, snap.ShowExamples)
	require.False(t, snap.ShowContactForm)
}

func TestPendingReplies(t *testing.T) {
	t.Parallel()

	newSlow := func(t *testing.T) *Conversation {
		r := NewRegistry(context.Background(), Options{ReplyLatency: time.Hour})
		c := r.Create("sid-1")
		t.Cleanup(c.Close)
		return c
	}

	startSubmit := func(c *Conversation) <-chan error {
		errc := make(chan error, 1)
		go func() {
			_, err := c.Submit(context.Background(), "hello")
			errc <- err
		}()
		return errc
	}

	waitProcessing := func(t *testing.T, c *Conversation) {
		require.Eventually(t, func() bool {
			return c.Snapshot().State == StateProcessing
		}, time.Second, 5*time.Millisecond)
	}

	t.Run("overlapping submit is busy", func(t *testing.T) {
		c := newSlow(t)
		_ = startSubmit(c)
		waitProcessing(t, c)

		_, err := c.Submit(context.Background(), "again")
		require.ErrorIs(t, err, ErrBusy)
	})

	t.Run("reset drops the pending reply", func(t *testing.T) {
		c := newSlow(t)
		errc := startSubmit(c)
		waitProcessing(t, c)

		snap, err := c.Reset()
		require.NoError(t, err)
		require.Len(t, snap.Messages, 1)
		require.NoError(t, <-errc)
		require.Len(t, c.Snapshot().Messages, 1)
	})

	t.Run("close is a no-op for the pending reply", func(t *testing.T) {
		c := newSlow(t)
		errc := startSubmit(c)
		waitProcessing(t, c)

		c.Close()
		require.ErrorIs(t, <-errc, ErrClosed)
		require.Len(t, c.Snapshot().Messages, 2)

		_, err := c.Submit(context.Background(), "hi")
		require.ErrorIs(t, err, ErrClosed)
	})

	t.Run("caller giving up does not drop the reply", func(t *testing.T) {
		r := NewRegistry(context.Background(), Options{ReplyLatency: 20 * time.Millisecond})
		c := r.Create("sid-1")
		t.Cleanup(c.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Submit(ctx, "hello")
		require.ErrorIs(t, err, context.Canceled)

		require.Eventually(t, func() bool {
			return len(c.Snapshot().Messages) == 3
		}, time.Second, 5*time.Millisecond)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry(context.Background(), Options{Now: func() time.Time { return now }})

	a := r.Create("sid-a")
	got, err := r.Get(a.ID(), "sid-a")
	require.NoError(t, err)
	require.Same(t, a, got)

	_, err = r.Get(a.ID(), "sid-b")
	require.ErrorIs(t, err, ErrConversationNotFound)
	require.ErrorIs(t, r.Delete(a.ID(), "sid-b"), ErrConversationNotFound)

	require.NoError(t, r.Delete(a.ID(), "sid-a"))
	_, err = a.Reset()
	require.ErrorIs(t, err, ErrClosed)

	r.Create("sid-a")
	require.Equal(t, 1, r.Len())
	require.Zero(t, r.EvictIdle(now))
	require.Equal(t, 1, r.EvictIdle(now.Add(time.Minute)))
	require.Zero(t, r.Len())
}
