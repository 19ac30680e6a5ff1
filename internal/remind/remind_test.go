package remind

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lsftui/internal/dictionary"
)

type notification struct {
	title, body string
}

// recorder stores notifications and cancels the run after limit of them.
type recorder struct {
	sent   []notification
	limit  int
	cancel context.CancelFunc
	err    error
}

func (r *recorder) Notify(title, body string) error {
	r.sent = append(r.sent, notification{title, body})
	if len(r.sent) >= r.limit {
		r.cancel()
	}
	return r.err
}

var words = []dictionary.Word{
	{Name: "bonjour", Description: "flat hand from chin", Link: "https://example.com/bonjour"},
}

func TestNew_RequiresWords(t *testing.T) {
	_, err := New(nil, Options{Every: time.Second})
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = New(words, Options{})
	assert.Error(t, err)
}

func TestRun_PrintsAndNotifies(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	rec := &recorder{limit: 3, cancel: cancel}
	r, err := New(words, Options{
		Every:       time.Millisecond,
		Description: true,
		Out:         &out,
		Notifier:    rec,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)

	require.NoError(t, r.Run(ctx))

	require.Len(t, rec.sent, 3)
	assert.Equal(t, notification{"bonjour", "flat hand from chin"}, rec.sent[0])

	got := out.String()
	assert.True(t, strings.HasPrefix(got,
		"0 :\n   Word        : bonjour\n   Description : flat hand from chin\n   Link        : https://example.com/bonjour\n"))
	assert.Contains(t, got, "\n2 :\n")
}

func TestRun_OmitsDescriptionFromNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{limit: 1, cancel: cancel}
	r, err := New(words, Options{Every: time.Hour, Notifier: rec})
	require.NoError(t, err)
	require.NoError(t, r.Run(ctx))

	require.Len(t, rec.sent, 1)
	assert.Empty(t, rec.sent[0].body)
}

func TestRun_NotificationFailureKeepsGoing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{limit: 2, cancel: cancel, err: errors.New("no daemon")}
	r, err := New(words, Options{Every: time.Millisecond, Notifier: rec})
	require.NoError(t, err)

	assert.NoError(t, r.Run(ctx))
	assert.Len(t, rec.sent, 2)
}

func TestPick_CoversAllWords(t *testing.T) {
	many := []dictionary.Word{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	r, err := New(many, Options{Every: time.Second, Rand: rand.New(rand.NewPCG(7, 7))})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[r.pick().Name] = true
	}
	assert.Len(t, seen, 3)
}
