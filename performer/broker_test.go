package performer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loomstream/loom/performer"
)

func TestTrySendDropsNewestWhenFull(t *testing.T) {
	ch := make(chan int, 2)
	assert.True(t, performer.TrySend(ch, 1))
	assert.True(t, performer.TrySend(ch, 2))
	assert.False(t, performer.TrySend(ch, 3), "full channel must drop the new value")

	// the earlier values are intact
	v, ok := performer.TryRecv(ch)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = performer.TryRecv(ch)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = performer.TryRecv(ch)
	assert.False(t, ok)
}

func TestTimeoutReceive(t *testing.T) {
	ch := make(chan string, 1)
	ch <- "hello"
	v, ok := performer.TimeoutReceive(ch, time.Second)
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = performer.TimeoutReceive(ch, 10*time.Millisecond)
	assert.False(t, ok, "empty channel must time out")

	closed := make(chan string)
	close(closed)
	_, ok = performer.TimeoutReceive(closed, time.Second)
	assert.False(t, ok)
}

func TestBrokerChannelsAreBuffered(t *testing.T) {
	b := performer.NewBroker()
	assert.Greater(t, cap(b.ToPlayer), 0)
	assert.Greater(t, cap(b.ToModel), 0)
	assert.Greater(t, cap(b.Gestures), 0)
}
