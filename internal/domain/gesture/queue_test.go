package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeQueue_SplitsPressAndReleaseInOneFrame(t *testing.T) {
	c := createTestClassifier(t)
	q := NewEdgeQueue(8)

	require.True(t, q.Push(Edge{At: ms(2), Kind: EdgeDown}))
	require.True(t, q.Push(Edge{At: ms(9), Kind: EdgeUp}))

	assert.Empty(t, q.Drain(c, ms(16)))
	assert.Equal(t, AwaitingSecondTap, c.State())

	assert.Empty(t, q.Drain(c, ms(32)))
	require.True(t, q.Push(Edge{At: ms(40), Kind: EdgeDown}))
	assert.Equal(t, []Event{GravityFlip}, q.Drain(c, ms(48)))
}

func TestEdgeQueue_HeldLevelBetweenEdges(t *testing.T) {
	c := createTestClassifier(t)
	q := NewEdgeQueue(8)

	q.Push(Edge{At: 0, Kind: EdgeDown})
	assert.Empty(t, q.Drain(c, 0))

	var got []Event
	for now := ms(16); now <= ms(224); now += ms(16) {
		got = append(got, q.Drain(c, now)...)
	}
	assert.Equal(t, []Event{ChargeStart}, got)

	q.Push(Edge{At: ms(230), Kind: EdgeUp})
	assert.Equal(t, []Event{ChargedAttackRelease}, q.Drain(c, ms(240)))
}

func TestEdgeQueue_ClampsFutureEdges(t *testing.T) {
	c := createTestClassifier(t)
	q := NewEdgeQueue(4)

	q.Push(Edge{At: ms(50), Kind: EdgeDown})
	q.Drain(c, ms(16))

	assert.Equal(t, PressedUnclassified, c.State())
	assert.Equal(t, 0, c.Anomalies())
}

func TestEdgeQueue_LateEdgeDoesNotRewindClock(t *testing.T) {
	c := createTestClassifier(t)
	q := NewEdgeQueue(4)

	assert.Empty(t, q.Drain(c, ms(16)))

	// Captured at 10ms but pushed after the 16ms drain
	require.True(t, q.Push(Edge{At: ms(10), Kind: EdgeDown}))
	assert.Empty(t, q.Drain(c, ms(32)))

	assert.Equal(t, PressedUnclassified, c.State())
	assert.Equal(t, 0, c.Anomalies())

	// Hold is measured from the clamped 16ms press
	assert.Empty(t, q.Drain(c, ms(215)))
	assert.Equal(t, []Event{ChargeStart}, q.Drain(c, ms(216)))
	assert.Equal(t, 0, c.Anomalies())
}

func TestEdgeQueue_DropsWhenFull(t *testing.T) {
	q := NewEdgeQueue(2)

	assert.True(t, q.Push(Edge{At: 0, Kind: EdgeDown}))
	assert.True(t, q.Push(Edge{At: ms(1), Kind: EdgeUp}))
	assert.False(t, q.Push(Edge{At: ms(2), Kind: EdgeDown}))
	assert.Equal(t, int64(1), q.Dropped())
}

func TestEdgeQueue_ConcurrentWriter(t *testing.T) {
	c := createTestClassifier(t)
	q := NewEdgeQueue(16)

	// Ten quick taps, 400ms apart so none pair up.
	var edges []Edge
	for i := 0; i < 10; i++ {
		start := ms(i * 400)
		edges = append(edges, Edge{At: start, Kind: EdgeDown}, Edge{At: start + ms(30), Kind: EdgeUp})
	}

	frames := make(chan time.Duration)
	go func() {
		defer close(frames)
		for now := ms(0); now <= ms(4400); now += ms(16) {
			for _, e := range edges {
				if e.At <= now && e.At > now-ms(16) {
					q.Push(e)
				}
			}
			frames <- now
		}
	}()

	var got []Event
	for now := range frames {
		got = append(got, q.Drain(c, now)...)
	}

	assert.Len(t, got, 10)
	for _, ev := range got {
		assert.Equal(t, LightAttack, ev)
	}
	assert.Equal(t, int64(0), q.Dropped())
	assert.Equal(t, 0, c.Anomalies())
}
