package relay

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardPostAndPoll(t *testing.T) {
	b := NewBoard(0)

	m1 := b.Post("coach", "Willkommen zur Session")
	m2 := b.Post("coachee", "Danke!")

	assert.Equal(t, 1, m1.Seq)
	assert.Equal(t, 2, m2.Seq)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, "coach", all[0].Sender)

	// polling after the first message only returns the second
	newer := b.After(1)
	require.Len(t, newer, 1)
	assert.Equal(t, "Danke!", newer[0].Text)

	assert.Empty(t, b.After(2))
}

func TestBoardClearKeepsSequence(t *testing.T) {
	b := NewBoard(0)
	b.Post("coach", "eins")
	b.Clear()
	assert.Zero(t, b.Len())

	m := b.Post("coach", "zwei")
	assert.Equal(t, 2, m.Seq)
}

func TestBoardBounded(t *testing.T) {
	b := NewBoard(3)
	for i := 0; i < 5; i++ {
		b.Post("coach", fmt.Sprintf("msg %d", i))
	}
	all := b.All()
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Seq)
	assert.Equal(t, 5, all[2].Seq)
}

func TestBoardConcurrentPosts(t *testing.T) {
	b := NewBoard(0)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Post("coach", "parallel")
		}()
	}
	wg.Wait()

	all := b.All()
	require.Len(t, all, 20)
	seen := make(map[int]bool)
	for _, m := range all {
		assert.False(t, seen[m.Seq], "duplicate seq %d", m.Seq)
		seen[m.Seq] = true
	}
}
