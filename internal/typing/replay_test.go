package typing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/typing"
)

func TestReplayer_Replay(t *testing.T) {
	t.Run("should emit short replies in a single sink call", func(t *testing.T) {
		replayer := typing.NewReplayer()

		var calls []string
		err := replayer.Replay(context.Background(), "Quick answer.", func(text string) {
			calls = append(calls, text)
		})
		require.NoError(t, err)
		require.Len(t, calls, 1)
		require.Equal(t, "Quick answer.", calls[0])
	})

	t.Run("should feed the sink monotonically growing prefixes", func(t *testing.T) {
		replayer := typing.NewReplayer()
		text := "**Plan**\nStart at the fort, then walk the spice market.\n\n" +
			"• fort opens at eight\n• market peaks mid-morning\n\n" +
			"Leave the afternoon unplanned; the old town rewards wandering without a list."

		var calls []string
		err := replayer.Replay(context.Background(), text, func(got string) {
			calls = append(calls, got)
		})
		require.NoError(t, err)
		require.Greater(t, len(calls), 1)

		for i := 1; i < len(calls); i++ {
			require.True(t, strings.HasPrefix(calls[i], calls[i-1]),
				"call %d is not an extension of call %d", i, i-1)
		}

		final := calls[len(calls)-1]
		require.Equal(t, typing.Normalize(text), final)
	})

	t.Run("should stop on context cancellation", func(t *testing.T) {
		replayer := typing.NewReplayer()
		ctx, cancel := context.WithCancel(context.Background())

		text := strings.Repeat("A sentence that keeps the replay busy for a while. ", 20)
		var calls int
		err := replayer.Replay(ctx, text, func(string) {
			calls++
			cancel()
		})
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, calls)
	})

	t.Run("should go silent when superseded by a newer replay", func(t *testing.T) {
		replayer := typing.NewReplayer()
		text := strings.Repeat("Plenty of text so the first replay takes several steps. ", 20)

		firstDone := make(chan error, 1)
		firstCalls := make(chan int, 1)
		started := make(chan struct{})

		go func() {
			calls := 0
			firstDone <- replayer.Replay(context.Background(), text, func(string) {
				calls++
				if calls == 1 {
					close(started)
				}
			})
			firstCalls <- calls
		}()

		<-started
		// Superseding replay; the first one must stop writing and exit nil.
		err := replayer.Replay(context.Background(), "Second reply wins.", func(string) {})
		require.NoError(t, err)

		select {
		case err := <-firstDone:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("superseded replay did not exit")
		}

		calls := <-firstCalls
		require.Less(t, calls, len(typing.Segment(typing.Normalize(text))))
	})
}
