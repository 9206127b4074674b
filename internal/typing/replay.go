package typing

import (
	"context"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"
)

// Delay ceilings per chunk kind, tuned so headings snap in and prose lands
// at a readable clip.
const (
	headingDelayCap = 100 * time.Millisecond
	bulletDelayCap  = 80 * time.Millisecond
	shortDelayCap   = 60 * time.Millisecond
	defaultDelayCap = 150 * time.Millisecond

	// Chunks under shortChunkLen characters count as short phrases.
	shortChunkLen = 30

	// Replies under instantReplyLen characters are emitted in a single sink
	// call with no delay.
	instantReplyLen = 100
)

var bulletChunkRe = regexp.MustCompile(`^[•\-*] `)

// Sink receives the accumulated display text. It is invoked with the
// complete text-so-far on every step, never a diff.
type Sink func(text string)

// Replayer replays finished replies chunk-by-chunk. Each Replay call
// supersedes any replay still in flight on the same Replayer: the stale
// loop stops writing to its sink and exits. One Replayer per conversation
// surface is the intended scope.
type Replayer struct {
	generation atomic.Int64
}

// NewReplayer creates a replayer.
func NewReplayer() *Replayer {
	return &Replayer{}
}

// Replay normalizes text, segments it, and feeds the accumulating result to
// sink with a computed delay after each chunk. The final sink call carries
// exactly the normalized text. Returns early with the context error on
// cancellation; returns nil when superseded by a newer Replay.
func (r *Replayer) Replay(ctx context.Context, text string, sink Sink) error {
	token := r.generation.Add(1)

	normalized := Normalize(text)

	if utf8.RuneCountInString(normalized) < instantReplyLen {
		if r.generation.Load() == token {
			sink(normalized)
		}
		return nil
	}

	chunks := Segment(normalized)
	var displayed strings.Builder
	displayed.Grow(len(normalized))

	timer := time.NewTimer(0)
	defer timer.Stop()
	if !timer.Stop() {
		<-timer.C
	}

	for _, chunk := range chunks {
		if r.generation.Load() != token {
			return nil
		}

		displayed.WriteString(chunk)
		sink(displayed.String())

		timer.Reset(chunkDelay(chunk))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return nil
}

// chunkDelay computes the pause after revealing one chunk. Headings resolve
// almost instantly, bullets slightly slower, short phrases fastest, and
// everything else is capped at a moderate ceiling.
func chunkDelay(chunk string) time.Duration {
	chars := utf8.RuneCountInString(chunk)
	perChar := time.Duration(chars) * time.Millisecond

	switch {
	case strings.Contains(chunk, "**"):
		return minDuration(headingDelayCap, perChar*3/2)
	case bulletChunkRe.MatchString(chunk):
		return minDuration(bulletDelayCap, perChar)
	case chars < shortChunkLen:
		return minDuration(shortDelayCap, perChar*4/5)
	default:
		return minDuration(defaultDelayCap, perChar)
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
