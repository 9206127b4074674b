package typing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/typing"
)

func TestNormalize(t *testing.T) {
	t.Run("should return empty string unchanged", func(t *testing.T) {
		require.Equal(t, "", typing.Normalize(""))
	})

	t.Run("should collapse runs of blank lines", func(t *testing.T) {
		out := typing.Normalize("First paragraph.\n\n\n\nSecond one starts here")
		require.NotContains(t, out, "\n\n\n")
	})

	t.Run("should canonicalize loose stars and dashes to bullets", func(t *testing.T) {
		out := typing.Normalize("* star item\n- dash item")
		require.Contains(t, out, "• star item")
		require.Contains(t, out, "• dash item")
	})

	t.Run("should leave bold markers alone", func(t *testing.T) {
		out := typing.Normalize("**Heading**\nregular text")
		require.Contains(t, out, "**Heading**")
	})

	t.Run("should collapse a bullet followed by its own bare text", func(t *testing.T) {
		out := typing.Normalize("• Paris, France\nParis, France")
		require.Equal(t, "• Paris, France", out)
	})

	t.Run("should prefer the colon-bearing variant of a duplicate line", func(t *testing.T) {
		out := typing.Normalize("Best Restaurants\nBest Restaurants:")
		require.Equal(t, "Best Restaurants:", out)
	})

	t.Run("should collapse exact duplicate lines", func(t *testing.T) {
		out := typing.Normalize("Same line\nSame line")
		require.Equal(t, "Same line", out)
	})

	t.Run("should break heading run-ons onto their own line", func(t *testing.T) {
		out := typing.Normalize("**Top Sights** start with the castle district")
		require.Contains(t, out, "**Top Sights**\n")
	})

	t.Run("should tighten blank lines between bullet items", func(t *testing.T) {
		out := typing.Normalize("• first item\n\n• second item")
		require.Contains(t, out, "• first item\n• second item")
	})

	t.Run("should squeeze repeated spaces but keep newlines", func(t *testing.T) {
		out := typing.Normalize("too    many spaces\nnext line")
		require.Contains(t, out, "too many spaces")
		require.Contains(t, out, "\n")
	})
}
