package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/parse"
)

func TestFormatSection(t *testing.T) {
	t.Run("should return the fallback title alone for empty content", func(t *testing.T) {
		out := parse.FormatSection("", parse.EssentialLabels, "ESSENTIAL TRAVEL INFORMATION")
		require.Equal(t, "ESSENTIAL TRAVEL INFORMATION", out)

		out = parse.FormatSection("  \n\t ", parse.EssentialLabels, "ESSENTIAL TRAVEL INFORMATION")
		require.Equal(t, "ESSENTIAL TRAVEL INFORMATION", out)
	})

	t.Run("should pass through content that already carries the first label", func(t *testing.T) {
		content := "LANGUAGE BASICS: hello is bonjour\nGETTING AROUND: metro lines"
		out := parse.FormatSection(content, parse.EssentialLabels, "ESSENTIAL TRAVEL INFORMATION")
		require.Equal(t, "ESSENTIAL TRAVEL INFORMATION\n"+content, out)
	})

	t.Run("should turn known labels into bold bullet headings", func(t *testing.T) {
		content := "Seasonal Advice for your trip\nPack a light jacket.\nEvenings get cool."
		out := parse.FormatSection(content, parse.PracticalLabels, "PRACTICAL MATTERS")

		lines := strings.Split(out, "\n")
		require.Equal(t, "PRACTICAL MATTERS", lines[0])
		require.Equal(t, "• **SEASONAL ADVICE**:", lines[1])
		require.Equal(t, "  Pack a light jacket.", lines[2])
		require.Equal(t, "  Evenings get cool.", lines[3])
	})

	t.Run("should treat short uppercase lines as headings", func(t *testing.T) {
		content := "LOCAL CUSTOMS\nGreet elders first."
		out := parse.FormatSection(content, parse.InsiderLabels, "INSIDER KNOWLEDGE")
		require.Contains(t, out, "• **LOCAL CUSTOMS**:")
		require.Contains(t, out, "  Greet elders first.")
	})

	t.Run("should not treat long or mixed-case lines as headings", func(t *testing.T) {
		content := "This is a plain sentence.\nAnother plain line."
		out := parse.FormatSection(content, parse.InsiderLabels, "INSIDER KNOWLEDGE")
		require.NotContains(t, out, "**")
		require.Contains(t, out, "This is a plain sentence.")
	})

	t.Run("should always begin with the fallback title", func(t *testing.T) {
		for _, content := range []string{"", "anything", "HIDDEN GEMS: a stepwell"} {
			out := parse.FormatSection(content, parse.InsiderLabels, "INSIDER KNOWLEDGE")
			require.True(t, strings.HasPrefix(out, "INSIDER KNOWLEDGE"))
		}
	})
}
