package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ"},
		{"v path with fragment", "https://www.youtube.com/v/dQw4w9WgXcQ#t=10", "dQw4w9WgXcQ"},
		{"user channel form", "https://www.youtube.com/user/Name#p/u/1/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch with list", "https://www.youtube.com/watch?v=abc123&list=xyz", "abc123"},
		{"watch with fragment", "https://www.youtube.com/watch?v=abc123#t=30", "abc123"},
		{"watch with second query", "https://m.youtube.com/watch?v=abc123?feature=share", "abc123"},
		{"not a video link", "https://example.com/foo", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.url))
		})
	}
}

func TestFilterVideoIDs(t *testing.T) {
	t.Run("keeps order and duplicates", func(t *testing.T) {
		ids, err := FilterVideoIDs([]string{
			"https://youtu.be/first",
			"https://example.com/foo",
			"https://www.youtube.com/watch?v=second",
			"https://youtu.be/first",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "first"}, ids)
	})

	t.Run("no recognized links", func(t *testing.T) {
		ids, err := FilterVideoIDs([]string{"https://example.com/foo", "https://example.org/bar"})
		assert.ErrorIs(t, err, ErrNoRecognizedLinks)
		assert.Nil(t, ids)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := FilterVideoIDs(nil)
		assert.ErrorIs(t, err, ErrNoRecognizedLinks)
	})
}

func TestParsePostID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234567890", "1234567890"},
		{"https://twitter.com/jack/status/20", "20"},
		{"https://twitter.com/user42/status/99", "99"},
		{"https://x.com/user42/status/1750000000000000000?s=20", "1750000000000000000"},
		{"no id here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePostID(tt.input))
		})
	}
}
