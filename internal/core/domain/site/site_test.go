package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContent(t *testing.T) {
	nav := []Link{{Label: "メニュー 1", URL: "https://example.com/1"}}
	socials := []Social{{Name: "x", URL: "https://x.com"}}

	content, err := NewContent("title", "heading", "https://example.com/policy", nav, socials)

	require.NoError(t, err)
	assert.Equal(t, nav, content.Navigation)
	assert.Equal(t, socials, content.Socials)
	assert.Equal(t, "https://example.com/policy", content.PrivacyPolicyURL)

	nav[0].Label = "changed"
	assert.Equal(t, "メニュー 1", content.Navigation[0].Label, "content keeps its own copy")
}

func TestNewContent_NoNavigation(t *testing.T) {
	content, err := NewContent("title", "heading", "https://example.com/policy", nil, nil)

	assert.ErrorIs(t, err, ErrNoNavigation)
	assert.Nil(t, content)
}
