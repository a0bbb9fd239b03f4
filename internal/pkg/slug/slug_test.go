package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	cases := map[string]string{
		"Hello World":              "hello-world",
		"  Trimmed  Title  ":       "trimmed-title",
		"Go 1.24: What's New?":     "go-124-whats-new",
		"already-a-slug":           "already-a-slug",
		"Multiple   Spaces":        "multiple-spaces",
		"dash - heavy -- title":    "dash-heavy-title",
		"C++ & Rust (a showdown)":  "c-rust-a-showdown",
		"ALL CAPS":                 "all-caps",
		"":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, From(in), "input %q", in)
	}
}

func TestFromIsIdempotent(t *testing.T) {
	titles := []string{
		"Hello World",
		"Go 1.24: What's New?",
		"dash - heavy -- title",
		"  Trimmed  Title  ",
	}
	for _, title := range titles {
		once := From(title)
		assert.Equal(t, once, From(once), "input %q", title)
	}
}
