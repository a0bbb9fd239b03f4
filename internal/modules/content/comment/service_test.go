package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentDraftValidate(t *testing.T) {
	d := &CommentDraft{}
	assert.Equal(t, []string{"blog_id", "author_name", "content"}, d.Validate())

	d = &CommentDraft{BlogID: "b1", AuthorName: "  ", Content: "nice post"}
	assert.Equal(t, []string{"author_name"}, d.Validate())

	d = &CommentDraft{BlogID: "b1", AuthorName: "reader", Content: "nice post"}
	assert.Empty(t, d.Validate())
}
