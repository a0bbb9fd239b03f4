package blog

import (
	"sync"
	"testing"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"go", "web", "gorm"}, SplitList("go, web ,gorm"))
	assert.Equal(t, []string{"solo"}, SplitList("solo"))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , ,, "))
}

func TestJoinListRoundTrip(t *testing.T) {
	items := []string{"go", "web", "gorm"}
	assert.Equal(t, "go, web, gorm", JoinList(items))
	assert.Equal(t, items, SplitList(JoinList(items)))
}

func TestDerivedSlug(t *testing.T) {
	d := &BlogDraft{Title: "Hello World", Slug: "custom-slug"}
	assert.Equal(t, "custom-slug", d.DerivedSlug())

	d = &BlogDraft{Title: "Hello World", Slug: "  "}
	assert.Equal(t, "hello-world", d.DerivedSlug())
}

func TestValidateReportsMissingFields(t *testing.T) {
	d := &BlogDraft{Title: " ", Content: "body"}
	assert.Equal(t, []string{"title", "description"}, d.Validate())

	d = &BlogDraft{Title: "t", Description: "d", Content: "c"}
	assert.Empty(t, d.Validate())
}

func TestApplyDefaultsMetaFields(t *testing.T) {
	d := &BlogDraft{
		Title:       "Post Title",
		Description: "Short description",
		Content:     "body",
		Tags:        "a, b",
	}
	var m models.BlogModel
	d.apply(&m)

	assert.Equal(t, "Post Title", m.MetaTitle)
	assert.Equal(t, "Short description", m.MetaDescription)
	assert.Equal(t, "post-title", m.Slug)
	assert.Equal(t, models.StringArray{"a", "b"}, m.Tags)

	d.MetaTitle = "SEO Title"
	d.MetaDescription = "SEO description"
	var m2 models.BlogModel
	d.apply(&m2)
	assert.Equal(t, "SEO Title", m2.MetaTitle)
	assert.Equal(t, "SEO description", m2.MetaDescription)
}

func TestPublishedAtTransitions(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	// first publish stamps now
	got := publishedAtFor(false, nil, true, now)
	require.NotNil(t, got)
	assert.Equal(t, now, *got)

	// staying published keeps the original timestamp
	got = publishedAtFor(true, &earlier, true, now)
	require.NotNil(t, got)
	assert.Equal(t, earlier, *got)

	// unpublish clears
	assert.Nil(t, publishedAtFor(true, &earlier, false, now))

	// republish after unpublish stamps now again
	got = publishedAtFor(false, nil, true, now)
	require.NotNil(t, got)
	assert.Equal(t, now, *got)
}

func TestCounterColumnWhitelist(t *testing.T) {
	col, err := counterColumn(CounterViews)
	require.NoError(t, err)
	assert.Equal(t, "views", col)

	col, err = counterColumn(CounterLikes)
	require.NoError(t, err)
	assert.Equal(t, "likes", col)

	_, err = counterColumn("views; DROP TABLE blogs")
	assert.Error(t, err)
}

// The fallback path reads then writes, so concurrent bumps may overwrite each
// other. The final value still lands between 1 and N.
func TestIncrementByReadModifyConcurrentBounds(t *testing.T) {
	const n = 32
	var mu sync.Mutex
	value := 0

	get := func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return value, nil
	}
	set := func(v int) error {
		mu.Lock()
		defer mu.Unlock()
		value = v
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, incrementByReadModify(get, set))
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, value, 1)
	assert.LessOrEqual(t, value, n)
}
