package repositories

import (
	"fmt"
	"testing"
	"time"

	"mfergm/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testPost(title string, createdAt time.Time) *models.Post {
	return &models.Post{
		Content: "gm",
		Author: models.Author{
			Address:   "0xabc",
			Title:     title,
			Thumbnail: "https://img/" + title + ".png",
		},
		CreatedAt: createdAt,
		Moderated: true,
		Approved:  true,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	post := testPost("mfer #12", time.Now())
	require.NoError(t, repo.Create(post))
	assert.NotEmpty(t, post.ID)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Content, got.Content)
	assert.Equal(t, post.Author, got.Author)
	assert.True(t, got.Approved)

	_, err = repo.GetByID("missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestCreateRejectsSameMferSameDay(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))
	now := time.Now()

	require.NoError(t, repo.Create(testPost("mfer #12", now)))

	// Same tuple, same day, different content still fails.
	dup := testPost("mfer #12", now.Add(time.Hour))
	dup.Content = "gn"
	assert.Equal(t, ErrDuplicateDay, repo.Create(dup))

	// A different mfer is fine.
	assert.NoError(t, repo.Create(testPost("mfer #13", now)))

	// The same mfer the next day is fine.
	assert.NoError(t, repo.Create(testPost("mfer #12", now.AddDate(0, 0, 1))))
}

func TestHasPostedOn(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))
	now := time.Now()

	posted, err := repo.HasPostedOn("0xabc", "mfer #12", "https://img/mfer #12.png", now)
	require.NoError(t, err)
	assert.False(t, posted)

	require.NoError(t, repo.Create(testPost("mfer #12", now)))

	posted, err = repo.HasPostedOn("0xabc", "mfer #12", "https://img/mfer #12.png", now)
	require.NoError(t, err)
	assert.True(t, posted)

	// Different tuple or day reads as not posted.
	posted, err = repo.HasPostedOn("0xdef", "mfer #12", "https://img/mfer #12.png", now)
	require.NoError(t, err)
	assert.False(t, posted)

	posted, err = repo.HasPostedOn("0xabc", "mfer #12", "https://img/mfer #12.png", now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, posted)
}

func TestListApprovedOrderingAndPagination(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)

	// 25 approved posts with strictly increasing createdAt.
	for i := 0; i < 25; i++ {
		post := testPost(fmt.Sprintf("mfer #%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(post))
	}

	page1, err := repo.ListApproved(10, 0)
	require.NoError(t, err)
	page2, err := repo.ListApproved(10, 10)
	require.NoError(t, err)
	page3, err := repo.ListApproved(10, 20)
	require.NoError(t, err)

	assert.Len(t, page1, 10)
	assert.Len(t, page2, 10)
	assert.Len(t, page3, 5)

	seen := map[string]bool{}
	var all []*models.Post
	all = append(all, page1...)
	all = append(all, page2...)
	all = append(all, page3...)
	for i, post := range all {
		assert.False(t, seen[post.ID], "no overlap between pages")
		seen[post.ID] = true
		if i > 0 {
			assert.False(t, post.CreatedAt.After(all[i-1].CreatedAt), "newest first")
		}
	}
	assert.Equal(t, "mfer #24", all[0].Author.Title)

	count, err := repo.CountApproved()
	require.NoError(t, err)
	assert.Equal(t, 25, count)
}

func TestListApprovedExcludesUnapproved(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))
	now := time.Now()

	approved := testPost("mfer #1", now)
	require.NoError(t, repo.Create(approved))

	flagged := testPost("mfer #2", now)
	flagged.Approved = false
	require.NoError(t, repo.Create(flagged))

	posts, err := repo.ListApproved(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "mfer #1", posts[0].Author.Title)

	count, err := repo.CountApproved()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The flagged post is still stored.
	got, err := repo.GetByID(flagged.ID)
	require.NoError(t, err)
	assert.True(t, got.Moderated)
	assert.False(t, got.Approved)
}

func TestListApprovedEmpty(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	posts, err := repo.ListApproved(10, 0)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Len(t, posts, 0)
}
