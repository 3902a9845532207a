package repositories

import (
	"time"

	"mfergm/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a post together with its per-day uniqueness marker. Both
// writes happen in one transaction; a marker already present, or a commit
// conflict with a concurrent writer of the same marker, reports
// ErrDuplicateDay so the second writer always fails.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	key := postKey(post.CreatedAt, post.ID)
	marker := dayKey(post.Author.Address, post.Author.Title, post.Author.Thumbnail, post.CreatedAt)

	err = r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(marker)
		if err == nil {
			return ErrDuplicateDay
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(marker, key); err != nil {
			return err
		}
		if err := txn.Set(idKey(post.ID), key); err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err == badger.ErrConflict {
		return ErrDuplicateDay
	}
	return err
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(idKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var key []byte
		if err := item.Value(func(val []byte) error {
			key = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// HasPostedOn reports whether the author tuple already has a post stored for
// the calendar day containing day.
func (r *BadgerPostRepository) HasPostedOn(address, title, thumbnail string, day time.Time) (bool, error) {
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(dayKey(address, title, thumbnail, day))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// ListApproved retrieves a paginated list of approved posts, newest first.
// Key order already encodes descending createdAt, so iteration order is the
// listing order.
func (r *BadgerPostRepository) ListApproved(limit, offset int) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		// Skip offset approved items
		count := 0
		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if !post.Approved {
				continue
			}
			if count < offset {
				count++
				continue
			}
			if count >= offset+limit {
				break
			}
			posts = append(posts, &post)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CountApproved returns the number of approved posts.
func (r *BadgerPostRepository) CountApproved() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if post.Approved {
				count++
			}
		}
		return nil
	})
	return count, err
}
