package repositories

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"golang.org/x/crypto/sha3"
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix   = "post:"
	PostIDKeyPrefix = "id:"
	DayKeyPrefix    = "day:"
)

// postKey builds the primary key for a post. The timestamp component is
// inverted so that Badger's lexicographic iteration yields newest-first.
func postKey(createdAt time.Time, id string) []byte {
	inverted := uint64(math.MaxInt64 - createdAt.UnixNano())
	return []byte(fmt.Sprintf("%s%020d:%s", PostKeyPrefix, inverted, id))
}

// idKey builds the secondary index key mapping a post ID to its primary key.
func idKey(id string) []byte {
	return []byte(PostIDKeyPrefix + id)
}

// dayKey builds the uniqueness marker key for one author tuple on one
// calendar day. The tuple is digested so the key stays fixed-width and free
// of separator collisions.
func dayKey(address, title, thumbnail string, day time.Time) []byte {
	h := sha3.New256()
	h.Write([]byte(address))
	h.Write([]byte{0})
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(thumbnail))
	return []byte(fmt.Sprintf("%s%s:%x", DayKeyPrefix, day.Format("2006-01-02"), h.Sum(nil)))
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
