package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("record not found")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"
)

// postKey builds the storage key for a post.
func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// commentKey builds the storage key for a comment. Comments are keyed
// under their post id so a prefix scan yields exactly one post's
// comments and a cascade delete is a prefix delete.
func commentKey(postID, id string) []byte {
	return []byte(CommentKeyPrefix + postID + ":" + id)
}

// commentPostPrefix is the key prefix covering all comments of a post.
func commentPostPrefix(postID string) []byte {
	return []byte(CommentKeyPrefix + postID + ":")
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
