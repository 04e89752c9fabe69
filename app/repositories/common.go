package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix  = "post:"
	AdminKeyPrefix = "admin:"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

func adminKey(username string) []byte {
	return []byte(AdminKeyPrefix + username)
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
