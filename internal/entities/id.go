package entities

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the opaque 12-byte identifier of every stored document.
type ID = primitive.ObjectID

// ParseID decodes the canonical 24 character lowercase hex form of an ID.
func ParseID(s string) (ID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil || id.Hex() != s {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", ErrInvalidArgument, s)
	}
	return id, nil
}

// ParseOptionalID decodes s when present and returns nil otherwise.
func ParseOptionalID(s *string) (*ID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := ParseID(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseIDs decodes every element, failing on the first malformed one.
func ParseIDs(src []string) ([]ID, error) {
	ids := make([]ID, 0, len(src))
	for _, s := range src {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// NewID allocates a fresh identifier.
func NewID() ID {
	return primitive.NewObjectID()
}
