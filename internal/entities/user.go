// Package entities contains core business entities.
package entities

// User is a registered team member.
type User struct {
	ID    ID     `bson:"_id,omitempty"`
	Name  string `bson:"name"`
	Email string `bson:"email"`
}
