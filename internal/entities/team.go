// Package entities contains core business entities.
package entities

// Team groups users under a name.
type Team struct {
	ID    ID     `bson:"_id,omitempty"`
	Name  string `bson:"name"`
	Users []ID   `bson:"users"`
}
