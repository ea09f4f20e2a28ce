package domain

// User models a registered account. The password is stored only as a bcrypt
// hash and never serialized to JSON.
type User struct {
	ID             string `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName      string `json:"firstName" bson:"firstName"`
	LastName       string `json:"lastName" bson:"lastName"`
	Email          string `json:"email" bson:"email"`
	PasswordHash   string `json:"-" bson:"password"`
	ProfilePicture string `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
}
