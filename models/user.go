package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered shopper. Email and MobileNo are unique
// across the collection; the password is stored as a bcrypt hash and
// never serialized.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	MobileNo  string             `bson:"mobileNo" json:"mobileNo"`
	Password  string             `bson:"password" json:"-"`
}

// UserProfile is the reduced projection returned by the profile endpoint.
type UserProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobileNo"`
}

// Profile strips everything except the fields the client renders.
func (u *User) Profile() UserProfile {
	return UserProfile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		MobileNo:  u.MobileNo,
	}
}
