package models

import "time"

// User represents a roommate.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id" yaml:"id"`

	// Name is the display name of the user.
	Name string `json:"name" yaml:"name"`

	// Email is the user's email address. Login matches on it.
	Email string `json:"email" yaml:"email"`

	// Phone, RoomNumber and HostelName are optional contact metadata.
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
	RoomNumber string `json:"roomNumber,omitempty" yaml:"roomNumber,omitempty"`
	HostelName string `json:"hostelName,omitempty" yaml:"hostelName,omitempty"`

	// ProfilePicture is an optional avatar URL.
	ProfilePicture string `json:"profilePicture,omitempty" yaml:"profilePicture,omitempty"`

	PresenceStatus PresenceStatus `json:"presenceStatus" yaml:"presenceStatus"`

	// Role is optional; empty means the user has no role in the group yet.
	Role Role `json:"role,omitempty" yaml:"role,omitempty"`
}

// Credentials are what the login form submits.
// They are accepted as-is: the login flow does not verify them.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Group represents the shared residence.
type Group struct {
	// ID is the unique identifier for the group.
	ID string `json:"id" yaml:"id"`

	// Name is the display name (e.g., "Room 101 - Hostel A").
	Name string `json:"name" yaml:"name"`

	// InviteCode is an opaque code new roommates use to join.
	InviteCode string `json:"inviteCode" yaml:"inviteCode"`

	// CreatedBy is the user ID of the group creator.
	CreatedBy string `json:"createdBy" yaml:"createdBy"`

	// Members is ordered by join time.
	Members []GroupMember `json:"members" yaml:"members"`
}

// GroupMember is one user's membership in the group.
type GroupMember struct {
	UserID   string    `json:"userId" yaml:"userId"`
	Role     Role      `json:"role" yaml:"role"`
	JoinedAt time.Time `json:"joinedAt" yaml:"joinedAt"`
}
