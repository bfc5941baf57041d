package views

import "github.com/zaryabali001/roommate/internal/models"

// UserRef is the short form of a user shown next to an entity.
type UserRef struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// directory resolves user IDs against a snapshot's Users.
type directory map[string]models.User

func newDirectory(users []models.User) directory {
	d := make(directory, len(users))
	for _, u := range users {
		d[u.ID] = u
	}
	return d
}

// ref returns the UserRef for id, or nil for an unknown or empty id.
func (d directory) ref(id string) *UserRef {
	u, ok := d[id]
	if !ok {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, ProfilePicture: u.ProfilePicture}
}

// names maps ids to display names, dropping unknown ids.
func (d directory) names(ids []string) []string {
	var out []string
	for _, id := range ids {
		if u, ok := d[id]; ok {
			out = append(out, u.Name)
		}
	}
	return out
}

// firstN returns at most n leading elements of in.
func firstN[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}
