package views

import (
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// MemberCard is one roommate on the group page.
type MemberCard struct {
	UserRef
	Email          string                `json:"email"`
	Phone          string                `json:"phone,omitempty"`
	PresenceStatus models.PresenceStatus `json:"presenceStatus"`
	Role           models.Role           `json:"role,omitempty"`
	IsAdmin        bool                  `json:"isAdmin"`
	JoinedAt       *time.Time            `json:"joinedAt,omitempty"`
	IsCurrentUser  bool                  `json:"isCurrentUser"`
}

// GroupModel is the group management page.
type GroupModel struct {
	HasGroup    bool         `json:"hasGroup"`
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	CreatedBy   *UserRef     `json:"createdBy,omitempty"`
	InviteCode  string       `json:"inviteCode,omitempty"`
	InviteLink  string       `json:"inviteLink,omitempty"`
	MemberCount int          `json:"memberCount"`
	Members     []MemberCard `json:"members"`

	// CanManage is true when the current user is a group admin.
	CanManage bool `json:"canManage"`
}

// GroupView renders the group, its roommates and the invite details.
type GroupView struct {
	InviteBaseURL string
}

func (GroupView) Page() Page { return PageGroup }

func (v GroupView) Render(snap models.Snapshot, _ time.Time) any {
	dir := newDirectory(snap.Users)
	me := snap.CurrentUserID()
	m := GroupModel{Members: make([]MemberCard, 0, len(snap.Users))}

	memberships := map[string]models.GroupMember{}
	if g := snap.Group; g != nil {
		m.HasGroup = true
		m.ID = g.ID
		m.Name = g.Name
		m.CreatedBy = dir.ref(g.CreatedBy)
		m.InviteCode = g.InviteCode
		m.InviteLink = v.InviteLink(g.InviteCode)
		m.MemberCount = len(g.Members)
		for _, gm := range g.Members {
			memberships[gm.UserID] = gm
		}
	}

	for _, u := range snap.Users {
		card := MemberCard{
			UserRef:        *dir.ref(u.ID),
			Email:          u.Email,
			Phone:          u.Phone,
			PresenceStatus: u.PresenceStatus,
			Role:           u.Role,
			IsCurrentUser:  u.ID == me,
		}
		if gm, ok := memberships[u.ID]; ok {
			card.Role = gm.Role
			joined := gm.JoinedAt
			card.JoinedAt = &joined
		}
		card.IsAdmin = card.Role == models.RoleAdmin
		if card.IsCurrentUser && card.IsAdmin {
			m.CanManage = true
		}
		m.Members = append(m.Members, card)
	}
	return m
}

// InviteLink builds the shareable join link for code.
func (v GroupView) InviteLink(code string) string {
	if code == "" {
		return ""
	}
	return v.InviteBaseURL + "/join/" + code
}

// ProfileModel is the profile page.
type ProfileModel struct {
	User            *models.User            `json:"user,omitempty"`
	PresenceOptions []models.PresenceStatus `json:"presenceOptions"`
}

// ProfileView renders the current user and the presence choices.
type ProfileView struct{}

func (ProfileView) Page() Page { return PageProfile }

func (ProfileView) Render(snap models.Snapshot, _ time.Time) any {
	return ProfileModel{
		User:            snap.CurrentUser,
		PresenceOptions: models.PresenceStatuses,
	}
}

// LoginModel is shown while nobody is logged in.
type LoginModel struct {
	Authenticated bool `json:"authenticated"`
}

// LoginView is the logged-out screen.
type LoginView struct{}

func (LoginView) Page() Page { return PageLogin }

func (LoginView) Render(models.Snapshot, time.Time) any {
	return LoginModel{}
}
