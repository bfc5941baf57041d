// Package views turns store snapshots into per-page view models.
//
// A Router maps a page identifier to its View. Views only read the snapshot
// they are given and recompute every derived value from it; they never call
// each other.
package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// ErrUnknownPage is returned for a page identifier the router does not serve.
var ErrUnknownPage = errors.New("unknown page")

// Page identifies one screen of the application.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageTodos     Page = "todos"
	PageCleaning  Page = "cleaning"
	PageExpenses  Page = "expenses"
	PageShopping  Page = "shopping"
	PageGroup     Page = "group"
	PageProfile   Page = "profile"
	PageMore      Page = "more"

	// PageLogin is rendered in place of any page while nobody is logged in.
	PageLogin Page = "login"
)

// Pages lists the routable pages in navigation order.
var Pages = []Page{
	PageDashboard,
	PageTodos,
	PageCleaning,
	PageExpenses,
	PageShopping,
	PageGroup,
	PageProfile,
	PageMore,
}

// NavItem is one entry of the navigation menu.
type NavItem struct {
	Page  Page   `json:"page"`
	Label string `json:"label"`
}

var navLabels = map[Page]string{
	PageDashboard: "Dashboard",
	PageTodos:     "Tasks",
	PageCleaning:  "Cleaning",
	PageExpenses:  "Expenses",
	PageShopping:  "Shopping",
	PageGroup:     "Group",
	PageProfile:   "Profile",
	PageMore:      "More",
}

// Navigation returns the menu entries in display order.
func Navigation() []NavItem {
	items := make([]NavItem, len(Pages))
	for i, p := range Pages {
		items[i] = NavItem{Page: p, Label: navLabels[p]}
	}
	return items
}

// ParsePage converts s into a Page. An empty string selects the dashboard.
func ParsePage(s string) (Page, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PageDashboard, nil
	}
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// View renders one page from a snapshot.
type View interface {
	Page() Page
	Render(snap models.Snapshot, now time.Time) any
}

// Options configures the router's views.
type Options struct {
	// InviteBaseURL prefixes group invite links: <InviteBaseURL>/join/<code>.
	InviteBaseURL string
}

// DefaultInviteBaseURL is used when Options.InviteBaseURL is empty.
const DefaultInviteBaseURL = "https://roommateapp.com"

// Router selects the view for a page. It holds no domain logic.
type Router struct {
	views map[Page]View
	login View
	group GroupView
}

// NewRouter builds a router serving every page in Pages.
func NewRouter(opts Options) *Router {
	if opts.InviteBaseURL == "" {
		opts.InviteBaseURL = DefaultInviteBaseURL
	}
	opts.InviteBaseURL = strings.TrimRight(opts.InviteBaseURL, "/")

	group := GroupView{InviteBaseURL: opts.InviteBaseURL}
	all := []View{
		DashboardView{},
		TasksView{},
		CleaningView{},
		ExpensesView{},
		ShoppingView{},
		group,
		ProfileView{},
		MoreView{},
	}
	r := &Router{views: make(map[Page]View, len(all)), login: LoginView{}, group: group}
	for _, v := range all {
		r.views[v.Page()] = v
	}
	return r
}

// Route returns the view for page.
func (r *Router) Route(page Page) (View, error) {
	v, ok := r.views[page]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
	return v, nil
}

// InviteLink builds the group join link shown on the group page.
func (r *Router) InviteLink(code string) string {
	return r.group.InviteLink(code)
}

// Rendered is a page view model together with the page that produced it.
type Rendered struct {
	Page       Page      `json:"page"`
	Navigation []NavItem `json:"navigation,omitempty"`
	Model      any       `json:"model"`
}

// Render routes page and renders it from snap. While nobody is logged in the
// login view is rendered instead, whatever page was asked for.
func (r *Router) Render(page Page, snap models.Snapshot, now time.Time) (Rendered, error) {
	v, err := r.Route(page)
	if err != nil {
		return Rendered{}, err
	}
	if !snap.Authenticated {
		v = r.login
		return Rendered{Page: v.Page(), Model: v.Render(snap, now)}, nil
	}
	return Rendered{Page: v.Page(), Navigation: Navigation(), Model: v.Render(snap, now)}, nil
}
