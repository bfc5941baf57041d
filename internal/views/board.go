package views

import (
	"time"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

// LostAndFoundCard is a lost or found report with its poster resolved.
type LostAndFoundCard struct {
	models.LostAndFound
	PostedByUser *UserRef `json:"postedByUser,omitempty"`
}

// NoticeCard is a board notice with its poster resolved.
type NoticeCard struct {
	models.Notice
	PostedByUser *UserRef `json:"postedByUser,omitempty"`
}

// DocumentCard is a shared document with its uploader resolved.
type DocumentCard struct {
	models.Document
	UploadedByUser *UserRef `json:"uploadedByUser,omitempty"`
}

// BillCard is a bill reminder with its due status.
type BillCard struct {
	models.BillReminder
	Overdue      bool `json:"overdue"`
	DaysUntilDue int  `json:"daysUntilDue"`
}

// MoreModel is the page collecting the board features.
type MoreModel struct {
	LostAndFound  []LostAndFoundCard `json:"lostAndFound"`
	Notices       []NoticeCard       `json:"notices"`
	Documents     []DocumentCard     `json:"documents"`
	BillReminders []BillCard         `json:"billReminders"`

	UnresolvedLostAndFound int     `json:"unresolvedLostAndFound"`
	PendingBills           int     `json:"pendingBills"`
	PendingBillsAmount     float64 `json:"pendingBillsAmount"`
	OverdueBills           int     `json:"overdueBills"`
}

// MoreView renders lost and found, notices, documents and bill reminders.
type MoreView struct{}

func (MoreView) Page() Page { return PageMore }

func (MoreView) Render(snap models.Snapshot, now time.Time) any {
	dir := newDirectory(snap.Users)
	pending := calculator.PendingBills(snap.BillReminders)

	m := MoreModel{
		LostAndFound:       make([]LostAndFoundCard, 0, len(snap.LostAndFound)),
		Notices:            make([]NoticeCard, 0, len(snap.Notices)),
		Documents:          make([]DocumentCard, 0, len(snap.Documents)),
		BillReminders:      make([]BillCard, 0, len(snap.BillReminders)),
		PendingBills:       len(pending),
		PendingBillsAmount: calculator.BillsTotal(pending),
		OverdueBills:       len(calculator.OverdueBills(snap.BillReminders, now)),
	}

	for _, l := range snap.LostAndFound {
		m.LostAndFound = append(m.LostAndFound, LostAndFoundCard{LostAndFound: l, PostedByUser: dir.ref(l.PostedBy)})
		if !l.Resolved {
			m.UnresolvedLostAndFound++
		}
	}
	for _, n := range snap.Notices {
		m.Notices = append(m.Notices, NoticeCard{Notice: n, PostedByUser: dir.ref(n.PostedBy)})
	}
	for _, d := range snap.Documents {
		m.Documents = append(m.Documents, DocumentCard{Document: d, UploadedByUser: dir.ref(d.UploadedBy)})
	}
	for _, b := range snap.BillReminders {
		due := b.DueDate
		m.BillReminders = append(m.BillReminders, BillCard{
			BillReminder: b,
			Overdue:      calculator.IsOverdue(&due, b.Paid, now),
			DaysUntilDue: calculator.DaysUntilDue(b.DueDate, now),
		})
	}
	return m
}
