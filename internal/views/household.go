package views

import (
	"time"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

// cleaningHistoryLimit caps the history shown on the cleaning page.
const cleaningHistoryLimit = 10

// ShoppingCard is a shopping item with its people resolved.
type ShoppingCard struct {
	models.ShoppingItem
	AddedByUser     *UserRef `json:"addedByUser,omitempty"`
	PurchasedByUser *UserRef `json:"purchasedByUser,omitempty"`
}

// ShoppingModel is the shopping list page.
type ShoppingModel struct {
	Pending        []ShoppingCard `json:"pending"`
	Purchased      []ShoppingCard `json:"purchased"`
	PendingCount   int            `json:"pendingCount"`
	PurchasedCount int            `json:"purchasedCount"`
}

// ShoppingView splits the shopping list into items to buy and items bought.
type ShoppingView struct{}

func (ShoppingView) Page() Page { return PageShopping }

func (ShoppingView) Render(snap models.Snapshot, _ time.Time) any {
	dir := newDirectory(snap.Users)
	cards := func(items []models.ShoppingItem) []ShoppingCard {
		out := make([]ShoppingCard, 0, len(items))
		for _, item := range items {
			out = append(out, ShoppingCard{
				ShoppingItem:    item,
				AddedByUser:     dir.ref(item.AddedBy),
				PurchasedByUser: dir.ref(item.PurchasedBy),
			})
		}
		return out
	}

	m := ShoppingModel{
		Pending:   cards(calculator.PendingShoppingItems(snap.ShoppingItems)),
		Purchased: cards(calculator.PurchasedShoppingItems(snap.ShoppingItems)),
	}
	m.PendingCount = len(m.Pending)
	m.PurchasedCount = len(m.Purchased)
	return m
}

// RotationEntry is one member of the cleaning ring.
type RotationEntry struct {
	Position  int      `json:"position"`
	UserID    string   `json:"userId"`
	User      *UserRef `json:"user,omitempty"`
	IsCurrent bool     `json:"isCurrent"`
}

// HistoryEntry is one recorded cleaning with the user resolved.
type HistoryEntry struct {
	Date   time.Time             `json:"date"`
	User   *UserRef              `json:"user,omitempty"`
	UserID string                `json:"userId"`
	Status models.CleaningStatus `json:"status"`
}

// CleaningModel is the cleaning duty page.
type CleaningModel struct {
	HasDuty bool `json:"hasDuty"`

	Frequency   models.Frequency `json:"frequency,omitempty"`
	CurrentTurn *UserRef         `json:"currentTurn,omitempty"`
	NextTurn    *UserRef         `json:"nextTurn,omitempty"`
	IsMyTurn    bool             `json:"isMyTurn"`
	LastCleaned *time.Time       `json:"lastCleaned,omitempty"`

	Rotation       []RotationEntry               `json:"rotation"`
	CompletionRate float64                       `json:"completionRate"`
	StatusCounts   map[models.CleaningStatus]int `json:"statusCounts"`
	History        []HistoryEntry                `json:"history"`
}

// CleaningView renders the cleaning rotation and its history.
type CleaningView struct{}

func (CleaningView) Page() Page { return PageCleaning }

func (CleaningView) Render(snap models.Snapshot, _ time.Time) any {
	d := snap.CleaningDuty
	if d == nil {
		return CleaningModel{
			Rotation:     []RotationEntry{},
			StatusCounts: calculator.CleaningStatusCounts(nil),
			History:      []HistoryEntry{},
		}
	}

	dir := newDirectory(snap.Users)
	me := snap.CurrentUserID()
	m := CleaningModel{
		HasDuty:        true,
		Frequency:      d.Frequency,
		CurrentTurn:    dir.ref(d.CurrentTurn),
		IsMyTurn:       me != "" && d.CurrentTurn == me,
		LastCleaned:    d.LastCleanedDate,
		Rotation:       make([]RotationEntry, 0, len(d.Members)),
		CompletionRate: calculator.CleaningCompletionRate(d.History),
		StatusCounts:   calculator.CleaningStatusCounts(d.History),
		History:        make([]HistoryEntry, 0, cleaningHistoryLimit),
	}
	if next, ok := calculator.NextTurn(d.Members, d.CurrentTurn); ok {
		m.NextTurn = dir.ref(next)
	}
	for i, id := range d.Members {
		m.Rotation = append(m.Rotation, RotationEntry{
			Position:  i + 1,
			UserID:    id,
			User:      dir.ref(id),
			IsCurrent: id == d.CurrentTurn,
		})
	}
	for _, h := range firstN(d.History, cleaningHistoryLimit) {
		m.History = append(m.History, HistoryEntry{
			Date:   h.Date,
			User:   dir.ref(h.UserID),
			UserID: h.UserID,
			Status: h.Status,
		})
	}
	return m
}
