// Package seed provides the initial datasets a store is built from. Besides
// the built-in demo household it reads YAML seed files and can watch one to
// reload it into a running store.
package seed

import (
	"time"

	"github.com/zaryabali001/roommate/internal/models"
)

// DemoCurrentUserID is the user the demo seed starts logged in as.
const DemoCurrentUserID = "user-1"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

// Demo returns a four-roommate household with a little of everything.
// Each call returns fresh values.
func Demo() *models.Seed {
	users := []models.User{
		{
			ID:             "user-1",
			Name:           "Ali Ahmed",
			Email:          "ali@example.com",
			Phone:          "+92 300 1234567",
			RoomNumber:     "101",
			HostelName:     "Hostel A",
			ProfilePicture: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
			PresenceStatus: models.PresencePresent,
			Role:           models.RoleAdmin,
		},
		{
			ID:             "user-2",
			Name:           "Hamza Khan",
			Email:          "hamza@example.com",
			Phone:          "+92 300 2345678",
			RoomNumber:     "101",
			HostelName:     "Hostel A",
			ProfilePicture: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop",
			PresenceStatus: models.PresenceOut,
			Role:           models.RoleMember,
		},
		{
			ID:             "user-3",
			Name:           "Bilal Raza",
			Email:          "bilal@example.com",
			Phone:          "+92 300 3456789",
			RoomNumber:     "101",
			HostelName:     "Hostel A",
			ProfilePicture: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			PresenceStatus: models.PresencePresent,
			Role:           models.RoleMember,
		},
		{
			ID:             "user-4",
			Name:           "Usman Shah",
			Email:          "usman@example.com",
			Phone:          "+92 300 4567890",
			RoomNumber:     "101",
			HostelName:     "Hostel A",
			ProfilePicture: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&h=150&fit=crop",
			PresenceStatus: models.PresenceOnLeave,
			Role:           models.RoleMember,
		},
	}

	return &models.Seed{
		CurrentUserID: DemoCurrentUserID,
		Users:         users,
		Group: &models.Group{
			ID:         "group-1",
			Name:       "Room 101 - Hostel A",
			InviteCode: "ROOM101",
			CreatedBy:  "user-1",
			Members: []models.GroupMember{
				{UserID: "user-1", Role: models.RoleAdmin, JoinedAt: day(2024, time.January, 1)},
				{UserID: "user-2", Role: models.RoleMember, JoinedAt: day(2024, time.January, 2)},
				{UserID: "user-3", Role: models.RoleMember, JoinedAt: day(2024, time.January, 3)},
				{UserID: "user-4", Role: models.RoleMember, JoinedAt: day(2024, time.January, 4)},
			},
		},
		Todos: []models.Todo{
			{
				ID:          "todo-1",
				Title:       "Buy groceries",
				Description: "Milk, bread, eggs",
				DueDate:     dayPtr(2024, time.December, 22),
				Priority:    models.PriorityHigh,
				CreatedBy:   "user-1",
			},
			{
				ID:        "todo-2",
				Title:     "Pay electricity bill",
				DueDate:   dayPtr(2024, time.December, 25),
				Priority:  models.PriorityHigh,
				CreatedBy: "user-1",
			},
			{
				ID:         "todo-3",
				Title:      "Clean kitchen",
				DueDate:    dayPtr(2024, time.December, 21),
				Priority:   models.PriorityMedium,
				Completed:  true,
				AssignedTo: []string{"user-2", "user-3"},
				GroupID:    "group-1",
				CreatedBy:  "user-1",
			},
			{
				ID:        "todo-4",
				Title:     "Fix bathroom tap",
				Priority:  models.PriorityLow,
				GroupID:   "group-1",
				CreatedBy: "user-2",
			},
		},
		Expenses: []models.Expense{
			{
				ID:        "expense-1",
				Title:     "Monthly Groceries",
				Amount:    5000,
				Category:  models.CategoryGrocery,
				SplitType: models.SplitEqual,
				SplitDetails: []models.ExpenseSplit{
					{UserID: "user-1", Amount: 1250, Paid: true, PaidDate: dayPtr(2024, time.December, 15)},
					{UserID: "user-2", Amount: 1250},
					{UserID: "user-3", Amount: 1250, Paid: true, PaidDate: dayPtr(2024, time.December, 16)},
					{UserID: "user-4", Amount: 1250},
				},
				PaidBy:  "user-1",
				GroupID: "group-1",
				Date:    day(2024, time.December, 15),
			},
			{
				ID:        "expense-2",
				Title:     "Electricity Bill",
				Amount:    3000,
				Category:  models.CategoryUtility,
				SplitType: models.SplitEqual,
				SplitDetails: []models.ExpenseSplit{
					{UserID: "user-1", Amount: 750},
					{UserID: "user-2", Amount: 750},
					{UserID: "user-3", Amount: 750},
					{UserID: "user-4", Amount: 750},
				},
				PaidBy:  "user-2",
				GroupID: "group-1",
				Date:    day(2024, time.December, 10),
			},
			{
				ID:        "expense-3",
				Title:     "Pizza Night",
				Amount:    2400,
				Category:  models.CategoryFood,
				SplitType: models.SplitEqual,
				SplitDetails: []models.ExpenseSplit{
					{UserID: "user-1", Amount: 600, Paid: true, PaidDate: dayPtr(2024, time.December, 18)},
					{UserID: "user-2", Amount: 600, Paid: true, PaidDate: dayPtr(2024, time.December, 18)},
					{UserID: "user-3", Amount: 600, Paid: true, PaidDate: dayPtr(2024, time.December, 18)},
					{UserID: "user-4", Amount: 600, Paid: true, PaidDate: dayPtr(2024, time.December, 18)},
				},
				PaidBy:  "user-3",
				GroupID: "group-1",
				Date:    day(2024, time.December, 18),
				Settled: true,
			},
		},
		ShoppingItems: []models.ShoppingItem{
			{ID: "shop-1", Name: "Milk", GroupID: "group-1", AddedBy: "user-1"},
			{
				ID:            "shop-2",
				Name:          "Bread",
				Purchased:     true,
				PurchasedBy:   "user-2",
				PurchasedDate: dayPtr(2024, time.December, 20),
				GroupID:       "group-1",
				AddedBy:       "user-1",
			},
			{ID: "shop-3", Name: "Eggs (1 dozen)", GroupID: "group-1", AddedBy: "user-3"},
			{ID: "shop-4", Name: "Detergent", GroupID: "group-1", AddedBy: "user-2"},
		},
		CleaningDuty: &models.CleaningDuty{
			ID:              "duty-1",
			GroupID:         "group-1",
			Members:         []string{"user-1", "user-2", "user-3"},
			Frequency:       models.FrequencyDaily,
			CurrentTurn:     "user-1",
			LastCleanedDate: dayPtr(2024, time.December, 20),
			History: []models.CleaningHistory{
				{Date: day(2024, time.December, 20), UserID: "user-3", Status: models.CleaningCompleted},
				{Date: day(2024, time.December, 19), UserID: "user-2", Status: models.CleaningCompleted},
				{Date: day(2024, time.December, 18), UserID: "user-1", Status: models.CleaningCompleted},
				{Date: day(2024, time.December, 17), UserID: "user-3", Status: models.CleaningLate},
				{Date: day(2024, time.December, 16), UserID: "user-2", Status: models.CleaningSkipped},
			},
		},
		LostAndFound: []models.LostAndFound{
			{
				ID:          "lf-1",
				Title:       "Black Umbrella",
				Description: "Left in the common room",
				Type:        models.FoundItem,
				Date:        day(2024, time.December, 19),
				PostedBy:    "user-2",
			},
			{
				ID:          "lf-2",
				Title:       "Blue Water Bottle",
				Description: "Lost near the entrance",
				Type:        models.LostItem,
				Date:        day(2024, time.December, 18),
				PostedBy:    "user-3",
			},
		},
		Notices: []models.Notice{
			{
				ID:       "notice-1",
				Title:    "Internet Maintenance",
				Content:  "Internet will be down tomorrow from 2 PM to 4 PM for maintenance.",
				PostedBy: "user-1",
				Date:     day(2024, time.December, 20),
				Priority: models.NoticeImportant,
			},
			{
				ID:       "notice-2",
				Title:    "Rent Due",
				Content:  "Monthly rent is due by 25th December. Please make payment on time.",
				PostedBy: "user-1",
				Date:     day(2024, time.December, 15),
				Priority: models.NoticeUrgent,
			},
		},
		Documents: []models.Document{
			{ID: "doc-1", Name: "Rent Receipt - December", Type: "PDF", URL: "#", UploadedBy: "user-1", UploadedAt: day(2024, time.December, 1)},
			{ID: "doc-2", Name: "Hostel Card", Type: "JPG", URL: "#", UploadedBy: "user-1", UploadedAt: day(2024, time.January, 15)},
		},
		BillReminders: []models.BillReminder{
			{ID: "bill-1", Title: "Electricity Bill", Amount: 3000, DueDate: day(2024, time.December, 25), Type: models.BillElectricity, Recurring: true},
			{ID: "bill-2", Title: "Internet Bill", Amount: 2000, DueDate: day(2024, time.December, 28), Type: models.BillInternet, Recurring: true},
			{ID: "bill-3", Title: "Gas Bill", Amount: 1500, DueDate: day(2024, time.December, 22), Type: models.BillGas, Recurring: true, Paid: true},
		},
	}
}
