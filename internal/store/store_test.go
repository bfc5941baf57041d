package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
)

var testNow = time.Date(2024, 12, 21, 10, 0, 0, 0, time.UTC)

// sequentialIDs hands out "<kind>-1", "<kind>-2", ... per kind.
type sequentialIDs struct {
	mu   sync.Mutex
	next map[string]int
}

func (g *sequentialIDs) NewID(kind string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next == nil {
		g.next = make(map[string]int)
	}
	g.next[kind]++
	return fmt.Sprintf("%s-%d", kind, g.next[kind])
}

func testSeed() *models.Seed {
	return &models.Seed{
		CurrentUserID: "A",
		Users: []models.User{
			{ID: "A", Name: "Alice", PresenceStatus: models.PresencePresent, Role: models.RoleAdmin},
			{ID: "B", Name: "Bob", PresenceStatus: models.PresenceOut, Role: models.RoleMember},
			{ID: "C", Name: "Carol", PresenceStatus: models.PresencePresent, Role: models.RoleMember},
		},
		Group: &models.Group{ID: "g1", Name: "Room 204", InviteCode: "ABC123", CreatedBy: "A"},
		CleaningDuty: &models.CleaningDuty{
			ID:          "clean-1",
			GroupID:     "g1",
			Members:     []string{"A", "B", "C"},
			Frequency:   models.FrequencyWeekly,
			CurrentTurn: "A",
		},
	}
}

func newTestStore(t *testing.T, seed *models.Seed, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{
		WithClock(ClockFunc(func() time.Time { return testNow })),
		WithIDGenerator(&sequentialIDs{}),
	}, opts...)
	return New(seed, opts...)
}

func TestNew(t *testing.T) {
	t.Run("seed user starts logged in", func(t *testing.T) {
		s := newTestStore(t, testSeed())
		assert.True(t, s.Authenticated())
		u, ok := s.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, "Alice", u.Name)
	})

	t.Run("nil seed is empty and logged out", func(t *testing.T) {
		s := newTestStore(t, nil)
		assert.False(t, s.Authenticated())
		_, ok := s.CurrentUser()
		assert.False(t, ok)
		assert.Empty(t, s.Snapshot().Todos)
	})

	t.Run("store does not alias the seed", func(t *testing.T) {
		seed := testSeed()
		s := newTestStore(t, seed)
		seed.Users[0].Name = "Mallory"
		assert.Equal(t, "Alice", s.Snapshot().Users[0].Name)
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())

	s.Logout(ctx)
	assert.False(t, s.Authenticated())
	s.Logout(ctx)
	assert.False(t, s.Authenticated())

	s.Login(ctx, models.Credentials{Email: "anyone@example.com", Password: "wrong"})
	assert.True(t, s.Authenticated())
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "A", u.ID)
}

func TestLoginWithoutDesignatedUser(t *testing.T) {
	ctx := context.Background()
	seed := testSeed()
	seed.CurrentUserID = ""

	var events []Event
	s := newTestStore(t, seed, WithObserver(ObserverFunc(func(_ context.Context, ev Event) {
		events = append(events, ev)
	})))
	require.False(t, s.Authenticated())

	s.Login(ctx, models.Credentials{Email: "anyone@example.com"})
	assert.False(t, s.Authenticated())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	snap := s.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Nil(t, snap.CurrentUser)

	require.Len(t, events, 1)
	assert.Equal(t, OpLogin, events[0].Op)
	assert.False(t, events[0].Applied)
}

func TestUpdateUserPresence(t *testing.T) {
	ctx := context.Background()

	t.Run("updates current user and users collection", func(t *testing.T) {
		s := newTestStore(t, testSeed())
		s.UpdateUserPresence(ctx, models.PresenceOnLeave)

		snap := s.Snapshot()
		require.NotNil(t, snap.CurrentUser)
		assert.Equal(t, models.PresenceOnLeave, snap.CurrentUser.PresenceStatus)
		assert.Equal(t, models.PresenceOnLeave, snap.Users[0].PresenceStatus)
		assert.Equal(t, models.PresenceOut, snap.Users[1].PresenceStatus)
	})

	t.Run("no current user is a no-op", func(t *testing.T) {
		s := newTestStore(t, testSeed())
		s.Logout(ctx)
		s.UpdateUserPresence(ctx, models.PresenceDoNotDisturb)
		assert.Equal(t, models.PresencePresent, s.Snapshot().Users[0].PresenceStatus)
	})
}

func TestTodos(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())

	s.AddTodo(ctx, models.NewTodo{Title: "Buy milk", Priority: models.PriorityLow, CreatedBy: "A"})
	s.AddTodo(ctx, models.NewTodo{Title: "Pay rent", Priority: models.PriorityHigh, CreatedBy: "A", GroupID: "g1"})

	todos := s.Snapshot().Todos
	require.Len(t, todos, 2)
	assert.Equal(t, "Pay rent", todos[0].Title, "newest todo comes first")
	assert.Equal(t, "todo-2", todos[0].ID)
	assert.True(t, todos[0].IsGroupTask())
	assert.False(t, todos[1].IsGroupTask())

	s.ToggleTodo(ctx, "todo-1")
	assert.True(t, s.Snapshot().Todos[1].Completed)
	s.ToggleTodo(ctx, "todo-1")
	assert.False(t, s.Snapshot().Todos[1].Completed, "double toggle restores the original state")

	s.RemoveTodo(ctx, "todo-2")
	todos = s.Snapshot().Todos
	require.Len(t, todos, 1)
	assert.Equal(t, "todo-1", todos[0].ID)
}

func TestExpenseSettlementScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())

	splits, err := calculator.EqualSplit(300, []string{"A", "B", "C"}, "A", testNow)
	require.NoError(t, err)
	s.AddExpense(ctx, models.NewExpense{
		Title:        "Groceries",
		Amount:       300,
		Category:     models.CategoryGrocery,
		SplitType:    models.SplitEqual,
		SplitDetails: splits,
		PaidBy:       "A",
		GroupID:      "g1",
		Date:         testNow,
	})

	snap := s.Snapshot()
	require.Len(t, snap.Expenses, 1)
	expense := snap.Expenses[0]
	assert.False(t, expense.Settled)
	assert.InDelta(t, 200.0, calculator.OwedToUser(snap.Expenses, "A"), 0.01)
	assert.InDelta(t, 100.0, calculator.OwedByUser(snap.Expenses, "B"), 0.01)

	s.SettleExpense(ctx, expense.ID, "B")
	snap = s.Snapshot()
	assert.False(t, snap.Expenses[0].Settled)
	assert.InDelta(t, 100.0, calculator.OwedToUser(snap.Expenses, "A"), 0.01)
	split, ok := calculator.FindSplit(snap.Expenses[0], "B")
	require.True(t, ok)
	require.NotNil(t, split.PaidDate)
	assert.Equal(t, testNow, *split.PaidDate)

	s.SettleExpense(ctx, expense.ID, "C")
	snap = s.Snapshot()
	assert.True(t, snap.Expenses[0].Settled)
	assert.InDelta(t, 0.0, calculator.OwedToUser(snap.Expenses, "A"), 0.01)
}

func TestAddExpenseDerivesSettled(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())

	s.AddExpense(ctx, models.NewExpense{
		Title:  "Solo snack",
		Amount: 10,
		SplitDetails: []models.ExpenseSplit{
			{UserID: "A", Amount: 10, Paid: true},
		},
		PaidBy: "A",
	})
	assert.True(t, s.Snapshot().Expenses[0].Settled)
}

func TestShopping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())

	s.AddShoppingItem(ctx, "Milk")
	s.AddShoppingItem(ctx, "Eggs")

	items := s.Snapshot().ShoppingItems
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Eggs", items[1].Name)
	assert.Equal(t, "A", items[0].AddedBy)
	assert.Equal(t, "g1", items[0].GroupID)

	s.ToggleShoppingItem(ctx, items[0].ID)
	item := s.Snapshot().ShoppingItems[0]
	assert.True(t, item.Purchased)
	assert.Equal(t, "A", item.PurchasedBy)
	require.NotNil(t, item.PurchasedDate)
	assert.Equal(t, testNow, *item.PurchasedDate)

	s.ToggleShoppingItem(ctx, items[0].ID)
	item = s.Snapshot().ShoppingItems[0]
	assert.False(t, item.Purchased)
	assert.Empty(t, item.PurchasedBy)
	assert.Nil(t, item.PurchasedDate)

	s.RemoveShoppingItem(ctx, items[0].ID)
	items = s.Snapshot().ShoppingItems
	require.Len(t, items, 1)
	assert.Equal(t, "Eggs", items[0].Name)
}

func TestAddShoppingItemWithoutSession(t *testing.T) {
	ctx := context.Background()
	seed := testSeed()
	seed.Group = nil
	s := newTestStore(t, seed)
	s.Logout(ctx)

	s.AddShoppingItem(ctx, "Bread")
	item := s.Snapshot().ShoppingItems[0]
	assert.Empty(t, item.AddedBy)
	assert.Empty(t, item.GroupID)
}

func TestMarkCleaningComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("ring rotation", func(t *testing.T) {
		s := newTestStore(t, testSeed())

		s.MarkCleaningComplete(ctx)
		duty := s.Snapshot().CleaningDuty
		require.NotNil(t, duty)
		assert.Equal(t, "B", duty.CurrentTurn)
		require.Len(t, duty.History, 1)
		assert.Equal(t, "A", duty.History[0].UserID)
		assert.Equal(t, models.CleaningCompleted, duty.History[0].Status)
		require.NotNil(t, duty.LastCleanedDate)
		assert.Equal(t, testNow, *duty.LastCleanedDate)

		s.MarkCleaningComplete(ctx)
		s.MarkCleaningComplete(ctx)
		duty = s.Snapshot().CleaningDuty
		assert.Equal(t, "A", duty.CurrentTurn, "three completions return to the start")
		assert.Len(t, duty.History, 3)
	})

	t.Run("records the caller even when it is not their turn", func(t *testing.T) {
		seed := testSeed()
		seed.CleaningDuty.CurrentTurn = "B"
		s := newTestStore(t, seed)

		s.MarkCleaningComplete(ctx)
		duty := s.Snapshot().CleaningDuty
		assert.Equal(t, "C", duty.CurrentTurn)
		assert.Equal(t, "A", duty.History[0].UserID)
	})

	t.Run("no duty is a no-op", func(t *testing.T) {
		seed := testSeed()
		seed.CleaningDuty = nil
		s := newTestStore(t, seed)
		s.MarkCleaningComplete(ctx)
		assert.Nil(t, s.Snapshot().CleaningDuty)
	})

	t.Run("no current user is a no-op", func(t *testing.T) {
		s := newTestStore(t, testSeed())
		s.Logout(ctx)
		s.MarkCleaningComplete(ctx)
		duty := s.Snapshot().CleaningDuty
		assert.Equal(t, "A", duty.CurrentTurn)
		assert.Empty(t, duty.History)
	})
}

func TestBoard(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())
	posted := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	s.AddNotice(ctx, models.NewNotice{Title: "Water cut", PostedBy: "A", Priority: models.NoticeUrgent})
	s.AddNotice(ctx, models.NewNotice{Title: "Party", PostedBy: "B", Priority: models.NoticeNormal, Date: posted})
	notices := s.Snapshot().Notices
	require.Len(t, notices, 2)
	assert.Equal(t, "Party", notices[0].Title)
	assert.Equal(t, posted, notices[0].Date)
	assert.Equal(t, testNow, notices[1].Date, "zero date is filled with the clock")

	s.AddLostAndFound(ctx, models.NewLostAndFound{Title: "Keys", Type: models.LostItem, PostedBy: "B"})
	lf := s.Snapshot().LostAndFound
	require.Len(t, lf, 1)
	assert.False(t, lf[0].Resolved)
	s.ResolveLostAndFound(ctx, lf[0].ID)
	assert.True(t, s.Snapshot().LostAndFound[0].Resolved)
	s.RemoveLostAndFound(ctx, lf[0].ID)
	assert.Empty(t, s.Snapshot().LostAndFound)

	s.RemoveNotice(ctx, notices[0].ID)
	assert.Len(t, s.Snapshot().Notices, 1)

	s.AddBillReminder(ctx, models.NewBillReminder{Title: "Internet", Amount: 40, DueDate: testNow.Add(72 * time.Hour), Type: models.BillInternet})
	bills := s.Snapshot().BillReminders
	require.Len(t, bills, 1)
	assert.False(t, bills[0].Paid)
	s.MarkBillPaid(ctx, bills[0].ID)
	assert.True(t, s.Snapshot().BillReminders[0].Paid)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())
	s.AddTodo(ctx, models.NewTodo{Title: "Keep me"})
	s.AddShoppingItem(ctx, "Keep me")
	before := s.Snapshot()

	s.ToggleTodo(ctx, "missing")
	s.RemoveTodo(ctx, "missing")
	s.SettleExpense(ctx, "missing", "A")
	s.RemoveExpense(ctx, "missing")
	s.ToggleShoppingItem(ctx, "missing")
	s.RemoveShoppingItem(ctx, "missing")
	s.ResolveLostAndFound(ctx, "missing")
	s.RemoveLostAndFound(ctx, "missing")
	s.RemoveNotice(ctx, "missing")
	s.MarkBillPaid(ctx, "missing")

	assert.Equal(t, before, s.Snapshot())
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())
	s.AddTodo(ctx, models.NewTodo{Title: "Original", AssignedTo: []string{"A"}})

	snap := s.Snapshot()
	snap.Todos[0].Title = "Changed"
	snap.Todos[0].AssignedTo[0] = "Z"
	snap.CleaningDuty.Members[0] = "Z"
	snap.Users[0].Name = "Changed"

	fresh := s.Snapshot()
	assert.Equal(t, "Original", fresh.Todos[0].Title)
	assert.Equal(t, []string{"A"}, fresh.Todos[0].AssignedTo)
	assert.Equal(t, "A", fresh.CleaningDuty.Members[0])
	assert.Equal(t, "Alice", fresh.Users[0].Name)

	// An older snapshot keeps seeing the state it was taken from.
	s.ToggleTodo(ctx, fresh.Todos[0].ID)
	assert.False(t, fresh.Todos[0].Completed)
}

func TestObserver(t *testing.T) {
	ctx := context.Background()
	var events []Event
	s := newTestStore(t, testSeed(), WithObserver(ObserverFunc(func(_ context.Context, ev Event) {
		events = append(events, ev)
	})))

	s.AddTodo(ctx, models.NewTodo{Title: "Observed"})
	s.ToggleTodo(ctx, "missing")

	require.Len(t, events, 2)
	assert.Equal(t, OpAddTodo, events[0].Op)
	assert.True(t, events[0].Applied)
	assert.Equal(t, "todo-1", events[0].EntityID)
	assert.Equal(t, "A", events[0].UserID)
	assert.Equal(t, testNow, events[0].At)
	assert.Equal(t, OpToggleTodo, events[1].Op)
	assert.False(t, events[1].Applied)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())
	s.AddTodo(ctx, models.NewTodo{Title: "Gone after reset"})
	s.Logout(ctx)

	s.Reset(ctx, testSeed())
	snap := s.Snapshot()
	assert.Empty(t, snap.Todos)
	assert.False(t, snap.Authenticated, "reload keeps a logged-out session logged out")
	assert.Nil(t, snap.CurrentUser)

	s.Login(ctx, models.Credentials{Email: "a@example.com"})
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "A", u.ID)
}

func TestResetWhileLoggedIn(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testSeed())

	next := testSeed()
	next.CurrentUserID = "B"
	s.Reset(ctx, next)
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "B", u.ID)

	none := testSeed()
	none.CurrentUserID = ""
	s.Reset(ctx, none)
	assert.False(t, s.Authenticated())
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}

func TestConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	s := New(testSeed())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddShoppingItem(ctx, fmt.Sprintf("item %d", i))
		}(i)
	}
	wg.Wait()

	items := s.Snapshot().ShoppingItems
	assert.Len(t, items, 50)
	seen := make(map[string]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}
