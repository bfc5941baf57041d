package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/store"
)

type AddNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	// Priority defaults to Normal.
	Priority string `json:"priority,omitempty"`
}

type AddLostAndFoundRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Type defaults to Lost.
	Type string `json:"type,omitempty"`
}

type AddBillReminderRequest struct {
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"dueDate"`
	Type      string    `json:"type,omitempty"` // defaults to Other
	Recurring bool      `json:"recurring,omitempty"`
}

type BoardIDRequest struct {
	ID string `json:"id"`
}

type ListBoardRequest struct{}

type BoardResponse struct {
	Notices       []models.Notice       `json:"notices"`
	LostAndFound  []models.LostAndFound `json:"lostAndFound"`
	Documents     []models.Document     `json:"documents"`
	BillReminders []models.BillReminder `json:"billReminders"`
}

// BoardService manages notices, lost-and-found reports and bill reminders.
// Every call answers with the whole board.
type BoardService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBoardService creates a new BoardService backed by st.
func NewBoardService(st *store.Store, logger *slog.Logger) *BoardService {
	return &BoardService{store: st, logger: logger}
}

// NewBoardServiceHandler builds the HTTP handler serving BoardService.
func NewBoardServiceHandler(svc *BoardService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(BoardServiceName, opts)
	handle(h, "AddNotice", svc.AddNotice)
	handle(h, "RemoveNotice", svc.RemoveNotice)
	handle(h, "AddLostAndFound", svc.AddLostAndFound)
	handle(h, "ResolveLostAndFound", svc.ResolveLostAndFound)
	handle(h, "RemoveLostAndFound", svc.RemoveLostAndFound)
	handle(h, "AddBillReminder", svc.AddBillReminder)
	handle(h, "MarkBillPaid", svc.MarkBillPaid)
	handle(h, "ListBoard", svc.ListBoard)
	return h.path, h
}

// AddNotice posts a notice from the current user.
func (s *BoardService) AddNotice(ctx context.Context, req *connect.Request[AddNoticeRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("AddNotice request received", "title", req.Msg.Title, "priority", req.Msg.Priority)

	if strings.TrimSpace(req.Msg.Title) == "" {
		return nil, invalidArgument(ErrTitleRequired)
	}
	if strings.TrimSpace(req.Msg.Content) == "" {
		return nil, invalidArgument(ErrContentRequired)
	}
	priority := models.NoticeNormal
	if req.Msg.Priority != "" {
		p, err := models.ParseNoticePriority(req.Msg.Priority)
		if err != nil {
			return nil, invalidField("priority", err)
		}
		priority = p
	}

	s.store.AddNotice(ctx, models.NewNotice{
		Title:    req.Msg.Title,
		Content:  req.Msg.Content,
		PostedBy: s.currentUserID(),
		Priority: priority,
	})
	return s.board(), nil
}

// RemoveNotice takes a notice off the board.
func (s *BoardService) RemoveNotice(ctx context.Context, req *connect.Request[BoardIDRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("RemoveNotice request received", "notice_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.RemoveNotice(ctx, req.Msg.ID)
	return s.board(), nil
}

// AddLostAndFound posts a lost or found item from the current user.
func (s *BoardService) AddLostAndFound(ctx context.Context, req *connect.Request[AddLostAndFoundRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("AddLostAndFound request received", "title", req.Msg.Title, "type", req.Msg.Type)

	if strings.TrimSpace(req.Msg.Title) == "" {
		return nil, invalidArgument(ErrTitleRequired)
	}
	if strings.TrimSpace(req.Msg.Description) == "" {
		return nil, invalidArgument(ErrContentRequired)
	}
	kind := models.LostItem
	if req.Msg.Type != "" {
		t, err := models.ParseLostFoundType(req.Msg.Type)
		if err != nil {
			return nil, invalidField("type", err)
		}
		kind = t
	}

	s.store.AddLostAndFound(ctx, models.NewLostAndFound{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		Type:        kind,
		PostedBy:    s.currentUserID(),
	})
	return s.board(), nil
}

// ResolveLostAndFound marks a report resolved.
func (s *BoardService) ResolveLostAndFound(ctx context.Context, req *connect.Request[BoardIDRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("ResolveLostAndFound request received", "item_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.ResolveLostAndFound(ctx, req.Msg.ID)
	return s.board(), nil
}

// RemoveLostAndFound deletes a report.
func (s *BoardService) RemoveLostAndFound(ctx context.Context, req *connect.Request[BoardIDRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("RemoveLostAndFound request received", "item_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.RemoveLostAndFound(ctx, req.Msg.ID)
	return s.board(), nil
}

// AddBillReminder adds an unpaid bill.
func (s *BoardService) AddBillReminder(ctx context.Context, req *connect.Request[AddBillReminderRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("AddBillReminder request received", "title", req.Msg.Title, "amount", req.Msg.Amount)

	if strings.TrimSpace(req.Msg.Title) == "" {
		return nil, invalidArgument(ErrTitleRequired)
	}
	if req.Msg.Amount <= 0 {
		return nil, invalidArgument(ErrAmountNotPositive)
	}
	if req.Msg.DueDate.IsZero() {
		return nil, invalidArgument(ErrDueDateRequired)
	}
	kind := models.BillOther
	if req.Msg.Type != "" {
		t, err := models.ParseBillType(req.Msg.Type)
		if err != nil {
			return nil, invalidField("type", err)
		}
		kind = t
	}

	s.store.AddBillReminder(ctx, models.NewBillReminder{
		Title:     req.Msg.Title,
		Amount:    req.Msg.Amount,
		DueDate:   req.Msg.DueDate,
		Type:      kind,
		Recurring: req.Msg.Recurring,
	})
	return s.board(), nil
}

// MarkBillPaid marks a bill paid.
func (s *BoardService) MarkBillPaid(ctx context.Context, req *connect.Request[BoardIDRequest]) (*connect.Response[BoardResponse], error) {
	s.logger.Info("MarkBillPaid request received", "bill_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.MarkBillPaid(ctx, req.Msg.ID)
	return s.board(), nil
}

// ListBoard returns every board collection.
func (s *BoardService) ListBoard(ctx context.Context, req *connect.Request[ListBoardRequest]) (*connect.Response[BoardResponse], error) {
	return s.board(), nil
}

func (s *BoardService) currentUserID() string {
	if u, ok := s.store.CurrentUser(); ok {
		return u.ID
	}
	return ""
}

func (s *BoardService) board() *connect.Response[BoardResponse] {
	snap := s.store.Snapshot()
	return connect.NewResponse(&BoardResponse{
		Notices:       snap.Notices,
		LostAndFound:  snap.LostAndFound,
		Documents:     snap.Documents,
		BillReminders: snap.BillReminders,
	})
}
