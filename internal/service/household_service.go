package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/calculator"
	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/store"
)

type AddItemRequest struct {
	Name string `json:"name"`
}

type ItemIDRequest struct {
	ID string `json:"id"`
}

type ListItemsRequest struct{}

type ShoppingItemsResponse struct {
	Items []models.ShoppingItem `json:"items"`
}

// ShoppingService manages the shared shopping list.
type ShoppingService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewShoppingService creates a new ShoppingService backed by st.
func NewShoppingService(st *store.Store, logger *slog.Logger) *ShoppingService {
	return &ShoppingService{store: st, logger: logger}
}

// NewShoppingServiceHandler builds the HTTP handler serving ShoppingService.
func NewShoppingServiceHandler(svc *ShoppingService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(ShoppingServiceName, opts)
	handle(h, "AddItem", svc.AddItem)
	handle(h, "ToggleItem", svc.ToggleItem)
	handle(h, "RemoveItem", svc.RemoveItem)
	handle(h, "ListItems", svc.ListItems)
	return h.path, h
}

// AddItem appends an item to the list.
func (s *ShoppingService) AddItem(ctx context.Context, req *connect.Request[AddItemRequest]) (*connect.Response[ShoppingItemsResponse], error) {
	s.logger.Info("AddItem request received", "name", req.Msg.Name)
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(ErrNameRequired)
	}
	s.store.AddShoppingItem(ctx, name)
	return s.items(), nil
}

// ToggleItem marks an item purchased by the current user, or un-purchases it.
func (s *ShoppingService) ToggleItem(ctx context.Context, req *connect.Request[ItemIDRequest]) (*connect.Response[ShoppingItemsResponse], error) {
	s.logger.Info("ToggleItem request received", "item_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.ToggleShoppingItem(ctx, req.Msg.ID)
	return s.items(), nil
}

// RemoveItem deletes an item from the list.
func (s *ShoppingService) RemoveItem(ctx context.Context, req *connect.Request[ItemIDRequest]) (*connect.Response[ShoppingItemsResponse], error) {
	s.logger.Info("RemoveItem request received", "item_id", req.Msg.ID)
	if req.Msg.ID == "" {
		return nil, invalidArgument(ErrIDRequired)
	}
	s.store.RemoveShoppingItem(ctx, req.Msg.ID)
	return s.items(), nil
}

// ListItems returns the list in insertion order.
func (s *ShoppingService) ListItems(ctx context.Context, req *connect.Request[ListItemsRequest]) (*connect.Response[ShoppingItemsResponse], error) {
	return s.items(), nil
}

func (s *ShoppingService) items() *connect.Response[ShoppingItemsResponse] {
	return connect.NewResponse(&ShoppingItemsResponse{Items: s.store.Snapshot().ShoppingItems})
}

type MarkCompleteRequest struct{}

type GetDutyRequest struct{}

type CleaningDutyResponse struct {
	Duty *models.CleaningDuty `json:"duty,omitempty"`
	// NextTurn is who follows the current turn in the ring.
	NextTurn string `json:"nextTurn,omitempty"`
}

// CleaningService drives the cleaning rotation.
type CleaningService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCleaningService creates a new CleaningService backed by st.
func NewCleaningService(st *store.Store, logger *slog.Logger) *CleaningService {
	return &CleaningService{store: st, logger: logger}
}

// NewCleaningServiceHandler builds the HTTP handler serving CleaningService.
func NewCleaningServiceHandler(svc *CleaningService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(CleaningServiceName, opts)
	handle(h, "MarkComplete", svc.MarkComplete)
	handle(h, "GetDuty", svc.GetDuty)
	return h.path, h
}

// MarkComplete records the current user as having cleaned and passes the turn on.
func (s *CleaningService) MarkComplete(ctx context.Context, req *connect.Request[MarkCompleteRequest]) (*connect.Response[CleaningDutyResponse], error) {
	s.logger.Info("MarkComplete request received")
	s.store.MarkCleaningComplete(ctx)
	return s.duty(), nil
}

// GetDuty returns the rotation and its history.
func (s *CleaningService) GetDuty(ctx context.Context, req *connect.Request[GetDutyRequest]) (*connect.Response[CleaningDutyResponse], error) {
	return s.duty(), nil
}

func (s *CleaningService) duty() *connect.Response[CleaningDutyResponse] {
	resp := &CleaningDutyResponse{Duty: s.store.Snapshot().CleaningDuty}
	if resp.Duty != nil {
		resp.NextTurn, _ = calculator.NextTurn(resp.Duty.Members, resp.Duty.CurrentTurn)
	}
	return connect.NewResponse(resp)
}
