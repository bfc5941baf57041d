// Package service exposes the household store over Connect RPC.
//
// Messages are plain Go structs carried by a JSON codec, so the services are
// served under the roommate.v1 package without generated protobuf code.
// Handlers validate input before calling the store and answer with the
// collection as it is after the mutation.
package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	SessionServiceName  = "roommate.v1.SessionService"
	TaskServiceName     = "roommate.v1.TaskService"
	ExpenseServiceName  = "roommate.v1.ExpenseService"
	ShoppingServiceName = "roommate.v1.ShoppingService"
	CleaningServiceName = "roommate.v1.CleaningService"
	BoardServiceName    = "roommate.v1.BoardService"
	ViewServiceName     = "roommate.v1.ViewService"
	GroupServiceName    = "roommate.v1.GroupService"
)

// Procedure returns the Connect procedure path of a service method.
func Procedure(service, method string) string {
	return "/" + service + "/" + method
}

// JSONCodec marshals messages with encoding/json under the "json" codec name,
// replacing Connect's protobuf-only JSON codec.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// serviceHandler routes the procedures of one service.
type serviceHandler struct {
	path string
	mux  *http.ServeMux
	opts []connect.HandlerOption
}

func newServiceHandler(service string, opts []connect.HandlerOption) *serviceHandler {
	return &serviceHandler{
		path: "/" + service + "/",
		mux:  http.NewServeMux(),
		opts: append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...),
	}
}

func (h *serviceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func handle[Req, Res any](h *serviceHandler, method string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	procedure := h.path + method
	h.mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, h.opts...))
}

// NewClient returns a client for one procedure, speaking the JSON codec.
func NewClient[Req, Res any](httpClient connect.HTTPClient, baseURL, service, method string, opts ...connect.ClientOption) *connect.Client[Req, Res] {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return connect.NewClient[Req, Res](httpClient, strings.TrimRight(baseURL, "/")+Procedure(service, method), opts...)
}
