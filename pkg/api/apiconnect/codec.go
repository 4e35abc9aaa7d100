// Package apiconnect wires the profitshare.v1 services to Connect handlers
// and clients. Messages are plain structs from package api carried with a
// JSON codec, so the Connect protocol works with any HTTP client that can
// POST JSON.
package apiconnect

import (
	"encoding/json"
	"net/http"

	"connectrpc.com/connect"
)

// Codec marshals api messages as JSON. It registers under the "json" name and
// so replaces Connect's protobuf JSON codec.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (Codec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}

// service routes procedures of one service to their handlers.
type service struct {
	mux *http.ServeMux
}

func newService() *service {
	return &service{mux: http.NewServeMux()}
}

func (s *service) handle(procedure string, h http.Handler) {
	s.mux.Handle(procedure, h)
}
