package pathway_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-pathway/pathway"
)

func ExampleRouter() {
	r := pathway.New()

	_ = r.Get("/hello/:user1/from/:user2", pathway.HandlerFunc(func(_ context.Context, req *pathway.Request) (*pathway.Response, error) {
		params := req.Params()
		body := fmt.Sprintf("Hello %s from %s!", params.Get("user1"), params.Get("user2"))
		return pathway.TextResponse(http.StatusOK, body), nil
	}))

	resp, _ := r.Dispatch(context.Background(), pathway.NewRequest(http.MethodGet, "/hello/alice/from/bob"))
	fmt.Println(resp.Status, string(resp.Body))
	// Output: 200 Hello alice from bob!
}

func ExampleRouter_wildcard() {
	r := pathway.New()

	_ = r.Get("/hi/*path", pathway.HandlerFunc(func(_ context.Context, req *pathway.Request) (*pathway.Response, error) {
		return pathway.TextResponse(http.StatusOK, req.Params().Get("path")), nil
	}))

	resp, _ := r.Dispatch(context.Background(), pathway.NewRequest(http.MethodGet, "/hi/a/b/c"))
	fmt.Println(string(resp.Body))
	// Output: a/b/c
}

func ExampleNewWithState() {
	type catalog struct {
		Items []string
	}

	r := pathway.NewWithState(&catalog{Items: []string{"anvil", "rope"}})

	_ = r.Get("/items", pathway.HandlerFunc(func(_ context.Context, req *pathway.Request) (*pathway.Response, error) {
		c, _ := pathway.StateAs[*catalog](req)
		return pathway.TextResponse(http.StatusOK, fmt.Sprint(len(c.Items))), nil
	}))

	resp, _ := r.Dispatch(context.Background(), pathway.NewRequest(http.MethodGet, "/items"))
	fmt.Println(string(resp.Body))
	// Output: 2
}

func ExampleRouter_Service() {
	r := pathway.New()
	_ = r.Get("/ping", pathway.HandlerFunc(func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
		return pathway.TextResponse(http.StatusOK, "pong"), nil
	}))

	svc := r.Service()

	resp, _ := svc.Call(context.Background(), pathway.NewRequest(http.MethodGet, "/ping"))
	fmt.Println(string(resp.Body))

	// The router is frozen once a service exists.
	err := r.Get("/late", pathway.HandlerFunc(func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
		return nil, nil
	}))
	fmt.Println(err != nil)
	// Output:
	// pong
	// true
}
