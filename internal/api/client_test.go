package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meridastore.com/app/internal/shared/apperr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.Method != http.MethodGet || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.ListOrders(context.Background(), "tok-123"); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := r.Header.Get("Authorization"); h != "" {
			t.Errorf("unexpected Authorization header: %q", h)
		}
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.ListProducts(context.Background()); err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
}

func TestClientSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Not authorized, token failed"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	err := c.DeleteProduct(context.Background(), "tok", "p1")
	if err == nil {
		t.Fatal("expected error")
	}

	ae, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected an apperr, got %v", err)
	}
	if ae.PublicMsg != "Not authorized, token failed" {
		t.Errorf("PublicMsg = %q", ae.PublicMsg)
	}
	if got := apperr.HTTPStatus(err); got != http.StatusBadGateway {
		t.Errorf("HTTPStatus = %d, want 502", got)
	}
}

func TestClientPlainErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	err := c.DeleteProduct(context.Background(), "tok", "p1")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := apperr.As(err); ok {
		t.Errorf("no backend message should mean no public message: %v", err)
	}
}

func TestClientSetOrderPaidBody(t *testing.T) {
	var gotBody map[string]bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/orders/o1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"_id":"o1","isPaid":false}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	order, err := c.SetOrderPaid(context.Background(), "tok", "o1", false)
	if err != nil {
		t.Fatalf("SetOrderPaid: %v", err)
	}

	v, present := gotBody["isPaid"]
	if !present || v != false {
		t.Errorf("body = %v, want {\"isPaid\": false}", gotBody)
	}
	if order.IsPaid {
		t.Errorf("response order should be unpaid: %+v", order)
	}
}

func TestClientCreateOrderPayload(t *testing.T) {
	var got OrderInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"_id":"o9","totalPrice":25.5}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	in := OrderInput{
		OrderItems: []OrderItem{
			{Product: "p1", Name: "Laptop", Quantity: 2, Price: 10},
			{Product: "p2", Name: "Mouse", Quantity: 1, Price: 5.5},
		},
		ShippingAddress: "1 Main St",
		TotalPrice:      25.5,
	}
	if _, err := c.CreateOrder(context.Background(), "tok", in); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if len(got.OrderItems) != 2 || got.TotalPrice != 25.5 || got.ShippingAddress != "1 Main St" {
		t.Errorf("payload mismatch: %+v", got)
	}
}
