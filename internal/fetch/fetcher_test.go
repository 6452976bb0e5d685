package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.Write([]byte(`{"name":"orpheus","count":3}`))
	}))
	defer srv.Close()

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	c := NewClient(5 * time.Second)
	if err := c.GetJSON(context.Background(), srv.URL, "", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Name != "orpheus" || out.Count != 3 {
		t.Errorf("decoded %+v", out)
	}
}

func TestGetAttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer th_apk_live_x" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	body, err := c.Get(context.Background(), srv.URL, "th_apk_live_x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer body.Close()
	if b, _ := io.ReadAll(body); string(b) != "ok" {
		t.Errorf("body = %q", b)
	}
}

func TestGetHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	if _, err := c.Get(context.Background(), srv.URL, ""); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestGetRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(5 * time.Second)
	if _, err := c.Get(ctx, "http://127.0.0.1:0/never", ""); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
