package randomorg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchIntegers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("num"); got != "4" {
			t.Errorf("num = %s; want 4", got)
		}
		w.Write([]byte("3\n0\n7\n5\n"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, time.Second)
	values, err := c.FetchIntegers(context.Background(), 4, 0, 7)
	if err != nil {
		t.Fatalf("FetchIntegers: %v", err)
	}

	want := []int{3, 0, 7, 5}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("values = %v; want %v", values, want)
		}
	}
}

func TestFetchIntegersErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not\na\nnumber\nhere\n"))
		}},
		{"too few values", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("1\n2\n"))
		}},
		{"value out of range", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("1\n2\n3\n9\n"))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			c := NewClient(ts.URL, time.Second)
			if _, err := c.FetchIntegers(context.Background(), 4, 0, 7); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestFetchIntegersUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	c := NewClient(ts.URL, time.Second)
	if _, err := c.FetchIntegers(context.Background(), 4, 0, 7); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}
