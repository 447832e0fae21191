package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProposeRoundtrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Palette) != 5 {
			t.Errorf("palette: got %d colors", len(req.Palette))
		}
		if req.Dominant != "#c2b8ad" {
			t.Errorf("dominant: got %q", req.Dominant)
		}
		json.NewEncoder(w).Encode(Proposal{
			Background: "linear-gradient(135deg, #c2b8ad, #c8c5cc)",
			Shadow:     40,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if c == nil {
		t.Fatal("client is nil for explicit URL")
	}

	p, err := c.Propose(context.Background(), Request{
		Palette:  []string{"#c2b8ad", "#c9ccd1", "#cdd4cb", "#d6cdd2", "#c8c5cc"},
		Dominant: "#c2b8ad",
		Width:    1000,
		Height:   500,
	})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if p.Background != "linear-gradient(135deg, #c2b8ad, #c8c5cc)" {
		t.Errorf("background: got %q", p.Background)
	}
	if p.Shadow != 40 {
		t.Errorf("shadow: got %g", p.Shadow)
	}
}

func TestProposeBadStatus(t *testing.T) {
	// 404 is not retried, so the test stays fast.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Propose(context.Background(), Request{}); err == nil {
		t.Error("404 did not error")
	}
}

func TestProposeBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Propose(context.Background(), Request{}); err == nil {
		t.Error("garbage body did not error")
	}
}

func TestProposeMissingBackground(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Proposal{Shadow: 10})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Propose(context.Background(), Request{}); err == nil {
		t.Error("empty background did not error")
	}
}

func TestNewWithoutEndpoint(t *testing.T) {
	t.Setenv(EnvURL, "")
	if c := New(""); c != nil {
		t.Error("expected nil client with no endpoint configured")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvURL, "http://styling.internal/propose")
	if c := New(""); c == nil {
		t.Error("expected client from env endpoint")
	}
}
