package httpkit

import (
	"context"
	"net/http"
	"testing"
)

// req helper
func newReq() *http.Request {
	req, _ := http.NewRequest(http.MethodGet, "http://x.test/y", nil)
	return req
}

// anyValCtx returns a context that always yields a given value for any key
type anyValCtx struct {
	context.Context
	val any
}

func (c anyValCtx) Value(key any) any {
	return c.val
}

func TestNetid_SuccessAndError(t *testing.T) {
	// success: force any ctx.Value(...) to return a non-empty netid
	{
		ctx := anyValCtx{Context: context.Background(), val: "jsmith42"}
		got, err := Netid(newReq().WithContext(ctx))
		if err != nil {
			t.Fatalf("Netid unexpected error: %v", err)
		}
		if got != "jsmith42" {
			t.Fatalf("Netid got %q want %q", got, "jsmith42")
		}
	}

	// error: empty/default context
	{
		_, err := Netid(newReq())
		if err == nil {
			t.Fatal("Netid expected error, got nil")
		}
		if got := err.Error(); got != "missing bearer token" {
			t.Fatalf("Netid error = %q want %q", got, "missing bearer token")
		}
	}
}

func TestMustNetid_SuccessAndPanic(t *testing.T) {
	// success
	{
		ctx := anyValCtx{Context: context.Background(), val: "ok-netid"}
		if got := MustNetid(newReq().WithContext(ctx)); got != "ok-netid" {
			t.Fatalf("MustNetid got %q want %q", got, "ok-netid")
		}
	}

	// panic on anonymous request
	{
		defer func() {
			if recover() == nil {
				t.Fatal("MustNetid expected panic, got none")
			}
		}()
		_ = MustNetid(newReq())
	}
}

func TestToken_ParsesBearerHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"plain", "Bearer abc123", "abc123", true},
		{"lowercase scheme", "bearer abc123", "abc123", true},
		{"padded token", "Bearer   abc123  ", "abc123", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"scheme only", "Bearer ", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newReq()
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got, err := Token(req)
			if tc.ok && err != nil {
				t.Fatalf("Token unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("Token expected error, got nil")
			}
			if got != tc.want {
				t.Fatalf("Token got %q want %q", got, tc.want)
			}
		})
	}
}
