package store

// import (
// 	"context"
// 	"os"
// 	"testing"
// 	"time"
// )

// func fastFailPGURL() string {
// 	// user/pass/db don't matter; 127.0.0.1:1 is a closed port on all systems
// 	return "postgres://u:p@127.0.0.1:1/db?sslmode=disable"
// }

// func testConfig() Config {
// 	return Config{
// 		PG: PGConfig{
// 			URL:         "postgres://local", // lazy pool; ping attempts will fail fast
// 			MaxConns:    2,
// 			SlowQueryMs: 500,
// 			LogSQL:      false,
// 		},
// 	}
// }

// // integrationURL returns an override URL from env if present
// func integrationURL(envKey string) (string, bool) {
// 	v := os.Getenv(envKey)
// 	return v, v != ""
// }

// func TestOpenPG_ParentAlreadyCanceled(t *testing.T) {
// 	t.Parallel()

// 	ctx, cancel := context.WithCancel(context.Background())
// 	cancel()

// 	cfg := testConfig()
// 	cfg.PG.URL = fastFailPGURL()

// 	s := &Store{}

// 	start := time.Now()
// 	txr, err := openPG(ctx, cfg, s)
// 	elapsed := time.Since(start)

// 	if err == nil {
// 		t.Fatalf("expected error due to canceled context, got nil (txr=%T)", txr)
// 	}
// 	if txr != nil {
// 		t.Fatalf("expected nil TxRunner on canceled context, got %T", txr)
// 	}
// 	// should return quickly (no DNS, immediate ECONNREFUSED)
// 	if elapsed > time.Second {
// 		t.Fatalf("expected quick failure, got %v", elapsed)
// 	}
// }

// func TestOpenPG(t *testing.T) {
// 	t.Parallel()

// 	url, ok := integrationURL("TEST_PG_URL")
// 	if !ok {
// 		t.Skip("skipping PG integration test: set TEST_PG_URL to enable")
// 	}

// 	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
// 	defer cancel()

// 	cfg := testConfig()
// 	cfg.PG.URL = url

// 	s := &Store{} // zero logger is fine for tracer wiring

// 	txr, err := openPG(ctx, cfg, s)
// 	if err != nil {
// 		t.Fatalf("openPG error: %v", err)
// 	}
// 	if txr == nil {
// 		t.Fatalf("openPG returned nil TxRunner")
// 	}
// }
