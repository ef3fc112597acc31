package daemon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/client"
	"github.com/matheus3301/chatzy/internal/config"
	"github.com/matheus3301/chatzy/internal/lock"
	"github.com/matheus3301/chatzy/internal/profile"
	"github.com/matheus3301/chatzy/internal/status"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zapcore"
)

// testParams points the profile tree at a temp dir and the socket at a short
// /tmp path (macOS caps Unix socket paths at 104 chars).
func testParams(t *testing.T, ephemeral bool) Params {
	t.Helper()
	t.Setenv(profile.HomeEnv, t.TempDir())

	sockDir, err := os.MkdirTemp("/tmp", "chatzy-d-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(sockDir) })

	cfg := config.Default()
	cfg.Sync = config.SyncConfig{} // no background ticks
	return Params{
		Profile:    "test",
		SocketPath: filepath.Join(sockDir, "d.sock"),
		Ephemeral:  ephemeral,
		Config:     cfg,
		LogLevel:   zapcore.WarnLevel,
	}
}

func dial(t *testing.T, socket string) *client.Client {
	t.Helper()
	c, err := client.New(socket)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestDaemonLifecycle(t *testing.T) {
	p := testParams(t, true)
	app := fxtest.New(t, fx.NopLogger, Module(p))
	app.RequireStart()
	defer app.RequireStop()

	info, err := os.Stat(p.SocketPath)
	if err != nil {
		t.Fatalf("socket not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("socket mode = %o, want 0600", perm)
	}

	c := dial(t, p.SocketPath)
	ctx := context.Background()

	resp, err := c.Session.GetStatus(ctx, &chatzyv1.GetStatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus error = %v", err)
	}
	if resp.Profile != "test" || resp.Backend != config.BackendMemory {
		t.Errorf("status = %v", resp)
	}
	if resp.State != string(status.SignedOut) {
		t.Errorf("state = %s, want SIGNED_OUT; the daemon must leave BOOTING after start", resp.State)
	}

	if _, err := c.Session.Register(ctx, &chatzyv1.RegisterRequest{Name: "Alice", Email: "a@x.io", Password: "pw"}); err != nil {
		t.Fatal(err)
	}
	resp, _ = c.Session.GetStatus(ctx, &chatzyv1.GetStatusRequest{})
	if resp.State != string(status.Active) || resp.User == nil || resp.UserCount != 1 {
		t.Errorf("status after register = %v", resp)
	}
}

func TestStopWithOpenWatchStream(t *testing.T) {
	p := testParams(t, true)
	app := fxtest.New(t, fx.NopLogger, Module(p))
	app.RequireStart()

	c := dial(t, p.SocketPath)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	stream, err := c.Event.WatchEvents(ctx, &chatzyv1.WatchEventsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	start := time.Now()
	if err := app.Stop(stopCtx); err != nil {
		t.Fatalf("Stop error = %v", err)
	}
	if d := time.Since(start); d > time.Second {
		t.Errorf("Stop took %v with a watcher open", d)
	}
	if _, err := stream.Recv(); err == nil {
		t.Error("stream still open after daemon stop")
	}
}

func TestSecondDaemonRefused(t *testing.T) {
	p := testParams(t, true)
	app := fxtest.New(t, fx.NopLogger, Module(p))
	app.RequireStart()
	defer app.RequireStop()

	second := fx.New(fx.NopLogger, Module(p))
	var held *lock.HeldError
	if err := second.Err(); !errors.As(err, &held) {
		t.Fatalf("second daemon err = %v, want *lock.HeldError", err)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	p := testParams(t, false)
	ctx := context.Background()

	app := fxtest.New(t, fx.NopLogger, Module(p))
	app.RequireStart()
	c := dial(t, p.SocketPath)
	alice, err := c.Session.Register(ctx, &chatzyv1.RegisterRequest{Name: "Alice", Email: "a@x.io", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	app.RequireStop()

	if _, err := os.Stat(profile.DBPath(p.Profile)); err != nil {
		t.Fatalf("sqlite file missing: %v", err)
	}
	if _, err := os.Stat(p.SocketPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("socket left behind after stop: %v", err)
	}

	app = fxtest.New(t, fx.NopLogger, Module(p))
	app.RequireStart()
	defer app.RequireStop()

	c = dial(t, p.SocketPath)
	who, err := c.Session.WhoAmI(ctx, &chatzyv1.WhoAmIRequest{})
	if err != nil {
		t.Fatalf("WhoAmI after restart: %v", err)
	}
	if who.GetUser().GetId() != alice.GetUser().GetId() {
		t.Errorf("restored %s, want %s", who.GetUser().GetId(), alice.GetUser().GetId())
	}
	resp, _ := c.Session.GetStatus(ctx, &chatzyv1.GetStatusRequest{})
	if resp.Backend != config.BackendSQLite {
		t.Errorf("backend = %s, want sqlite", resp.Backend)
	}
}
