package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/matheus3301/chatzy/internal/api"
	"github.com/matheus3301/chatzy/internal/bus"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/config"
	"github.com/matheus3301/chatzy/internal/kv"
	"github.com/matheus3301/chatzy/internal/lock"
	"github.com/matheus3301/chatzy/internal/logging"
	"github.com/matheus3301/chatzy/internal/profile"
	"github.com/matheus3301/chatzy/internal/status"
	"github.com/matheus3301/chatzy/internal/store"
	chatsync "github.com/matheus3301/chatzy/internal/sync"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	Profile    string
	SocketPath string // optional override for testing; empty = use default
	// Ephemeral keeps all state in memory and logs to stderr only.
	Ephemeral bool
	Config    *config.Config
	LogLevel  zapcore.Level
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	if p.Config == nil {
		p.Config = config.Default()
	}
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideBackend,
			provideStore,
			provideChat,
			provideLimiter,
			provideSessionService,
			provideEventService,
			api.NewChatService,
			api.NewMessageService,
			api.NewCallService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	if p.Ephemeral {
		return logging.NewConsole(p.Profile, p.LogLevel), nil
	}
	return logging.New(profile.LogPath(p.Profile), p.Profile, p.LogLevel)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(lc fx.Lifecycle, p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.Profile))
	l, err := lock.Acquire(profile.Dir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	// Appended first, so it runs last on stop.
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		if err := l.Release(); err != nil {
			logger.Warn("error releasing lock", zap.Error(err))
		}
		return nil
	}})
	return l, nil
}

// backendName is what GetStatus reports for the chosen key-value backend.
type backendName string

// provideBackend opens the key-value backend. It depends on the lock so the
// backend is never opened by two daemons.
func provideBackend(lc fx.Lifecycle, p Params, _ *lock.Lock, logger *zap.Logger) (kv.Store, backendName, error) {
	backend := p.Config.Store.Backend
	if p.Ephemeral {
		backend = config.BackendMemory
	}

	var st kv.Store
	switch backend {
	case config.BackendMemory:
		st = kv.NewMemory()
		logger.Info("store initialized", zap.String("backend", backend))
	case config.BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		r, err := kv.DialRedis(ctx, p.Config.Store.RedisAddr, p.Config.Store.RedisPrefix+p.Profile+":")
		if err != nil {
			return nil, "", err
		}
		st = r
		logger.Info("store initialized",
			zap.String("backend", backend),
			zap.String("addr", p.Config.Store.RedisAddr),
		)
	case config.BackendSQLite:
		path := profile.DBPath(p.Profile)
		db, schema, err := kv.Open(path)
		if err != nil {
			return nil, "", err
		}
		if schema.Applied {
			logger.Info("migrations applied", zap.Uint("version", schema.Version))
		} else {
			logger.Info("migrations up to date", zap.Uint("version", schema.Version))
		}
		st = db
		logger.Info("store initialized", zap.String("backend", backend), zap.String("path", path))
	default:
		return nil, "", fmt.Errorf("unknown store backend %q", backend)
	}

	lc.Append(fx.Hook{OnStop: func(context.Context) error { return st.Close() }})
	return st, backendName(backend), nil
}

func provideStore(backend kv.Store, logger *zap.Logger) *store.Store {
	return store.New(backend, logger.Named("store"))
}

func provideChat(p Params, s *store.Store, b *bus.Bus, m *status.Machine, logger *zap.Logger) *chat.Service {
	sc := p.Config.Sync
	return chat.NewService(s, b, m, logger.Named("chat"), chatsync.Config{
		MessagePoll:     sc.MessagePoll.Duration,
		Heartbeat:       sc.Heartbeat.Duration,
		CallSimulation:  sc.CallSimulation.Duration,
		CallProbability: sc.CallProbability,
		PresenceTimeout: sc.PresenceTimeout.Duration,
	})
}

func provideLimiter(lc fx.Lifecycle, p Params) *api.LimiterStore {
	l := api.NewLimiterStore(p.Config.API.AuthRatePerMinute, p.Config.API.AuthBurst, time.Minute)
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		l.Stop()
		return nil
	}})
	return l
}

func provideSessionService(p Params, backend backendName, c *chat.Service, s *store.Store) *api.SessionService {
	return api.NewSessionService(p.Profile, string(backend), c, s)
}

func provideEventService(p Params, b *bus.Bus, logger *zap.Logger) *api.EventService {
	return api.NewEventService(p.Profile, b, logger.Named("events"))
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, svc *chat.Service, events *api.EventService, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			u, err := svc.Restore(ctx)
			if err != nil {
				return fmt.Errorf("restore session: %w", err)
			}
			if u == nil {
				logger.Info("no saved session, waiting for login")
			}

			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// No request may begin a session once Shutdown has run.
			events.Close()
			srv.Stop(ctx)
			svc.Shutdown()
			logger.Info("daemon stopped")
			return nil
		},
	})
}
