package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	"pantry/internal/domain/lifecycle"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// connectivityService implements the ConnectivityUsecase interface. It keeps
// a small state machine (uninitialized -> checking -> ready | error) and
// reacts to session events: a sign-in triggers a fresh probe, a sign-out
// settles the machine in ready with the connection flag cleared.
type connectivityService struct {
	probe        service.ConnectivityProbe
	subscription service.Subscription
	logger       *slog.Logger

	mu       sync.Mutex
	state    entity.ConnectivityState
	checking bool
	// pendingSignOut records a sign-out that arrived while a probe was in
	// flight. The probe result must not overwrite the signed-out settle.
	pendingSignOut bool
}

// ConnectivityServiceParams holds dependencies for ConnectivityService, injected by Fx.
type ConnectivityServiceParams struct {
	fx.In
	fx.Lifecycle

	Probe    service.ConnectivityProbe
	EventBus service.SessionEventBus
	Logger   *slog.Logger
}

// NewConnectivityService is the constructor for connectivityService. The
// machine starts uninitialized; the first Check moves it forward. The session
// event subscription is cancelled on shutdown.
func NewConnectivityService(params ConnectivityServiceParams) usecase.ConnectivityUsecase {
	svc := &connectivityService{
		probe:  params.Probe,
		logger: params.Logger,
		state: entity.ConnectivityState{
			Phase: entity.ConnectivityUninitialized,
		},
	}
	svc.subscription = params.EventBus.Subscribe(svc.onSessionEvent)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return svc.Close()
		},
	})

	return svc
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (svc *connectivityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, svc.logger)
}

// Check probes the backend and updates the state. When a probe is already
// in flight the call returns the checking snapshot instead of stacking a
// second probe.
func (svc *connectivityService) Check(ctx context.Context) entity.ConnectivityState {
	svc.mu.Lock()
	if svc.checking {
		snapshot := svc.state
		svc.mu.Unlock()

		return snapshot
	}
	svc.checking = true
	svc.pendingSignOut = false
	svc.state = entity.ConnectivityState{Phase: entity.ConnectivityChecking}
	svc.mu.Unlock()

	next := svc.runProbe(ctx)

	svc.mu.Lock()
	svc.checking = false
	if svc.pendingSignOut {
		svc.pendingSignOut = false
		next = entity.ConnectivityState{Phase: entity.ConnectivityReady}
	}
	svc.state = next
	svc.mu.Unlock()

	return next
}

// Reconnect forces a fresh probe after a failure.
func (svc *connectivityService) Reconnect(ctx context.Context) entity.ConnectivityState {
	svc.log(ctx).Info("Reconnecting to backend")

	return svc.Check(ctx)
}

// State returns a snapshot of the connectivity machine without probing.
func (svc *connectivityService) State() entity.ConnectivityState {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	return svc.state
}

// Close detaches the session event subscription.
func (svc *connectivityService) Close() error {
	if svc.subscription != nil {
		svc.subscription.Cancel()
	}

	return nil
}

// runProbe performs one probe and maps its outcome onto the state machine.
// A missing configuration is terminal (error phase) until the deployment is
// fixed; an ordinary failed round-trip lands in ready with the connection
// flag cleared, which Reconnect can retry.
func (svc *connectivityService) runProbe(ctx context.Context) entity.ConnectivityState {
	if svc.probe == nil {
		return entity.ConnectivityState{
			Phase: entity.ConnectivityError,
			Err:   service.ErrProbeNotConfigured.Error(),
		}
	}

	if err := svc.probe.Ping(ctx); err != nil {
		if errors.Is(err, service.ErrProbeNotConfigured) {
			svc.log(ctx).Error("Backend is not configured", slog.Any("error", err))

			return entity.ConnectivityState{
				Phase: entity.ConnectivityError,
				Err:   err.Error(),
			}
		}

		svc.log(ctx).Warn("Backend is unreachable", slog.Any("error", err))

		return entity.ConnectivityState{
			Phase: entity.ConnectivityReady,
			Err:   err.Error(),
		}
	}

	return entity.ConnectivityState{
		Phase:     entity.ConnectivityReady,
		Connected: true,
	}
}

// onSessionEvent reacts to authentication boundaries. Sign-in re-validates
// reachability with the fresh credentials in play; sign-out settles the
// machine without probing, since nothing is reachable on behalf of an
// anonymous session.
func (svc *connectivityService) onSessionEvent(payload *service.SessionEventPayload) {
	switch payload.Event {
	case entity.SessionEventSignedIn:
		// The bus dispatch goroutine must not block on a probe round-trip.
		go func() {
			probeCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancel()

			svc.Check(probeCtx)
		}()
	case entity.SessionEventSignedOut:
		svc.mu.Lock()
		if svc.checking {
			// An in-flight probe would overwrite the settle; defer it
			// until the probe resolves.
			svc.pendingSignOut = true
		} else {
			svc.state = entity.ConnectivityState{Phase: entity.ConnectivityReady}
		}
		svc.mu.Unlock()
	}
}
