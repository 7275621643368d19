package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/notifystream/pkg/broadcast"
	"github.com/dmitrymomot/notifystream/pkg/httpserver"
	"github.com/dmitrymomot/notifystream/pkg/inbox"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/notifier"
)

// ErrNotConnected is reported by the readiness probe.
var ErrNotConnected = errors.New("api: notification stream not connected")

// Source is the notification client served by the API.
type Source interface {
	Snapshot() inbox.Snapshot
	MarkAsRead(id string)
	MarkAllAsRead()
	ClearNotifications()
	CanConnect() bool
	State() notifier.State
	Subscribe(ctx context.Context) broadcast.Subscriber[inbox.Snapshot]
}

// View is the JSON body of GET /notifications and the feed's signal set.
type View struct {
	Notifications []inbox.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unreadCount"`
	CanConnect    bool                 `json:"canConnect"`
	State         notifier.State       `json:"state"`
}

// Option configures the router.
type Option func(*handler)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithReadinessChecks adds probes to /health/ready, such as a Redis ping.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(h *handler) {
		h.checks = append(h.checks, checks...)
	}
}

type handler struct {
	src    Source
	logger *slog.Logger
	checks []func(context.Context) error
}

// NewRouter builds the HTTP handler.
func NewRouter(src Source, opts ...Option) http.Handler {
	h := &handler{src: src, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	ready := append([]func(context.Context) error{h.connected}, h.checks...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(h.logger))
	r.Get("/health/ready", httpserver.HealthCheckHandler(h.logger, ready...))

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.list)
		r.Delete("/", h.clear)
		r.Post("/read", h.markAllRead)
		r.Post("/{id}/read", h.markRead)
		r.Get("/feed", h.feed)
	})
	return r
}

func (h *handler) view(s inbox.Snapshot) View {
	if s.Notifications == nil {
		s.Notifications = []inbox.Notification{}
	}
	return View{
		Notifications: s.Notifications,
		UnreadCount:   s.UnreadCount,
		CanConnect:    h.src.CanConnect(),
		State:         h.src.State(),
	}
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.view(h.src.Snapshot())); err != nil {
		h.logger.ErrorContext(r.Context(), "encode notifications",
			logger.Component("api"),
			logger.Error(err),
		)
	}
}

func (h *handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	h.src.MarkAllAsRead()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) markRead(w http.ResponseWriter, r *http.Request) {
	h.src.MarkAsRead(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) clear(w http.ResponseWriter, r *http.Request) {
	h.src.ClearNotifications()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sub := h.src.Subscribe(ctx)
	defer sub.Close()

	sse := datastar.NewSSE(w, r)

	if err := h.patch(sse, h.src.Snapshot()); err != nil {
		return
	}

	updates := sub.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}
			if err := h.patch(sse, msg.Data); err != nil {
				h.logger.DebugContext(ctx, "notification feed closed",
					logger.Component("api"),
					logger.Error(err),
				)
				return
			}
		}
	}
}

func (h *handler) patch(sse *datastar.ServerSentEventGenerator, s inbox.Snapshot) error {
	data, err := json.Marshal(h.view(s))
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}

func (h *handler) connected(context.Context) error {
	if h.src.State() != notifier.StateConnected {
		return ErrNotConnected
	}
	return nil
}
