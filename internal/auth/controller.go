package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/metodo21/app-client/internal/logging"
	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/observability"
	"go.uber.org/zap"
)

// SessionAPI is the slice of the API client the controller needs.
type SessionAPI interface {
	ProcessSession(ctx context.Context, sessionID string) (*models.SessionData, error)
	GetMe(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// TokenStore persists the durable session token across restarts.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Options carries the endpoints the login flow needs.
type Options struct {
	AuthURL string
	AppURL  string
}

// Controller owns the session lifecycle: restoring a persisted token on
// startup, exchanging one-time session ids from login redirects, and
// tearing the session down on logout. All state lives behind one mutex.
type Controller struct {
	mu         sync.Mutex
	state      State
	user       *models.User
	exchanging bool

	store    TokenStore
	api      SessionAPI
	strategy RedirectStrategy
	opts     Options
	logger   *logging.SafeLogger
}

// NewController builds a controller in the Initializing state.
func NewController(store TokenStore, api SessionAPI, strategy RedirectStrategy, opts Options, logger *logging.SafeLogger) *Controller {
	return &Controller{
		state:    StateInitializing,
		store:    store,
		api:      api,
		strategy: strategy,
		opts:     opts,
		logger:   logger,
	}
}

// Initialize resolves the startup state. A session artifact in initialURL
// takes priority and triggers the exchange; otherwise a stored token is
// validated against the server, and a rejected token is cleared so the
// next startup does not retry it.
func (c *Controller) Initialize(ctx context.Context, initialURL string) error {
	if sessionID := ExtractSessionID(initialURL); sessionID != "" {
		return c.exchange(ctx, sessionID, initialURL)
	}

	token, err := c.store.Load()
	if err != nil {
		c.setState(StateUnauthenticated, nil)
		return fmt.Errorf("failed to load stored token: %w", err)
	}

	if token == "" {
		c.logger.Debug("no stored session token")
		c.setState(StateUnauthenticated, nil)
		return nil
	}

	user, err := c.api.GetMe(ctx)
	if err != nil {
		c.logger.Warn("stored token rejected, clearing", zap.Error(err))
		if clearErr := c.store.Clear(); clearErr != nil {
			c.logger.Error("failed to clear rejected token", zap.Error(clearErr))
		}
		c.setState(StateUnauthenticated, nil)
		return nil
	}

	c.logger.Info("session restored from stored token",
		zap.String("user_id", user.UserID))
	c.setState(StateAuthenticated, user)
	return nil
}

// HandleRedirect consumes a login redirect. URLs without a session id are
// ignored, and a redirect arriving while an exchange is already running
// is dropped so the one-time id is never spent twice.
func (c *Controller) HandleRedirect(ctx context.Context, rawURL string) error {
	sessionID := ExtractSessionID(rawURL)
	if sessionID == "" {
		return nil
	}
	return c.exchange(ctx, sessionID, rawURL)
}

// exchange runs the session exchange: one network call, token persisted
// before it is ever presented as a credential, then the artifact stripped
// from the visible location.
func (c *Controller) exchange(ctx context.Context, sessionID, rawURL string) error {
	c.mu.Lock()
	if c.exchanging {
		c.mu.Unlock()
		c.logger.Debug("duplicate redirect ignored, exchange already in flight")
		return nil
	}
	c.exchanging = true
	c.state = StateExchangingSession
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.exchanging = false
		c.mu.Unlock()
	}()

	c.logger.Info("exchanging session id for token")

	data, err := c.api.ProcessSession(ctx, sessionID)
	if err != nil {
		c.logger.Warn("session exchange failed", zap.Error(err))
		c.setState(StateUnauthenticated, nil)
		return err
	}

	// The token must survive a restart before anything depends on it.
	if err := c.store.Save(data.SessionToken); err != nil {
		c.logger.Error("failed to persist session token", zap.Error(err))
		c.setState(StateUnauthenticated, nil)
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	c.logger.Info("session established",
		zap.String("user_id", data.User.UserID),
		zap.String("token", observability.MaskToken(data.SessionToken)))

	user := data.User
	c.setState(StateAuthenticated, &user)
	c.strategy.StripArtifact(rawURL)
	return nil
}

// Login starts the login flow. When the strategy resolves the callback
// synchronously the exchange runs before Login returns.
func (c *Controller) Login(ctx context.Context) error {
	c.mu.Lock()
	if c.exchanging {
		c.mu.Unlock()
		return models.ErrExchangeInFlight
	}
	c.mu.Unlock()

	callbackURL, err := c.strategy.Begin(ctx, c.opts.AuthURL, c.opts.AppURL)
	if err != nil {
		return fmt.Errorf("login flow failed: %w", err)
	}
	if callbackURL == "" {
		return nil
	}
	return c.HandleRedirect(ctx, callbackURL)
}

// Logout invalidates the session server-side on a best-effort basis and
// always clears local state, so a dead server cannot trap the user in a
// session.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.api.Logout(ctx); err != nil {
		c.logger.Warn("server-side logout failed, clearing locally anyway", zap.Error(err))
	}

	if err := c.store.Clear(); err != nil {
		c.setState(StateUnauthenticated, nil)
		return fmt.Errorf("failed to clear stored token: %w", err)
	}

	c.logger.Info("logged out")
	c.setState(StateUnauthenticated, nil)
	return nil
}

// CurrentUser returns the authenticated user, or nil.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(state State, user *models.User) {
	c.mu.Lock()
	prev := c.state
	c.state = state
	c.user = user
	c.mu.Unlock()

	if prev != state {
		c.logger.Debug("auth state changed",
			zap.String("from", prev.String()),
			zap.String("to", state.String()))
	}
}
