package services

import (
	"context"
	"fmt"
	"regexp"
	"smorgas_server/database"
	"smorgas_server/lib"
	"smorgas_server/structs"
	"smorgas_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// Usernames are short display handles typed on a touch screen, letters only
// (Spanish accents included).
var usernamePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ]{1,10}$`)

const (
	minPasswordLen = 1
	maxPasswordLen = 50
)

// AuthService handles credentials and the single-active-session lifecycle.
// Each user holds at most one live session token; logging in while a live
// token exists is rejected rather than silently displacing the other device.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			lib.ErrValidation, minPasswordLen, maxPasswordLen)
	}
	return nil
}

// Register creates a new user account. Unknown roles fall back to waiter.
func (as *AuthService) Register(ctx context.Context, req *structs.RegisterRequest) (*tables.User, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, fmt.Errorf("%w: username must be 1-10 letters", lib.ErrValidation)
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role != tables.RoleAdmin && role != tables.RoleWaiter {
		role = tables.RoleWaiter
	}

	hash, err := lib.HashPassword(req.Password, lib.DefaultArgonParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}

	user, err = database.Query[tables.User](as.db).Insert(ctx, user)
	if err != nil {
		mapped := lib.MapPgError(err)
		if lib.IsUniqueViolation(err) {
			as.logger.Warn("Registration rejected, username taken", gecho.Field("username", req.Username))
			return nil, fmt.Errorf("%w: username already taken", lib.ErrConflict)
		}
		as.logger.Error("Failed to create user", gecho.Field("error", err))
		return nil, mapped
	}

	user.PasswordHash = ""
	as.logger.Info("User registered",
		gecho.Field("username", user.Username),
		gecho.Field("role", user.Role))
	return user, nil
}

// Login verifies credentials and opens a session. A still-live session on the
// account makes the attempt fail with ErrSessionActive; stale leftovers are
// overwritten.
func (as *AuthService) Login(ctx context.Context, req *structs.AuthRequest) (*tables.User, string, error) {
	user, err := database.Query[tables.User](as.db).
		Where("username", req.Username).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up user", gecho.Field("error", err))
		return nil, "", err
	}
	if user == nil {
		return nil, "", lib.ErrInvalidCredentials
	}

	valid, err := lib.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		as.logger.Warn("Failed login attempt", gecho.Field("username", req.Username))
		return nil, "", lib.ErrInvalidCredentials
	}

	now := time.Now()
	if user.SessionToken != nil && SessionActive(user.SessionExpiresAt, user.LastSeenAt, now, as.cfg.Session.TTL) {
		as.logger.Warn("Login rejected, session already active", gecho.Field("username", req.Username))
		return nil, "", lib.ErrSessionActive
	}

	token, err := lib.GenerateSessionToken()
	if err != nil {
		as.logger.Error("Failed to generate session token", gecho.Field("error", err))
		return nil, "", err
	}

	expires := now.Add(as.cfg.Session.TTL)
	_, err = database.Query[tables.User](as.db).
		Where("id", user.Id).
		Update(ctx, map[string]any{
			"session_token":      token,
			"session_expires_at": expires,
			"last_seen_at":       now,
		})
	if err != nil {
		as.logger.Error("Failed to open session", gecho.Field("error", err))
		return nil, "", err
	}

	user.SessionToken = &token
	user.SessionExpiresAt = &expires
	user.LastSeenAt = &now
	user.PasswordHash = ""

	as.logger.Info("User logged in", gecho.Field("username", user.Username))
	return user, token, nil
}

// ValidateSession resolves a presented token to its user and, when the
// session is live, slides the expiry forward as a heartbeat. Dead sessions
// are cleared server-side so the account is immediately free again.
func (as *AuthService) ValidateSession(ctx context.Context, token string) (*tables.User, error) {
	if token == "" {
		return nil, lib.ErrSessionInvalid
	}

	user, err := database.Query[tables.User](as.db).
		Where("session_token", token).
		First(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, lib.ErrSessionInvalid
	}

	now := time.Now()
	if !SessionActive(user.SessionExpiresAt, user.LastSeenAt, now, as.cfg.Session.TTL) {
		as.clearSession(ctx, user.Id, token)
		return nil, lib.ErrSessionInvalid
	}

	// Heartbeat. The token guard ensures a session replaced between the read
	// above and this write is never resurrected.
	expires := now.Add(as.cfg.Session.TTL)
	affected, err := database.Query[tables.User](as.db).
		Where("id", user.Id).
		WhereRaw("session_token = ?", token).
		Update(ctx, map[string]any{
			"session_expires_at": expires,
			"last_seen_at":       now,
		})
	if err != nil {
		as.logger.Warn("Failed to refresh session", gecho.Field("error", err))
		return nil, err
	}
	if affected == 0 {
		return nil, lib.ErrSessionInvalid
	}

	user.SessionExpiresAt = &expires
	user.LastSeenAt = &now
	user.PasswordHash = ""
	return user, nil
}

// Logout closes the session identified by token. Tokens that match nothing
// are a no-op, so logout is idempotent.
func (as *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	affected, err := database.Query[tables.User](as.db).
		WhereRaw("session_token = ?", token).
		Update(ctx, map[string]any{
			"session_token":      nil,
			"session_expires_at": nil,
			"last_seen_at":       time.Now(),
		})
	if err != nil {
		as.logger.Error("Failed to close session", gecho.Field("error", err))
		return err
	}
	if affected > 0 {
		as.logger.Info("Session closed")
	}
	return nil
}

func (as *AuthService) clearSession(ctx context.Context, userID uuid.UUID, token string) {
	_, err := database.Query[tables.User](as.db).
		Where("id", userID).
		WhereRaw("session_token = ?", token).
		Update(ctx, map[string]any{
			"session_token":      nil,
			"session_expires_at": nil,
		})
	if err != nil {
		as.logger.Warn("Failed to clear stale session", gecho.Field("error", err))
	}
}
