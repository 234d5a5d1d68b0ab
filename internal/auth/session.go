package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

// Session keys holding the signed-in administrator.
const (
	SessionKeyUserID  = "user_id"
	SessionKeyName    = "name"
	SessionKeyIsAdmin = "is_admin"
)

// NewSessionManager creates the cookie session manager. A nil store keeps
// sessions in process memory.
func NewSessionManager(store scs.Store, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	if store != nil {
		sm.Store = store
	}

	sm.Lifetime = lifetime
	sm.Cookie.Name = "hugely_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure

	return sm
}

// StartSession stores the identity in a fresh session.
func StartSession(ctx context.Context, sm *scs.SessionManager, id Identity) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, SessionKeyUserID, int(id.UserID))
	sm.Put(ctx, SessionKeyName, id.Name)
	sm.Put(ctx, SessionKeyIsAdmin, id.IsAdmin)
	return nil
}

// EndSession clears the identity keys. It never fails.
func EndSession(ctx context.Context, sm *scs.SessionManager) {
	sm.Remove(ctx, SessionKeyUserID)
	sm.Remove(ctx, SessionKeyName)
	sm.Remove(ctx, SessionKeyIsAdmin)
}

// SessionIdentity returns the administrator stored in the session, if any.
func SessionIdentity(ctx context.Context, sm *scs.SessionManager) (Identity, bool) {
	if !sm.GetBool(ctx, SessionKeyIsAdmin) {
		return Identity{}, false
	}
	userID := sm.GetInt(ctx, SessionKeyUserID)
	if userID <= 0 {
		return Identity{}, false
	}
	return Identity{
		UserID:  uint(userID),
		Name:    sm.GetString(ctx, SessionKeyName),
		IsAdmin: true,
	}, true
}
