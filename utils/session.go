package utils

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func init() {
	// Flash messages are stored as []interface{} inside the cookie store's
	// gob-encoded session map.
	gob.Register([]interface{}{})
}

// PrincipalKind tags which kind of account a session belongs to
type PrincipalKind string

const (
	// PrincipalStudent marks a session owned by a student account
	PrincipalStudent PrincipalKind = "student"
	// PrincipalDepartment marks a session owned by a department admin account
	PrincipalDepartment PrincipalKind = "department"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUserType = "user_type"
	sessionKeyCaptcha  = "captcha_text"
)

// SetPrincipal establishes a fresh authenticated session for the given
// principal. Any prior session state is discarded first.
func SetPrincipal(c *gin.Context, id uint, kind PrincipalKind) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionKeyUserID, id)
	session.Set(sessionKeyUserType, string(kind))
	return session.Save()
}

// GetPrincipal returns the authenticated principal carried by the session,
// if any
func GetPrincipal(c *gin.Context) (uint, PrincipalKind, bool) {
	session := sessions.Default(c)
	rawID := session.Get(sessionKeyUserID)
	rawKind := session.Get(sessionKeyUserType)
	if rawID == nil || rawKind == nil {
		return 0, "", false
	}
	id, ok := rawID.(uint)
	if !ok {
		return 0, "", false
	}
	kind, ok := rawKind.(string)
	if !ok {
		return 0, "", false
	}
	switch PrincipalKind(kind) {
	case PrincipalStudent, PrincipalDepartment:
		return id, PrincipalKind(kind), true
	}
	return 0, "", false
}

// ClearSession removes all session state, logging the principal out
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// SetCaptchaText stores the pending challenge answer in the session
func SetCaptchaText(c *gin.Context, text string) error {
	session := sessions.Default(c)
	session.Set(sessionKeyCaptcha, text)
	return session.Save()
}

// GetCaptchaText returns the pending challenge answer, or "" when no
// challenge has been issued for this session
func GetCaptchaText(c *gin.Context) string {
	session := sessions.Default(c)
	if text, ok := session.Get(sessionKeyCaptcha).(string); ok {
		return text
	}
	return ""
}

// Flash queues a one-shot message for the next page load
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		LogError("Failed to save flash message: %v", err)
	}
}

// Flashes drains and returns the queued flash messages
func Flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			LogError("Failed to clear flash messages: %v", err)
		}
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
