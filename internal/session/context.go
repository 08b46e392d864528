package session

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const sessionKey contextKey = "session"

// CurrentId retrieves the session id from the context. Returns ErrNoSession
// when the request carried no session.
func CurrentId(ctx context.Context) (string, error) {
	id, ok := ctx.Value(sessionKey).(string)
	if !ok || id == "" {
		log.Trace("session not found in context")
		return "", ErrNoSession
	}
	return id, nil
}

func WithId(ctx context.Context, sessionId string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionId)
}
