package middleware

import "context"

// context keys are unexported to avoid collisions
type ctxKey string

const ctxKeyLang ctxKey = "lang"

// WithLang stores the negotiated language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// Lang returns the negotiated language, or fallback when none was stored.
func Lang(ctx context.Context, fallback string) string {
	if v, ok := ctx.Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	return fallback
}
