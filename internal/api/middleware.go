package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"acronymer/internal/i18n"
)

const (
	// LangParam is the query parameter used to select a language
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference
	LangCookieName = "acronymer_lang"
)

type (
	languageKey struct{}
	localeKey   struct{}
)

// LanguageFromContext returns the language chosen for the request
func LanguageFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(languageKey{}).(language.Tag)
	return tag, ok
}

// LocaleFromContext returns the locale the client asked for before it
// was matched to a catalog, e.g. en-GB where the language is en
func LocaleFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeKey{}).(language.Tag)
	return tag, ok
}

// RequestedLocale returns the first well-formed locale from the lang
// query parameter, the cookie or Accept-Language, unmatched
func RequestedLocale(r *http.Request) (language.Tag, bool) {
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, err := language.Parse(cookie.Value); err == nil {
			return tag, true
		}
	}

	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
		return tags[0], true
	}

	return language.Und, false
}

// ResolveLanguage picks the request language from the lang query
// parameter, then the cookie, then Accept-Language. The bool reports
// whether the query parameter chose it.
func ResolveLanguage(tr *i18n.Translator, r *http.Request) (language.Tag, bool) {
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := tr.ParseLanguage(v); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := tr.ParseLanguage(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return tr.Match(tags...), false
		}
	}

	return tr.DefaultLanguage(), false
}

// Language stores the resolved language in the request context and
// persists an explicit choice as a cookie
func Language(tr *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, persist := ResolveLanguage(tr, r)
			if persist {
				http.SetCookie(w, &http.Cookie{
					Name:     LangCookieName,
					Value:    tag.String(),
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					SameSite: http.SameSiteLaxMode,
				})
			}
			locale, ok := RequestedLocale(r)
			if !ok {
				locale = tag
			}
			w.Header().Set("Content-Language", tag.String())
			ctx := context.WithValue(r.Context(), languageKey{}, tag)
			ctx = context.WithValue(ctx, localeKey{}, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger logs every request with zap
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			)
		})
	}
}
