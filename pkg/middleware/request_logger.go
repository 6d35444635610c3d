package middleware

import (
	"net/url"

	"github.com/getsentry/sentry-go"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const redacted = "REDACTED"

// credentialParams are query parameters that carry bearer credentials
var credentialParams = []string{"token"}

// RedactQuery masks credential parameters in a raw query string
func RedactQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		// Unparseable queries are dropped rather than logged verbatim
		return redacted
	}
	changed := false
	for _, key := range credentialParams {
		if _, ok := values[key]; ok {
			values.Set(key, redacted)
			changed = true
		}
	}
	if !changed {
		return rawQuery
	}
	return values.Encode()
}

// RequestLogger logs one line per request. The query string is logged with
// credential parameters masked.
func RequestLogger(log logger.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURIPath: true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			uri := v.URIPath
			if query := RedactQuery(c.Request().URL.RawQuery); query != "" {
				uri += "?" + query
			}
			log.Info("request", "method", v.Method, "uri", uri, "status", v.Status, "latency", v.Latency.String())
			return nil
		},
	})
}

// ScrubSentryEvent masks credential parameters before an event leaves the process
func ScrubSentryEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event != nil && event.Request != nil {
		event.Request.QueryString = RedactQuery(event.Request.QueryString)
	}
	return event
}
