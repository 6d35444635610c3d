package middleware

import (
	"github.com/labstack/echo/v4"
)

// APIVersion represents the API version information
type APIVersion struct {
	Version       string
	LatestVersion string
	SunsetDate    string // Empty unless Version is being retired
}

// CurrentAPIVersion holds the current API version info
var CurrentAPIVersion = APIVersion{
	Version:       "1.0.0",
	LatestVersion: "1.0.0",
}

// Deprecated reports whether clients should move to LatestVersion
func (v APIVersion) Deprecated() bool {
	return v.SunsetDate != "" || (v.LatestVersion != "" && v.LatestVersion != v.Version)
}

// APIVersionMiddleware adds API version headers to all responses
func APIVersionMiddleware(version APIVersion) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", version.Version)
			h.Set("X-API-Latest-Version", version.LatestVersion)

			if version.Deprecated() {
				h.Set("Deprecation", "true")
				if version.SunsetDate != "" {
					h.Set("Sunset", version.SunsetDate)
				}
			}

			return next(c)
		}
	}
}

// VersionInfo returns version information for the health endpoint
func VersionInfo(version APIVersion) map[string]interface{} {
	info := map[string]interface{}{
		"version":        version.Version,
		"latest_version": version.LatestVersion,
	}

	if version.Deprecated() {
		info["deprecated"] = true
		if version.SunsetDate != "" {
			info["sunset_date"] = version.SunsetDate
		}
	}

	return info
}
