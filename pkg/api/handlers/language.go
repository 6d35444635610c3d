package handlers

import (
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/labstack/echo/v4"
)

// requestLanguage resolves the response language: ?lang= wins over Accept-Language
func requestLanguage(c echo.Context, def content.Language) content.Language {
	if lang := c.QueryParam("lang"); lang != "" {
		return content.MatchLanguage(lang, def)
	}
	return content.MatchLanguage(c.Request().Header.Get("Accept-Language"), def)
}
