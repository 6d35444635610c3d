package content

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is a response language the provider can produce
type Language string

const (
	Korean  Language = "ko"
	English Language = "en"
)

// supported is ordered so that index 0 is the fallback of the matcher
var supported = []Language{Korean, English}

var matcher = language.NewMatcher([]language.Tag{language.Korean, language.English})

// ParseLanguage returns the configured language, Korean when unknown
func ParseLanguage(s string) Language {
	for _, l := range supported {
		if string(l) == s {
			return l
		}
	}
	return Korean
}

// MatchLanguage picks the best supported language for an Accept-Language header.
// An empty header yields def.
func MatchLanguage(acceptLanguage string, def Language) Language {
	if acceptLanguage == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return def
	}
	return supported[index]
}

// calorieMessage rewrites a plan description against the daily target
func calorieMessage(lang Language, consumed, target int) string {
	remaining := target - consumed
	if lang == English {
		if remaining > 0 {
			return fmt.Sprintf("You have already eaten %dkcal today. This plan fits the remaining %dkcal toward your goal.", consumed, remaining)
		}
		return fmt.Sprintf("You are over today's calorie target (%dkcal). For the rest of the day, stick to water and vegetable-based meals.", target)
	}
	if remaining > 0 {
		return fmt.Sprintf("오늘 이미 %dkcal를 섭취하셨군요. 목표 달성을 위해 남은 %dkcal 내에서 섭취할 수 있는 최적의 식단을 구성했습니다.", consumed, remaining)
	}
	return fmt.Sprintf("오늘 목표 칼로리(%dkcal)를 초과했습니다. 남은 시간은 가벼운 수분 섭취와 채소 위주의 식단을 권장합니다.", target)
}
