package billing

import "github.com/holyfit/holyfit-api/pkg/models"

// Tier identifiers
const (
	TierBasic = "basic"
	TierPro   = "pro"
	TierElite = "elite"
)

// DefaultTier is the tier of a session that never upgraded
const DefaultTier = TierBasic

var tierCatalog = []models.SubscriptionTier{
	{
		ID:       TierBasic,
		Name:     "무료",
		Price:    "₩0",
		Features: []string{"기본 식단 가이드", "운동 영상 3개", "커뮤니티 접근"},
	},
	{
		ID:          TierPro,
		Name:        "프로",
		Price:       "₩9,900",
		Features:    []string{"AI 식단 플래너", "AI 운동 생성기", "진척도 추적", "광고 제거"},
		Recommended: true,
	},
	{
		ID:       TierElite,
		Name:     "엘리트",
		Price:    "₩19,900",
		Features: []string{"프로 기능 전체 포함", "1:1 코칭", "라이브 클래스", "우선 지원 서비스"},
	},
}

// Tiers returns the tier catalog in display order
func Tiers() []models.SubscriptionTier {
	out := make([]models.SubscriptionTier, len(tierCatalog))
	for i, t := range tierCatalog {
		out[i] = t.Clone()
	}
	return out
}

// LookupTier returns the catalog entry for id
func LookupTier(id string) (models.SubscriptionTier, bool) {
	for _, t := range tierCatalog {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.SubscriptionTier{}, false
}
