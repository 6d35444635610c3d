package dashboard

import (
	"context"

	"github.com/holyfit/holyfit-api/pkg/models"
)

// TierSource resolves the subscription tier of a session
type TierSource interface {
	CurrentTier(ctx context.Context, sessionID string) (models.SubscriptionTier, error)
}

// Service builds the read-only home screen
type Service struct {
	tiers TierSource
}

// NewService creates a dashboard service
func NewService(tiers TierSource) *Service {
	return &Service{tiers: tiers}
}

// Snapshot returns the dashboard of a session
func (s *Service) Snapshot(ctx context.Context, sessionID string) (*models.DashboardSnapshot, error) {
	tier, err := s.tiers.CurrentTier(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSnapshot{
		Greeting: "안녕하세요, 철수님! 👋",
		Subtitle: "오늘의 목표 달성까지 조금만 더 힘내세요.",
		Plan:     tier.Name,
		Stats: []models.DashboardStat{
			{ID: "calories", Label: "섭취 칼로리", Value: "1,250", Unit: "kcal"},
			{ID: "protein", Label: "단백질", Value: "85", Unit: "g"},
			{ID: "workoutCount", Label: "이번주 운동", Value: "3", Unit: "회"},
			{ID: "weight", Label: "현재 체중", Value: "72.5", Unit: "kg"},
		},
		Cards: []models.DashboardCard{
			{View: "workout", Title: "한계를 넘어설 준비가 되셨나요?", Description: "AI 코치가 당신의 컨디션을 분석하여 가장 효과적인 인터벌 트레이닝 세션을 준비했습니다."},
			{View: "diet", Title: "식단 가이드", Description: "오늘 먹은 칼로리를 입력하고, 남은 하루를 위한 최적의 식단을 추천받으세요."},
			{View: "subscription", Title: "구독 관리", Description: "프로 버전으로 업그레이드하고 무제한 AI 코칭과 상세 리포트를 받아보세요."},
		},
	}, nil
}
