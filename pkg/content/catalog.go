package content

import "github.com/holyfit/holyfit-api/pkg/models"

// Catalog plan keys. Several goals share one plan.
const (
	planWeightLoss = "weight_loss"
	planMuscleGain = "muscle_gain"
	planBalanced   = "balanced"
)

// goalPlans maps goals onto catalog plans; anything absent gets planBalanced
var goalPlans = map[models.Goal]string{
	models.GoalWeightLoss: planWeightLoss,
	models.GoalKeto:       planWeightLoss,
	models.GoalMuscleGain: planMuscleGain,
}

var dietCatalog = map[string]*models.DietPlan{
	planWeightLoss: {
		Title:       "체중 감량을 위한 클린 식단",
		Description: "칼로리 밀도는 낮추고 포만감은 높인 식단입니다. 탄수화물을 줄이고 식이섬유 섭취를 늘려 체지방 연소를 돕습니다.",
		Meals: []models.Meal{
			{
				Name:        "아침: 그릭요거트 볼",
				Calories:    320,
				Protein:     "15g",
				Carbs:       "30g",
				Fat:         "10g",
				Ingredients: []string{"무가당 그릭요거트", "블루베리", "아몬드 슬라이스", "꿀 약간"},
			},
			{
				Name:        "점심: 닭가슴살 아보카도 샐러드",
				Calories:    450,
				Protein:     "35g",
				Carbs:       "20g",
				Fat:         "25g",
				Ingredients: []string{"닭가슴살", "아보카도 1/2개", "방울토마토", "믹스 채소", "올리브 오일 드레싱"},
			},
			{
				Name:        "저녁: 흰살 생선 구이와 구운 야채",
				Calories:    380,
				Protein:     "30g",
				Carbs:       "15g",
				Fat:         "12g",
				Ingredients: []string{"대구살 또는 가자미", "아스파라거스", "브로콜리", "레몬 즙"},
			},
		},
	},
	planMuscleGain: {
		Title:       "근성장을 위한 고단백 식단",
		Description: "근육 회복과 성장을 위해 충분한 단백질과 양질의 탄수화물을 공급하는 식단입니다.",
		Meals: []models.Meal{
			{
				Name:        "아침: 오트밀과 계란 흰자",
				Calories:    500,
				Protein:     "30g",
				Carbs:       "60g",
				Fat:         "10g",
				Ingredients: []string{"오트밀", "계란 흰자 3개", "바나나", "프로틴 파우더"},
			},
			{
				Name:        "점심: 소고기 부챗살 덮밥",
				Calories:    700,
				Protein:     "45g",
				Carbs:       "80g",
				Fat:         "20g",
				Ingredients: []string{"소고기 부챗살", "현미밥", "양파", "버섯", "스테이크 소스"},
			},
			{
				Name:        "저녁: 연어 스테이크와 고구마",
				Calories:    600,
				Protein:     "40g",
				Carbs:       "50g",
				Fat:         "25g",
				Ingredients: []string{"생연어", "고구마", "그린빈", "마늘"},
			},
		},
	},
	planBalanced: {
		Title:       "활력 넘치는 하루를 위한 밸런스 식단",
		Description: "탄수화물, 단백질, 지방의 균형을 완벽하게 맞춘 건강한 하루 식단입니다. 꾸준히 실천하면 컨디션이 좋아집니다.",
		Meals: []models.Meal{
			{
				Name:        "아침: 통밀 토스트와 스크램블 에그",
				Calories:    400,
				Protein:     "20g",
				Carbs:       "40g",
				Fat:         "15g",
				Ingredients: []string{"통밀 식빵 2장", "계란 2개", "우유", "사과 1/2개"},
			},
			{
				Name:        "점심: 비빔밥 (저염식)",
				Calories:    550,
				Protein:     "20g",
				Carbs:       "70g",
				Fat:         "15g",
				Ingredients: []string{"잡곡밥", "콩나물", "시금치", "당근", "소고기 볶음", "약고추장"},
			},
			{
				Name:        "저녁: 두부면 파스타",
				Calories:    350,
				Protein:     "25g",
				Carbs:       "10g",
				Fat:         "20g",
				Ingredients: []string{"두부면", "토마토 소스", "새우", "버섯", "파마산 치즈"},
			},
		},
	},
}

var workoutCatalog = map[models.Difficulty]*models.WorkoutRoutine{
	models.DifficultyBeginner: {
		Title:           "기초 체력 다지기 (전신)",
		Difficulty:      models.DifficultyBeginner,
		DurationMinutes: 30,
		Exercises: []models.Exercise{
			{Name: "맨몸 스쿼트", Sets: 3, Reps: "12-15회", Description: "허벅지와 엉덩이 근육을 사용하는 가장 기본적인 하체 운동입니다. 무릎이 발끝을 넘지 않도록 주의하세요."},
			{Name: "푸쉬업 (니 푸쉬업)", Sets: 3, Reps: "10-12회", Description: "가슴과 팔 근육을 발달시킵니다. 초보자는 무릎을 대고 진행해도 좋습니다."},
			{Name: "플랭크", Sets: 3, Reps: "30초", Description: "코어 근육을 강화하여 신체 안정성을 높여주는 버티기 운동입니다."},
			{Name: "제자리 런지", Sets: 3, Reps: "양쪽 10회", Description: "균형 감각과 하체 근력을 동시에 키워줍니다."},
		},
	},
	models.DifficultyIntermediate: {
		Title:           "체지방 태우기 & 라인 잡기",
		Difficulty:      models.DifficultyIntermediate,
		DurationMinutes: 45,
		Exercises: []models.Exercise{
			{Name: "덤벨 런지 & 프레스", Sets: 4, Reps: "12회", Description: "하체와 어깨를 동시에 자극하여 칼로리 소모를 극대화합니다."},
			{Name: "마운틴 클라이머", Sets: 4, Reps: "30초", Description: "빠르게 진행하여 심박수를 높이고 뱃살을 빼는데 효과적입니다."},
			{Name: "데드리프트 (덤벨/바벨)", Sets: 4, Reps: "10회", Description: "전신 후면 사슬을 강화하여 바른 자세를 만들어줍니다."},
			{Name: "바이시클 크런치", Sets: 3, Reps: "20회", Description: "복부 전체, 특히 옆구리를 자극하는 최고의 복근 운동입니다."},
		},
	},
	models.DifficultyAdvanced: {
		Title:           "엘리트 파워 트레이닝",
		Difficulty:      models.DifficultyAdvanced,
		DurationMinutes: 60,
		Exercises: []models.Exercise{
			{Name: "바벨 백 스쿼트", Sets: 5, Reps: "5-8회", Description: "고중량을 사용하여 하체 근력과 전체적인 파워를 폭발적으로 증가시킵니다."},
			{Name: "풀업 (턱걸이)", Sets: 4, Reps: "실패 지점까지", Description: "등 근육의 넓이와 두께를 동시에 키워주는 최고의 상체 운동입니다."},
			{Name: "벤치 프레스", Sets: 5, Reps: "8-10회", Description: "상체 미는 힘을 기르는 대표적인 3대 운동 중 하나입니다."},
			{Name: "행잉 레그 레이즈", Sets: 4, Reps: "15회", Description: "매달린 상태에서 다리를 들어올려 하복부를 강하게 자극합니다."},
			{Name: "버피 테스트", Sets: 3, Reps: "20회", Description: "마지막으로 심박수를 최대치로 끌어올리는 전신 유산소성 근력 운동입니다."},
		},
	},
}

// CatalogDietPlan returns a fresh copy of the catalog plan for goal
func CatalogDietPlan(goal models.Goal) *models.DietPlan {
	key, ok := goalPlans[goal]
	if !ok {
		key = planBalanced
	}
	return dietCatalog[key].Clone()
}

// CatalogWorkout returns a fresh copy of the catalog routine for level
func CatalogWorkout(level models.Difficulty) *models.WorkoutRoutine {
	routine, ok := workoutCatalog[level]
	if !ok {
		routine = workoutCatalog[models.DefaultDifficulty]
	}
	return routine.Clone()
}

// FallbackDietPlan is returned whenever diet generation fails
func FallbackDietPlan() *models.DietPlan {
	return dietCatalog[planBalanced].Clone()
}

// FallbackWorkout is returned whenever routine generation fails
func FallbackWorkout() *models.WorkoutRoutine {
	return workoutCatalog[models.DefaultDifficulty].Clone()
}
