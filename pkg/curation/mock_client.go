package curation

import (
	"context"

	"mannam/entities"
)

type mockClient struct{}

// NewMock is the fallback when no LLM endpoint is configured: canned spots,
// no course, so the search+merge path still runs end to end.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Curate(ctx context.Context, query, areaCode, sigunguCode string) (*Result, error) {
	return &Result{
		Success: true,
		Spots: []entities.Spot{
			{Name: "경포해변", Address: "강원특별자치도 강릉시 창해로 514", Category: "관광지"},
			{Name: "안목해변 커피거리", Address: "강원특별자치도 강릉시 창해로14번길", Category: "관광지"},
		},
		Message: "추천 결과 (mock)",
	}, nil
}

func (m *mockClient) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	return `["#여행스타그램", "#여행에미치다", "#여기어디", "#인생샷", "#추억저장"]`, nil
}
