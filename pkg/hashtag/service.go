// Package hashtag turns trip descriptions into shareable hashtags and keeps
// the description/hashtag pair around as context for later recommendations.
package hashtag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/curation"
)

const maxPageBytes = 1 << 20

var defaultHashtags = []string{"#여행스타그램", "#여행에미치다", "#여기어디", "#인생샷", "#추억저장"}

const hashtagSystemPrompt = `당신은 SNS 해시태그 전문가입니다.
사용자의 여행 설명을 보고 재밌고 트렌디한 해시태그 5개를 생성합니다.
반드시 JSON 배열 형식으로만 응답하세요.
예시: ["#강릉여행", "#바다스타그램", "#커피는사랑", "#여기어디게", "#인생뷰"]`

type Svc struct {
	llm   curation.Client
	db    *gorm.DB
	httpc *http.Client
	log   zerolog.Logger
}

func New(llm curation.Client, db *gorm.DB, log zerolog.Logger) *Svc {
	return &Svc{
		llm:   llm,
		db:    db,
		httpc: &http.Client{Timeout: 20 * time.Second},
		log:   log.With().Str("component", "hashtag").Logger(),
	}
}

// Generate asks the LLM for five hashtags and persists the context. The LLM
// is best-effort: any failure falls back to the default tags.
func (s *Svc) Generate(ctx context.Context, description, sourceURL string) (*entities.HashtagContext, error) {
	tags := defaultHashtags
	prompt := fmt.Sprintf("다음 여행 설명에 어울리는 해시태그 5개를 만들어주세요:\n\n%s", description)
	if raw, err := s.llm.Generate(ctx, hashtagSystemPrompt, prompt); err != nil {
		s.log.Warn().Err(err).Msg("hashtag generation failed, using defaults")
	} else if parsed := extractJSONArray(raw); len(parsed) > 0 {
		tags = parsed
	}

	hc := &entities.HashtagContext{
		ID:          uuid.NewString()[:8],
		Description: description,
		Hashtags:    tags,
		SourceURL:   sourceURL,
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(hc).Error; err != nil {
		return nil, errors.Wrap(err, "save hashtag context")
	}
	return hc, nil
}

// GenerateFromURL fetches a page, extracts its readable text, and feeds that
// to Generate.
func (s *Svc) GenerateFromURL(ctx context.Context, pageURL string) (*entities.HashtagContext, error) {
	text, err := s.fetchMainText(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if len(text) > 2000 {
		text = text[:2000]
	}
	return s.Generate(ctx, text, pageURL)
}

func (s *Svc) Context(id string) (*entities.HashtagContext, error) {
	var hc entities.HashtagContext
	if err := s.db.Where("id = ?", id).First(&hc).Error; err != nil {
		return nil, err
	}
	return &hc, nil
}

func (s *Svc) fetchMainText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		return string(b), nil
	}
	if !strings.Contains(ct, "text/html") {
		return "", fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return "", errors.New("no readable text on page")
	}
	return strings.Join(parts, "\n"), nil
}

// extractJSONArray pulls the first JSON string array out of an LLM reply,
// tolerating prose around it. Returns nil when nothing parses.
func extractJSONArray(raw string) []string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &tags); err != nil {
		return nil
	}
	out := tags[:0]
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
