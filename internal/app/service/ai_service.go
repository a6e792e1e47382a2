package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cafe120/cafe120-backend/config"
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/pkg/logger"
)

var (
	ErrMissingAPIKey       = errors.New("AI API key is not configured")
	ErrInvalidProvider     = errors.New("unknown AI provider")
	ErrInvalidConsultTopic = errors.New("unknown consult topic")
	ErrEmptyPrompt         = errors.New("prompt is required")
)

const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"

	openAIChatModel  = "gpt-4o-mini"
	openAIImageModel = "dall-e-3"
	geminiModel      = "gemini-2.0-flash"
)

// SNSInput SNS 홍보 문구 생성 입력
type SNSInput struct {
	StoreName string   `json:"store_name"`
	Product   string   `json:"product"`
	Tone      string   `json:"tone"`
	Keywords  []string `json:"keywords"`
}

type AIService interface {
	GenerateSNS(userID uint, input SNSInput) (string, error)
	Consult(userID uint, topic, question string) (string, error)
	GenerateImage(userID uint, prompt string) (string, error)
	Generate(userID uint, prompt string) (string, error)
	History(userID uint, historyType string) ([]model.AIHistory, error)
}

type aiService struct {
	configSvc   ConfigService
	historyRepo repository.AIHistoryRepository
	cfg         *config.AIConfig
	client      *http.Client
}

func NewAIService(
	configSvc ConfigService,
	historyRepo repository.AIHistoryRepository,
	cfg *config.AIConfig,
) AIService {
	return &aiService{
		configSvc:   configSvc,
		historyRepo: historyRepo,
		cfg:         cfg,
		client:      &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateSNS 매장 SNS 홍보 문구 생성
func (s *aiService) GenerateSNS(userID uint, input SNSInput) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(
		"당신은 카페 프랜차이즈의 SNS 마케팅 전문가입니다. " +
			"아래 정보를 바탕으로 인스타그램 홍보 문구를 작성하세요.\n\n")

	if input.StoreName != "" {
		prompt.WriteString(fmt.Sprintf("매장명: %s\n", input.StoreName))
	}
	if input.Product != "" {
		prompt.WriteString(fmt.Sprintf("홍보할 메뉴/상품: %s\n", input.Product))
	}
	if input.Tone != "" {
		prompt.WriteString(fmt.Sprintf("톤: %s\n", input.Tone))
	}
	if len(input.Keywords) > 0 {
		prompt.WriteString(fmt.Sprintf("키워드: %s\n", strings.Join(input.Keywords, ", ")))
	}

	prompt.WriteString("\n[작성 규칙]\n")
	prompt.WriteString("- 제공되지 않은 정보는 추측하지 마세요.\n")
	prompt.WriteString("- 2~3개의 짧은 문단과 해시태그 5개 내외로 구성하세요.\n")
	prompt.WriteString("- 설명이나 주석 없이 게시글 본문만 출력하세요.")

	output, err := s.generateText(prompt.String())
	if err != nil {
		return "", err
	}

	s.appendHistory(userID, model.AITypeSNS, prompt.String(), output)
	return output, nil
}

// Consult 세무/노무/법무 상담 답변 생성
func (s *aiService) Consult(userID uint, topic, question string) (string, error) {
	if question == "" {
		return "", ErrEmptyPrompt
	}

	var role string
	var historyType model.AIHistoryType
	switch topic {
	case "tax":
		role = "당신은 소규모 카페 가맹점을 전문으로 하는 세무사입니다."
		historyType = model.AITypeTax
	case "labor":
		role = "당신은 소규모 카페 가맹점을 전문으로 하는 노무사입니다."
		historyType = model.AITypeLabor
	case "legal":
		role = "당신은 프랜차이즈 가맹 계약을 전문으로 하는 변호사입니다."
		historyType = model.AITypeLegal
	default:
		return "", ErrInvalidConsultTopic
	}

	prompt := role + "\n가맹점주의 질문에 한국 기준으로 답변하세요. " +
		"일반적인 안내임을 밝히고, 구체적 사안은 전문가 상담을 권하세요.\n\n질문: " + question

	output, err := s.generateText(prompt)
	if err != nil {
		return "", err
	}

	s.appendHistory(userID, historyType, question, output)
	return output, nil
}

// GenerateImage 홍보 이미지 생성. 제공자에 따라 URL 또는 data URL을 돌려준다.
func (s *aiService) GenerateImage(userID uint, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	var (
		output string
		err    error
	)
	switch s.provider() {
	case ProviderOpenAI:
		output, err = s.callOpenAIImage(prompt)
	case ProviderGoogle:
		output, err = s.callGeminiImage(prompt)
	default:
		return "", ErrInvalidProvider
	}
	if err != nil {
		return "", err
	}

	s.appendHistory(userID, model.AITypeImage, prompt, output)
	return output, nil
}

// Generate 범용 텍스트 생성
func (s *aiService) Generate(userID uint, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	output, err := s.generateText(prompt)
	if err != nil {
		return "", err
	}

	s.appendHistory(userID, model.AITypeSNS, prompt, output)
	return output, nil
}

func (s *aiService) History(userID uint, historyType string) ([]model.AIHistory, error) {
	return s.historyRepo.FindByUser(userID, historyType)
}

// provider 설정 저장소 값이 우선, 없으면 환경 설정의 기본값
func (s *aiService) provider() string {
	if p, ok := s.configSvc.Lookup(model.ConfigKeyAIProvider); ok && p != "" {
		return p
	}
	if s.cfg.DefaultProvider != "" {
		return s.cfg.DefaultProvider
	}
	return ProviderGoogle
}

// openAIKey 설정 저장소 → 환경 변수 순서로 키를 찾는다
func (s *aiService) openAIKey() string {
	if key, ok := s.configSvc.Lookup(model.ConfigKeyOpenAIAPIKey); ok && key != "" {
		return key
	}
	return s.cfg.OpenAIAPIKey
}

func (s *aiService) geminiKey() string {
	if key, ok := s.configSvc.Lookup(model.ConfigKeyGeminiAPIKey); ok && key != "" {
		return key
	}
	return s.cfg.GeminiAPIKey
}

func (s *aiService) generateText(prompt string) (string, error) {
	switch s.provider() {
	case ProviderOpenAI:
		return s.callOpenAIChat(prompt)
	case ProviderGoogle:
		return s.callGemini(prompt)
	}
	return "", ErrInvalidProvider
}

// appendHistory 생성 성공 기록. 기록 실패가 생성 결과를 막지는 않는다.
func (s *aiService) appendHistory(userID uint, historyType model.AIHistoryType, input, output string) {
	history := &model.AIHistory{
		UserID: userID,
		Type:   historyType,
		Input:  input,
		Output: output,
	}
	if err := s.historyRepo.Create(history); err != nil {
		logger.Error("Failed to append AI history", err, map[string]interface{}{
			"user_id": userID,
			"type":    historyType,
		})
	}
}

// OpenAI API 요청/응답 구조체

type openAIChatRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type openAIImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type openAIImageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *aiService) callOpenAIChat(prompt string) (string, error) {
	apiKey := s.openAIKey()
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqData := openAIChatRequest{
		Model: openAIChatModel,
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := s.post(
		s.cfg.OpenAIBaseURL+"/chat/completions",
		map[string]string{"Authorization": "Bearer " + apiKey},
		reqData,
	)
	if err != nil {
		return "", err
	}

	var resp openAIChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *aiService) callOpenAIImage(prompt string) (string, error) {
	apiKey := s.openAIKey()
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqData := openAIImageRequest{
		Model:  openAIImageModel,
		Prompt: prompt,
		N:      1,
		Size:   "1024x1024",
	}

	body, err := s.post(
		s.cfg.OpenAIBaseURL+"/images/generations",
		map[string]string{"Authorization": "Bearer " + apiKey},
		reqData,
	)
	if err != nil {
		return "", err
	}

	var resp openAIImageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", resp.Error.Message)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("no image from OpenAI")
	}

	return resp.Data[0].URL, nil
}

// Gemini API 요청/응답 구조체

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *aiService) callGemini(prompt string) (string, error) {
	body, err := s.callGeminiModel(geminiModel, prompt)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

// callGeminiImage 이미지 응답은 base64 inline data라 data URL로 감싸 돌려준다
func (s *aiService) callGeminiImage(prompt string) (string, error) {
	body, err := s.callGeminiModel("gemini-2.0-flash-exp-image-generation", prompt)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", resp.Error.Message)
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				return fmt.Sprintf("data:%s;base64,%s",
					part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("no image from Gemini")
}

func (s *aiService) callGeminiModel(model string, prompt string) ([]byte, error) {
	apiKey := s.geminiKey()
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqData := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent",
		s.cfg.GeminiBaseURL, model)
	return s.post(url, map[string]string{"x-goog-api-key": apiKey}, reqData)
}

func (s *aiService) post(url string, headers map[string]string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	return body, nil
}
