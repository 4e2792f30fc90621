package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/metrics"
	"github.com/linguabill/lingua-api/internal/store"
)

// Translator produces translated text. The only implementation today is a
// placeholder; real provider adapters plug in behind this interface.
type Translator interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// StubTranslator is the placeholder provider.
type StubTranslator struct{}

// TranslateText returns placeholder output regardless of input.
func (StubTranslator) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return "Hello World", nil
}

// Language is one entry of the supported-language catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var supportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "nl", Name: "Dutch"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese (Simplified)"},
	{Code: "ar", Name: "Arabic"},
	{Code: "ru", Name: "Russian"},
}

const languageCacheKey = "languages"

// TranslationService handles translation requests and the language catalog.
// The catalog sits behind an expirable cache object with an injected TTL
// rather than process-wide mutable state.
type TranslationService struct {
	translations store.TranslationStore
	translator   Translator
	languages    *expirable.LRU[string, []Language]
	logger       *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(translations store.TranslationStore, translator Translator, cacheTTL time.Duration, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		translations: translations,
		translator:   translator,
		languages:    expirable.NewLRU[string, []Language](4, nil, cacheTTL),
		logger:       logger,
	}
}

// TranslateText runs a text translation request and records it.
func (s *TranslationService) TranslateText(ctx context.Context, companyName, text, sourceLang, targetLang string) (*store.TranslationRequest, error) {
	translated, err := s.translator.TranslateText(ctx, text, sourceLang, targetLang)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	req := &store.TranslationRequest{
		CompanyName:    companyName,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Kind:           "text",
		UnitCount:      int64(len([]rune(text))),
		TranslatedText: translated,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.translations.CreateTranslationRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record translation request: %w", err)
	}

	metrics.TranslationRequests.WithLabelValues("text").Inc()
	return created, nil
}

// TranslateFile records a file translation request. Text extraction and page
// counting are stubbed; only request metadata is stored.
func (s *TranslationService) TranslateFile(ctx context.Context, companyName, fileName, sourceLang, targetLang string) (*store.TranslationRequest, error) {
	translated, err := s.translator.TranslateText(ctx, "", sourceLang, targetLang)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	req := &store.TranslationRequest{
		CompanyName:    companyName,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Kind:           "file",
		FileName:       fileName,
		UnitCount:      1,
		TranslatedText: translated,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.translations.CreateTranslationRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record translation request: %w", err)
	}

	metrics.TranslationRequests.WithLabelValues("file").Inc()
	return created, nil
}

// ListLanguages returns the supported-language catalog through the TTL cache.
func (s *TranslationService) ListLanguages() []Language {
	if cached, ok := s.languages.Get(languageCacheKey); ok {
		return cached
	}

	languages := make([]Language, len(supportedLanguages))
	copy(languages, supportedLanguages)
	s.languages.Add(languageCacheKey, languages)

	s.logger.Debug("Language catalog cache refreshed", zap.Int("count", len(languages)))
	return languages
}
