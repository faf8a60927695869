package domain

// TranslationRequest asks for a single text to be translated.
type TranslationRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"` // defaults to "auto"
	TargetLang string `json:"target_lang"`
	Context    string `json:"context,omitempty"`
}

// TranslationResponse echoes the request alongside the translated text.
// Confidence is not populated by the current generation backend.
type TranslationResponse struct {
	OriginalText   string   `json:"original_text"`
	TranslatedText string   `json:"translated_text"`
	SourceLang     string   `json:"source_lang"`
	TargetLang     string   `json:"target_lang"`
	Confidence     *float64 `json:"confidence,omitempty"`
}
