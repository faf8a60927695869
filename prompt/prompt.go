// Package prompt builds the natural-language prompts sent to the generation
// backend. Every builder is a pure function: the same request fields always
// produce a byte-identical prompt, and blank optional fields leave no trace
// in the output.
package prompt

import (
	"fmt"
	"strings"

	"koreatrip/domain"
)

// languageNames resolves language codes to the names used in translation
// prompts. Unknown codes pass through as their raw value.
var languageNames = map[string]string{
	"ko":   "Korean",
	"en":   "English",
	"ja":   "Japanese",
	"zh":   "Chinese",
	"auto": "auto-detected language",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// responseInstruction picks the response-language sentence. Only "ko" gets
// the Korean instruction; every other value falls back to English.
func responseInstruction(language string) string {
	if language == "ko" {
		return "Respond in Korean."
	}
	return "Respond in English."
}

// Translation renders the translation prompt. The optional context becomes a
// labeled line only when it is non-blank.
func Translation(req domain.TranslationRequest) string {
	source := languageName(req.SourceLang)
	target := languageName(req.TargetLang)

	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following text from %s to %s.\n", source, target)
	b.WriteString("Only provide the translation, without any explanations or additional text.\n\n")
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		fmt.Fprintf(&b, "Context: %s\n\n", ctx)
	}
	fmt.Fprintf(&b, "Text to translate:\n%s\n\nTranslation:", req.Text)
	return b.String()
}

// Guide renders the travel-guide prompt. Location, trip dates, and
// preferences each contribute a clause only when present.
func Guide(req domain.AIGuideRequest) string {
	var b strings.Builder
	b.WriteString(responseInstruction(req.Language))
	b.WriteString("\n\nYou are an expert Korea travel guide assistant helping families plan their trip to Korea.\n\n")

	fmt.Fprintf(&b, "User Question: %s", req.Query)
	if location := strings.TrimSpace(req.Location); location != "" {
		fmt.Fprintf(&b, " focusing on %s", location)
	}
	if clause := tripDatesClause(req.TripDates); clause != "" {
		b.WriteString(clause)
	}
	if prefs := nonBlank(req.Preferences); len(prefs) > 0 {
		fmt.Fprintf(&b, "\nUser preferences: %s", strings.Join(prefs, ", "))
	}

	b.WriteString("\n\nProvide a helpful, detailed response that includes:\n")
	b.WriteString("1. Direct answer to their question\n")
	b.WriteString("2. Practical tips and recommendations\n")
	b.WriteString("3. Any cultural insights that would be valuable\n")
	b.WriteString("4. Family-friendly suggestions when relevant\n\n")
	b.WriteString("Keep the tone warm, informative, and encouraging.")
	return b.String()
}

// Recommendations renders the fixed five-item recommendation prompt for a
// category/location pair.
func Recommendations(category, location, language string) string {
	var b strings.Builder
	b.WriteString(responseInstruction(language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Provide 5 top recommendations for %s in %s, Korea.\n\n", category, location)
	b.WriteString("For each recommendation, provide:\n")
	b.WriteString("1. Name/Title\n")
	b.WriteString("2. Brief description (2-3 sentences)\n")
	b.WriteString("3. Location/Address\n")
	b.WriteString("4. Estimated cost range\n")
	b.WriteString("5. 2-3 practical tips\n\n")
	b.WriteString("Format your response as a numbered list with clear sections.")
	return b.String()
}

// tripDatesClause formats the opaque start/end values. A nil map or one with
// only blank values contributes nothing.
func tripDatesClause(dates map[string]string) string {
	if dates == nil {
		return ""
	}
	start := strings.TrimSpace(dates["start"])
	end := strings.TrimSpace(dates["end"])
	if start == "" && end == "" {
		return ""
	}
	return fmt.Sprintf("\nTrip dates: %s to %s", start, end)
}

// nonBlank filters out empty and whitespace-only entries.
func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
