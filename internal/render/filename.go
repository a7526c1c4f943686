package render

import (
	"strings"

	"github.com/quizkit/quiznote/internal/model"
)

const (
	// maxComponentRunes caps each derived filename component.
	maxComponentRunes = 40
	// maxBaseRunes caps the whole filename base (before the extension).
	maxBaseRunes = 80
)

// forbiddenFilenameChars are stripped from any user-supplied text used as a
// filename component.
const forbiddenFilenameChars = `<>:"/\|?*`

// sentenceTerminators end the first sentence of a question. Both CJK and
// ASCII terminators are honored because quiz content is frequently Chinese.
const sentenceTerminators = "，。？！,.?!"

// Sanitize strips forbidden filename characters from s, collapses whitespace
// runs to single spaces, trims, and truncates to max runes.
func Sanitize(s string, max int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(forbiddenFilenameChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := strings.Join(strings.Fields(b.String()), " ")

	runes := []rune(cleaned)
	if len(runes) > max {
		cleaned = strings.TrimSpace(string(runes[:max]))
	}
	return cleaned
}

// FirstSentence returns the first sentence of q, split on any terminator in
// sentenceTerminators. Without a terminator the whole string is one sentence.
func FirstSentence(q string) string {
	q = strings.TrimSpace(q)
	if i := strings.IndexFunc(q, func(r rune) bool {
		return strings.ContainsRune(sentenceTerminators, r)
	}); i >= 0 {
		return strings.TrimSpace(q[:i])
	}
	return q
}

// ArtifactName derives the default viewer filename for a quiz:
// YYYYMMDD_category_firstSentence.py, sanitized and truncated.
func ArtifactName(quiz model.Quiz) string {
	parts := []string{quiz.CreatedTime().Format("20060102")}

	if cat := Sanitize(quiz.Category, maxComponentRunes); cat != "" {
		parts = append(parts, cat)
	}
	if sentence := Sanitize(FirstSentence(quiz.Question), maxComponentRunes); sentence != "" {
		parts = append(parts, sentence)
	}

	base := strings.Join(parts, "_")
	if runes := []rune(base); len(runes) > maxBaseRunes {
		base = strings.TrimSpace(string(runes[:maxBaseRunes]))
	}
	return base + ".py"
}

// NoteName derives the PDF filename for a notebook note topic.
func NoteName(topic string, date string) string {
	name := date
	if t := Sanitize(topic, maxComponentRunes); t != "" {
		name += "_" + t
	}
	return name + ".pdf"
}
