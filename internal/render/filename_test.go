package render

import (
	"strings"
	"testing"

	"github.com/quizkit/quiznote/internal/model"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "plain text untouched", in: "hello world", max: 40, want: "hello world"},
		{name: "forbidden characters stripped", in: `a<b>c:d"e/f\g|h?i*j`, max: 40, want: "abcdefghij"},
		{name: "whitespace collapsed and trimmed", in: "  a   b  ", max: 40, want: "a b"},
		{name: "truncated to max runes", in: strings.Repeat("x", 50), max: 40, want: strings.Repeat("x", 40)},
		{name: "cjk runes counted not bytes", in: strings.Repeat("学", 45), max: 40, want: strings.Repeat("学", 40)},
		{name: "only forbidden characters", in: `<>:"/\|?*`, max: 40, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if strings.ContainsAny(got, forbiddenFilenameChars) {
				t.Errorf("Sanitize(%q) still contains forbidden characters", tt.in)
			}
		})
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ascii period", in: "First. Second.", want: "First"},
		{name: "ascii question mark", in: "What is 2+2? Think hard.", want: "What is 2+2"},
		{name: "cjk full stop", in: "第一句。第二句。", want: "第一句"},
		{name: "cjk comma", in: "前半，后半", want: "前半"},
		{name: "no terminator", in: "just one clause", want: "just one clause"},
		{name: "leading whitespace", in: "  padded! rest", want: "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstSentence(tt.in); got != tt.want {
				t.Errorf("FirstSentence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	quiz := model.Quiz{
		Question:  `What is a "goroutine"? Explain.`,
		Category:  "Go/Concurrency",
		CreatedAt: "2026-08-30 10:00:00",
	}

	name := ArtifactName(quiz)
	if !strings.HasPrefix(name, "20260830_") {
		t.Errorf("ArtifactName() = %q, want date prefix 20260830_", name)
	}
	if !strings.HasSuffix(name, ".py") {
		t.Errorf("ArtifactName() = %q, want .py suffix", name)
	}
	if strings.ContainsAny(name, forbiddenFilenameChars) {
		t.Errorf("ArtifactName() = %q contains forbidden characters", name)
	}
	if !strings.Contains(name, "GoConcurrency") {
		t.Errorf("ArtifactName() = %q, want sanitized category", name)
	}
	if !strings.Contains(name, "What is a goroutine") {
		t.Errorf("ArtifactName() = %q, want first sentence of question", name)
	}
}

func TestArtifactNameTruncated(t *testing.T) {
	quiz := model.Quiz{
		Question:  strings.Repeat("长", 120),
		Category:  strings.Repeat("c", 120),
		CreatedAt: "2026-08-30 10:00:00",
	}

	name := ArtifactName(quiz)
	base := strings.TrimSuffix(name, ".py")
	if n := len([]rune(base)); n > maxBaseRunes {
		t.Errorf("base length = %d runes, want <= %d", n, maxBaseRunes)
	}
}

func TestNoteName(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  string
	}{
		{name: "plain topic", topic: "Go channels", want: "20260830_Go channels.pdf"},
		{name: "forbidden characters stripped", topic: `a/b\c`, want: "20260830_abc.pdf"},
		{name: "empty topic", topic: "", want: "20260830.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoteName(tt.topic, "20260830"); got != tt.want {
				t.Errorf("NoteName(%q) = %q, want %q", tt.topic, got, tt.want)
			}
		})
	}
}
