package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerPlainText(t *testing.T) {
	a := ParseAnswer("We use AI for support triage")
	assert.Equal(t, AnswerPlainText, a.Kind)
	assert.Equal(t, "We use AI for support triage", a.Text)
}

func TestParseAnswerMultiChoice(t *testing.T) {
	a := ParseAnswer(`["ChatGPT", "Copilot"]`)
	assert.Equal(t, AnswerMultiChoice, a.Kind)
	assert.Equal(t, []string{"ChatGPT", "Copilot"}, a.Selections)
}

func TestParseAnswerURLUpload(t *testing.T) {
	a := ParseAnswer(`{"type": "url", "url": "https://example.com"}`)
	assert.Equal(t, AnswerUpload, a.Kind)
	assert.Equal(t, UploadKindURL, a.Upload)
	assert.Equal(t, "https://example.com", a.URL)
}

func TestParseAnswerFileUpload(t *testing.T) {
	a := ParseAnswer(`{"type": "file", "fileName": "deck.pdf", "fileSize": 2048}`)
	assert.Equal(t, AnswerUpload, a.Kind)
	assert.Equal(t, UploadKindFile, a.Upload)
	assert.Equal(t, "deck.pdf", a.FileName)
	assert.Equal(t, int64(2048), a.FileSize)
}

func TestParseAnswerMalformedJSONIsText(t *testing.T) {
	for _, raw := range []string{
		`["unterminated`,
		`{"type": "url"`,
		`{"type": "unknown"}`,
		`[1, 2, 3]`,
	} {
		a := ParseAnswer(raw)
		assert.Equal(t, AnswerPlainText, a.Kind, "raw: %s", raw)
		assert.Equal(t, raw, a.Text)
	}
}

func TestParseAnswerEmptyString(t *testing.T) {
	a := ParseAnswer("")
	assert.Equal(t, AnswerPlainText, a.Kind)
	assert.Empty(t, a.Text)
}

func TestAnswerEncodeRoundTrip(t *testing.T) {
	answers := []Answer{
		{Kind: AnswerPlainText, Text: "hello"},
		{Kind: AnswerMultiChoice, Selections: []string{"A", "B"}},
		{Kind: AnswerUpload, Upload: UploadKindURL, URL: "https://example.com"},
		{Kind: AnswerUpload, Upload: UploadKindFile, FileName: "a.docx", FileSize: 10},
	}

	for _, want := range answers {
		raw, err := want.Encode()
		require.NoError(t, err)
		assert.Equal(t, want, ParseAnswer(raw))
	}
}

func TestAnswerDisplay(t *testing.T) {
	assert.Equal(t, "free text", Answer{Kind: AnswerPlainText, Text: "free text"}.Display())
	assert.Equal(t, "A, B", Answer{Kind: AnswerMultiChoice, Selections: []string{"A", "B"}}.Display())
	assert.Equal(t, "https://x.test", Answer{Kind: AnswerUpload, Upload: UploadKindURL, URL: "https://x.test"}.Display())
	assert.Equal(t, "cv.pdf", Answer{Kind: AnswerUpload, Upload: UploadKindFile, FileName: "cv.pdf"}.Display())
}
