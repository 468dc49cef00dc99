package model

import (
	"encoding/json"
	"strings"
)

// AnswerKind discriminates the decoded forms of an answer payload.
type AnswerKind string

const (
	// AnswerPlainText covers free-text and single-choice values, which
	// share the same wire form (a bare string).
	AnswerPlainText AnswerKind = "text"
	// AnswerMultiChoice is a JSON-encoded array of selected options.
	AnswerMultiChoice AnswerKind = "multi-choice"
	// AnswerUpload is a JSON-encoded object carrying a URL or file reference.
	AnswerUpload AnswerKind = "upload"
)

// UploadKind discriminates upload answer payloads.
type UploadKind string

const (
	UploadKindURL  UploadKind = "url"
	UploadKindFile UploadKind = "file"
)

// Answer is the decoded form of a session answer value. The store keeps
// only the raw wire string; decoding happens at the boundary when a
// consumer needs structure (export rendering, validation). Scoring always
// compares the raw string, never the decoded form.
type Answer struct {
	Kind AnswerKind

	Text       string   // AnswerPlainText
	Selections []string // AnswerMultiChoice

	// AnswerUpload fields.
	Upload   UploadKind
	URL      string
	FileName string
	FileSize int64
}

// uploadPayload is the wire object for website-upload answers.
type uploadPayload struct {
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
}

// ParseAnswer decodes a raw answer string into its tagged form. Anything
// that is not a recognizable JSON array or upload object is plain text,
// including malformed JSON, which clients may legitimately submit as a
// literal answer.
func ParseAnswer(raw string) Answer {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") {
		var selections []string
		if err := json.Unmarshal([]byte(trimmed), &selections); err == nil {
			return Answer{Kind: AnswerMultiChoice, Selections: selections}
		}
	}

	if strings.HasPrefix(trimmed, "{") {
		var p uploadPayload
		if err := json.Unmarshal([]byte(trimmed), &p); err == nil {
			switch UploadKind(p.Type) {
			case UploadKindURL:
				return Answer{Kind: AnswerUpload, Upload: UploadKindURL, URL: p.URL}
			case UploadKindFile:
				return Answer{
					Kind:     AnswerUpload,
					Upload:   UploadKindFile,
					FileName: p.FileName,
					FileSize: p.FileSize,
				}
			}
		}
	}

	return Answer{Kind: AnswerPlainText, Text: raw}
}

// Encode renders the answer back to its wire string form.
func (a Answer) Encode() (string, error) {
	switch a.Kind {
	case AnswerMultiChoice:
		b, err := json.Marshal(a.Selections)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case AnswerUpload:
		p := uploadPayload{Type: string(a.Upload)}
		if a.Upload == UploadKindURL {
			p.URL = a.URL
		} else {
			p.FileName = a.FileName
			p.FileSize = a.FileSize
		}
		b, err := json.Marshal(p)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return a.Text, nil
	}
}

// Display returns a human-readable rendering of the answer, used by the
// PDF export.
func (a Answer) Display() string {
	switch a.Kind {
	case AnswerMultiChoice:
		return strings.Join(a.Selections, ", ")
	case AnswerUpload:
		if a.Upload == UploadKindURL {
			return a.URL
		}
		return a.FileName
	default:
		return a.Text
	}
}
