// Package export renders quiz results as downloadable documents.
package export

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/signintech/gopdf"

	"github.com/readylabs/aiready-backend/internal/model"
)

// ErrRendererUnavailable means the PDF renderer cannot run (missing font
// file). Callers fall back to the descriptor response; the quiz flow is
// never blocked on export.
var ErrRendererUnavailable = errors.New("pdf renderer unavailable")

// PDFExporter renders results synchronously with gopdf. Generation is
// cheap (one page, a handful of lines), so there is no async pipeline.
type PDFExporter struct {
	fontPath string
	log      zerolog.Logger
}

// NewPDFExporter creates a PDFExporter using the TTF font at fontPath.
func NewPDFExporter(fontPath string, log zerolog.Logger) *PDFExporter {
	return &PDFExporter{
		fontPath: fontPath,
		log:      log.With().Str("component", "pdf_exporter").Logger(),
	}
}

// Available reports whether the renderer can run.
func (e *PDFExporter) Available() bool {
	_, err := os.Stat(e.fontPath)
	return err == nil
}

// Render produces a PDF summary of the result: overall score, answered
// counts, the per-category breakdown and, when the session snapshot is
// available, the submitted answer for every question. A nil session skips
// the answers section.
func (e *PDFExporter) Render(result *model.QuizResult, session *model.QuizSession, questions []model.Question) ([]byte, error) {
	if !e.Available() {
		return nil, ErrRendererUnavailable
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.SetMarginLeft(40)
	pdf.SetMarginTop(40)
	pdf.AddPage()

	if err := pdf.AddTTFFont("main", e.fontPath); err != nil {
		e.log.Warn().Err(err).Str("font", e.fontPath).Msg("font load failed")
		return nil, ErrRendererUnavailable
	}

	write := func(size float64, text string) error {
		if err := pdf.SetFont("main", "", size); err != nil {
			return err
		}
		if err := pdf.Cell(nil, text); err != nil {
			return err
		}
		pdf.Br(size + 8)
		return nil
	}

	if err := write(20, "AI Readiness Assessment Result"); err != nil {
		return nil, fmt.Errorf("render title: %w", err)
	}
	if err := write(12, fmt.Sprintf("Result #%d / Session #%d", result.ID, result.SessionID)); err != nil {
		return nil, fmt.Errorf("render header: %w", err)
	}
	if err := write(12, fmt.Sprintf("Completed: %s", result.CompletedAt.Format("2006-01-02 15:04 MST"))); err != nil {
		return nil, fmt.Errorf("render header: %w", err)
	}
	pdf.Br(10)
	if err := write(16, fmt.Sprintf("Overall score: %d%%", result.OverallScore)); err != nil {
		return nil, fmt.Errorf("render score: %w", err)
	}
	if err := write(12, fmt.Sprintf("Correct answers: %d of %d questions", result.CorrectAnswers, result.TotalQuestions)); err != nil {
		return nil, fmt.Errorf("render score: %w", err)
	}

	pdf.Br(10)
	if err := write(14, "Category breakdown"); err != nil {
		return nil, fmt.Errorf("render breakdown: %w", err)
	}

	// Deterministic category order.
	categories := make([]string, 0, len(result.CategoryBreakdown))
	for cat := range result.CategoryBreakdown {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		tally := result.CategoryBreakdown[cat]
		line := fmt.Sprintf("%s: %d/%d", cat, tally.Correct, tally.Total)
		if err := write(12, line); err != nil {
			return nil, fmt.Errorf("render breakdown: %w", err)
		}
	}

	if session != nil && len(questions) > 0 {
		pdf.Br(10)
		if err := write(14, "Answers"); err != nil {
			return nil, fmt.Errorf("render answers: %w", err)
		}
		for _, line := range answerLines(session, questions) {
			if err := write(11, line); err != nil {
				return nil, fmt.Errorf("render answers: %w", err)
			}
		}
	}

	return pdf.GetBytesPdf(), nil
}

// answerLines formats one question/answer pair per catalog entry. Raw
// answer strings are decoded through the answer union so multi-select and
// upload payloads print as their human-readable form rather than as JSON.
func answerLines(session *model.QuizSession, questions []model.Question) []string {
	lines := make([]string, 0, len(questions)*2)
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q.Question))

		raw, answered := session.Answers[strconv.Itoa(q.ID)]
		if !answered {
			lines = append(lines, "   (not answered)")
			continue
		}
		lines = append(lines, "   "+model.ParseAnswer(raw).Display())
	}
	return lines
}
