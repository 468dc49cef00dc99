package service

import (
	"math"
	"strconv"

	"github.com/readylabs/aiready-backend/internal/model"
)

// Outcome is the computed score for one session against a question set.
type Outcome struct {
	TotalQuestions    int
	AnsweredQuestions int
	CorrectAnswers    int
	OverallScore      int
	CategoryScores    map[string]model.CategoryTally
}

// Score tallies a session's answers against the full question list.
//
// Correctness is an exact string comparison against the question's
// canonical answer: no trimming, no case folding. Questions without an
// objective answer (open-ended and upload types) count toward category
// totals but can never score correct, so catalogs containing them depress
// the overall percentage. That is the product's intended behavior, not a
// defect to fix here.
//
// Answer keys that match no question id are ignored.
func Score(session *model.QuizSession, questions []model.Question) Outcome {
	out := Outcome{
		TotalQuestions: len(questions),
		CategoryScores: make(map[string]model.CategoryTally),
	}

	for _, q := range questions {
		tally := out.CategoryScores[q.Category]
		tally.Total++

		answer, answered := session.Answers[strconv.Itoa(q.ID)]
		if answered {
			out.AnsweredQuestions++
			if q.HasObjectiveAnswer() && answer == q.CorrectAnswer {
				out.CorrectAnswers++
				tally.Correct++
			}
		}

		out.CategoryScores[q.Category] = tally
	}

	// An empty catalog scores 0 rather than dividing by zero.
	if out.TotalQuestions > 0 {
		out.OverallScore = int(math.Round(100 * float64(out.CorrectAnswers) / float64(out.TotalQuestions)))
	}

	return out
}
