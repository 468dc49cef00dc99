package catalog

import (
	"github.com/readylabs/aiready-backend/internal/model"
)

// seedQuestions returns the built-in AI-readiness assessment catalog:
// general context first, then a department selector, then one block per
// department. Open-ended and upload questions carry no correct answer and
// only contribute to category totals.
func seedQuestions() []model.Question {
	return []model.Question{
		// ─── General Questions ─────────────────────────────────────────
		{
			ID:               1,
			Category:         "General Questions",
			Type:             model.QuestionTypeUpload,
			Question:         "Please provide your company website URL and upload any relevant documentation (business plans, process documents, etc.)",
			Explanation:      "Understanding your business context",
			Order:            0,
			AllowedFileTypes: []string{"pdf", "doc", "docx", "txt"},
			MaxFileSize:      10 * 1024 * 1024,
		},
		{
			ID:          2,
			Category:    "General Questions",
			Type:        model.QuestionTypeText,
			Question:    "What are the top 3 repetitive or time-consuming tasks in your business right now?",
			Options:     []string{},
			Explanation: "Helps identify key automation opportunities",
			Order:       1,
		},
		{
			ID:       3,
			Category: "General Questions",
			Type:     model.QuestionTypeSingleChoice,
			Question: "Have you used any AI tools or automation systems before?",
			Options: []string{
				"Yes, extensively",
				"Yes, but only basic tools",
				"No, but interested",
				"No, not interested",
				"Other",
			},
			Explanation: "Understanding previous automation experience",
			Order:       2,
		},
		// ─── Department Selection ──────────────────────────────────────
		{
			ID:       4,
			Category: "Department Focus",
			Type:     model.QuestionTypeMultiChoice,
			Question: "Which department(s) would benefit most from automation?",
			Options: []string{
				"Sales",
				"Marketing",
				"HR",
				"Operations",
				"Customer Support",
				"Strategy/Leadership",
			},
			Explanation: "Identifying priority areas for automation",
			Order:       3,
		},
		// ─── Sales Department ──────────────────────────────────────────
		{
			ID:       5,
			Category: "Sales Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How do you currently manage your sales leads?",
			Options: []string{
				"Manual spreadsheets",
				"Basic CRM",
				"Advanced CRM with automation",
				"No formal system",
				"Other",
			},
			Explanation: "Understanding sales process maturity",
			Order:       4,
		},
		{
			ID:       6,
			Category: "Sales Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How are your follow-up emails handled?",
			Options: []string{
				"Manual sending",
				"Basic email templates",
				"Automated sequences",
				"No systematic follow-up",
				"Other",
			},
			Explanation: "Assessing email automation needs",
			Order:       5,
		},
		{
			ID:       7,
			Category: "Sales Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "Is your CRM automatically updated or done manually?",
			Options: []string{
				"Fully manual updates",
				"Partially automated",
				"Fully automated",
				"No CRM system",
				"Other",
			},
			Explanation: "Evaluating CRM automation level",
			Order:       6,
		},
		{
			ID:          8,
			Category:    "Sales Department",
			Type:        model.QuestionTypeText,
			Question:    "How do you track deals and pipeline progress?",
			Options:     []string{},
			Explanation: "Understanding pipeline management",
			Order:       7,
		},
		{
			ID:       9,
			Category: "Sales Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "Are meeting summaries or call notes being done manually?",
			Options: []string{
				"Yes, fully manual",
				"Using templates",
				"AI-assisted summaries",
				"No systematic recording",
				"Other",
			},
			Explanation: "Assessing meeting documentation process",
			Order:       8,
		},
		// ─── Marketing Department ──────────────────────────────────────
		{
			ID:          10,
			Category:    "Marketing Department",
			Type:        model.QuestionTypeText,
			Question:    "How do you currently plan and schedule content?",
			Options:     []string{},
			Explanation: "Understanding content management process",
			Order:       9,
		},
		{
			ID:       11,
			Category: "Marketing Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "Are you using AI for content creation?",
			Options: []string{
				"Yes, extensively",
				"Sometimes for specific tasks",
				"No, but interested",
				"No, prefer human-only content",
				"Other",
			},
			Explanation: "Assessing AI adoption in content creation",
			Order:       10,
		},
		{
			ID:       12,
			Category: "Marketing Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How do you handle email marketing personalization?",
			Options: []string{
				"No personalization",
				"Basic merge fields",
				"Behavior-based automation",
				"Advanced AI personalization",
				"Other",
			},
			Explanation: "Understanding email marketing sophistication",
			Order:       11,
		},
		// ─── HR Department ─────────────────────────────────────────────
		{
			ID:       13,
			Category: "HR Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How is your candidate sourcing handled?",
			Options: []string{
				"Manual job board posting",
				"Basic ATS system",
				"AI-powered sourcing",
				"External recruiters",
				"Other",
			},
			Explanation: "Evaluating recruitment automation",
			Order:       12,
		},
		{
			ID:       14,
			Category: "HR Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How do you handle employee onboarding?",
			Options: []string{
				"Manual process",
				"Checklist-based",
				"Automated workflow",
				"No formal process",
				"Other",
			},
			Explanation: "Understanding onboarding efficiency",
			Order:       13,
		},
		// ─── Operations Department ─────────────────────────────────────
		{
			ID:          15,
			Category:    "Operations Department",
			Type:        model.QuestionTypeText,
			Question:    "What are your main recurring tasks in day-to-day ops?",
			Options:     []string{},
			Explanation: "Identifying automation opportunities",
			Order:       14,
		},
		{
			ID:       16,
			Category: "Operations Department",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How do you track project progress?",
			Options: []string{
				"Manual updates",
				"Project management tool",
				"Automated tracking system",
				"No systematic tracking",
				"Other",
			},
			Explanation: "Assessing project management maturity",
			Order:       15,
		},
		// ─── Customer Support ──────────────────────────────────────────
		{
			ID:       17,
			Category: "Customer Support",
			Type:     model.QuestionTypeMultiChoice,
			Question: "What support channels do you currently use?",
			Options: []string{
				"Email",
				"Live Chat",
				"Phone",
				"Social Media",
				"Help Center",
				"Other",
			},
			Explanation: "Understanding support infrastructure",
			Order:       16,
		},
		{
			ID:       18,
			Category: "Customer Support",
			Type:     model.QuestionTypeSingleChoice,
			Question: "Do you use AI-powered chatbots for support?",
			Options: []string{
				"Yes, extensively",
				"Basic automation only",
				"No, but interested",
				"No, prefer human-only",
				"Other",
			},
			Explanation: "Assessing AI adoption in support",
			Order:       17,
		},
		// ─── Executive/Strategy ────────────────────────────────────────
		{
			ID:       19,
			Category: "Executive/Strategy",
			Type:     model.QuestionTypeSingleChoice,
			Question: "How do you handle business intelligence and reporting?",
			Options: []string{
				"Manual reports",
				"Basic BI tools",
				"Advanced analytics platform",
				"AI-powered insights",
				"Other",
			},
			Explanation: "Understanding decision-making process",
			Order:       18,
		},
		{
			ID:          20,
			Category:    "Executive/Strategy",
			Type:        model.QuestionTypeText,
			Question:    "What metrics or dashboards do you check weekly?",
			Options:     []string{},
			Explanation: "Identifying key performance indicators",
			Order:       19,
		},
	}
}
