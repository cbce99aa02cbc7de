package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushub/backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateMatchInsight writes a short explanation of why two roommate
// profiles fit. Falls back to a canned summary when the API is unavailable.
func (c *GeminiClient) GenerateMatchInsight(ctx context.Context, a, b *domain.RoommateProfile, score float64) (string, error) {
	prompt := fmt.Sprintf(`
		Two students were matched as potential roommates with a compatibility score of %.1f/100.
		Student 1: %s
		Student 2: %s

		Task: Write a short, friendly explanation (1-2 sentences) of why they could live well together.
		Focus on the lifestyle habits they share.
		Output: Just the explanation text.
	`, score, describeProfile(a), describeProfile(b))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return FallbackInsight(a, b), nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return FallbackInsight(a, b), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func describeProfile(p *domain.RoommateProfile) string {
	budget := "not set"
	if p.BudgetRange != nil && *p.BudgetRange != "" {
		budget = *p.BudgetRange
	}
	return fmt.Sprintf("%s (sleep: %s, cleanliness: %d/5, study: %s, budget: %s)",
		p.Name, p.SleepSchedule, p.Cleanliness, p.StudyHabits, budget)
}

// FallbackInsight builds an explanation from the profile fields directly,
// used when no AI client is configured or the API call fails.
func FallbackInsight(a, b *domain.RoommateProfile) string {
	var points []string
	if a.SleepSchedule == b.SleepSchedule {
		points = append(points, "you keep the same sleep schedule")
	}
	if a.StudyHabits == b.StudyHabits {
		points = append(points, fmt.Sprintf("you both prefer a %s study environment", a.StudyHabits))
	}
	if a.Cleanliness == b.Cleanliness {
		points = append(points, "your cleanliness standards line up")
	}
	if len(points) == 0 {
		return fmt.Sprintf("You and %s have complementary lifestyles worth exploring.", b.Name)
	}
	return fmt.Sprintf("You and %s look compatible: %s.", b.Name, strings.Join(points, ", and "))
}
