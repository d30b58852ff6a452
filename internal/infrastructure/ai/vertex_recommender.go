package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"beneficios_inss/internal/domain/catalog"
	"beneficios_inss/internal/usecase/interfaces"

	"cloud.google.com/go/vertexai/genai"
	"github.com/rs/zerolog/log"
)

const systemPrompt = "Você é um assistente virtual especializado em benefícios do INSS. " +
	"Seu objetivo é ajudar o cidadão a identificar os benefícios mais adequados à sua situação."

const userPromptTemplate = `Analise a descrição do cidadão abaixo e recomende os benefícios do INSS mais adequados,
com uma breve explicação de por que cada um se aplica. Considere primeiro os benefícios
oferecidos pelo portal:

%s
Descrição do cidadão: %s`

var ErrEmptyAnswer = errors.New("model returned no text")

// VertexRecommender asks a Gemini model on Vertex AI for benefit suggestions.
type VertexRecommender struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ interfaces.IRecommender = (*VertexRecommender)(nil)

func NewVertexRecommender(ctx context.Context, projectID, region, modelName string) (*VertexRecommender, error) {
	if projectID == "" || region == "" || modelName == "" {
		return nil, fmt.Errorf("NewVertexRecommender: projectID, region and model cannot be empty")
	}
	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.2),
	}

	log.Info().Str("model", modelName).Str("region", region).Msg("[assistant][vertex] model ready")
	return &VertexRecommender{client: client, model: model}, nil
}

func (r *VertexRecommender) Recommend(ctx context.Context, situation string) (string, error) {
	resp, err := r.model.GenerateContent(ctx, genai.Text(buildPrompt(situation)))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	answer := extractText(resp)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

func (r *VertexRecommender) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

func buildPrompt(situation string) string {
	var b strings.Builder
	for _, benefit := range catalog.All() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", benefit.Title, benefit.Category, benefit.Description)
	}
	return fmt.Sprintf(userPromptTemplate, b.String(), strings.TrimSpace(situation))
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
