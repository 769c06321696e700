package chat

import (
	"context"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"leaflink/internal/model"
	"leaflink/internal/observability"
)

const (
	quotaFallback = "Lo siento, estamos experimentando un problema temporal con nuestro proveedor de IA. Por favor, intenta mas tarde."

	genericFallback = "Lo siento, hubo un error al procesar tu consulta. Por favor, intentalo de nuevo."
)

// CompletionClient es la parte del cliente de OpenAI que el generador usa.
// *openai.Client la satisface; los tests usan un stub.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Generator struct {
	Client CompletionClient
}

// Generate hace una sola llamada a la IA con el catalogo filtrado como
// contexto. Nunca devuelve error: cualquier falla del proveedor se convierte
// en un mensaje fijo apto para el cliente.
func (g *Generator) Generate(ctx context.Context, question string, products []model.Product) string {
	catalogContext := FormatProductsForAI(products)
	prompt := BuildPrompt(question, catalogContext)

	// Estimacion media: 1 token ~= 4 caracteres
	log.Printf("[LLM] Enviando prompt: %d caracteres | ~%d tokens estimados", len(prompt), len(prompt)/4)

	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[LLM] Error al generar respuesta con OpenAI: %v", err)
		if strings.Contains(strings.ToLower(err.Error()), "quota") {
			observability.ProviderErrorsTotal.WithLabelValues("quota").Inc()
			return quotaFallback
		}
		observability.ProviderErrorsTotal.WithLabelValues("generic").Inc()
		return genericFallback
	}

	if len(resp.Choices) == 0 {
		log.Printf("[LLM] Respuesta sin choices")
		observability.ProviderErrorsTotal.WithLabelValues("generic").Inc()
		return genericFallback
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
