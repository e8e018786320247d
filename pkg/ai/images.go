package ai

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/openai/openai-go/v2"

	"tiendia.app/api/pkg/models"
)

// GeneratedImage is the result of one image generation call.
type GeneratedImage struct {
	URL           string    `json:"url"`
	RevisedPrompt string    `json:"revised_prompt,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// GenerateProductImage asks the external image API for a studio-style photo
// of the product. The generation itself is entirely delegated; this is pure
// API glue around the prompt template.
func GenerateProductImage(ctx context.Context, product *models.Product) (*GeneratedImage, error) {
	if !IsEnabled() {
		return nil, &AIError{Message: "AI service is not enabled"}
	}

	model := os.Getenv("OPENAI_IMAGE_MODEL")
	if model == "" {
		model = "dall-e-3"
	}

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         buildImagePrompt(product),
		Model:          openai.ImageModel(model),
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize1024x1024,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		log.Printf("AI API Error: %v", err)
		return nil, &AIError{Message: "Failed to generate product image", Cause: err}
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, &AIError{Message: "AI returned no image"}
	}

	return &GeneratedImage{
		URL:           resp.Data[0].URL,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
		GeneratedAt:   time.Now(),
	}, nil
}

// GenerateProductDescription writes short Spanish sales copy for a product.
func GenerateProductDescription(ctx context.Context, product *models.Product) (string, error) {
	return generateCompletion(ctx, DescriptionSystemPrompt, buildDescriptionPrompt(product))
}
