package ai

import (
	"fmt"

	"tiendia.app/api/pkg/models"
)

// Prompt templates for image generation and product copy

const (
	// studioPromptTemplate describes the house look for generated product
	// photos: clean studio backdrop, soft light, commerce-ready framing.
	studioPromptTemplate = `Professional e-commerce product photograph of %s.
Clean seamless studio background, soft diffused lighting, subtle shadow under
the product, centered composition, high resolution, no text or watermarks.`

	DescriptionSystemPrompt = `You are a copywriter for small online stores in Latin America.
Write short, warm product descriptions in Spanish that help a product sell.
Keep it to 2-3 sentences, mention the product by name, and never invent
technical details that were not provided.`
)

// buildImagePrompt renders the studio template for a product, folding in the
// declared sizes so apparel renders in a sensible context.
func buildImagePrompt(product *models.Product) string {
	subject := product.Name
	if product.HasSizes() {
		subject = fmt.Sprintf("%s (apparel, available in %d sizes)", product.Name, len(product.Sizes))
	}
	return fmt.Sprintf(studioPromptTemplate, subject)
}

// buildDescriptionPrompt summarizes the product for the copywriter prompt.
func buildDescriptionPrompt(product *models.Product) string {
	prompt := fmt.Sprintf("Product name: %s\n", product.Name)
	if product.Price != nil {
		prompt += fmt.Sprintf("Price: %.0f\n", *product.Price)
	}
	if product.HasSizes() {
		prompt += "Sizes: "
		for i, s := range product.Sizes {
			if i > 0 {
				prompt += ", "
			}
			prompt += s.Name
		}
		prompt += "\n"
	}
	prompt += "Write the description now."
	return prompt
}
