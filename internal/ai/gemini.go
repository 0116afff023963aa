// README: Gemini-backed field extraction with prompt template and response cleanup.
package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements FieldExtractor using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Low temperature: the output is a schema-constrained extraction, not prose.
	model.SetTemperature(0.2)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ExtractFields analyzes a provider's service description and returns
// structured listing suggestions.
func (p *GeminiProvider) ExtractFields(ctx context.Context, description string) (*ExtractionResult, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrInvalidInput
	}

	prompt := buildExtractionPrompt(description)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no response candidates", ErrUpstreamUnavailable)
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// JSON mode should prevent markdown framing, but models still slip
	// fences, comments, and trailing commas through often enough to clean.
	cleaned := cleanJSONString(responseText.String())

	return decodeExtraction([]byte(cleaned))
}

// buildExtractionPrompt substitutes the description into the fixed
// instruction template.
func buildExtractionPrompt(description string) string {
	return strings.Replace(extractionPromptTemplate, "{{USER_SERVICE_DESCRIPTION}}", description, 1)
}

var (
	reCodeFence     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	reLineComment   = regexp.MustCompile(`(?m)//.*$`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// cleanJSONString extracts a fenced block if present (```json ... ``` or
// ``` ... ```), then strips single-line // comments and trailing commas
// before closing brackets. Valid JSON passes through unchanged apart from
// surrounding whitespace.
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	if m := reCodeFence.FindStringSubmatch(input); m != nil {
		input = m[1]
	}
	input = reLineComment.ReplaceAllString(input, "")
	input = reTrailingComma.ReplaceAllString(input, "$1")
	return strings.TrimSpace(input)
}

const extractionPromptTemplate = `You are an AI Shop Setup Assistant. Your task is to analyze a user's service description and return a single, valid JSON object to structure their storefront information.

The JSON object must contain four keys:

1. ` + "`classification`" + `:
   An object with the following keys:
   - ` + "`category`" + `: The main category for the service.
   - ` + "`subcategory`" + `: A single, most relevant subcategory.
   - ` + "`service_focus`" + `: A short phrase summarizing the unique focus or specialty of the service.

2. ` + "`extracted_fields`" + `:
   An object with the following keys. For each, extract the value from the user's description if possible; otherwise, set the value to null:
   - ` + "`business_name`" + `
   - ` + "`service_location`" + `: The value must be one of the following four options: ` + "`provider's home`, `customer's home`, `third space (decided by provider)`, or `third space (decided by customer)`" + `, or null.
   - ` + "`booking_policy`" + `: The value must be one of the following three options: ` + "`instant booking`, `approval before booking`, or `booking in advance with a minimum notice period`" + `, or null.
   - ` + "`payment_policy`" + `: The value must be one of the following three options: ` + "`upfront payment`, `deposit required`, or `payment after service`" + `, or null.
   - ` + "`cancellation_policy`" + `
   - ` + "`availability`" + `
   - ` + "`late_policy`" + `
   - ` + "`buffer_time_between_sessions`" + `

3. ` + "`recommended_fields`" + `:
   An array of additional field names (not already present in ` + "`extracted_fields`" + `) that would improve the listing, based on the service type and description. These should be contextually relevant and actionable for the user to add.

4. ` + "`missing_mandatory_info`" + `:
   An array of strings listing the keys from extracted_fields for which you could not find a value (i.e., were set to null).

IMPORTANT:
- Your response MUST be a single, valid JSON object and nothing else. Do NOT include markdown, comments, or any extra text - just the JSON object.
- If information is not found for a field in extracted_fields, its value must be null.
- recommended_fields should only include fields not already present in extracted_fields and should be specific to the service type and missing/unclear details.
- missing_mandatory_info must only include keys from extracted_fields that are null.

Example Input:
"I run a mobile dog grooming service that visits clients' homes. We offer baths, haircuts, and nail trimming for all dog breeds."

Example Output:
{
  "classification": {
    "category": "Pet Services",
    "subcategory": "Dog Grooming",
    "service_focus": "Mobile grooming for all dog breeds"
  },
  "extracted_fields": {
    "business_name": null,
    "service_location": "customer's home",
    "booking_policy": null,
    "payment_policy": null,
    "cancellation_policy": null,
    "availability": null,
    "late_policy": null,
    "buffer_time_between_sessions": null
  },
  "recommended_fields": [
    "pet_breed_specialization",
    "groomer_certifications",
    "service_duration",
    "customer_reviews"
  ],
  "missing_mandatory_info": [
    "business_name",
    "booking_policy",
    "payment_policy",
    "cancellation_policy",
    "availability",
    "late_policy",
    "buffer_time_between_sessions"
  ]
}

User Description to Analyze:
{{USER_SERVICE_DESCRIPTION}}

Your JSON Output:
`
