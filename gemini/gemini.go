package gemini

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/redis"
	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

// DisabledMessage is returned from every generation helper when no API key
// is configured. Absence of credentials is a degraded state, not an error.
const DisabledMessage = "AI features are disabled. Please set your GEMINI_API_KEY."

const cacheTTL = 24 * time.Hour

var client *genai.Client

// Init creates the shared generative-language client. Without an API key the
// client stays nil and all helpers return DisabledMessage.
func Init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set. AI features will be disabled.")
		return
	}

	c, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Failed to create Gemini client, AI features disabled: %v", err)
		return
	}
	client = c
}

// Enabled reports whether generation is available.
func Enabled() bool {
	return client != nil
}

// Source is a web citation attached to a grounded answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ResourceResponse is the answer to a resource query, optionally grounded in
// web search results.
type ResourceResponse struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// CarePlan generates a personalized care plan for the pet. Failures degrade
// to a fixed apology string; the error is only logged.
func CarePlan(ctx context.Context, pet *models.Pet) string {
	if !Enabled() {
		return DisabledMessage
	}

	cacheKey := fmt.Sprintf("careplan:%d", pet.ID)
	if cached, ok := cacheGet(ctx, cacheKey); ok {
		return cached
	}

	var allergies []string
	for _, hr := range pet.HealthRecords {
		if hr.Type == models.RecordAllergy {
			allergies = append(allergies, hr.Title)
		}
	}
	known := strings.Join(allergies, ", ")
	if known == "" {
		known = "None"
	}

	prompt := fmt.Sprintf(`Based on the following pet profile, generate a personalized care plan.
The plan should include recommendations for diet, exercise/activity, and a suggested grooming schedule.
Format the output as a friendly, easy-to-read text. Be concise and practical.

Pet Profile:
- Name: %s
- Species: %s
- Breed: %s
- Age: %d years
- Gender: %s
- Known Health Issues/Allergies: %s

Generate the care plan now.`, pet.Name, pet.Species, pet.Breed, pet.Age(), pet.Gender, known)

	resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		TopP:        genai.Ptr[float32](0.95),
	})
	if err != nil {
		log.Printf("Error generating care plan: %v", err)
		return "Sorry, I couldn't generate a care plan at this time. Please try again later."
	}

	text := resp.Text()
	cacheSet(ctx, cacheKey, text)
	return text
}

// SymptomTriage asks for triage advice on reported symptoms. The response
// always opens with a non-veterinarian disclaimer.
func SymptomTriage(ctx context.Context, pet *models.Pet, symptoms string) string {
	if !Enabled() {
		return DisabledMessage
	}

	prompt := fmt.Sprintf(`Act as a helpful pet care assistant providing triage advice. THIS IS NOT A SUBSTITUTE FOR PROFESSIONAL VETERINARY ADVICE.
A pet owner is reporting symptoms for their pet. Provide a calm, clear assessment with potential causes and a recommendation on the urgency of seeking veterinary care (e.g., "monitor at home," "schedule a vet visit soon," "seek emergency care immediately").

IMPORTANT: Start your response with the disclaimer: "Disclaimer: I am an AI assistant and not a veterinarian. This advice is for informational purposes only. Please consult a licensed veterinarian for any health concerns."

Pet Details:
- Species: %s
- Breed: %s
- Age: %d years

Reported Symptoms:
"%s"

Provide your triage advice now.`, pet.Species, pet.Breed, pet.Age(), symptoms)

	resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.5),
	})
	if err != nil {
		log.Printf("Error getting symptom triage: %v", err)
		return "Sorry, I couldn't analyze the symptoms at this time. If you are concerned, please contact your veterinarian."
	}
	return resp.Text()
}

// ResourceInfo answers a pet-care question, grounded in web search results
// when the backend returns them.
func ResourceInfo(ctx context.Context, query string) ResourceResponse {
	if !Enabled() {
		return ResourceResponse{Text: DisabledMessage}
	}

	prompt := fmt.Sprintf(`Act as a helpful and knowledgeable pet care expert. Provide a comprehensive, easy-to-understand answer for the following query from a pet owner: "%s".
Structure the answer with clear headings, paragraphs, and bullet points where appropriate to make it easy to read.
Focus on providing practical and safe advice.
Do not repeat the user's query in your response.`, query)

	resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		log.Printf("Error generating resource info: %v", err)
		return ResourceResponse{Text: "Sorry, I couldn't find information on that topic. Please try rephrasing your search or check your connection."}
	}

	result := ResourceResponse{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" && chunk.Web.Title != "" {
				result.Sources = append(result.Sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
			}
		}
	}
	return result
}

func cacheGet(ctx context.Context, key string) (string, bool) {
	if redis.Client == nil {
		return "", false
	}
	val, err := redis.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func cacheSet(ctx context.Context, key, val string) {
	if redis.Client == nil {
		return
	}
	if err := redis.Client.Set(ctx, key, val, cacheTTL).Err(); err != nil {
		log.Printf("Failed to cache %s: %v", key, err)
	}
}
