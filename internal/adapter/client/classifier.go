package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"whatameating/internal/domain/entity"

	"google.golang.org/genai"
)

// contentGenerator is the part of *genai.Models the classifier needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

const classifyInstruction = `You are a food image classifier.
Identify every food item visible in the image.
Respond ONLY with a JSON array of objects with two keys:
- "label": a lowercase snake_case food label, e.g. "fried_rice"
- "score": your confidence between 0 and 1
Only include items whose score is at least %s.
If no food is visible, respond with an empty array.`

var resultSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"label": {Type: genai.TypeString},
			"score": {Type: genai.TypeNumber},
		},
		Required: []string{"label", "score"},
	},
}

type VertexClassifier struct {
	models contentGenerator
	model  string
}

func NewVertexClassifier(ctx context.Context, projectID, region, model string) (*VertexClassifier, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, err
	}
	return NewVertexClassifierFromClient(c, ModelPath(projectID, region, model)), nil
}

func NewVertexClassifierFromClient(c *genai.Client, modelPath string) *VertexClassifier {
	return &VertexClassifier{
		models: c.Models,
		model:  modelPath,
	}
}

// ModelPath returns the fully qualified model id. A model that already
// carries a resource path (e.g. a tuned endpoint) is used as given.
func ModelPath(projectID, region, model string) string {
	if strings.Contains(model, "/") {
		return model
	}
	return fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", projectID, region, model)
}

func (v *VertexClassifier) Model() string {
	return v.model
}

func (v *VertexClassifier) Predict(ctx context.Context, image []byte, scoreThreshold string) ([]entity.ClassificationResult, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, http.DetectContentType(image)),
			genai.NewPartFromText(fmt.Sprintf(classifyInstruction, scoreThreshold)),
		}, genai.RoleUser),
	}

	log.Printf("[PREDICT] Trigger prediction model=%s threshold=%s", v.model, scoreThreshold)

	resp, err := v.models.GenerateContent(ctx, v.model, contents, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   resultSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrPredictionFailed, err)
	}

	return decodeResults(resp.Text())
}

func decodeResults(text string) ([]entity.ClassificationResult, error) {
	var results []entity.ClassificationResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &results); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", entity.ErrPredictionFailed, err)
	}
	return results, nil
}
