// Package analysis provides AI-assisted study feedback: notebook-level
// summaries and per-page concept explanations built from thumbnails.
package analysis

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// Client abstracts the text generation backend.
type Client interface {
	// Generate produces a completion for a text prompt with an optional
	// system instruction.
	Generate(ctx context.Context, instruction, prompt string) (string, error)

	// GenerateVision produces a completion for a prompt about an image.
	GenerateVision(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}

type openaiClient struct {
	client openai.Client
	model  shared.ChatModel
}

// NewClient creates the production text generation client.
func NewClient(apiKey string, model string) Client {
	return &openaiClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  shared.ChatModel(model),
	}
}

func (c *openaiClient) Generate(ctx context.Context, instruction, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model: c.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						responses.ResponseInputContentParamOfInputText(prompt),
					},
					"user",
				),
			},
		},
	}
	if instruction != "" {
		params.Instructions = openai.String(instruction)
	}

	response, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return response.OutputText(), nil
}

func (c *openaiClient) GenerateVision(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(imageData)
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)

	response, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						responses.ResponseInputContentUnionParam{
							OfInputImage: &responses.ResponseInputImageParam{
								Detail:   responses.ResponseInputImageDetailAuto,
								ImageURL: openai.String(dataURI),
							},
						},
						responses.ResponseInputContentParamOfInputText(prompt),
					},
					"user",
				),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate vision: %w", err)
	}
	return response.OutputText(), nil
}
