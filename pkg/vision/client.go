package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client talks to a GLM-4V style chat-completions endpoint. The API is
// OpenAI-compatible, so the official client works against it with a custom
// base URL.
type Client struct {
	api   openai.Client
	model string
}

// NewClient creates a vision client for the given API key, base URL and model.
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		api: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		model: model,
	}
}

// Complete sends a plain text prompt and returns the model reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(prompt),
		},
	}
	return c.send(ctx, userMessage)
}

// DescribeImage sends a prompt plus an inline base64 image and returns the
// model reply. format must be one of jpg, png or webp.
func (c *Client) DescribeImage(ctx context.Context, prompt string, image []byte, format string) (string, error) {
	dataURL := fmt.Sprintf("data:image/%s;base64,%s", format, base64.StdEncoding.EncodeToString(image))
	contentParts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfText: &openai.ChatCompletionContentPartTextParam{
				Text: prompt,
			},
		},
		{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				},
			},
		},
	}
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: contentParts,
		},
	}
	return c.send(ctx, userMessage)
}

func (c *Client) send(ctx context.Context, userMessage openai.ChatCompletionUserMessageParam) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}
	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// ImageFormat maps a filename to the format label the API expects. Unknown
// extensions fall back to jpg.
func ImageFormat(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".png"):
		return "png"
	case strings.HasSuffix(name, ".webp"):
		return "webp"
	default:
		return "jpg"
	}
}
