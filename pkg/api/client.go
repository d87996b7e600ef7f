package api

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	fiberClient "github.com/gofiber/fiber/v3/client"
	"github.com/google/uuid"
	"github.com/promptdeck/promptdeck/pkg/prompt"
)

/*
Client talks to the prompt manager backend. Every call is a fresh request:
no retries, no caching.
*/
type Client struct {
	baseURL string
	conn    *fiberClient.Client
}

/*
New creates a client bound to the given base URL.
*/
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		conn:    fiberClient.New().SetBaseURL(baseURL),
	}
}

// BaseURL returns the backend address the client is bound to.
func (client *Client) BaseURL() string { return client.baseURL }

/*
CreatePromptRequest is the save payload. Title and tags never travel from the
client; the backend derives them from the content.
*/
type CreatePromptRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
}

type categorizeRequest struct {
	Content string `json:"content"`
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

/*
Categorize asks the backend for a summary and candidate categories for the
given content.
*/
func (client *Client) Categorize(ctx context.Context, content string) (*prompt.Suggestion, error) {
	log.Debug("requesting category suggestion", "baseURL", client.baseURL)

	var suggestion prompt.Suggestion
	if err := client.post(ctx, "/categorize", categorizeRequest{Content: content}, &suggestion); err != nil {
		return nil, err
	}

	return &suggestion, nil
}

/*
CreatePrompt persists a confirmed prompt and returns it as stored, with the
server-assigned id, title, tags and timestamp filled in.
*/
func (client *Client) CreatePrompt(ctx context.Context, req CreatePromptRequest) (*prompt.Prompt, error) {
	log.Debug("saving prompt", "category", req.Category)

	var created prompt.Prompt
	if err := client.post(ctx, "/prompts", req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

/*
ListPrompts fetches every saved prompt, in the order the backend returns them
(newest first).
*/
func (client *Client) ListPrompts(ctx context.Context) ([]prompt.Prompt, error) {
	log.Debug("fetching prompts", "baseURL", client.baseURL)

	res, err := client.conn.Get("/prompts", fiberClient.Config{
		Ctx:    ctx,
		Header: requestHeaders(),
	})

	if err != nil {
		return nil, &ConnectionError{Message: "GET /prompts", Err: err}
	}

	var prompts []prompt.Prompt
	if err := decode(res, &prompts); err != nil {
		return nil, err
	}

	log.Debug("fetched prompts", "count", len(prompts))
	return prompts, nil
}

// post sends a JSON body and decodes the JSON response into out.
func (client *Client) post(ctx context.Context, path string, body, out any) error {
	res, err := client.conn.Post(path, fiberClient.Config{
		Ctx:    ctx,
		Header: requestHeaders(),
		Body:   body,
	})

	if err != nil {
		return &ConnectionError{Message: "POST " + path, Err: err}
	}

	return decode(res, out)
}

// decode maps the response onto the error taxonomy: non-2xx becomes a
// RequestError carrying the backend's detail message, an unreadable success
// body becomes a DecodingError.
func decode(res *fiberClient.Response, out any) error {
	status := res.StatusCode()

	if status < 200 || status >= 300 {
		var body errorBody
		_ = json.Unmarshal(res.Body(), &body)
		return &RequestError{StatusCode: status, Detail: body.Detail}
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		return &DecodingError{Message: "unexpected response body", Err: err}
	}

	return nil
}

func requestHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"X-Request-ID": uuid.NewString(),
	}
}
