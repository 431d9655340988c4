package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hrnexus_backend/internal/config"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

// Client generates interview invitation drafts through a chat
// completion API.
type Client struct {
	provider Provider
	apiKey   string
	model    string
	baseURL  string
	timeout  time.Duration
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.LLMConfig) *Client {
	provider := Provider(cfg.Provider)
	if provider == "" {
		provider = ProviderNone
	}
	return &Client{
		provider: provider,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		baseURL:  cfg.BaseURL,
		timeout:  60 * time.Second,
	}
}

// ComposeInterviewEmail asks the model for an invitation draft addressed
// to candidateName for roleTitle. The draft keeps literal placeholders
// for the interview date, time and interviewer.
func (c *Client) ComposeInterviewEmail(ctx context.Context, candidateName, roleTitle string) (string, error) {
	if c.provider == ProviderNone {
		return "", fmt.Errorf("LLM provider not configured")
	}

	prompt := c.buildPrompt(candidateName, roleTitle)

	var response string
	var err error

	switch c.provider {
	case ProviderOpenAI:
		response, err = c.callOpenAI(ctx, prompt)
	case ProviderOllama:
		response, err = c.callOllama(ctx, prompt)
	case ProviderGroq:
		response, err = c.callGroq(ctx, prompt)
	default:
		return "", fmt.Errorf("unknown provider: %s", c.provider)
	}

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(response), nil
}

func (c *Client) buildPrompt(candidateName, roleTitle string) string {
	return fmt.Sprintf(`Write a professional and friendly interview invitation email for a candidate named %s who applied for a %s position at TechNexus Solutions. Keep it concise (under 150 words). Include placeholders like [Date], [Time], and [Interviewer Name] for the specific details. Do not include a subject line, only the body text.`, candidateName, roleTitle)
}

func (c *Client) callOpenAI(ctx context.Context, prompt string) (string, error) {
	url := c.baseURL
	if url == "" {
		url = "https://api.openai.com/v1/chat/completions"
	}
	return c.callChatCompletions(ctx, url, prompt)
}

func (c *Client) callGroq(ctx context.Context, prompt string) (string, error) {
	url := c.baseURL
	if url == "" {
		url = "https://api.groq.com/openai/v1/chat/completions"
	}
	return c.callChatCompletions(ctx, url, prompt)
}

func (c *Client) callChatCompletions(ctx context.Context, url, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are an HR assistant drafting candidate emails. Return only the email body text.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.7,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("chat completion error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return result.Choices[0].Message.Content, nil
}

func (c *Client) callOllama(ctx context.Context, prompt string) (string, error) {
	url := c.baseURL
	if url == "" {
		url = "http://localhost:11434/api/generate"
	}

	reqBody := map[string]interface{}{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	return result.Response, nil
}
