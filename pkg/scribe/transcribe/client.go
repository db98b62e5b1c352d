// Package transcribe is a thin client for a hosted transcription API.
// It submits audio URLs with hotword boosts and retrieves finished
// transcripts; polling and retry policy are left to the caller.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client talks to one transcription API endpoint with one auth token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given API base URL, e.g.
// "https://api.assemblyai.com/v2".
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// SubmitRequest is the payload for a new transcription job.
type SubmitRequest struct {
	AudioURL   string   `json:"audio_url"`
	WordBoost  []string `json:"word_boost,omitempty"`
	BoostParam string   `json:"boost_param,omitempty"`
}

// Transcript is the API's view of a transcription job.
type Transcript struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	AudioURL string `json:"audio_url"`
	Text     string `json:"text"`
	Error    string `json:"error,omitempty"`
}

// Upload is the response to an audio upload: a URL usable as a
// SubmitRequest's AudioURL.
type Upload struct {
	UploadURL string `json:"upload_url"`
}

// Submit creates a transcription job.
func (c *Client) Submit(ctx context.Context, sr SubmitRequest) (Transcript, error) {
	var t Transcript

	body, err := json.Marshal(sr)
	if err != nil {
		return t, fmt.Errorf("encode submit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return t, err
	}
	req.Header.Set("authorization", c.token)
	req.Header.Set("content-type", "application/json")

	err = c.do(req, &t)
	return t, err
}

// Get retrieves a transcription job by ID.
func (c *Client) Get(ctx context.Context, id string) (Transcript, error) {
	var t Transcript

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+id, nil)
	if err != nil {
		return t, err
	}
	req.Header.Set("authorization", c.token)

	err = c.do(req, &t)
	return t, err
}

// UploadFile streams a local audio file to the API's upload endpoint.
func (c *Client) UploadFile(ctx context.Context, path string) (Upload, error) {
	var u Upload

	f, err := os.Open(path)
	if err != nil {
		return u, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", f)
	if err != nil {
		return u, err
	}
	req.Header.Set("authorization", c.token)

	err = c.do(req, &u)
	return u, err
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
