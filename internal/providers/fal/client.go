// Package fal is an HTTP client for the fal.ai generation API. It implements
// the providers interfaces over the synchronous run endpoints and downloads
// the resulting artifact so callers only ever see bytes.
package fal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/photostudio/internal/providers"
)

const (
	defaultBaseURL     = "https://fal.run"
	defaultHTTPTimeout = 5 * time.Minute

	// Image model variants.
	ImageModelSchnell = "schnell"
	ImageModelDev     = "dev"

	// Video model variants.
	VideoModelHailuo = "hailuo"
	VideoModelLTX    = "ltx"

	defaultImageSize = "square_hd"

	// defaultEditStrength is how far an edit departs from its source image
	// when the caller does not say.
	defaultEditStrength = 0.8
)

var imageEndpoints = map[string]string{
	ImageModelSchnell: "fal-ai/flux/schnell",
	ImageModelDev:     "fal-ai/flux/dev",
}

var videoEndpoints = map[string]string{
	VideoModelHailuo: "fal-ai/minimax/hailuo-02/standard",
	VideoModelLTX:    "fal-ai/ltx-video",
}

// DefaultVideoDuration returns the clip length a model produces when the
// request does not specify one.
func DefaultVideoDuration(model string) int {
	if model == VideoModelLTX {
		return 5
	}
	return 6
}

// Client talks to the fal.ai API. It implements providers.ImageGenerator and
// providers.VideoGenerator.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewClient constructs a fal.ai API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type imageResult struct {
	Images []struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
	} `json:"images"`
}

type videoResult struct {
	Video struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
	} `json:"video"`
}

// dataURL inlines an image payload the way the API accepts uploads without a
// separate file transfer.
func dataURL(data []byte) string {
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// GenerateImage runs a FLUX model on the prompt and downloads the first
// returned image. A request carrying a source image becomes an
// image-to-image edit.
func (c *Client) GenerateImage(ctx context.Context, req providers.ImageRequest) (*providers.Artifact, error) {
	const op = "generate image"

	model := req.Model
	if model == "" {
		// Edits default to the higher-quality model.
		if req.SourceImage != nil {
			model = ImageModelDev
		} else {
			model = ImageModelSchnell
		}
	}
	endpoint, ok := imageEndpoints[model]
	if !ok {
		return nil, c.wrap(op, fmt.Errorf("unknown image model %q", model))
	}
	size := req.Size
	if size == "" {
		size = defaultImageSize
	}
	steps := 28
	if model == ImageModelSchnell {
		steps = 4
	}

	input := map[string]any{
		"prompt":                req.Prompt,
		"num_inference_steps":   steps,
		"num_images":            1,
		"enable_safety_checker": true,
	}
	if req.SourceImage != nil {
		input["image_url"] = dataURL(req.SourceImage)
		strength := req.Strength
		if strength <= 0 {
			strength = defaultEditStrength
		}
		input["strength"] = strength
	} else {
		input["image_size"] = size
	}

	var result imageResult
	if err := c.run(ctx, endpoint, input, &result); err != nil {
		return nil, c.wrap(op, err)
	}
	if len(result.Images) == 0 {
		return nil, c.wrap(op, errors.New("no image returned, possibly rejected by safety filters"))
	}

	data, err := c.download(ctx, result.Images[0].URL)
	if err != nil {
		return nil, c.wrap(op, err)
	}
	contentType := result.Images[0].ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	return &providers.Artifact{Data: data, ContentType: contentType}, nil
}

// GenerateVideo runs a video model on the prompt, reporting progress through
// req.Progress, and downloads the resulting clip.
func (c *Client) GenerateVideo(ctx context.Context, req providers.VideoRequest) (*providers.Artifact, error) {
	const op = "generate video"

	model := req.Model
	if model == "" {
		model = VideoModelHailuo
	}
	endpoint, ok := videoEndpoints[model]
	if !ok {
		return nil, c.wrap(op, fmt.Errorf("unknown video model %q", model))
	}
	duration := req.DurationSeconds
	if duration <= 0 {
		duration = DefaultVideoDuration(model)
	}

	progress := req.Progress
	if progress == nil {
		progress = func(string) {}
	}

	input := map[string]any{
		"prompt":   req.Prompt,
		"duration": duration,
	}
	if req.SourceImage != nil {
		input["image_url"] = dataURL(req.SourceImage)
	}

	progress("Sending request...")
	var result videoResult
	if err := c.run(ctx, endpoint, input, &result); err != nil {
		return nil, c.wrap(op, err)
	}
	if result.Video.URL == "" {
		return nil, c.wrap(op, errors.New("no video returned, possibly rejected by safety filters"))
	}

	progress("Video generated, downloading...")
	data, err := c.download(ctx, result.Video.URL)
	if err != nil {
		return nil, c.wrap(op, err)
	}
	progress("Video ready.")

	contentType := result.Video.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}
	return &providers.Artifact{Data: data, ContentType: contentType}, nil
}

// run posts input to the model endpoint and decodes the JSON result.
func (c *Client) run(ctx context.Context, endpoint string, input map[string]any, out any) error {
	if c.apiKey == "" {
		return errors.New("api key required")
	}

	target, err := url.JoinPath(c.baseURL, endpoint)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	encoded, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// download fetches the artifact the API left at a result URL.
func (c *Client) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: http %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

func (c *Client) wrap(op string, err error) error {
	return &providers.Error{Provider: "fal", Op: op, Err: err}
}
