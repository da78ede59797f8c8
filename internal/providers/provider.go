// Package providers defines the interfaces the studio uses to talk to
// external generation services. The core treats providers as opaque
// collaborators: it gates calls with the quota ledger and catalogs results in
// the gallery, but never interprets provider payloads.
package providers

import (
	"context"
	"fmt"
)

// Artifact is a generated binary result ready for gallery storage.
type Artifact struct {
	Data        []byte
	ContentType string
}

// ProgressFunc receives human-readable status updates during long-running
// generation calls. May be nil.
type ProgressFunc func(message string)

// ImageRequest describes one image generation call.
type ImageRequest struct {
	Prompt string

	// Model selects a provider-specific model variant. Empty picks the
	// provider default.
	Model string

	// Size is a provider-specific size preset. Empty picks the default.
	Size string

	// SourceImage, when set, switches the call to image-to-image editing:
	// the prompt describes changes applied to this image.
	SourceImage []byte

	// Strength controls how far an edit departs from SourceImage, in (0, 1].
	// Zero picks the provider default. Ignored without SourceImage.
	Strength float64
}

// VideoRequest describes one video generation call.
type VideoRequest struct {
	Prompt string
	Model  string

	// DurationSeconds is the requested clip length. Zero picks the model's
	// default duration.
	DurationSeconds int

	// SourceImage optionally seeds the clip with a still image.
	SourceImage []byte

	Progress ProgressFunc
}

// ImageGenerator produces still images from text prompts.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*Artifact, error)
}

// VideoGenerator produces video clips from text prompts.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, req VideoRequest) (*Artifact, error)
}

// Error wraps a provider failure with enough context to present it without
// exposing wire details to callers.
type Error struct {
	Provider string
	Op       string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
