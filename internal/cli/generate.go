package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/platforms"
	"github.com/dmitrijs2005/photostudio/internal/providers"
	"github.com/dmitrijs2005/photostudio/internal/providers/fal"
	"github.com/dmitrijs2005/photostudio/internal/services"
)

// imageSizeFor maps a platform aspect ratio onto a provider size preset.
func imageSizeFor(ratio string) string {
	switch ratio {
	case "9:16":
		return "portrait_16_9"
	case "3:4":
		return "portrait_4_3"
	case "16:9", "1.91:1", "3:1":
		return "landscape_16_9"
	case "4:3":
		return "landscape_4_3"
	default:
		return "square_hd"
	}
}

// GenerateImage runs the full image flow: pre-gate on remaining allowance,
// call the provider, and on success record usage and catalog the result.
// Nothing is recorded when the provider fails.
func (a *App) GenerateImage(ctx context.Context) error {
	rem, err := a.quota.Remaining(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		return err
	}
	if rem.Images <= 0 {
		fmt.Fprintf(a.out, "Image limit reached for the %s plan. Try 'plan' to upgrade.\n", rem.Plan.Name)
		return nil
	}

	prompt, err := getSimpleText(a.reader, "Describe the image", os.Stdout)
	if err != nil {
		return err
	}
	if prompt == "" {
		fmt.Fprintln(a.out, "A prompt is required.")
		return nil
	}

	platform, err := getSimpleText(a.reader, "Target platform (optional, e.g. instagram)", os.Stdout)
	if err != nil {
		return err
	}
	size := "square_hd"
	if platform != "" {
		size = imageSizeFor(platforms.AspectRatio(platform, "image", "feed"))
	}

	fmt.Fprintln(a.out, "Generating...")
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	defer cancel()

	artifact, err := a.images.GenerateImage(callCtx, providers.ImageRequest{Prompt: prompt, Size: size})
	if err != nil {
		fmt.Fprintln(a.out, "Generation failed:", err)
		return nil
	}

	ok, err := a.quota.TryConsumeImage(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Image limit reached, result discarded.")
		return nil
	}

	item, err := a.gallery.Add(ctx, services.AddParams{
		Kind:   models.ItemKindImage,
		Prompt: prompt,
		Data:   artifact.Data,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to gallery as item %d.\n", item.ID)
	return nil
}

// EditImage runs the image-to-image flow: a source file plus a prompt
// describing the changes. It consumes the image allowance like a fresh
// generation.
func (a *App) EditImage(ctx context.Context) error {
	rem, err := a.quota.Remaining(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		return err
	}
	if rem.Images <= 0 {
		fmt.Fprintf(a.out, "Image limit reached for the %s plan. Try 'plan' to upgrade.\n", rem.Plan.Name)
		return nil
	}

	path, err := getSimpleText(a.reader, "Path of the image to edit", os.Stdout)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read image:", err)
		return nil
	}

	prompt, err := getSimpleText(a.reader, "Describe the changes", os.Stdout)
	if err != nil {
		return err
	}
	if prompt == "" {
		fmt.Fprintln(a.out, "A prompt is required.")
		return nil
	}

	fmt.Fprintln(a.out, "Editing...")
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	defer cancel()

	artifact, err := a.images.GenerateImage(callCtx, providers.ImageRequest{
		Prompt:      prompt,
		SourceImage: source,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Edit failed:", err)
		return nil
	}

	ok, err := a.quota.TryConsumeImage(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Image limit reached, result discarded.")
		return nil
	}

	item, err := a.gallery.Add(ctx, services.AddParams{
		Kind:   models.ItemKindImage,
		Prompt: prompt,
		Data:   artifact.Data,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to gallery as item %d.\n", item.ID)
	return nil
}

// GenerateVideo runs the video flow. The whole request is rejected up front
// when the clip length does not fit the remaining allowance.
func (a *App) GenerateVideo(ctx context.Context) error {
	duration := fal.DefaultVideoDuration(fal.VideoModelHailuo)

	rem, err := a.quota.Remaining(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		return err
	}
	if rem.VideoSeconds < duration {
		fmt.Fprintf(a.out, "A %d-second clip does not fit your remaining %d video seconds on the %s plan.\n",
			duration, rem.VideoSeconds, rem.Plan.Name)
		return nil
	}

	prompt, err := getSimpleText(a.reader, "Describe the video", os.Stdout)
	if err != nil {
		return err
	}
	if prompt == "" {
		fmt.Fprintln(a.out, "A prompt is required.")
		return nil
	}

	script, err := GetMultiline(a.reader, "Narration script (optional):", os.Stdout)
	if err != nil {
		return err
	}

	imagePath, err := getSimpleText(a.reader, "Source image path (optional)", os.Stdout)
	if err != nil {
		return err
	}
	var source []byte
	if imagePath != "" {
		source, err = os.ReadFile(imagePath)
		if err != nil {
			fmt.Fprintln(a.out, "Cannot read image:", err)
			return nil
		}
	}

	// Video runs take minutes; no short timeout here, ctx cancellation still
	// applies.
	artifact, err := a.videos.GenerateVideo(ctx, providers.VideoRequest{
		Prompt:          prompt,
		DurationSeconds: duration,
		SourceImage:     source,
		Progress:        func(msg string) { fmt.Fprintln(a.out, msg) },
	})
	if err != nil {
		fmt.Fprintln(a.out, "Generation failed:", err)
		return nil
	}

	ok, err := a.quota.TryConsumeVideoSeconds(ctx, duration)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Video limit reached, result discarded.")
		return nil
	}

	item, err := a.gallery.Add(ctx, services.AddParams{
		Kind:            models.ItemKindVideo,
		Prompt:          prompt,
		NarrationScript: script,
		Data:            artifact.Data,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to gallery as item %d.\n", item.ID)
	return nil
}
