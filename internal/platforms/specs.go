// Package platforms carries the static social-platform format tables used to
// parameterize generation requests: per-platform dimensions, aspect ratios,
// and duration limits. The core does not own or interpret this data.
package platforms

import "strings"

// Format describes one placement (feed, story, reel, ...) on a platform.
type Format struct {
	Width       int
	Height      int
	AspectRatio string
	Label       string
	// MaxDurationSeconds is zero for image formats.
	MaxDurationSeconds int
}

// Spec describes the placements a platform accepts for images and videos.
type Spec struct {
	Name   string
	Images map[string]Format
	Videos map[string]Format
}

var specs = map[string]Spec{
	"instagram": {
		Name: "Instagram",
		Images: map[string]Format{
			"feed":    {Width: 1080, Height: 1080, AspectRatio: "1:1", Label: "Square Post"},
			"story":   {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "Story/Reel"},
			"profile": {Width: 320, Height: 320, AspectRatio: "1:1", Label: "Profile Picture"},
		},
		Videos: map[string]Format{
			"feed":  {Width: 1080, Height: 1080, AspectRatio: "1:1", Label: "Feed Video", MaxDurationSeconds: 60},
			"story": {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "Story", MaxDurationSeconds: 60},
			"reel":  {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "Reel", MaxDurationSeconds: 90},
		},
	},
	"youtube": {
		Name: "YouTube",
		Images: map[string]Format{
			"cover":   {Width: 2560, Height: 1440, AspectRatio: "16:9", Label: "Channel Banner"},
			"profile": {Width: 800, Height: 800, AspectRatio: "1:1", Label: "Channel Icon"},
		},
		Videos: map[string]Format{
			"feed":   {Width: 1920, Height: 1080, AspectRatio: "16:9", Label: "Standard HD", MaxDurationSeconds: 43200},
			"shorts": {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "YouTube Shorts", MaxDurationSeconds: 60},
		},
	},
	"tiktok": {
		Name: "TikTok",
		Images: map[string]Format{
			"profile": {Width: 200, Height: 200, AspectRatio: "1:1", Label: "Profile Picture"},
		},
		Videos: map[string]Format{
			"feed":  {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "TikTok Video", MaxDurationSeconds: 600},
			"story": {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "TikTok Story", MaxDurationSeconds: 60},
		},
	},
	"twitter": {
		Name: "X (Twitter)",
		Images: map[string]Format{
			"feed":    {Width: 1200, Height: 675, AspectRatio: "16:9", Label: "Tweet Image"},
			"profile": {Width: 400, Height: 400, AspectRatio: "1:1", Label: "Profile Picture"},
			"cover":   {Width: 1500, Height: 500, AspectRatio: "3:1", Label: "Header Image"},
		},
		Videos: map[string]Format{
			"feed": {Width: 1280, Height: 720, AspectRatio: "16:9", Label: "Tweet Video", MaxDurationSeconds: 140},
		},
	},
	"facebook": {
		Name: "Facebook",
		Images: map[string]Format{
			"feed":    {Width: 1200, Height: 630, AspectRatio: "1.91:1", Label: "Feed Post"},
			"story":   {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "Story"},
			"profile": {Width: 320, Height: 320, AspectRatio: "1:1", Label: "Profile Picture"},
		},
		Videos: map[string]Format{
			"feed":  {Width: 1280, Height: 720, AspectRatio: "16:9", Label: "Feed Video", MaxDurationSeconds: 240},
			"story": {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "Story", MaxDurationSeconds: 120},
			"reel":  {Width: 1080, Height: 1920, AspectRatio: "9:16", Label: "Reel", MaxDurationSeconds: 90},
		},
	},
}

// Lookup returns the spec for a platform key (case-insensitive).
func Lookup(platform string) (Spec, bool) {
	s, ok := specs[strings.ToLower(strings.TrimSpace(platform))]
	return s, ok
}

// Names returns the platform keys in no particular order.
func Names() []string {
	out := make([]string, 0, len(specs))
	for k := range specs {
		out = append(out, k)
	}
	return out
}

// AspectRatio returns the aspect ratio to request from a generation provider
// for the given platform, content kind ("image" or "video"), and placement.
// Unknown combinations fall back to square.
func AspectRatio(platform, kind, placement string) string {
	spec, ok := Lookup(platform)
	if !ok {
		return "1:1"
	}
	var f Format
	switch kind {
	case "video":
		f, ok = spec.Videos[placement]
	default:
		f, ok = spec.Images[placement]
	}
	if !ok || f.AspectRatio == "" {
		return "1:1"
	}
	return f.AspectRatio
}
