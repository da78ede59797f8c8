package models

// ItemKind classifies a gallery item.
type ItemKind string

const (
	ItemKindImage ItemKind = "image"
	ItemKindVideo ItemKind = "video"
)

// GalleryItem is one saved artifact in a user's gallery. Every item references
// exactly one blob; the blob key is derived deterministically from the owning
// user's email and the item id, so keys are unique and never shared.
type GalleryItem struct {
	// ID is timestamp-derived and doubles as the recency sort key.
	ID int64 `json:"id"`

	Kind   ItemKind `json:"kind"`
	Prompt string   `json:"prompt"`

	// NarrationScript is set on video items only.
	NarrationScript string `json:"narrationScript,omitempty"`

	// BlobKey resolves to the binary content in the blob store.
	BlobKey string `json:"blobKey"`

	// CreatedAt is an RFC 3339 timestamp.
	CreatedAt string `json:"createdAt"`
}
