package models

// Visibility controls who can see a post.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is one of the known visibility values.
// Unknown values are rejected at the request boundary.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// AttachmentType is the media kind of a post attachment.
type AttachmentType string

const (
	AttachmentTypePhoto AttachmentType = "photo"
	AttachmentTypeVideo AttachmentType = "video"
)

func (t AttachmentType) Valid() bool {
	return t == AttachmentTypePhoto || t == AttachmentTypeVideo
}
