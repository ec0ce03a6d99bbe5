package blog

import (
	"net/url"

	"github.com/novera-digital/novera-site/internal/db/models"
)

// UnknownAuthorName is the placeholder identity used when a post references
// an author that no longer resolves.
const UnknownAuthorName = "Unknown Author"

// avatarBaseURL is the placeholder-avatar service rendering initials for a
// display name. Avatars are derived, never stored.
const avatarBaseURL = "https://ui-avatars.com/api/"

// Author is the denormalized author identity attached to every post response.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// PostResponse is a blog post enriched with its author, the shape all blog
// endpoints return.
type PostResponse struct {
	models.BlogPost
	Author Author `json:"author"`
}

// AvatarURL derives a deterministic placeholder avatar for a display name.
func AvatarURL(name string) string {
	return avatarBaseURL + "?name=" + url.QueryEscape(name) + "&background=0D8ABC&color=fff"
}
