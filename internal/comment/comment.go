// Package comment encodes the tag of a bot comment into the comment body.
//
// The tag is appended to the status text as an HTML comment, it is not
// visible when GitHub renders the comment:
//
//	<status>
//	<!--<marker>_<tag>-->
package comment

import (
	"strings"

	"github.com/simplesurance/mergebot/internal/reconcile"
)

const suffix = "-->"

// Codec renders and parses tagged comment bodies.
type Codec struct {
	prefix string
}

// NewCodec returns a Codec that marks comments with marker.
// The marker should be unique to the bot, comments of other bots using the
// same format are otherwise interpreted as own comments.
func NewCodec(marker string) *Codec {
	return &Codec{prefix: "\n<!--" + marker + "_"}
}

// Render returns the body of the comment.
func (c *Codec) Render(rc *reconcile.ResponseComment) string {
	return rc.Status + c.prefix + rc.Tag + suffix
}

// Parse returns the tag and status of a body created by Render.
// ok is false when the body does not contain a tag marker. The tag can be
// empty.
func (c *Codec) Parse(body string) (tag, status string, ok bool) {
	start := strings.LastIndex(body, c.prefix)
	if start < 0 {
		return "", "", false
	}

	tagStart := start + len(c.prefix)

	end := strings.LastIndex(body, suffix)
	if end < tagStart {
		return "", "", false
	}

	return body[tagStart:end], body[:start], true
}
