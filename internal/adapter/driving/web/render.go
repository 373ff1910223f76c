package web

import (
	"bytes"
	"context"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
)

// PageTitle is the <title> of the featured post page.
const PageTitle = "Hot wholesome meme"

// RenderPost renders post as a complete HTML document. It performs no I/O and
// returns byte-identical output for identical input.
func RenderPost(post model.Post) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = Layout(PageTitle, PostPage(toPostViewModel(post))).Render(context.Background(), &buf)
	return buf.Bytes()
}
