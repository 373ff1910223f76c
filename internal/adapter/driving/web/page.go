package web

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/hotmeme/internal/adapter/driving/web/viewmodel"
)

const pageStyle = `body{margin:0;padding:2rem 1rem;background:#fdf6ec;color:#2d2a26;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;text-align:center}
main{max-width:42rem;margin:0 auto}
h1{font-size:1.5rem;line-height:1.3}
h1 a{color:#c2410c;text-decoration:none}
h1 a:hover{text-decoration:underline}
img{max-width:100%;height:auto;border-radius:.5rem;box-shadow:0 2px 12px rgba(0,0,0,.15)}
.no-media{color:#6b635a;font-style:italic}
.selftext{text-align:left;margin-top:1.5rem}`

// htmlWriter accumulates the first write error so components can emit markup
// without checking every write.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// url writes s as an attribute value after templ's URL sanitization, which
// replaces URLs with unsafe schemes such as javascript:.
func (hw *htmlWriter) url(s string) {
	hw.raw(templ.EscapeString(string(templ.URL(s))))
}

// Layout renders the full HTML document shell around body. All styling is
// inline so the page needs no assets besides the post's own media.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
		hw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>")
		hw.text(title)
		hw.raw("</title>\n<style>\n")
		hw.raw(pageStyle)
		hw.raw("\n</style>\n</head>\n<body>\n")
		if hw.err != nil {
			return hw.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</body>\n</html>\n")
		return hw.err
	})
}

// PostPage renders the featured post: a linked title, then the image or a
// placeholder when the post has no media, then the optional text body.
func PostPage(vm viewmodel.PostViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<main>\n<h1><a href=\"")
		hw.url(vm.PermalinkURL)
		hw.raw("\">")
		hw.text(vm.Title)
		hw.raw("</a></h1>\n")

		if vm.HasImage {
			hw.raw("<figure><img src=\"")
			hw.url(vm.ImageURL)
			hw.raw("\" alt=\"")
			hw.text(vm.Title)
			hw.raw("\"></figure>\n")
		} else {
			hw.raw("<p class=\"no-media\">This post has no image. <a href=\"")
			hw.url(vm.PermalinkURL)
			hw.raw("\">View it on Reddit</a>.</p>\n")
		}

		if vm.SelftextHTML != "" {
			hw.raw("<section class=\"selftext\">\n")
			hw.raw(vm.SelftextHTML)
			hw.raw("</section>\n")
		}

		hw.raw("</main>\n")
		return hw.err
	})
}
