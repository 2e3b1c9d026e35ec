package widgets

import (
	"github.com/go-facet/facet/pkg/foreign"
)

// Label is a static text widget.
type Label struct {
	Handle
}

// NewLabel creates a label with the given text.
func NewLabel(rt foreign.Runtime, text string) *Label {
	return &Label{construct(rt, "Label", foreign.Kwargs{"text": rt.Str(text)})}
}

// Text returns the label's current text.
func (l *Label) Text() string {
	s, err := l.rt.AsStr(l.must(l.rt.Call(l.obj, "get_text")))
	if err != nil {
		fail("widgets.Label.Text", err)
	}
	return s
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.must(l.rt.Call(l.obj, "set_text", l.rt.Str(text)))
}

// Image displays a static asset served from the application's resource
// directory, referenced by relative filename.
type Image struct {
	Handle
}

// NewImage creates an image widget for the given resource filename.
func NewImage(rt foreign.Runtime, filename string) *Image {
	return &Image{construct(rt, "Image", foreign.Kwargs{"filename": rt.Str(filename)})}
}

// SetImage points the widget at a different resource filename.
func (i *Image) SetImage(filename string) {
	i.must(i.rt.Call(i.obj, "set_image", i.rt.Str(filename)))
}
