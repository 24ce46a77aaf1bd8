package widgets

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"viewkit/internal/host"
	"viewkit/internal/view"
)

// DefaultFontSize is used when the text style has no fontSize.
const DefaultFontSize = 20

// Label is a view showing one line of text. Attributes: text, textStyle.
// A string positional argument supplies the text when the bag has none.
type Label struct {
	*view.View
	face    font.Face
	argText string
	content host.Node
}

// NewLabel builds a label. Text is measured with face metrics scaled to the font size.
func NewLabel(env view.Env, attrs view.Bag, args ...any) (*Label, error) {
	l := &Label{face: basicfont.Face7x13}
	v, err := view.New(env, attrs, view.Behavior{
		ParseAttrs: l.parseAttrs,
		ParseArgs:  l.parseArgs,
		Measure:    l.measure,
		Layout:     l.layout,
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("label: %w", err)
	}
	l.View = v
	return l, nil
}

func (l *Label) parseAttrs(_ *view.View, a *view.Attrs) error {
	if s, ok := a.String("text"); ok {
		a.Set("text", s)
	}
	return a.Apply(view.AttrTextStyle, "textStyle")
}

func (l *Label) parseArgs(v *view.View, args []any) error {
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			l.argText = s
		}
	}
	return nil
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text(l.View)
}

func (l *Label) text(v *view.View) string {
	if s, ok := v.Value("text").(string); ok {
		return s
	}
	return l.argText
}

func (l *Label) style(v *view.View) (size float32, fill color.RGBA) {
	style, _ := v.Value("textStyle").(view.TextStyle)
	size = DefaultFontSize
	if fs, ok := style.FontSize(); ok && fs > 0 {
		size = fs
	}
	fill = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if c, ok := style.Fill(); ok {
		fill = c
	}
	return size, fill
}

func (l *Label) measure(v *view.View) (float32, float32) {
	size, _ := l.style(v)
	lineHeight := float32(l.face.Metrics().Height) / 64
	scale := size / lineHeight
	advance := float32(font.MeasureString(l.face, l.text(v))) / 64
	pad := v.Padding()
	return advance*scale + pad.Horizontal(), size + pad.Vertical()
}

func (l *Label) layout(v *view.View) {
	size, fill := l.style(v)
	next := v.Env().Host.NewText(host.Text{Content: l.text(v), Size: size, Color: fill})
	next.SetPosition(v.AlignOffsetX()+v.Padding().Left(), v.AlignOffsetY()+v.Padding().Top())
	l.content = v.Replace(l.content, next)
}
