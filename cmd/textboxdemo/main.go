// Command textboxdemo renders a text box to a PNG file.
//
// Usage:
//
//	textboxdemo -text "Hello, World" -width 400 -height 120 -out hello.png
//	textboxdemo -font Roboto.ttf -fallback NotoSansCJK.otf -text "Hi 你好"
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/textbox"
	"github.com/gogpu/textbox/font"
	"github.com/gogpu/textbox/layout"
)

// fileList collects a repeatable string flag.
type fileList []string

func (l *fileList) String() string { return strings.Join(*l, ",") }

func (l *fileList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var (
		text       = flag.String("text", "Hello, World", "text to draw")
		width      = flag.Int("width", 400, "image width")
		height     = flag.Int("height", 120, "image height")
		size       = flag.Float64("size", textbox.DefaultSize, "font size in pixels per em")
		halign     = flag.String("halign", "center", "horizontal alignment: left, center, right")
		valign     = flag.String("valign", "middle", "vertical alignment: top, middle, bottom")
		fg         = flag.String("color", "#ffffff", "text color (hex)")
		bg         = flag.String("background", "#202020", "background color (hex)")
		fontPath   = flag.String("font", "", "primary font file (default Go Regular)")
		lang       = flag.String("lang", "en", "language tag used for shaping")
		output     = flag.String("out", "textbox.png", "output file")
		verbose    = flag.Bool("v", false, "debug logging")
		fallbacks  fileList
		drawBounds = flag.Bool("bounds", false, "outline the measured outer rectangle")
	)
	flag.Var(&fallbacks, "fallback", "fallback font file (repeatable)")
	flag.Parse()

	if *verbose {
		textbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(options{
		text:       *text,
		width:      *width,
		height:     *height,
		size:       *size,
		halign:     *halign,
		valign:     *valign,
		fg:         *fg,
		bg:         *bg,
		fontPath:   *fontPath,
		lang:       *lang,
		fallbacks:  fallbacks,
		output:     *output,
		drawBounds: *drawBounds,
	}); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	text          string
	width, height int
	size          float64
	halign        string
	valign        string
	fg, bg        string
	fontPath      string
	lang          string
	fallbacks     []string
	output        string
	drawBounds    bool
}

func run(o options) error {
	ha, err := parseHAlign(o.halign)
	if err != nil {
		return err
	}
	va, err := parseVAlign(o.valign)
	if err != nil {
		return err
	}
	fg, ok := textbox.Hex(o.fg)
	if !ok {
		return fmt.Errorf("invalid -color %q", o.fg)
	}
	bg, ok := textbox.Hex(o.bg)
	if !ok {
		return fmt.Errorf("invalid -background %q", o.bg)
	}

	var fontOpts []font.Option
	if o.lang != "" {
		fontOpts = append(fontOpts, font.WithLanguage(o.lang))
	}
	fonts, err := loadFonts(o.fontPath, o.fallbacks, fontOpts...)
	if err != nil {
		return err
	}
	b := textbox.New(fonts[0], o.text).
		Color(fg).
		Size(o.size).
		HAlign(ha).
		VAlign(va)
	for _, f := range fonts[1:] {
		b = b.FallbackFont(f)
	}

	tb, err := b.Build(layout.NewLayout(), float64(o.width), float64(o.height))
	if err != nil {
		return err
	}

	canvas, err := textbox.NewPixmap(o.width, o.height)
	if err != nil {
		return err
	}
	canvas.Fill(bg)

	cache := textbox.NewGlyphCache()
	if err := tb.Draw(canvas, cache); err != nil {
		return err
	}
	if o.drawBounds {
		r, err := tb.RectOuter()
		if err != nil {
			return err
		}
		outline(canvas, r, fg)
	}

	if err := canvas.SavePNG(o.output); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	stats := cache.Stats()
	log.Printf("Saved %s (%dx%d, %d glyph bitmaps, %d misses)", o.output, o.width, o.height, cache.Len(), stats.Misses)
	return nil
}

// loadFonts parses the primary font and the fallbacks concurrently.
// The result keeps the primary first and the fallbacks in flag order.
func loadFonts(primary string, fallbacks []string, opts ...font.Option) ([]*font.Font, error) {
	paths := append([]string{primary}, fallbacks...)
	fonts := make([]*font.Font, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			var (
				f   *font.Font
				err error
			)
			if path == "" {
				f, err = font.Parse(goregular.TTF, opts...)
			} else {
				f, err = font.ParseFile(path, opts...)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fonts[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fonts, nil
}

func parseHAlign(s string) (layout.HorizontalAlign, error) {
	for _, a := range []layout.HorizontalAlign{layout.AlignLeft, layout.AlignCenter, layout.AlignRight} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid -halign %q", s)
}

func parseVAlign(s string) (layout.VerticalAlign, error) {
	for _, a := range []layout.VerticalAlign{layout.AlignTop, layout.AlignMiddle, layout.AlignBottom} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid -valign %q", s)
}

// outline draws a one pixel rectangle border.
func outline(p *textbox.Pixmap, r textbox.Rect, c textbox.RGBA) {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.Right()), int(r.Bottom())
	for x := x0; x <= x1; x++ {
		p.SetPixel(x, y0, c)
		p.SetPixel(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		p.SetPixel(x0, y, c)
		p.SetPixel(x1, y, c)
	}
}
