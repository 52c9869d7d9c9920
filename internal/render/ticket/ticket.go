package ticket

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/orincore/glitzfusion/internal/domain"
)

// Default-design canvas size.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Text that must not overflow needs a template at least this wide;
// there is no automatic line wrapping on the templated path.
const MinTemplateWidth = 600

type Renderer struct {
	client *http.Client
}

func NewRenderer() *Renderer {
	return &Renderer{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// RenderOnTemplate composites the resolved member code and booking
// identity onto a remote template image. The output canvas matches
// the template's pixel dimensions exactly.
func (r *Renderer) RenderOnTemplate(
	ctx context.Context,
	templateURL string,
	data domain.TicketData,
) ([]byte, error) {
	const op = "render.ticket.RenderOnTemplate"

	if templateURL == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrNoTemplateURL)
	}

	tmpl, err := r.fetchTemplate(ctx, templateURL)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	bounds := tmpl.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawImage(tmpl, 0, 0)

	cx := float64(w) / 2
	cy := float64(h) / 2

	// Single dark color for contrast against arbitrary templates.
	dc.SetRGB(0.08, 0.08, 0.08)

	lines := []struct {
		text   string
		bold   bool
		size   float64
		offset float64
	}{
		{data.MemberCode, true, 36, -40},
		{data.MemberName, true, 24, 5},
		{data.EventTitle, false, 20, 40},
		{fmt.Sprintf("%s • %s", data.Date, data.Time), false, 16, 75},
	}

	for _, ln := range lines {
		face, err := newFace(ln.bold, ln.size)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		dc.SetFontFace(face)
		dc.DrawStringAnchored(ln.text, cx, cy+ln.offset, 0.5, 0.5)
	}

	return encodePNG(dc, op)
}

// RenderDefault draws the built-in FusionX design, used when no
// template is supplied.
func (r *Renderer) RenderDefault(data domain.TicketData) ([]byte, error) {
	const op = "render.ticket.RenderDefault"

	dc := gg.NewContext(DefaultWidth, DefaultHeight)

	// Brand-green gradient, top-left to bottom-right.
	grad := gg.NewLinearGradient(0, 0, DefaultWidth, DefaultHeight)
	grad.AddColorStop(0, brandGreen)
	grad.AddColorStop(1, brandGreenDark)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, DefaultWidth, DefaultHeight)
	dc.Fill()

	// Concentric decorative borders.
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(8)
	dc.DrawRectangle(12, 12, DefaultWidth-24, DefaultHeight-24)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(24, 24, DefaultWidth-48, DefaultHeight-48)
	dc.Stroke()

	cx := float64(DefaultWidth) / 2

	dc.SetRGB(1, 1, 1)

	lines := []struct {
		text string
		bold bool
		size float64
		y    float64
	}{
		{"FusionX EVENT TICKET", true, 28, 78},
		{data.MemberCode, true, 40, 148},
		{data.MemberName, true, 24, 200},
		{data.EventTitle, false, 20, 242},
		{fmt.Sprintf("%s • %s", data.Date, data.Time), false, 16, 278},
		{data.Venue, false, 16, 308},
	}

	for _, ln := range lines {
		face, err := newFace(ln.bold, ln.size)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		dc.SetFontFace(face)
		dc.DrawStringAnchored(ln.text, cx, ln.y, 0.5, 0.5)
	}

	if data.TotalMembers > 1 {
		face, err := newFace(false, 14)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		dc.SetFontFace(face)
		member := fmt.Sprintf("Member %d of %d", data.MemberIndex+1, data.TotalMembers)
		dc.DrawStringAnchored(member, cx, 352, 0.5, 0.5)
	}

	return encodePNG(dc, op)
}

func (r *Renderer) fetchTemplate(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTemplateUnavailable, resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}

	return img, nil
}

func encodePNG(dc *gg.Context, op string) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	return buf.Bytes(), nil
}
