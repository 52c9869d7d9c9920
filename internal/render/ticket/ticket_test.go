package ticket

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orincore/glitzfusion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTicket() domain.TicketData {
	return domain.TicketData{
		BookingCode:  "FX001",
		MemberCode:   "FX001",
		MemberName:   "Asha Rao",
		EventTitle:   "FusionX Summer Showcase",
		Date:         "15 March 2026",
		Time:         "7:00 PM",
		Venue:        "GLITZFUSION Auditorium",
		MemberIndex:  0,
		TotalMembers: 1,
	}
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func TestRenderDefault_Dimensions(t *testing.T) {
	r := NewRenderer()

	for _, total := range []int{1, 2, 7} {
		data := sampleTicket()
		data.TotalMembers = total

		b, err := r.RenderDefault(data)
		require.NoError(t, err)

		img := decodePNG(t, b)
		assert.Equal(t, DefaultWidth, img.Bounds().Dx())
		assert.Equal(t, DefaultHeight, img.Bounds().Dy())
	}
}

func TestRenderOnTemplate_PreservesTemplateDimensions(t *testing.T) {
	var tmpl bytes.Buffer
	require.NoError(t, png.Encode(&tmpl, image.NewRGBA(image.Rect(0, 0, 1000, 500))))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(tmpl.Bytes())
	}))
	defer srv.Close()

	b, err := NewRenderer().RenderOnTemplate(context.Background(), srv.URL, sampleTicket())
	require.NoError(t, err)

	img := decodePNG(t, b)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestRenderOnTemplate_CorruptTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	_, err := NewRenderer().RenderOnTemplate(context.Background(), srv.URL, sampleTicket())

	assert.ErrorIs(t, err, ErrTemplateUnavailable)
}

func TestRenderOnTemplate_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRenderer().RenderOnTemplate(context.Background(), srv.URL, sampleTicket())

	assert.ErrorIs(t, err, ErrTemplateUnavailable)
}

func TestRenderOnTemplate_EmptyURL(t *testing.T) {
	_, err := NewRenderer().RenderOnTemplate(context.Background(), "", sampleTicket())

	assert.ErrorIs(t, err, ErrNoTemplateURL)
}
