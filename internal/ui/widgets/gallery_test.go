package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/internal/session"
)

func TestPreviewSize(t *testing.T) {
	w, h, cw, ch := previewSize(2, 3)
	assert.Equal(t, float32(120), w)
	assert.Equal(t, float32(90), h, "short extractions use the minimum height")
	assert.Equal(t, float32(40), cw)
	assert.Equal(t, float32(45), ch)

	w, h, cw, ch = previewSize(10, 7)
	assert.Equal(t, float32(120), w)
	assert.Equal(t, float32(140), h)
	assert.Equal(t, float32(17), cw, "cell width is floored")
	assert.Equal(t, float32(14), ch)
}

func TestMiniPreviewDrawsEveryCell(t *testing.T) {
	test.NewTempApp(t)
	m := model.NewMatrix(5, 5)
	e := model.NewExtractionStore().Extract(model.Rect{R0: 1, C0: 1, R1: 2, C1: 3}, m)

	tapped := false
	mp := NewMiniPreview(e, func() { tapped = true })
	r := test.WidgetRenderer(mp)
	assert.Len(t, r.Objects(), 2*3+1)

	test.Tap(mp)
	assert.True(t, tapped)
}

func newGallerySession(t *testing.T) (*Gallery, *session.Session) {
	test.NewTempApp(t)
	s := session.New(model.GridConfig{Rows: 4, Cols: 5, CellSize: 20, GutterSize: 20, Padding: 10})
	return NewGallery(s), s
}

// extract drags from one surface point to another.
func extract(s *session.Session, x0, y0, x1, y1 float64) model.Extraction {
	s.PointerDown(x0, y0, false)
	e, _ := s.PointerUp(x1, y1, false)
	return e
}

func TestGalleryShowsHintWhenEmpty(t *testing.T) {
	g, _ := newGallerySession(t)
	require.Len(t, g.list.Objects, 1)
	assert.NotNil(t, g.Content())
}

func TestGalleryTracksExtractions(t *testing.T) {
	g, s := newGallerySession(t)

	first := extract(s, 35, 35, 55, 55)
	extract(s, 75, 75, 95, 95)
	assert.Len(t, g.list.Objects, 2)

	s.RemoveExtraction(first.ID)
	assert.Len(t, g.list.Objects, 1)
}

func TestGalleryTapSelects(t *testing.T) {
	g, s := newGallerySession(t)
	e := extract(s, 35, 35, 55, 55)

	card := g.buildCard(e, false)
	require.NotNil(t, card)

	NewMiniPreview(e, func() { s.SelectExtraction(e.ID) }).Tapped(nil)
	id, ok := s.SelectedExtraction()
	assert.True(t, ok)
	assert.Equal(t, e.ID, id)
}
