package render

import (
	"image"

	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// OpKind names a recorded draw call
type OpKind string

const (
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
	OpLine   OpKind = "line"
	OpBitmap OpKind = "bitmap"
	OpText   OpKind = "text"
)

// Op is one recorded draw call
type Op struct {
	Kind    OpKind
	Color   string
	Rect    geom.Rect
	Src     geom.Rect
	From    geom.Vector
	To      geom.Vector
	Opacity float64
	Bitmap  Bitmap
	Text    string
}

// Recorder is a Renderer that keeps every call, for headless runs and tests
type Recorder struct {
	Ops   []Op
	color string
}

// NewRecorder creates an empty recorder drawing in white
func NewRecorder() *Recorder {
	return &Recorder{color: "white"}
}

func (r *Recorder) SetDrawColor(name string) { r.color = name }

func (r *Recorder) FillRect(rect geom.Rect, opacity float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: r.color, Rect: rect, Opacity: opacity})
}

func (r *Recorder) StrokeRect(rect geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Color: r.color, Rect: rect})
}

func (r *Recorder) RenderLine(a, b geom.Vector) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Color: r.color, From: a, To: b})
}

func (r *Recorder) RenderBitmap(bm Bitmap, src, dst geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpBitmap, Bitmap: bm, Src: src, Rect: dst})
}

func (r *Recorder) RenderText(text string, size float64, pos geom.Vector) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Color: r.color, Text: text, Rect: geom.Rect{X: pos.X, Y: pos.Y, H: size}})
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded calls of one kind
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Rect is an in-memory Bitmap of a fixed size
type Rect image.Rectangle

// Bounds implements Bitmap
func (r Rect) Bounds() image.Rectangle { return image.Rectangle(r) }
