package paleo

import "github.com/strokerec/strokerec/strokemodel"

// Engine runs the geometric shape recognizer battery over successive
// strokes. Create one with NewEngine and reuse it across recognize calls —
// it is not safe for concurrent use, since it keeps the last stroke's
// enriched state and interpretation list for inspection.
type Engine struct {
	lastStroke *EnrichedStroke
	lastList   []interpretation
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Recognize preprocesses s and runs the 15-step hierarchy over it, returning
// the winning shape. It fails only if s has no points.
func (eng *Engine) Recognize(s *strokemodel.Stroke) (Shape, error) {
	enriched, err := Preprocess(s)
	if err != nil {
		return Shape{}, err
	}

	list := resolve(enriched)
	eng.lastStroke = enriched
	eng.lastList = list

	return list[0].shape, nil
}

// LastType returns the Type of the most recent Recognize call's result, or
// TypeUnrun if Recognize has not been called yet.
func (eng *Engine) LastType() Type {
	if len(eng.lastList) == 0 {
		return TypeUnrun
	}
	return eng.lastList[0].shape.Type
}

// LastStroke returns the enriched stroke from the most recent Recognize
// call, or nil if Recognize has not been called yet.
func (eng *Engine) LastStroke() *EnrichedStroke {
	return eng.lastStroke
}

// ShapeRank returns the hierarchy complexity rank of a shape: lines rank
// lowest, composites rank above whichever of their parts is most complex.
func (eng *Engine) ShapeRank(s Shape) int {
	return rank(s)
}
