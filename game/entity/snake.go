package entity

import "gridsnake/game/types"

// Snake is an ordered, head-first run of cells. It is never empty.
type Snake struct {
	Body []types.Point
}

func NewSnake(body ...types.Point) *Snake {
	s := &Snake{Body: make([]types.Point, len(body))}
	copy(s.Body, body)
	return s
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	s.Body = append(body, s.Body...)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// HitsBody reports whether p lies on any segment behind the head, tail
// included.
func (s *Snake) HitsBody(p types.Point) bool {
	for _, part := range s.Body[1:] {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Distinct reports whether no two segments share a cell.
func (s *Snake) Distinct() bool {
	seen := make(map[types.Point]struct{}, len(s.Body))
	for _, part := range s.Body {
		if _, ok := seen[part]; ok {
			return false
		}
		seen[part] = struct{}{}
	}
	return true
}
