package entity

import (
	"snake-classic/game/types"
)

// Snake is the player's body, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

// NewSnake copies body so the caller keeps ownership of its slice.
func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the cell the head moves into on the next tick.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Delta())
}

// Contains reports whether p is any segment of the body, head included.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Advance inserts newHead at the front. The tail is kept when grow is set.
func (s *Snake) Advance(newHead types.Point, grow bool) {
	if grow {
		s.Body = append(s.Body, types.Point{})
	}
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// SetDirection changes the heading for the next tick. Reversing onto the
// neck is refused once the body has more than one segment.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	if len(s.Body) > 1 && dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
