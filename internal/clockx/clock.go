// Package clockx abstracts the current time so date-sensitive logic
// (deadline classification, calendar rendering) can be tested against a
// fixed calendar day.
package clockx

import "time"

// Clock returns the current moment.
type Clock interface {
	Now() time.Time
}

// Real delegates to time.Now.
type Real struct{}

func NewReal() Clock { return &Real{} }

func (*Real) Now() time.Time { return time.Now() }

// Mock reports a fixed moment, adjustable from tests.
type Mock struct {
	t time.Time
}

func NewMock(t time.Time) *Mock { return &Mock{t: t} }

func (m *Mock) Now() time.Time { return m.t }

func (m *Mock) Set(t time.Time) { m.t = t }
