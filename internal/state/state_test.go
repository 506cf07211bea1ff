package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Enter()             { *s.log = append(*s.log, s.name+".enter") }
func (s *traceState) Exit()              { *s.log = append(*s.log, s.name+".exit") }
func (s *traceState) Update(float64)     { *s.log = append(*s.log, s.name+".update") }
func (s *traceState) Draw(*ebiten.Image) { *s.log = append(*s.log, s.name+".draw") }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	assert.Nil(t, sm.Current())

	sm.Update(0.016)
	sm.Draw(nil)
	assert.Empty(t, log, "idle machine does nothing")

	a := &traceState{name: "a", log: &log}
	b := &traceState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.Draw(nil)
	assert.Same(t, b, sm.Current())

	sm.SetState(nil)
	assert.Nil(t, sm.Current())
	assert.Equal(t, []string{"a.enter", "a.update", "a.exit", "b.enter", "b.draw", "b.exit"}, log)
}
