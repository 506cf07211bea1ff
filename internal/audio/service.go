// internal/audio/service.go
package audio

// Service plays named sound effects. Unknown or empty ids are ignored.
type Service interface {
	PlaySound(id string)
}

// Nop is a silent Service.
type Nop struct{}

func (Nop) PlaySound(string) {}
