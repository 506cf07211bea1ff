// internal/component/visual.go
package component

// Effect marks a purely visual entity (explosion, splash). It has no
// behavior; the renderer drops it once its animation runs out.
type Effect struct{}
