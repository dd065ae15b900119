package components

// Particle is a transient cosmetic impact fragment. A slot is owned by its
// spawn only while Active; inactive slots are free for reuse.
type Particle struct {
	Body
	Alpha  float32
	Life   float32 // 1.0 at spawn, decays to 0
	Active bool
}
