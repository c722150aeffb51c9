// Package being models the player and enemies: their stat lines, combat and
// regeneration.
package being

import (
	"math/rand"

	"yendor/internal/geom"
)

// Being is the player or one enemy. Health never exceeds MaxHealth; a being
// with Health <= 0 is dead.
type Being struct {
	Position  geom.Point
	MaxHealth int
	Health    int
	// Experience is the player's running total, or for an enemy the amount
	// the player gains by killing it.
	Experience int
	MaxAttack  int
	MaxShield  int
	Kind       Kind
}

// New creates a being of kind at pos with full health. Enemies yield the
// low end of their experience range.
func New(kind Kind, pos geom.Point) *Being {
	s := kind.Stats()
	return &Being{
		Position:   pos,
		MaxHealth:  s.MaxHP,
		Health:     s.MaxHP,
		Experience: s.XPMin,
		MaxAttack:  s.Attack,
		MaxShield:  s.Shield,
		Kind:       kind,
	}
}

// Spawn creates an enemy of kind at pos, rolling its experience yield.
func Spawn(rng *rand.Rand, kind Kind, pos geom.Point) *Being {
	b := New(kind, pos)
	s := kind.Stats()
	if s.XPMax > s.XPMin {
		b.Experience = s.XPMin + rng.Intn(s.XPMax-s.XPMin)
	}
	return b
}

// NewPlayer creates the player. Position is set once a level exists.
func NewPlayer() *Being {
	return New(Player, geom.Point{})
}

// Alive reports whether the being still has health left.
func (b *Being) Alive() bool {
	return b.Health > 0
}

// Fight resolves one attack from b against other and returns the damage.
// Damage = max(0, U[0,MaxAttack] - U[0,MaxShield)); it is never negative so
// an attack cannot heal the defender.
func (b *Being) Fight(rng *rand.Rand, other *Being) int {
	attack := rng.Intn(b.MaxAttack + 1)
	shield := 0
	if other.MaxShield > 0 {
		shield = rng.Intn(other.MaxShield)
	}
	dmg := max(0, attack-shield)
	other.Health -= dmg
	return dmg
}

// BumpHealth regenerates one point of health, capped at MaxHealth.
func (b *Being) BumpHealth() {
	if b.Health < b.MaxHealth {
		b.Health++
	}
}
