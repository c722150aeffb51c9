package being

// Kind tags a being as the player or one of the nine enemy archetypes.
type Kind uint8

const (
	Player Kind = iota
	Gnoll
	Bat
	AnimatedStatue
	Kestrel
	Emu
	LazyImp
	Troll
	Zombie
	StoneSatan
)

// Enemies lists the enemy kinds weakest to strongest, three per tier.
// Within a tier the order matches the 5:3:2 spawn weights.
var Enemies = [9]Kind{
	Gnoll, Bat, AnimatedStatue,
	Kestrel, Emu, LazyImp,
	Troll, Zombie, StoneSatan,
}

// Behavior is how an enemy acts during the AI pass.
type Behavior uint8

const (
	BehaviorNone       Behavior = iota // the player
	BehaviorPursue                     // path toward the player while in view
	BehaviorWander                     // random steps, attacks when adjacent
	BehaviorStationary                 // never moves, attacks when adjacent
)

// Stats is the fixed stat line of a kind. Experience is awarded on kill and
// rolled once per enemy from [XPMin, XPMax).
type Stats struct {
	Name     string
	MaxHP    int
	Attack   int
	Shield   int
	XPMin    int
	XPMax    int
	Behavior Behavior
}

var stats = [...]Stats{
	Player: {Name: "Player", MaxHP: 20, Attack: 5, Shield: 1},

	Gnoll:          {Name: "Gnoll", MaxHP: 9, Attack: 4, Shield: 2, XPMin: 10, XPMax: 15, Behavior: BehaviorPursue},
	Bat:            {Name: "Bat", MaxHP: 10, Attack: 2, Shield: 3, XPMin: 15, XPMax: 20, Behavior: BehaviorWander},
	AnimatedStatue: {Name: "Animated Statue", MaxHP: 15, Attack: 3, Shield: 1, XPMin: 15, XPMax: 20, Behavior: BehaviorStationary},

	Kestrel: {Name: "Kestrel", MaxHP: 10, Attack: 5, Shield: 5, XPMin: 20, XPMax: 25, Behavior: BehaviorPursue},
	Emu:     {Name: "Emu", MaxHP: 12, Attack: 3, Shield: 3, XPMin: 25, XPMax: 30, Behavior: BehaviorWander},
	LazyImp: {Name: "Lazy Imp", MaxHP: 20, Attack: 5, Shield: 1, XPMin: 25, XPMax: 30, Behavior: BehaviorStationary},

	Troll:      {Name: "Troll", MaxHP: 15, Attack: 7, Shield: 5, XPMin: 30, XPMax: 35, Behavior: BehaviorPursue},
	Zombie:     {Name: "Zombie", MaxHP: 15, Attack: 9, Shield: 4, XPMin: 35, XPMax: 40, Behavior: BehaviorWander},
	StoneSatan: {Name: "Stone Satan", MaxHP: 30, Attack: 15, Shield: 5, XPMin: 35, XPMax: 40, Behavior: BehaviorStationary},
}

// Stats returns the stat line for k.
func (k Kind) Stats() Stats {
	if int(k) >= len(stats) {
		return Stats{Name: "Unknown"}
	}
	return stats[k]
}

// Behavior returns the AI class of k.
func (k Kind) Behavior() Behavior {
	return k.Stats().Behavior
}

// String returns the display name of k.
func (k Kind) String() string {
	return k.Stats().Name
}
