package game

import (
	"fmt"

	"yendor/internal/being"
	"yendor/internal/gamemap"
)

// EventKind tags what an Event reports.
type EventKind uint8

const (
	EventKilled      EventKind = iota // player killed Enemy, gaining Amount XP
	EventAttacked                     // player hit Enemy for Amount
	EventGotAttacked                  // Enemy hit player for Amount
	EventOnItem                       // player stands on Item, or on the down stairs when !HasItem
	EventDied                         // game lost with Amount XP
	EventWon                          // game won with Amount XP
)

// Event is one outcome of a turn.
type Event struct {
	Kind    EventKind
	Enemy   being.Kind
	Amount  int
	Item    gamemap.Item
	HasItem bool
}

func Killed(enemy being.Kind, xp int) Event {
	return Event{Kind: EventKilled, Enemy: enemy, Amount: xp}
}

func Attacked(enemy being.Kind, damage int) Event {
	return Event{Kind: EventAttacked, Enemy: enemy, Amount: damage}
}

func GotAttacked(enemy being.Kind, damage int) Event {
	return Event{Kind: EventGotAttacked, Enemy: enemy, Amount: damage}
}

func OnItem(item gamemap.Item) Event {
	return Event{Kind: EventOnItem, Item: item, HasItem: true}
}

// OnStairs is the OnItem event without an item: the player is on the down
// stairs.
func OnStairs() Event {
	return Event{Kind: EventOnItem}
}

func Died(xp int) Event {
	return Event{Kind: EventDied, Amount: xp}
}

func Won(xp int) Event {
	return Event{Kind: EventWon, Amount: xp}
}

// Terminal reports whether e ends the game.
func (e Event) Terminal() bool {
	return e.Kind == EventDied || e.Kind == EventWon
}

// Message renders e as one line of text for a player on floor.
func (e Event) Message(floor int) string {
	switch e.Kind {
	case EventKilled:
		return fmt.Sprintf("You killed %s.", e.Enemy)
	case EventAttacked:
		return fmt.Sprintf("You attacked %s, dealing %d damage.", e.Enemy, e.Amount)
	case EventGotAttacked:
		return fmt.Sprintf("You got attacked by %s, taking %d damage.", e.Enemy, e.Amount)
	case EventOnItem:
		if e.HasItem {
			return fmt.Sprintf("Press Enter to apply the %s", e.Item)
		}
		if floor < LevelCount {
			return fmt.Sprintf("Press Enter to descend to level %d. You can't go back.", floor+1)
		}
		return "Press enter to retrieve the Amulet of Yendor, thus winning the game"
	case EventDied:
		return "YOU LOST THIS GAME..."
	case EventWon:
		return "YOU WON! THE AMULET OF YENDOR IS YOURS!"
	}
	return ""
}
