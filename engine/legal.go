package engine

// CanPlay reports whether a card of rank candidate may land on a center
// showing rank center. Ranks are circular: Ace and King are adjacent.
func CanPlay(candidate, center uint8) bool {
	switch {
	case candidate == center+1 || center == candidate+1:
		return true
	case candidate == RankKing && center == RankAce:
		return true
	case candidate == RankAce && center == RankKing:
		return true
	}
	return false
}

// PlayableTarget returns the first center slot the rank may land on, checking
// left before right.
func PlayableTarget(rank uint8, centers [2]uint8) (CenterSlot, bool) {
	if CanPlay(rank, centers[SlotLeft]) {
		return SlotLeft, true
	}
	if CanPlay(rank, centers[SlotRight]) {
		return SlotRight, true
	}
	return SlotLeft, false
}

// FindPlay scans hand slots in the given order and returns the first slot
// holding a card playable on either center. Empty slots are skipped.
func FindPlay(hand *[HandSize]Card, order []int, centers [2]uint8) (slot int, target CenterSlot, ok bool) {
	for _, i := range order {
		if i < 0 || i >= HandSize || hand[i] == EmptyCard {
			continue
		}
		if t, playable := PlayableTarget(hand[i].Rank(), centers); playable {
			return i, t, true
		}
	}
	return -1, SlotLeft, false
}

// HasPlay reports whether any card in hand can land on either center.
func HasPlay(hand *[HandSize]Card, centers [2]uint8) bool {
	_, _, ok := FindPlay(hand, inOrder[:], centers)
	return ok
}

var inOrder = [HandSize]int{0, 1, 2, 3, 4}
