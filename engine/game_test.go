package engine

import "testing"

// TestNewDeck verifies the deck holds 52 distinct identities.
func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	seen := make(map[Card]bool)
	for i, c := range deck {
		if !c.Valid() {
			t.Errorf("deck[%d] = %#x is not a valid card", i, uint8(c))
		}
		if seen[c] {
			t.Errorf("duplicate card %s at index %d", c, i)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("got %d unique cards, want %d", len(seen), DeckSize)
	}
}

// TestNewGameSeedZero verifies that seed 0 is corrected to 1.
func TestNewGameSeedZero(t *testing.T) {
	b := NewGame(0, DefaultRules())
	if b.RNG != 1 {
		t.Errorf("RNG = %d, want 1 for seed=0", b.RNG)
	}
}

func TestNewGameBeforeDeal(t *testing.T) {
	b := NewGame(7, DefaultRules())
	if b.Len(PileRetired) != DeckSize {
		t.Errorf("undealt stock = %d, want %d", b.Len(PileRetired), DeckSize)
	}
	if b.PlayerHandLen() != 0 || b.BotHandLen() != 0 {
		t.Error("hands should be empty before Deal")
	}
	mustAudit(t, &b)
}

// TestDealCardCounts verifies pile and hand sizes after Deal with default rules.
func TestDealCardCounts(t *testing.T) {
	b := newDealtGame(t)

	want := map[PileID]int{
		PileFeedLeft:    5,
		PileFeedRight:   5,
		PilePlayerDraw:  15,
		PileBotDraw:     15,
		PileCenterLeft:  1,
		PileCenterRight: 1,
		PileRetired:     0,
	}
	for id, n := range want {
		if got := b.Len(id); got != n {
			t.Errorf("%s len = %d, want %d", id, got, n)
		}
	}
	if b.PlayerHandLen() != HandSize || b.BotHandLen() != HandSize {
		t.Errorf("hand lens = %d/%d, want %d", b.PlayerHandLen(), b.BotHandLen(), HandSize)
	}
	for _, s := range [...]CenterSlot{SlotLeft, SlotRight} {
		if b.CenterRank[s] != b.CenterTop(s).Rank() {
			t.Errorf("center %s rank %d does not mirror top %s", s, b.CenterRank[s], b.CenterTop(s))
		}
	}
	for _, id := range [...]PileID{PileFeedLeft, PileFeedRight, PilePlayerDraw, PileBotDraw} {
		if !b.MarkerVisible(id) {
			t.Errorf("%s marker hidden after deal", id)
		}
	}
	if b.Outcome != InProgress || !b.Dealt {
		t.Errorf("outcome=%s dealt=%v after deal", b.Outcome, b.Dealt)
	}
}

// TestDealDeterministic verifies that the same seed produces identical results.
func TestDealDeterministic(t *testing.T) {
	b1 := NewGame(99, DefaultRules())
	b1.Deal()
	b2 := NewGame(99, DefaultRules())
	b2.Deal()
	if b1 != b2 {
		t.Error("same seed produced different boards")
	}

	b3 := NewGame(100, DefaultRules())
	b3.Deal()
	if b1.Piles == b3.Piles && b1.PlayerHand == b3.PlayerHand {
		t.Error("different seeds produced identical deals")
	}
}

func TestDealTwiceIsNoop(t *testing.T) {
	b := newDealtGame(t)
	before := b.Save()
	b.Deal()
	if b.Save() != before {
		t.Error("second Deal changed the board")
	}
}

// TestDealLeftoversRetired: smaller piles leave undealt cards out of play.
func TestDealLeftoversRetired(t *testing.T) {
	r := DefaultRules()
	r.FeederSize = 3
	r.DrawPileSize = 10
	b := NewGame(5, r)
	b.Deal()

	dealt := 3 + 3 + 10 + 10 + 2*HandSize + 2
	if got := b.Len(PileRetired); got != DeckSize-dealt {
		t.Errorf("retired = %d, want %d", got, DeckSize-dealt)
	}
	mustAudit(t, &b)
}

// TestDealOversizedRules: piles larger than the deck stop dealing quietly.
func TestDealOversizedRules(t *testing.T) {
	r := DefaultRules()
	r.FeederSize = 20
	r.DrawPileSize = 20
	b := NewGame(5, r)
	b.Deal()

	if b.Len(PileFeedLeft) != 20 || b.Len(PileFeedRight) != 20 {
		t.Errorf("feeders = %d/%d, want 20/20", b.Len(PileFeedLeft), b.Len(PileFeedRight))
	}
	if b.Len(PilePlayerDraw) != 12 || b.Len(PileBotDraw) != 0 {
		t.Errorf("draw piles = %d/%d, want 12/0", b.Len(PilePlayerDraw), b.Len(PileBotDraw))
	}
	if b.MarkerVisible(PileBotDraw) {
		t.Error("empty bot draw pile shows a marker")
	}
	if b.PlayerHandLen() != 0 || b.CenterTop(SlotLeft) != EmptyCard {
		t.Error("hands and centers should be empty once the deck ran out")
	}
	mustAudit(t, &b)
}

func TestSaveRestore(t *testing.T) {
	b := newDealtGame(t)
	snap := b.Save()
	if _, err := b.RefillPlayerHand(); err != nil {
		t.Fatalf("RefillPlayerHand: %v", err)
	}
	if err := b.FlipNewCenters(); err != nil {
		t.Fatalf("FlipNewCenters: %v", err)
	}
	b.Restore(snap)
	if b.Save() != snap {
		t.Error("Restore did not return to the saved board")
	}
}

func TestPopEmptyPile(t *testing.T) {
	b := newDealtGame(t)
	drainPile(&b, PileFeedLeft)
	before := b.Save()
	c, err := b.Pop(PileFeedLeft)
	if err != ErrPileEmpty || c != EmptyCard {
		t.Errorf("Pop(empty) = %s, %v; want --, ErrPileEmpty", c, err)
	}
	if b.Save() != before {
		t.Error("Pop on an empty pile changed the board")
	}
}

func TestPushPopTop(t *testing.T) {
	b := newDealtGame(t)
	top := b.Top(PilePlayerDraw)
	c, err := b.Pop(PilePlayerDraw)
	if err != nil || c != top {
		t.Fatalf("Pop = %s, %v; want %s", c, err, top)
	}
	b.Push(PilePlayerDraw, c)
	if b.Top(PilePlayerDraw) != top || b.Len(PilePlayerDraw) != 15 {
		t.Error("Push did not restore the pile")
	}
	mustAudit(t, &b)
}

func TestSnapshotHidesFaceDown(t *testing.T) {
	b := newDealtGame(t)
	v := b.Snapshot()

	for _, s := range [...]CenterSlot{SlotLeft, SlotRight} {
		if v.Feeders[s].Top != EmptyCard || !v.Feeders[s].FaceDown || v.Feeders[s].Len != 5 {
			t.Errorf("feeder %s view = %+v", s, v.Feeders[s])
		}
		if v.Centers[s].Top != b.CenterTop(s) || v.Centers[s].FaceDown {
			t.Errorf("center %s view = %+v", s, v.Centers[s])
		}
	}
	if v.PlayerDraw.Top != EmptyCard || v.PlayerDraw.Len != 15 {
		t.Errorf("player draw view = %+v", v.PlayerDraw)
	}
	if v.PlayerHand != b.PlayerHand || v.BotHand != b.BotHand {
		t.Error("hands not copied into the view")
	}
	if v.CenterRank != b.CenterRank {
		t.Error("center ranks not copied into the view")
	}
}
