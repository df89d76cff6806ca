package engine

// PileView is the renderable state of a pile. Face-down piles never expose
// their top card.
type PileView struct {
	Len           int
	Top           Card // EmptyCard when empty or face-down
	FaceDown      bool
	MarkerVisible bool
}

// BoardView is a read-only view of the board for rendering.
type BoardView struct {
	Centers    [2]PileView
	CenterRank [2]uint8
	Feeders    [2]PileView
	PlayerDraw PileView
	BotDraw    PileView
	PlayerHand [HandSize]Card // EmptyCard marks an empty slot
	BotHand    [HandSize]Card
	Retired    int

	StallTicks    uint16
	GestureActive bool
	Outcome       Outcome
}

// Snapshot returns the current view of the board.
func (b *Board) Snapshot() BoardView {
	v := BoardView{
		CenterRank:    b.CenterRank,
		PlayerDraw:    b.pileView(PilePlayerDraw),
		BotDraw:       b.pileView(PileBotDraw),
		PlayerHand:    b.PlayerHand,
		BotHand:       b.BotHand,
		Retired:       b.Len(PileRetired),
		StallTicks:    b.StallTicks,
		GestureActive: b.GestureActive,
		Outcome:       b.Outcome,
	}
	for _, s := range [...]CenterSlot{SlotLeft, SlotRight} {
		v.Centers[s] = b.pileView(s.Pile())
		v.Feeders[s] = b.pileView(s.Feeder())
	}
	return v
}

func (b *Board) pileView(id PileID) PileView {
	v := PileView{Len: b.Len(id), Top: EmptyCard, MarkerVisible: b.Markers[id]}
	if id.FaceDown() {
		v.FaceDown = b.Markers[id]
		return v
	}
	v.Top = b.Top(id)
	return v
}
