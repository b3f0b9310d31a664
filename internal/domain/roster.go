package domain

// Roster - именованное представление состава команды.
// Пустые слоты равны nil, Bench содержит игроков в порядке BEN1..BEN6 без пропусков.
type Roster struct {
	QB    *Player
	RB1   *Player
	RB2   *Player
	WR1   *Player
	WR2   *Player
	FLEX  *Player
	OP    *Player
	TE    *Player
	K     *Player
	DST   *Player
	Bench []*Player
}

// BuildRoster собирает Roster из назначений команды. Входной срез не изменяется.
func BuildRoster(entries []*RosterEntry) Roster {
	bySlot := make(map[RosterSlot]*Player, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.Player == nil {
			continue
		}
		bySlot[entry.Slot] = entry.Player
	}

	roster := Roster{
		QB:    bySlot[SlotQB],
		RB1:   bySlot[SlotRB1],
		RB2:   bySlot[SlotRB2],
		WR1:   bySlot[SlotWR1],
		WR2:   bySlot[SlotWR2],
		FLEX:  bySlot[SlotFLEX],
		OP:    bySlot[SlotOP],
		TE:    bySlot[SlotTE],
		K:     bySlot[SlotK],
		DST:   bySlot[SlotDST],
		Bench: make([]*Player, 0, BenchSize),
	}

	for _, slot := range BenchSlots {
		if player, ok := bySlot[slot]; ok {
			roster.Bench = append(roster.Bench, player)
		}
	}

	return roster
}

// Slot возвращает игрока в основном слоте состава или nil.
// Скамейка хранится без пропусков, поэтому слоты BEN* здесь не адресуются.
func (r Roster) Slot(slot RosterSlot) *Player {
	switch slot {
	case SlotQB:
		return r.QB
	case SlotRB1:
		return r.RB1
	case SlotRB2:
		return r.RB2
	case SlotWR1:
		return r.WR1
	case SlotWR2:
		return r.WR2
	case SlotFLEX:
		return r.FLEX
	case SlotOP:
		return r.OP
	case SlotTE:
		return r.TE
	case SlotK:
		return r.K
	case SlotDST:
		return r.DST
	}
	return nil
}

// Size - количество занятых слотов
func (r Roster) Size() int {
	size := len(r.Bench)
	for _, slot := range LineupSlots {
		if r.Slot(slot) != nil {
			size++
		}
	}
	return size
}
