package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type RosterSlot string

const (
	SlotQB   RosterSlot = "QB"
	SlotRB1  RosterSlot = "RB1"
	SlotRB2  RosterSlot = "RB2"
	SlotWR1  RosterSlot = "WR1"
	SlotWR2  RosterSlot = "WR2"
	SlotFLEX RosterSlot = "FLEX"
	SlotOP   RosterSlot = "OP"
	SlotTE   RosterSlot = "TE"
	SlotK    RosterSlot = "K"
	SlotDST  RosterSlot = "DST"
	SlotBEN1 RosterSlot = "BEN1"
	SlotBEN2 RosterSlot = "BEN2"
	SlotBEN3 RosterSlot = "BEN3"
	SlotBEN4 RosterSlot = "BEN4"
	SlotBEN5 RosterSlot = "BEN5"
	SlotBEN6 RosterSlot = "BEN6"

	// SlotBench - запрос "любой свободный слот скамейки", в базе не хранится
	SlotBench RosterSlot = "BENCH"
)

// BenchSize - количество слотов скамейки
const BenchSize = 6

var (
	LineupSlots = []RosterSlot{
		SlotQB, SlotRB1, SlotRB2, SlotWR1, SlotWR2, SlotFLEX, SlotOP, SlotTE, SlotK, SlotDST,
	}

	// BenchSlots упорядочены: BEN1 < ... < BEN6
	BenchSlots = []RosterSlot{
		SlotBEN1, SlotBEN2, SlotBEN3, SlotBEN4, SlotBEN5, SlotBEN6,
	}
)

// ParseRosterSlot разбирает обозначение слота без учета регистра.
// Кроме слотов состава принимает BENCH.
func ParseRosterSlot(s string) (RosterSlot, error) {
	slot := RosterSlot(strings.ToUpper(strings.TrimSpace(s)))
	if slot == SlotBench || slot.Valid() {
		return slot, nil
	}
	return "", NewValidationError("invalid roster slot %q", s)
}

// Valid сообщает, является ли слот одним из хранимых слотов состава.
func (s RosterSlot) Valid() bool {
	for _, slot := range LineupSlots {
		if s == slot {
			return true
		}
	}
	return s.IsBench()
}

func (s RosterSlot) IsBench() bool {
	return s.BenchIndex() > 0
}

// BenchIndex возвращает номер слота скамейки (1..6) или 0 для остальных слотов.
func (s RosterSlot) BenchIndex() int {
	for i, slot := range BenchSlots {
		if s == slot {
			return i + 1
		}
	}
	return 0
}

func (s RosterSlot) String() string {
	return string(s)
}

// BenchSlot возвращает слот скамейки с номером n (1..6).
func BenchSlot(n int) (RosterSlot, error) {
	if n < 1 || n > BenchSize {
		return "", fmt.Errorf("bench slot %d out of range", n)
	}
	return RosterSlot("BEN" + strconv.Itoa(n)), nil
}
