package midi

// DurationMap resolves a digit value to a note duration in MIDI ticks by
// table lookup, wrapping when the digit exceeds the table.
type DurationMap struct {
	Table []int
	Name  string
}

// MusicalDurations maps digits to standard note values, cycling through 32nd,
// 16th, dotted 16th, 8th, dotted 8th, quarter, dotted quarter, half, dotted
// half and whole. tpq is the MIDI resolution, commonly 480.
func MusicalDurations(tpq int) DurationMap {
	return DurationMap{
		Table: []int{
			tpq / 8,
			tpq / 4,
			tpq * 3 / 8,
			tpq / 2,
			tpq * 3 / 4,
			tpq,
			tpq * 3 / 2,
			tpq * 2,
			tpq * 3,
			tpq * 4,
		},
		Name: "Musical",
	}
}

// LinearDurations maps digit d to (d+1)·unit ticks.
func LinearDurations(unit, base int) DurationMap {
	table := make([]int, base)
	for d := range table {
		table[d] = (d + 1) * unit
	}
	return DurationMap{Table: table, Name: "Linear"}
}

// ExponentialDurations maps digit d to unit·2^d ticks, capped at 2^16 units.
func ExponentialDurations(unit, base int) DurationMap {
	table := make([]int, base)
	for d := range table {
		shift := d
		if shift > 16 {
			shift = 16
		}
		table[d] = unit << shift
	}
	return DurationMap{Table: table, Name: "Exponential"}
}

// FixedDurations maps every digit to the same duration.
func FixedDurations(ticks, base int) DurationMap {
	table := make([]int, base)
	for d := range table {
		table[d] = ticks
	}
	return DurationMap{Table: table, Name: "Fixed"}
}

func CustomDurations(table []int) DurationMap {
	return DurationMap{Table: table, Name: "Custom"}
}

// TicksFor returns the duration for digit d, wrapping past the table end.
// An empty table falls back to 120 ticks.
func (m DurationMap) TicksFor(d int) int {
	if len(m.Table) == 0 {
		return 120
	}
	return m.Table[d%len(m.Table)]
}

// DurationsByName resolves the duration map styles accepted on command lines
// and in configuration files.
func DurationsByName(name string, tpq, base int) (DurationMap, bool) {
	switch name {
	case "", "musical":
		return MusicalDurations(tpq), true
	case "linear":
		return LinearDurations(tpq/4, base), true
	case "exponential":
		return ExponentialDurations(tpq/8, base), true
	case "fixed":
		return FixedDurations(tpq/2, base), true
	}
	return DurationMap{}, false
}
