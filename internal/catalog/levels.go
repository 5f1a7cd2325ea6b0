package catalog

// LevelTable maps a level to the experience needed to reach it
type LevelTable map[int]int

// NewLevelTable copies thresholds into a LevelTable
func NewLevelTable(thresholds map[int]int) LevelTable {
	t := make(LevelTable, len(thresholds))
	for lvl, exp := range thresholds {
		t[lvl] = exp
	}
	return t
}

// ExpToNext returns the experience still needed to reach level+1, or 0 at the cap
func (t LevelTable) ExpToNext(level, exp int) int {
	need, ok := t[level+1]
	if !ok {
		return 0
	}
	return need - exp
}

// MaxLevel returns the highest level in the table
func (t LevelTable) MaxLevel() int {
	max := 0
	for lvl := range t {
		if lvl > max {
			max = lvl
		}
	}
	return max
}
