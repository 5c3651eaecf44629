package othello

// Opening masks: Black holds e4 and d5, White holds d4 and e5.
const (
	InitialBlackMask uint64 = 0x0000000810000000
	InitialWhiteMask uint64 = 0x0000001008000000
)

// DiskSet is the set of cells occupied by one side.
// It is a value type; operations return updated copies.
type DiskSet struct {
	Side Colour
	Mask uint64
}

// InitialDiskSet returns side's disks in the standard opening position.
func InitialDiskSet(side Colour) DiskSet {
	if side == White {
		return DiskSet{Side: White, Mask: InitialWhiteMask}
	}
	return DiskSet{Side: Black, Mask: InitialBlackMask}
}

// Test reports whether cell pos is occupied by this side.
func (d DiskSet) Test(pos int) bool {
	return d.Mask&Bit(pos) != 0
}

// Set returns the disk set with cell pos occupied.
// The cell must be empty; placing on an occupied cell is not checked.
func (d DiskSet) Set(pos int) DiskSet {
	d.Mask |= Bit(pos)
	return d
}

// Popcount returns the number of disks in the set.
func (d DiskSet) Popcount() int {
	return Popcount(d.Mask)
}
