package listing

import (
	"slices"

	"github.com/samber/lo"

	"github.com/sarchlab/a64dis/insts"
)

// Summary describes a listing for the debugger's status line and for
// address classification.
type Summary struct {
	Lines       int
	Unmapped    int
	Undecodable []uint64            // addresses of unallocated words
	Groups      map[insts.Group]int // decoded lines per encoding group
	Flows       map[insts.Flow]int  // decoded lines per control flow class
	Targets     []uint64            // distinct direct branch targets, ascending
	Calls       []uint64            // distinct call targets, ascending
}

// Summarize classifies lines.
func Summarize(lines []Line) Summary {
	decoded := lo.Filter(lines, func(l Line, _ int) bool { return l.Decoded() })

	unmapped := lo.CountBy(lines, func(l Line) bool { return !l.Mapped() })
	undecodable := lo.FilterMap(lines, func(l Line, _ int) (uint64, bool) {
		return l.Addr, l.Mapped() && l.Err != nil
	})
	groups := lo.CountValuesBy(decoded, func(l Line) insts.Group { return l.Inst.Group })
	flows := lo.CountValuesBy(decoded, func(l Line) insts.Flow { return l.Flow })

	return Summary{
		Lines:       len(lines),
		Unmapped:    unmapped,
		Undecodable: undecodable,
		Groups:      groups,
		Flows:       flows,
		Targets:     sortedTargets(decoded, func(l Line) bool { return l.HasTarget }),
		Calls:       sortedTargets(decoded, func(l Line) bool { return l.HasTarget && l.Flow == insts.FlowCall }),
	}
}

func sortedTargets(lines []Line, keep func(Line) bool) []uint64 {
	targets := lo.Uniq(lo.FilterMap(lines, func(l Line, _ int) (uint64, bool) {
		return l.Target, keep(l)
	}))
	slices.Sort(targets)
	return targets
}

// InRange reports whether every direct branch target of the listing falls
// inside [start, end), and returns the ones that do not.
func (s Summary) InRange(start, end uint64) (outside []uint64, ok bool) {
	outside = lo.Filter(s.Targets, func(t uint64, _ int) bool {
		return t < start || t >= end
	})
	return outside, len(outside) == 0
}
