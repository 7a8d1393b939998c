package layout

import "ssaflow/internal/dfgid"

// Cursor is a movable position within a Layout's program order. It
// satisfies the dfg.Cursor contract RedefineFirstValue depends on
// (spec §4.7), plus the navigation a textual assembler or printer needs
// to walk a whole function.
type Cursor struct {
	layout  *Layout
	ebb     dfgid.Ebb
	hasEbb  bool
	inst    dfgid.Inst
	hasInst bool
}

// NewCursor creates a cursor over l, positioned before the first EBB.
func NewCursor(l *Layout) *Cursor {
	return &Cursor{layout: l}
}

// GotoTop repositions the cursor before the first EBB.
func (c *Cursor) GotoTop() {
	c.hasEbb = false
	c.hasInst = false
}

// GotoEbb repositions the cursor at the top of ebb, before its first
// instruction.
func (c *Cursor) GotoEbb(ebb dfgid.Ebb) {
	c.ebb = ebb
	c.hasEbb = true
	c.hasInst = false
}

// CurrentEbb returns the EBB the cursor is currently within, if any.
func (c *Cursor) CurrentEbb() (dfgid.Ebb, bool) {
	return c.ebb, c.hasEbb
}

// CurrentInst returns the instruction the cursor currently sits on. This
// is the method dfg.Cursor requires.
func (c *Cursor) CurrentInst() (dfgid.Inst, bool) {
	return c.inst, c.hasInst
}

// Next advances the cursor to the next instruction in its current EBB,
// reporting whether one exists.
func (c *Cursor) Next() (dfgid.Inst, bool) {
	if !c.hasEbb {
		return dfgid.Inst{}, false
	}
	var next dfgid.Inst
	var ok bool
	if c.hasInst {
		next, ok = c.layout.NextInst(c.inst)
	} else {
		next, ok = c.layout.FirstInst(c.ebb)
	}
	if !ok {
		c.hasInst = false
		return dfgid.Inst{}, false
	}
	c.inst = next
	c.hasInst = true
	return next, true
}

// InsertInst inserts newInst immediately before the cursor's current
// instruction and leaves the cursor positioned on it unchanged — this is
// the behavior RedefineFirstValue depends on (spec §4.7 step 3): the new
// instruction takes the old one's place in program order, and the
// original Inst (now a Copy) follows it.
func (c *Cursor) InsertInst(newInst dfgid.Inst) {
	if !c.hasInst {
		panic("cursor: InsertInst requires the cursor to be positioned on an instruction")
	}
	c.layout.InsertInstBefore(c.inst, newInst)
}
