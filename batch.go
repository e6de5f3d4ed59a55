package canvas2d

// fieldBatch suspends per-field recomputation while several fields of one
// object are assigned. commit recomputes once. If a field fails, rollback
// puts every field back and recomputes, so no partial state survives.
//
//	b := beginBatch(&c.batching, c.snapshot(), c.recompute)
//	defer b.end()
//	if err := c.SetR(r); err != nil {
//		return err
//	}
//	...
//	return b.commit()
type fieldBatch struct {
	flag      *bool
	restore   func()
	recompute func()
	done      bool
}

// beginBatch raises flag and returns the open batch. restore must put the
// object back into the state it had when the batch began.
func beginBatch(flag *bool, restore func(), recompute func()) *fieldBatch {
	*flag = true
	return &fieldBatch{flag: flag, restore: restore, recompute: recompute}
}

// commit lowers the flag and recomputes derived state once.
func (b *fieldBatch) commit() error {
	if b.done {
		return nil
	}
	b.done = true
	*b.flag = false
	if b.recompute != nil {
		b.recompute()
	}
	return nil
}

// end rolls back when commit was not reached. It is meant to be deferred.
func (b *fieldBatch) end() {
	if b.done {
		return
	}
	b.done = true
	*b.flag = false
	if b.restore != nil {
		b.restore()
	}
	if b.recompute != nil {
		b.recompute()
	}
}
