package sim

// Step advances the world by one tick. The three phases are strict
// sequential barriers over the whole population: behavior for every agent,
// then feeding resolution and food compaction, then the generation swap.
// Nothing observes a partially updated later phase, and a tick always runs
// to completion.
func (w *World) Step() Events {
	var ev Events

	w.updateLifeForms()
	ev.add(w.resolveFeeding())
	ev.add(w.advanceGeneration())

	return ev
}
