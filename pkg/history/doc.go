// Package history provides a linear undo/redo journal for the visualizer containers.
//
// The journal stores one entry per applied operation and a cursor pointing at
// the last applied entry (-1 when none is applied):
//
//	log := history.New[StackOp](history.WithBlocker(ticker))
//
//	log.Record(op)          // after validating, before applying
//	log.Undo(applyInverse)  // inverse of the entry at the cursor, cursor--
//	log.Redo(applyForward)  // cursor++, re-apply the entry at the cursor
//
// Recording while the cursor is behind the end discards the redo future;
// history is a line, not a tree.
//
// The journal never touches container state itself: the apply callbacks do,
// which is where raw indices are rebuilt per operation kind.
package history
