/*
Package container implements the bounded, history-tracked linear containers
shown by the visualizers: a Stack and a circular Queue.

Both have a fixed capacity (DefaultCapacity unless configured), record every
mutation in a history.Log before applying it, and start an animation.Ticker
after each push, pop, enqueue or dequeue. Undo and Redo rebuild raw indices
per operation kind instead of replaying value snapshots, so an undo followed
by a redo always lands on the exact post-operation state.

Neither container is safe for concurrent use.
*/
package container
