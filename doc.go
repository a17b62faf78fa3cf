/*
Package lineviz is a small workbench of linear data structures built for step-by-step visualization.

It bundles three visualizers: a bounded LIFO stack, a bounded circular FIFO queue, and an incremental infix-to-postfix converter that exposes its operator stack and output after every step.

# Concept

Every mutation of a container is journaled so it can be undone and redone, and is followed by a short animation phase during which undo and redo are ignored. The host (a terminal REPL, an HTTP server, an MCP agent) drives the animation by calling tick or settle; the workbench never starts timers or goroutines.

# Key Features

  - Linear Undo/Redo: A new operation after an undo discards the redo future.
  - Exact Circular Indices: Undo restores the queue's raw front and rear indices, not just its contents.
  - Resumable Conversion: The shunting-yard converter consumes one character per step.
  - Adapters: A cobra CLI, a chi HTTP API and an MCP server share one request model.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/lineviz"
		"github.com/aretw0/lineviz/pkg/domain"
	)

	func main() {
		ctx := context.Background()
		wb := lineviz.New()

		v := 3
		resp, _ := wb.Execute(ctx, lineviz.Request{Target: domain.TargetStack, Action: "push", Value: &v})
		fmt.Println(resp.Status) // Pushed value: 3

		resp, _ = wb.Execute(ctx, lineviz.Request{Target: domain.TargetPostfix, Action: "start", Expression: "(A+B)*C"})
		resp, _ = wb.Execute(ctx, lineviz.Request{Target: domain.TargetPostfix, Action: "run"})
		fmt.Println(resp.Result) // AB+C*
	}

# Operator Associativity

Operators of equal precedence are always popped before the incoming one is pushed, so '^' is left-associative: A^B^C converts to AB^C^.
*/
package lineviz
