/*
Package domain contains the shared vocabulary of the visualizer core.

It defines the classified input tokens, the conversion phases and snapshot,
the lifecycle events, and the sentinel errors every component reports. The
package is kept pure and free of I/O.

# Key Entities

  - Token: A single classified input character (operand, paren, operator).
  - Phase: The stage of an incremental infix-to-postfix conversion.
  - ConversionState: A read-only snapshot of a conversion for rendering.
  - LifecycleHooks: Callbacks fired after workbench operations.
*/
package domain
