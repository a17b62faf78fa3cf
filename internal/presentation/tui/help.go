package tui

import "github.com/aretw0/lineviz/pkg/domain"

const stackHelp = `# Stack

1. **push N**: adds a new element to the top of the stack.
   If the stack is full you get a *Stack Overflow* error.
2. **pop**: removes and returns the top element.
   If the stack is empty you get a *Stack Underflow* error.
3. **peek**: shows the top element without removing it.
4. **clear**: removes all elements.
5. **undo** / **redo**: walk the operation history.

Properties:

- Maximum capacity: 5 elements (configurable)
- Last-In-First-Out (LIFO)
- Elements are added and removed at the top
`

const queueHelp = `# Queue

1. **enqueue N**: adds a new element at the rear.
   If the queue is full you get a *Queue Overflow* error.
2. **dequeue**: removes and returns the front element.
   If the queue is empty you get a *Queue Underflow* error.
3. **front**: shows the front element without removing it.
4. **rear**: shows the last element.
5. **clear**: removes all elements.
6. **undo** / **redo**: walk the operation history.

Properties:

- Maximum capacity: 5 elements (configurable)
- First-In-First-Out (FIFO)
- Circular buffer: the rear wraps around to slot 0
`

const postfixHelp = "# Infix to Postfix\n\n" +
	"1. **postfix start EXPR**: load an infix expression, e.g. `A+B*C`.\n" +
	"2. **postfix step**: process one character.\n" +
	"3. **postfix run**: step until the conversion ends.\n" +
	"4. **postfix reset**: start over.\n\n" +
	"Operands are single letters or digits. Spaces are skipped.\n\n" +
	"Operator precedence:\n\n" +
	"| Operator | Precedence |\n" +
	"|---|---|\n" +
	"| `^` | highest |\n" +
	"| `*` `/` | middle |\n" +
	"| `+` `-` | lowest |\n\n" +
	"Equal precedence pops first, so `^` is left-associative: `A^B^C` gives `AB^C^`.\n"

const overviewHelp = "# lineviz\n\n" +
	"An educational workbench for linear data structures.\n\n" +
	"- `stack push 3`, `s pop`, `s peek`, `s clear`\n" +
	"- `queue enqueue 7`, `q dequeue`, `q front`, `q rear`, `q clear`\n" +
	"- `postfix start (A+B)*C`, `p step`, `p run`, `p reset`\n" +
	"- `undo`, `redo` act on the last used target\n" +
	"- `help stack`, `help queue`, `help postfix`\n" +
	"- `quit`\n\n" +
	"After every change the container animates briefly; undo and redo wait for it.\n"

// HelpMarkdown returns the help page of target, or the overview for any other value.
func HelpMarkdown(target domain.Target) string {
	switch target {
	case domain.TargetStack:
		return stackHelp
	case domain.TargetQueue:
		return queueHelp
	case domain.TargetPostfix:
		return postfixHelp
	default:
		return overviewHelp
	}
}
