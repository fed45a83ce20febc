// Package console implements the interactive menu loop.
//
// The console is thin glue over the core operations: it reads a choice
// and raw string arguments, trims the trailing newline, and dispatches
// through the service registry. It performs no validation of its own;
// names reach the core exactly as typed.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sandboxfs/fileserver/internal/service"
	"github.com/sandboxfs/fileserver/internal/session"
	"github.com/sandboxfs/fileserver/internal/types"
)

// Console drives the menu loop against the service registry.
type Console struct {
	registry *service.Registry
	session  *session.Session
	in       *bufio.Reader
	out      io.Writer
}

// New creates a console reading from in and writing to out.
func New(registry *service.Registry, sess *session.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		registry: registry,
		session:  sess,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run executes the menu loop until the user exits, input ends, or the
// context is canceled.
func (c *Console) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.printMenu()

		choice, err := c.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.dispatch(ctx, "fileserver.list", nil)
		case "2":
			name, err := c.prompt("Enter filename: ")
			if err != nil {
				return err
			}
			c.dispatch(ctx, "fileserver.read", map[string]interface{}{"name": name})
		case "3":
			name, err := c.prompt("Enter filename: ")
			if err != nil {
				return err
			}
			content, err := c.prompt("Enter content: ")
			if err != nil {
				return err
			}
			c.dispatch(ctx, "fileserver.write", map[string]interface{}{"name": name, "content": content})
		case "4":
			name, err := c.prompt("Enter filename: ")
			if err != nil {
				return err
			}
			c.dispatch(ctx, "fileserver.delete", map[string]interface{}{"name": name})
		case "5":
			name, err := c.prompt("Enter filename: ")
			if err != nil {
				return err
			}
			c.dispatch(ctx, "fileserver.backup", map[string]interface{}{"name": name})
		case "6":
			username, err := c.prompt("Enter username: ")
			if err != nil {
				return err
			}
			c.dispatch(ctx, "fileserver.switch_user", map[string]interface{}{"username": username})
		case "7":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintf(c.out, "\n=== File Server [%s] ===\n", c.session.Current())
	fmt.Fprintln(c.out, "1. List files")
	fmt.Fprintln(c.out, "2. Read file")
	fmt.Fprintln(c.out, "3. Write file")
	fmt.Fprintln(c.out, "4. Delete file")
	fmt.Fprintln(c.out, "5. Backup file")
	fmt.Fprintln(c.out, "6. Switch user")
	fmt.Fprintln(c.out, "7. Exit")
	fmt.Fprint(c.out, "Choice: ")
}

// prompt prints a label and reads one trimmed line.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

// readLine reads a line and strips the trailing newline. No other
// trimming: interior whitespace and every other character pass through.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// dispatch executes a tool and renders its result.
func (c *Console) dispatch(ctx context.Context, toolID string, params map[string]interface{}) {
	if params == nil {
		params = map[string]interface{}{}
	}

	result, err := c.registry.Execute(ctx, toolID, params, nil)
	if err != nil && result == nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	c.render(toolID, result)
}

// render prints an operation's human-readable status report.
func (c *Console) render(toolID string, result *types.Result) {
	if !result.Success {
		msg := "operation failed"
		if result.Error != nil {
			msg = *result.Error
		}
		fmt.Fprintln(c.out, msg)
		return
	}

	switch toolID {
	case "fileserver.list":
		c.renderList(result)
	case "fileserver.read":
		c.renderRead(result)
	default:
		if msg, ok := result.Data["message"].(string); ok {
			fmt.Fprintln(c.out, msg)
		}
	}
}

func (c *Console) renderList(result *types.Result) {
	fmt.Fprintln(c.out, "\n=== File List ===")
	fmt.Fprintf(c.out, "%-20s %-10s %-6s\n", "Filename", "Owner", "Perms")
	fmt.Fprintf(c.out, "%-20s %-10s %-6s\n", "--------", "-----", "-----")

	files, _ := result.Data["files"].([]map[string]interface{})
	for _, f := range files {
		fmt.Fprintf(c.out, "%-20s %-10s %-6s\n", f["name"], f["owner"], f["perm"])
	}
	fmt.Fprintln(c.out, "=================")
}

func (c *Console) renderRead(result *types.Result) {
	name, _ := result.Data["name"].(string)
	lines, _ := result.Data["lines"].([]string)

	fmt.Fprintf(c.out, "\n=== Contents of %s ===\n", name)
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprintln(c.out, "=== End of file ===")
}
