package calculator

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/SscSPs/currency_calculator/internal/utils"
	"github.com/fatih/color"
)

// Console is a line oriented front end over a Session.
//
//	<number>     set the amount
//	:base <ID>   select the base currency
//	:list        print the supported currencies
//	:help        print the commands
//	:quit        exit
type Console struct {
	session *Session
	out     io.Writer
	mu      sync.Mutex

	prompt  *color.Color
	heading *color.Color
	base    *color.Color
	failure *color.Color
}

// NewConsole creates a Console and subscribes it to session updates.
func NewConsole(session *Session, out io.Writer) *Console {
	c := &Console{
		session: session,
		out:     out,
		prompt:  color.New(color.FgCyan),
		heading: color.New(color.Bold),
		base:    color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed),
	}
	session.OnUpdate(c.render)
	return c
}

// Start loads the session data.
func (c *Console) Start(ctx context.Context) error {
	c.printf(c.heading, "Loading currencies and rates...\n")
	if err := c.session.Load(ctx); err != nil {
		return err
	}
	if !c.session.Ready() {
		c.printf(c.failure, "No currencies or rates available yet.\n")
	}
	c.Help()
	return nil
}

// Help prints the accepted commands.
func (c *Console) Help() {
	c.printf(nil, "Enter an amount, or one of :base <ID>, :list, :help, :quit\n")
}

// Prompt prints the input prompt showing the current base currency.
func (c *Console) Prompt() {
	id := "---"
	if base := c.session.SelectedCurrency(); base != nil {
		id = base.ID
	}
	c.printf(c.prompt, "%s> ", id)
}

// Handle processes one input line and reports whether the user asked to quit.
func (c *Console) Handle(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case line == ":quit" || line == ":q":
		return true
	case line == ":help":
		c.Help()
	case line == ":list":
		c.list()
	case strings.HasPrefix(line, ":base"):
		id := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, ":base")))
		if id == "" {
			c.printf(c.failure, "usage: :base <ID>\n")
			return false
		}
		if err := c.session.SelectCurrency(id); err != nil {
			c.printf(c.failure, "Unknown currency %s\n", id)
		}
	case strings.HasPrefix(line, ":"):
		c.printf(c.failure, "Unknown command %s\n", line)
	default:
		c.session.SetAmount(line)
	}
	return false
}

func (c *Console) list() {
	selected := c.session.SelectedCurrency()
	for _, cur := range c.session.Currencies() {
		if selected != nil && cur.ID == selected.ID {
			c.printf(c.base, "* %-5s %s\n", cur.ID, cur.FullName)
			continue
		}
		c.printf(nil, "  %-5s %s\n", cur.ID, cur.FullName)
	}
}

func (c *Console) render() {
	if err := c.session.Err(); err != nil {
		c.printf(c.failure, "\n%v\n", err)
		c.session.ClearError()
		return
	}

	quotes := c.session.DisplayQuotes()
	if len(quotes) == 0 {
		return
	}
	selected := c.session.SelectedCurrency()

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out)
	for _, q := range quotes {
		line := utils.FormatQuote(q, utils.DisplayPrecision) + "\n"
		if selected != nil && q.ID == selected.ID {
			_, _ = c.base.Fprint(c.out, line)
			continue
		}
		_, _ = fmt.Fprint(c.out, line)
	}
}

func (c *Console) printf(col *color.Color, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if col == nil {
		_, _ = fmt.Fprintf(c.out, format, args...)
		return
	}
	_, _ = col.Fprintf(c.out, format, args...)
}
