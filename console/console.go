// Package console implements the interactive session of fin: it reads actions
// typed by the user, collects their argument, and executes them on an
// account manager.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Console is an interactive session on an account manager.
type Console struct {
	w       io.Writer
	r       *bufio.Reader
	manager *finance.AccountManager
}

// New creates a new Console.
//
// It takes the account manager the session works on, an io.Writer for the
// console output (e.g., os.Stdout), and an io.Reader for user input (e.g.,
// os.Stdin).
func New(w io.Writer, r io.Reader, manager *finance.AccountManager) *Console {
	return &Console{
		w:       w,
		r:       bufio.NewReader(r),
		manager: manager,
	}
}

const prompt = "> "

// Setup asks the user whether to load an accounts file, then whether to
// create a new account.
func (c *Console) Setup(ctx context.Context) error {
	if err := c.LoadPrompt(ctx); err != nil {
		return err
	}
	return c.CreateAccountPrompt(ctx)
}

// LoadPrompt asks the user whether to load a file with account details, and
// asks for its path until it can be read.
//
// Accounts are loaded all at once: if the file content is rejected, the
// error is printed and no account is added.
func (c *Console) LoadPrompt(ctx context.Context) error {
	log := logger.FromContext(ctx)
	yes, err := c.askYesNo("Would you like to load a file with account details? (Yes/No)")
	if err != nil || !yes {
		return err
	}

	var record any
	for {
		path, err := c.ask("Enter the path to the file with the account details")
		if err != nil {
			return err
		}
		record, err = finance.LoadAccounts(path)
		if err == nil {
			break
		}
		log.Debug().Err(err).Str("path", path).Msg("cannot load accounts file")
		fmt.Fprintln(c.w, err)
	}

	if err := c.manager.GenerateAccounts(record); err != nil {
		fmt.Fprintln(c.w, err)
		return nil
	}
	fmt.Fprintf(c.w, "%d account(s) loaded\n", c.manager.AccountCount())
	return nil
}

// CreateAccountPrompt asks the user whether to create a new account, and
// creates it.
func (c *Console) CreateAccountPrompt(ctx context.Context) error {
	yes, err := c.askYesNo("Would you like to create a new account? (Yes/No)")
	if err != nil || !yes {
		return err
	}
	name, err := c.ask("Enter the name of the account")
	if err != nil {
		return err
	}
	c.execute(logger.FromContext(ctx), string(finance.ActAddAccount), finance.AccountName(name))
	return nil
}

// Run starts the interactive loop. It returns when the user quits or the
// input ends.
func (c *Console) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).With().Str("session", uuid.NewString()).Logger()
	log.Debug().Int("accounts", c.manager.AccountCount()).Msg("console session started")

	fmt.Fprintln(c.w, `To view a list of all options, type "help"`)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.w, prompt)
		input, err := c.readLine()
		if err != nil {
			if err == io.EOF {
				log.Debug().Msg("end of input")
				return nil // Clean exit on Ctrl+D
			}
			return err
		}
		if input == "" {
			continue
		}

		info, err := finance.LookupAction(input)
		if err != nil {
			fmt.Fprintln(c.w, err)
			continue
		}

		var arg finance.Argument
		if info.TakesArgument() {
			arg, err = c.collect(info)
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		c.execute(log, string(info.Action), arg)
		if info.Action == finance.ActQuit {
			return nil
		}
	}
}

// execute builds and executes a request, printing its result or its error.
func (c *Console) execute(log zerolog.Logger, keyword string, arg finance.Argument) {
	req, err := finance.NewRequestWithArgument(keyword, arg)
	if err != nil {
		fmt.Fprintln(c.w, err)
		return
	}
	out, err := c.manager.ExecuteRequest(req)
	log.Debug().Str("action", string(req.What())).Err(err).Msg("request executed")
	if err != nil {
		fmt.Fprintln(c.w, err)
		return
	}
	fmt.Fprintln(c.w, out)
}

// collect reads the argument of an action from the user.
func (c *Console) collect(info finance.ActionInfo) (finance.Argument, error) {
	switch info.Argument {
	case finance.AccountNameArgument:
		question := "Enter the name of the account"
		switch info.Action {
		case finance.ActChangeAccount:
			question = "Enter the name of the account to change to"
		case finance.ActDeleteAccount:
			question = "Enter the name of the account to delete"
		}
		name, err := c.ask(question)
		return finance.AccountName(name), err

	case finance.TransactionArgument:
		return c.collectTransaction()

	case finance.TransactionNumberArgument:
		if a := c.manager.ActiveAccount(); a != nil && a.ContainsTransactions() {
			fmt.Fprintln(c.w, "Here are all transactions for the current account:")
			fmt.Fprintln(c.w, a)
		}
		n, err := c.askInt("Enter the number of the transaction to delete")
		return finance.TransactionNumber(n), err

	case finance.SortMethodArgument:
		return c.askSortMethod()

	default:
		return nil, fmt.Errorf("cannot collect %s", info.Argument)
	}
}

func (c *Console) collectTransaction() (finance.Argument, error) {
	var d finance.TransactionDetails
	var err error
	if d.ItemName, err = c.ask("Enter the name of the item"); err != nil {
		return nil, err
	}
	if d.ItemCategory, err = c.ask(fmt.Sprintf("Enter the category of the item (default %q)", finance.DefaultCategory)); err != nil {
		return nil, err
	}
	if d.ItemFee, err = c.askDecimal("Enter the fee of the item"); err != nil {
		return nil, err
	}
	if d.Quantity, err = c.askInt("Enter the quantity of the item purchased"); err != nil {
		return nil, err
	}
	if d.Date, err = c.askDate("Enter the date of the transaction (yyyy-mm-dd).\nAlternatively, enter \"today\" if the item was purchased today"); err != nil {
		return nil, err
	}
	return d, nil
}

// readLine reads a trimmed line. A last line without a line feed is still
// returned, io.EOF is returned only when there is nothing left to read.
func (c *Console) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask prints a question and returns the answer.
func (c *Console) ask(question string) (string, error) {
	fmt.Fprintln(c.w, question)
	return c.readLine()
}

// askYesNo asks a question until the answer is Yes or No (case insensitive).
func (c *Console) askYesNo(question string) (bool, error) {
	for {
		answer, err := c.ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		fmt.Fprintln(c.w, "Please enter Yes or No")
	}
}

func (c *Console) askInt(question string) (int, error) {
	for {
		answer, err := c.ask(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.w, "Please enter an integer")
	}
}

func (c *Console) askDecimal(question string) (decimal.Decimal, error) {
	for {
		answer, err := c.ask(question)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(answer)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(c.w, "Please enter a number without alphabetical characters")
	}
}

func (c *Console) askDate(question string) (date.Date, error) {
	for {
		answer, err := c.ask(question)
		if err != nil {
			return date.Date{}, err
		}
		d, err := date.ParseInput(answer)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(c.w, err)
	}
}

func (c *Console) askSortMethod() (finance.SortMethod, error) {
	var b strings.Builder
	for i, m := range finance.SortMethods() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Enter %d to sort the transactions %s", int(m), sortLabel(m))
	}
	for {
		answer, err := c.ask(b.String())
		if err != nil {
			return 0, err
		}
		m, err := finance.ParseSortMethod(answer)
		if err == nil {
			return m, nil
		}
		fmt.Fprintln(c.w, err)
	}
}

func sortLabel(m finance.SortMethod) string {
	switch m {
	case finance.Chronological:
		return "chronologically"
	case finance.ByCost:
		return "by cost"
	default:
		return "by category"
	}
}
