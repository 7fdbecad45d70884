package password

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/users"
	"github.com/youta-t/flarc"
	"golang.org/x/term"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Change password of the User.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Change password of the User.

Passwords are asked on the terminal without echo.
When stdin is not a terminal, three lines are read from stdin:
the current password, the new password and the new password again.
`),
	)
}

// Prompt reads a password.
type Prompt func(label string) (string, error)

// terminalPrompt reads passwords from the terminal f, without echo.
func terminalPrompt(f *os.File, stderr io.Writer) Prompt {
	return func(label string) (string, error) {
		fmt.Fprintf(stderr, "%s: ", label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// linePrompt reads passwords line by line.
func linePrompt(r io.Reader) Prompt {
	sc := bufio.NewScanner(r)
	return func(label string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", errors.Join(flarc.ErrUsage, fmt.Errorf("%s is not given", label))
		}
		return sc.Text(), nil
	}
}

func promptFor(stdin io.Reader, stderr io.Writer) Prompt {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return terminalPrompt(f, stderr)
	}
	return linePrompt(stdin)
}

// Ask asks passwords for PasswordChange.
func Ask(prompt Prompt) (users.PasswordChange, error) {
	ch := users.PasswordChange{}
	var err error
	if ch.OldPassword, err = prompt("current password"); err != nil {
		return users.PasswordChange{}, err
	}
	if ch.NewPassword1, err = prompt("new password"); err != nil {
		return users.PasswordChange{}, err
	}
	if ch.NewPassword2, err = prompt("new password (again)"); err != nil {
		return users.PasswordChange{}, err
	}
	return ch, nil
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		ch, err := Ask(promptFor(cl.Stdin(), cl.Stderr()))
		if err != nil {
			return err
		}
		if err := ch.Validate(); err != nil {
			return common.AsUsage(err)
		}
		if err := client.ChangePassword(ctx, ch); err != nil {
			return err
		}
		logger.Println("password is changed.")
		return nil
	}
}
