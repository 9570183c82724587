package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lufa/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the email (when the config does not provide one) and the
// password, then authenticates. The password buffer is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email := a.config.Email
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
	}
	if email == "" {
		return errors.New("email is required")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.lufa.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrAuthentication) {
			a.log.Warn(ctx, "login unsuccessful", "email", email)
			return fmt.Errorf("login failed, check your email and password: %w", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

// Logout ends the session on the server and forgets it locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.lufa.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Status prints who is logged in, if anyone.
func (a *App) Status(ctx context.Context) error {
	if !a.lufa.IsAuthenticated(ctx) {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	email, err := a.lufa.CurrentEmail(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}
