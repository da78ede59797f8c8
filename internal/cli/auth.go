package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/photostudio/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for profile fields and creates a new account on the lowest
// tier, leaving the user signed in.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	view, err := a.auth.SignUp(ctx, name, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			fmt.Fprintln(a.out, "An account with this email already exists. Try 'signin'.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are on the %s plan.\n", view.Name, view.Plan)
	return nil
}

// SignIn prompts for credentials and signs in.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	view, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrInvalidCredential) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", view.Name)
	return nil
}

// Demo signs in with the seeded demo account, no credentials needed.
func (a *App) Demo(ctx context.Context) error {
	view, err := a.auth.QuickDemoAccess(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s).\n", view.Name, view.Email)
	return nil
}

// SignOut clears the session. Saved work stays in the library for the next
// sign-in.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
