package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/gownshop/internal/client/models"
	"github.com/dmitrijs2005/gownshop/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for email and password and signs in. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, email, string(password)); err != nil {
		a.logger.Debug(ctx, "login failed", "error", err)
		return err
	}

	a.printLoginResult(ctx)
	return nil
}

// MobileLogin signs in by mobile number alone.
func (a *App) MobileLogin(ctx context.Context) error {
	mobile, err := getSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}

	if _, err := a.authService.LoginWithMobile(ctx, mobile); err != nil {
		a.logger.Debug(ctx, "mobile login failed", "error", err)
		return err
	}

	a.printLoginResult(ctx)
	return nil
}

// Signup creates an account. The backend may or may not sign the new user in.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	mobile, err := getSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.SignupRequest{Email: email, Password: string(password), MobileNumber: mobile}
	if _, err := a.authService.Signup(ctx, req); err != nil {
		return err
	}

	if a.isLoggedIn(ctx) {
		a.printLoginResult(ctx)
		return nil
	}
	fmt.Fprintln(a.out, "Account created, please log in")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Status reports the session state. Reading it also purges an expired token.
// verbose adds the persisted session keys, with the token masked.
func (a *App) Status(ctx context.Context, verbose bool) error {
	if !a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Not logged in")
	} else {
		fmt.Fprintln(a.out, "Logged in")
		if a.isAdmin(ctx) {
			fmt.Fprintln(a.out, "Role: admin")
		}
		if m := a.authService.MobileNumber(ctx); m != "" {
			fmt.Fprintln(a.out, "Mobile:", m)
		}
	}
	if !verbose {
		return nil
	}

	entries := a.session.Entries(ctx)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Stored session: (empty)")
		return nil
	}
	keys := slices.Sorted(maps.Keys(entries))
	fmt.Fprintln(a.out, "Stored session:")
	tw := newTable(a.out)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%s\n", k, entries[k])
	}
	return tw.Flush()
}

func (a *App) printLoginResult(ctx context.Context) {
	if a.isAdmin(ctx) {
		fmt.Fprintln(a.out, "Login successful (admin)")
		return
	}
	fmt.Fprintln(a.out, "Login successful")
}
