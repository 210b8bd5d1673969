package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gossipboard/gossip-client/internal/gateway"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var err error
			if email == "" {
				if email, err = readLine(a.in, a.out, "Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = readLine(a.in, a.out, "Password: "); err != nil {
					return err
				}
			}
			id, err := a.sess.Login(ctx, email, password)
			if err != nil {
				return a.failed(ctx, err)
			}
			a.done(fmt.Sprintf("Signed in as %s.", id))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var in gateway.SignupInput
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if in.Password == "" {
				p, err := readLine(a.in, a.out, "Password: ")
				if err != nil {
					return err
				}
				in.Password = p
			}
			if err := a.sess.Signup(ctx, in); err != nil {
				return a.failed(ctx, err)
			}
			a.done("Account created. Run `gossip login` to sign in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Username, "username", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sess.Logout(cmd.Context()); err != nil {
				return err
			}
			a.done("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored session belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			id := a.sess.CurrentUserID(ctx)
			fmt.Fprintln(a.out, id.String())
			if !remote {
				return nil
			}
			if _, err := a.sess.Verify(ctx); err != nil {
				return a.failed(ctx, err)
			}
			a.done("The backend accepts this session.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also ask the backend whether the session is still valid")
	return cmd
}
