package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Authenticate and save the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			session, err := a.client.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if err := saveSession(a.cfg, session); err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			fmt.Printf("Logged in as %s (%s)\n", session.User.Name, session.User.Role)
			return nil
		},
	}
}

func logoutCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			a.client.ClearToken()
			if err := clearSession(a.cfg); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func profileCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			user, err := a.client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}
