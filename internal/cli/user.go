package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account commands",
	}

	cmd.AddCommand(newUserRegisterCmd())
	cmd.AddCommand(newUserLoginCmd())
	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserDeleteCmd())
	cmd.AddCommand(newUserAvatarCmd())
	cmd.AddCommand(newUserStatsCmd())

	return cmd
}

func newUserRegisterCmd() *cobra.Command {
	var user, pass, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			if role != "" {
				req["role"] = role
			}
			var result MessageResult

			if err := client.Post("/users/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&role, "role", "", "Role: student or admin (default student)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newUserLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			var result LoginResult

			if err := client.Post("/users/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []User

			if err := client.Get("/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(UserList(result))
			return nil
		},
	}
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/users/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result.Message)
			return nil
		},
	}
}

func newUserAvatarCmd() *cobra.Command {
	var avatar string

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Update your avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"avatar": avatar}
			var result AvatarResult

			if err := client.Put("/users/avatar", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar image name (required)")
	_ = cmd.MarkFlagRequired("avatar")

	return cmd
}

func newUserStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headline user/game counters (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result OverviewResult

			if err := client.Get("/users/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
