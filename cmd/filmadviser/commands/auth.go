package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := newClient().Register(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (id %d)\n", user.Username, user.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and print a bearer token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newClient().Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s!\n", res.User.Username)
		fmt.Printf("Token: %s\n", res.Token)
		fmt.Println("Pass it to authenticated commands with --token.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd)
}
