package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/avolodin/notekeep/internal/client"
)

var (
	email    string
	password string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		res, err := api().Register(ctx, email, password)
		if err != nil {
			fatal("register", err)
		}
		fmt.Printf("%s (%s)\n", res.Message, res.User.ID)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the issued token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := cmdContext()
		defer cancel()

		res, err := api().Login(ctx, email, password)
		if err != nil {
			fatal("login", err)
		}
		s := client.Session{
			Token:     res.Token,
			UserID:    res.UserID,
			Email:     res.Email,
			ExpiresAt: tokenExpiry(res.Token),
		}
		if err := client.SaveSession(s); err != nil {
			fatal("save session", err)
		}
		fmt.Printf("%s as %s\n", res.Message, res.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := client.ClearSession(); err != nil {
			fatal("logout", err)
		}
		fmt.Println("logged out")
	},
}

// tokenExpiry reads the exp claim without verifying the signature; the
// server remains the authority, this only schedules local re-login.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Now().Add(time.Hour)
	}
	return claims.ExpiresAt.Time
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVarP(&email, "email", "e", "", "account email")
		c.Flags().StringVarP(&password, "password", "p", "", "account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd)
}
