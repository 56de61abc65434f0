// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/bookmark-keeper/internal/adapter"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// App dispatches CLI subcommands to a [adapter.BookmarkAPI].
type App struct {
	api  adapter.BookmarkAPI
	out  io.Writer
	root *cobra.Command

	logger *logger.Logger
}

func NewApp(api adapter.BookmarkAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:    api,
		out:    out,
		logger: logger,
	}

	a.root = &cobra.Command{
		Use:           "bookmark-cli",
		Short:         "Command line client for the bookmark-keeper API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger.Debug().Str("command", cmd.CommandPath()).Msg("running command")
		},
	}
	a.root.SetOut(out)
	a.root.SetErr(out)

	a.root.AddCommand(
		a.signupCmd(),
		a.signinCmd(),
		a.meCmd(),
		a.updateMeCmd(),
		a.addCmd(),
		a.listCmd(),
		a.getCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.versionCmd(),
	)

	return a
}

// Run executes the subcommand named by args. No args prints the help text.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// ==========================
// AUTH
// ==========================

func (a *App) signupCmd() *cobra.Command {
	var req models.AuthRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and print its access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.api.Signup(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(models.TokenResponse{AccessToken: token})
		},
	}
	authFlags(cmd, &req)

	return cmd
}

func (a *App) signinCmd() *cobra.Command {
	var req models.AuthRequest

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and print an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.api.Signin(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(models.TokenResponse{AccessToken: token})
		},
	}
	authFlags(cmd, &req)

	return cmd
}

func authFlags(cmd *cobra.Command, req *models.AuthRequest) {
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
}

// ==========================
// PROFILE
// ==========================

func (a *App) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(user)
		},
	}
}

func (a *App) updateMeCmd() *cobra.Command {
	var email, firstName, lastName string

	cmd := &cobra.Command{
		Use:   "update-me",
		Short: "Change the email or name of the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.api.UpdateMe(cmd.Context(), models.UpdateUserRequest{
				Email:     changed(cmd, "email", email),
				FirstName: changed(cmd, "first-name", firstName),
				LastName:  changed(cmd, "last-name", lastName),
			})
			if err != nil {
				return err
			}
			return a.printJSON(user)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")

	return cmd
}

// ==========================
// BOOKMARKS
// ==========================

func (a *App) addCmd() *cobra.Command {
	var title, link, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bookmark, err := a.api.CreateBookmark(cmd.Context(), models.CreateBookmarkRequest{
				Title:       title,
				Description: changed(cmd, "description", description),
				Link:        link,
			})
			if err != nil {
				return err
			}
			return a.printJSON(bookmark)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "bookmark title")
	cmd.Flags().StringVar(&link, "link", "", "bookmark link")
	cmd.Flags().StringVar(&description, "description", "", "bookmark description")

	return cmd
}

func (a *App) listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bookmarks, err := a.api.ListBookmarks(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return a.printJSON(bookmarks)
			}

			a.renderTable(bookmarks)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func (a *App) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one of your bookmarks (null if you own none with that id)",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			bookmark, err := a.api.GetBookmark(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printJSON(bookmark)
		},
	}
}

func (a *App) editCmd() *cobra.Command {
	var title, link, description string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the given fields of a bookmark",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			bookmark, err := a.api.EditBookmark(cmd.Context(), id, models.EditBookmarkRequest{
				Title:       changed(cmd, "title", title),
				Description: changed(cmd, "description", description),
				Link:        changed(cmd, "link", link),
			})
			if err != nil {
				return err
			}
			return a.printJSON(bookmark)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&link, "link", "", "new link")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a bookmark",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err = a.api.DeleteBookmark(cmd.Context(), id); err != nil {
				return err
			}

			cmd.Printf("bookmark %d deleted\n", id)
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.api.Version(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(v)
			return nil
		},
	}
}

// ==========================
// OUTPUT
// ==========================

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) renderTable(bookmarks []models.Bookmark) {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.AppendHeader(table.Row{"ID", "Title", "Link", "Description", "Updated"})

	for _, b := range bookmarks {
		description := ""
		if b.Description != nil {
			description = *b.Description
		}
		t.AppendRow(table.Row{b.ID, b.Title, b.Link, description, b.UpdatedAt.Format("2006-01-02 15:04")})
	}

	t.Render()
}

// changed returns a pointer to value only when the flag was given, so an
// explicit empty value can be told apart from an absent one.
func changed(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func requireID(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return ErrMissingID
	case len(args) > 1:
		return fmt.Errorf("expected one bookmark id, got %d arguments", len(args))
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
