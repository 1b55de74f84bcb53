package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tendant/simple-catalog/pkg/catalog"
	"github.com/tendant/simple-catalog/pkg/catalog/client"
)

type clientFactory func() *client.Client

// NewListCommand creates the list command
func NewListCommand(newClient clientFactory) *cobra.Command {
	var q catalog.Query
	var featured string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if featured != "" {
				v, err := strconv.ParseBool(featured)
				if err != nil {
					return fmt.Errorf("invalid --featured value %q: %w", featured, err)
				}
				q.Featured = &v
			}

			items, err := newClient().List(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().StringVar(&q.Search, "search", "", "case-insensitive text in title or body")
	cmd.Flags().StringVar(&q.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&q.Tag, "tag", "", "exact tag")
	cmd.Flags().StringVar(&q.Status, "status", "", "exact status")
	cmd.Flags().StringVar(&featured, "featured", "", "true or false")
	cmd.Flags().StringVar(&q.SortBy, "sort-by", "", fmt.Sprintf("sort field, prefix with - for descending (%v)", catalog.SortKeys()))

	return cmd
}

// NewGetCommand creates the get command
func NewGetCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "get <content-id>",
		Short: "Show one item (records a view)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := newClient().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}
}

// NewAuthorCommand creates the author command
func NewAuthorCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "author <author-id>",
		Short: "List content by one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := newClient().ListByAuthor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}
}

func draftFlags(cmd *cobra.Command, d *client.DraftRequest) {
	cmd.Flags().StringVar(&d.Title, "title", "", "article title")
	cmd.Flags().StringVar(&d.Body, "body", "", "article body")
	cmd.Flags().StringVar(&d.AuthorID, "author", "", "author id")
	cmd.Flags().StringVar(&d.CreatedAt, "created-at", "", "creation timestamp")
	cmd.Flags().StringVar(&d.Category, "category", "", "category label")
	cmd.Flags().StringSliceVar(&d.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVar(&d.Status, "status", "", "status (default published)")
	cmd.Flags().BoolVar(&d.Featured, "featured", false, "mark as featured")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
}

// NewCreateCommand creates the create command
func NewCreateCommand(newClient clientFactory) *cobra.Command {
	var d client.DraftRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := newClient().Create(cmd.Context(), d)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}
	draftFlags(cmd, &d)
	return cmd
}

// NewUpdateCommand creates the update command
func NewUpdateCommand(newClient clientFactory) *cobra.Command {
	var d client.DraftRequest

	cmd := &cobra.Command{
		Use:   "update <content-id>",
		Short: "Replace an article (views and likes are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := newClient().Update(cmd.Context(), args[0], d)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}
	draftFlags(cmd, &d)
	return cmd
}

// NewDeleteCommand creates the delete command
func NewDeleteCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <content-id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

// NewLikeCommand creates the like command
func NewLikeCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "like <content-id>",
		Short: "Like an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			likes, err := newClient().Like(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d likes\n", args[0], likes)
			return nil
		},
	}
}

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List distinct categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := newClient().Categories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), categories)
		},
	}
}

// NewTagsCommand creates the tags command
func NewTagsCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List distinct tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := newClient().Tags(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tags)
		},
	}
}
