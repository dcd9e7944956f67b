package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/restaurant/internal/domain"
)

// NewMenuCmd создаёт группу команд для управления меню.
func NewMenuCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage menu items",
	}

	cmd.AddCommand(
		newMenuListCmd(clientFn, outputFn),
		newMenuShowCmd(clientFn, outputFn),
		newMenuCreateCmd(clientFn, outputFn),
		newMenuUpdateCmd(clientFn, outputFn),
		newMenuDeleteCmd(clientFn, outputFn),
	)

	return cmd
}

func newMenuListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := clientFn().ListMenu()
			if err != nil {
				return err
			}

			outputFn().PrintItems(items, items)
			return nil
		},
	}
}

func newMenuShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show menu item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := clientFn().GetMenuItem(args[0])
			if err != nil {
				return err
			}

			outputFn().PrintItems([]MenuItem{*item}, item)
			return nil
		},
	}
}

func newMenuCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var flags itemFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new menu item",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			item, err := clientFn().CreateMenuItem(flags.request(cmd))
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Menu item created: %d", item.ID))
			out.PrintItems([]MenuItem{*item}, item)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newMenuUpdateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var flags itemFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a menu item (all fields are overwritten)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			item, err := clientFn().ReplaceMenuItem(args[0], flags.request(cmd))
			if err != nil {
				return err
			}

			out.Success("Menu item updated")
			out.PrintItems([]MenuItem{*item}, item)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newMenuDeleteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			resp, err := clientFn().DeleteMenuItem(args[0])
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("%s: %d", resp.Message, resp.Deleted.ID))
			out.PrintItems([]MenuItem{resp.Deleted}, resp)
			return nil
		},
	}
}

// itemFlags — флаги create/update. Проверку значений выполняет сервер.
type itemFlags struct {
	name        string
	description string
	price       float64
	category    string
	ingredients []string
	available   bool
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Item name")
	cmd.Flags().StringVar(&f.description, "description", "", "Item description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Item price")
	cmd.Flags().StringVar(&f.category, "category", "", "Category: "+categoryNames())
	cmd.Flags().StringArrayVar(&f.ingredients, "ingredient", nil, "Ingredient (repeatable)")
	cmd.Flags().BoolVar(&f.available, "available", true, "Whether the item can be ordered")
}

// request собирает тело запроса. available передаётся только если
// флаг задан явно, иначе сервер подставит значение по умолчанию.
func (f *itemFlags) request(cmd *cobra.Command) MenuItemRequest {
	req := MenuItemRequest{
		Name:        f.name,
		Description: f.description,
		Price:       f.price,
		Category:    f.category,
		Ingredients: f.ingredients,
	}
	if req.Ingredients == nil {
		req.Ingredients = []string{}
	}
	if cmd.Flags().Changed("available") {
		available := f.available
		req.Available = &available
	}
	return req
}

func categoryNames() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
