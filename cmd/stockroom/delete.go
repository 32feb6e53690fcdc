// Delete command removes an item after explicit confirmation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/form"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item by ID",
	Long: `Delete removes an item from the collection. Deletion prompts for
confirmation unless --yes is given. Deleting an unknown ID is a no-op.

Example:
  stockroom delete 0198d3a1
  stockroom delete 0198d3a1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	it, ok := form.Find(items, id)
	if !ok {
		fmt.Printf("No item with ID %q; nothing changed.\n", id)
		return nil
	}

	if !deleteYes && !confirm(fmt.Sprintf("Delete %q?", it.Name)) {
		fmt.Println("Delete cancelled.")
		return nil
	}

	items, _ = form.Remove(items, id)
	if err := store.Save(items); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]string{"deleted": id})
	}
	fmt.Printf("Deleted %q (%s)\n", it.Name, id)
	return nil
}
