package cmd

import (
	"fmt"

	"which-llm/core/output"
	"which-llm/core/profile"

	"github.com/spf13/cobra"
)

var apiKeyFlag string

func openProfiles() (*profile.Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return profile.Open(dir)
}

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage API credential profiles",
	Long: `Profiles store named API keys for live API access. The first profile
created becomes the default; commands use the default unless --profile
names another one. Without any profile the AA_API_KEY environment
variable is used.`,
}

// profileCreateCmd represents the profile create command
var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProfiles()
		if err != nil {
			return err
		}

		p, err := store.Create(args[0], apiKeyFlag)
		if err != nil {
			return err
		}

		fmt.Printf("Created profile %q (%s).\n", p.Name, p.MaskedKey())
		if p.IsDefault {
			fmt.Println("It is now the default profile.")
		}
		return nil
	},
}

// profileListCmd represents the profile list command
var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProfiles()
		if err != nil {
			return err
		}

		profiles, err := store.List()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles. Create one with 'which-llm profile create <name> --api-key <key>'.")
			return nil
		}

		format, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		headers := []string{"Name", "API Key", "Default"}
		rows := make([][]string, 0, len(profiles))
		for _, p := range profiles {
			def := ""
			if p.IsDefault {
				def = "yes"
			}
			rows = append(rows, []string{p.Name, p.MaskedKey(), def})
		}

		fmt.Println(output.Render(headers, rows, format))
		return nil
	},
}

// profileDefaultCmd represents the profile default command
var profileDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProfiles()
		if err != nil {
			return err
		}

		if err := store.SetDefault(args[0]); err != nil {
			return err
		}

		fmt.Printf("Default profile is now %q.\n", args[0])
		return nil
	},
}

// profileDeleteCmd represents the profile delete command
var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProfiles()
		if err != nil {
			return err
		}

		if err := store.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted profile %q.\n", args[0])
		return nil
	},
}

// profileShowCmd represents the profile show command
var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a profile (default profile when no name is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProfiles()
		if err != nil {
			return err
		}

		var p profile.Profile
		if len(args) == 1 {
			p, err = store.Get(args[0])
		} else {
			p, err = store.Default()
		}
		if err != nil {
			return err
		}

		fmt.Printf("Name:    %s\n", p.Name)
		fmt.Printf("API Key: %s\n", p.MaskedKey())
		fmt.Printf("Default: %t\n", p.IsDefault)
		fmt.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	profileCreateCmd.Flags().StringVar(&apiKeyFlag, "api-key", "",
		"API key to store (falls back to "+profile.EnvAPIKey+")")
	profileCmd.AddCommand(
		profileCreateCmd,
		profileListCmd,
		profileDefaultCmd,
		profileDeleteCmd,
		profileShowCmd,
	)
	RootCmd.AddCommand(profileCmd)
}
