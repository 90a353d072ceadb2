package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/studyset-web/client"
)

var setsToken string

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage study sets on the backend",
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your study sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := backendClient()
		if err != nil {
			return err
		}

		sets, err := api.ListStudySets(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSubject\tQuestions")
		fmt.Fprintln(w, "--\t-------\t---------")
		for _, s := range sets {
			fmt.Fprintf(w, "%d\t%s\t%d\n", s.ID, s.Subject, len(s.Questions))
		}
		return w.Flush()
	},
}

var setsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a study set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid study set ID %q", args[0])
		}

		api, err := backendClient()
		if err != nil {
			return err
		}

		sets, err := api.ListStudySets(cmd.Context())
		if err != nil {
			return err
		}
		if _, ok := sets.Find(id); !ok {
			return fmt.Errorf("study set %d not found", id)
		}

		if err := api.DeleteStudySet(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete study set %d: %s", id, client.Detail(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted study set %d, %d remaining\n", id, len(sets.Without(id)))
		return nil
	},
}

func backendClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	token := setsToken
	if token == "" {
		token = os.Getenv("STUDYSET_TOKEN")
	}
	if token == "" {
		return nil, errors.New("a credential is required: pass --token or set STUDYSET_TOKEN")
	}

	timeout, err := cfg.APITimeout()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.API.BaseURL, client.WithTimeout(timeout)).WithToken(token), nil
}

func init() {
	rootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsListCmd, setsDeleteCmd)
	setsCmd.PersistentFlags().StringVar(&setsToken, "token", "", "credential (default $STUDYSET_TOKEN)")
}
