package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/studyset-web/client"
	"github.com/andrewpaige1/studyset-web/editor"
)

var (
	importReverse bool
	importSubject string
	importPush    bool
	importToken   string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Parse a tab-separated export into study set questions",
	Long: `Import reads one question per line with the answer after a tab, the
format Quizlet exports. The parsed questions are printed as JSON, or sent
to the backend as a new study set with --push.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		ed := editor.Draft{
			Subject:    importSubject,
			ImportText: string(data),
			Reverse:    importReverse,
			Tab:        editor.TabImport,
		}.Import()

		if !importPush {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ed.Input())
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		token := importToken
		if token == "" {
			token = os.Getenv("STUDYSET_TOKEN")
		}
		if token == "" {
			return errors.New("--push needs --token or STUDYSET_TOKEN")
		}

		timeout, err := cfg.APITimeout()
		if err != nil {
			return err
		}
		api := client.New(cfg.API.BaseURL, client.WithTimeout(timeout)).WithToken(token)

		set, err := ed.Submit(cmd.Context(), api)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created study set %d %q with %d questions\n", set.ID, set.Subject, len(set.Questions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importReverse, "reverse", "r", false, "swap questions and answers")
	importCmd.Flags().StringVarP(&importSubject, "subject", "s", "", "subject of the study set")
	importCmd.Flags().BoolVar(&importPush, "push", false, "create the study set on the backend")
	importCmd.Flags().StringVar(&importToken, "token", "", "credential for --push (default $STUDYSET_TOKEN)")
}
