package cmd

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/search-gateway/api/search"
	"github.com/killallgit/search-gateway/api/types"
	apperrors "github.com/killallgit/search-gateway/pkg/errors"
)

var searchType string

// searchCmd runs one query through the gateway pipeline without a server
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a single search and print the JSON response",
	Long: `Run one query against the upstream provider and print the same JSON the
HTTP endpoint would return. Failures print the error envelope and exit non-zero.

Example:
  search-gateway search golang
  search-gateway search "gopher mascot" --type images`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "web", `result type ("web" or "images")`)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	deps := newDependencies(appConfig)

	resp, err := search.Search(cmd.Context(), deps, query, searchType)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err != nil {
		appErr, ok := apperrors.As(err)
		if !ok {
			appErr = apperrors.Internal(err)
		}
		if encErr := enc.Encode(types.ErrorResponse{Error: appErr.Message}); encErr != nil {
			return encErr
		}
		return errors.New(appErr.Message)
	}

	return enc.Encode(resp)
}
