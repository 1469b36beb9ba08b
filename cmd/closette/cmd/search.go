package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/closette/pkg/types"
)

func searchCmd() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "search [description...]",
		Short: "Search Vinted, Depop and eBay",
		Long: "Sends a search to the API server. With --image the query is derived from\n" +
			"the picture and any description is ignored.",
		Example: `  closette search 70s floral maxi dress
  closette search --image https://example.com/jacket.jpg
  closette search "corduroy skirt" --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.SearchRequest{
				ImageReference: image,
				TextInput:      strings.Join(args, " "),
			}

			resp, err := newClient().Search(cmd.Context(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printSearchResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "image URL or data URI to search by")

	return cmd
}
