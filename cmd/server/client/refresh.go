package client

import (
	"net/http"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the equipment catalogs from the source",
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost,
		serverAddr+"/api/v1alpha1/catalogs/refresh", nil)
	if err != nil {
		return err
	}

	return doRequest(req)
}
