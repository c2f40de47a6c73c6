// Package client provides test commands for the equipment calculator API
package client

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the equipment calculator API",
	Long:  `Client commands allow you to exercise the equipment calculator API by making real HTTP requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	ClientCmd.AddCommand(calculateCmd)
	ClientCmd.AddCommand(refreshCmd)
}

// doRequest performs the request and prints the response body. Non-2xx
// statuses are reported as errors alongside the body, which carries the
// API's {code, message} payload.
func doRequest(req *http.Request) error {
	httpClient := &http.Client{Timeout: timeout}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	fmt.Println(string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}
