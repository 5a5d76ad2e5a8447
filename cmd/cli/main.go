package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	groupID string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "banchi-cli",
		Short: "Banchi CLI tool",
		Long:  `A command line interface for the banchi group ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the banchi API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&groupID, "group", "", "Group identifier")

	rootCmd.AddCommand(newSendCmd(), newSummaryCmd())

	return rootCmd
}

func newSendCmd() *cobra.Command {
	var senderID, senderName string

	cmd := &cobra.Command{
		Use:   "send [text]",
		Short: "Send a message through the webhook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupID == "" {
				return errors.New("--group is required")
			}
			return send(senderID, senderName, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&senderID, "sender", "cli", "Sender identifier")
	cmd.Flags().StringVar(&senderName, "name", "", "Sender display name")

	return cmd
}

func send(senderID, senderName, text string) error {
	payload, err := json.Marshal(map[string]string{
		"group_id":    groupID,
		"sender_id":   senderID,
		"sender_name": senderName,
		"text":        text,
	})
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/webhook", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Reply == "" {
		fmt.Println("(no reply)")
	} else {
		fmt.Println(result.Reply)
	}

	return nil
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summary queries",
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupID == "" {
				return errors.New("--group is required")
			}
			return fetchJSON("/api/v1/groups/" + url.PathEscape(groupID) + "/summary/today")
		},
	}

	var key, offset string

	cycleCmd := &cobra.Command{
		Use:   "cycle",
		Short: "Show a cycle's summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupID == "" {
				return errors.New("--group is required")
			}

			path := "/api/v1/groups/" + url.PathEscape(groupID) + "/summary/cycle"
			query := url.Values{}
			if key != "" {
				query.Set("key", key)
			} else if offset != "" {
				query.Set("offset", offset)
			}
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			return fetchJSON(path)
		},
	}

	cycleCmd.Flags().StringVar(&key, "key", "", "Cycle key (YYYY-MM)")
	cycleCmd.Flags().StringVar(&offset, "offset", "", "Signed month offset from the current cycle")

	cmd.AddCommand(todayCmd, cycleCmd)

	return cmd
}

func fetchJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api returned %d: %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(result)

	return nil
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}
