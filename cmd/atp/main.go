package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/config"
)

var (
	apiURL string
	format string
	token  string
)

func main() {
	root := &cobra.Command{
		Use:   "atp",
		Short: "atp CLI — manage agents, integrations, and MCP servers through the console API",
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "console API URL (default http://localhost:8080)")
	root.PersistentFlags().StringVar(&format, "format", "table", "output format: table or json")
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token for the console API")

	agentCmd := &cobra.Command{Use: "agent", Short: "Manage agents"}
	agentCmd.AddCommand(
		agentListCmd(),
		agentInspectCmd(),
		agentCreateCmd(),
		agentPauseCmd(),
		agentResumeCmd(),
		agentRemoveCmd(),
	)

	integrationCmd := &cobra.Command{Use: "integration", Short: "Manage integrations"}
	integrationCmd.AddCommand(
		integrationListCmd(),
		integrationConnectCmd(),
		integrationDisconnectCmd(),
	)

	serverCmd := &cobra.Command{Use: "server", Short: "Manage MCP servers"}
	serverCmd.AddCommand(
		serverListCmd(),
		serverAddCmd(),
		serverRemoveCmd(),
		serverExecuteCmd(),
	)

	keyCmd := &cobra.Command{Use: "key", Short: "Manage API keys"}
	keyCmd.AddCommand(
		keyListCmd(),
		keyCreateCmd(),
		keyRevokeCmd(),
	)

	root.AddCommand(
		agentCmd,
		integrationCmd,
		serverCmd,
		keyCmd,
		activityCmd(),
		analyticsCmd(),
		teamCmd(),
		orgCmd(),
		statusCmd(),
		eventsCmd(),
		configValidateCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func getAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if v := os.Getenv("ATP_API"); v != "" {
		return v
	}
	// Try config file.
	home, _ := os.UserHomeDir()
	data, err := os.ReadFile(home + "/.atp/config.yaml")
	if err == nil {
		var cfg struct {
			API string `yaml:"api"`
		}
		if yaml.Unmarshal(data, &cfg) == nil && cfg.API != "" {
			return cfg.API
		}
	}
	return "http://localhost:8080"
}

func getToken() string {
	if token != "" {
		return token
	}
	return os.Getenv("ATP_TOKEN")
}

func apiDo(method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = strings.NewReader(string(data))
	}
	req, err := http.NewRequest(method, getAPIURL()+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if t := getToken(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(b))
	}
	return b, nil
}

func apiGet(path string) ([]byte, error) {
	return apiDo(http.MethodGet, path, nil)
}

func apiPost(path string, payload any) ([]byte, error) {
	return apiDo(http.MethodPost, path, payload)
}

func apiDelete(path string) ([]byte, error) {
	return apiDo(http.MethodDelete, path, nil)
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show console status",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/health")
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var health struct {
				UptimeSeconds         float64 `json:"uptime_seconds"`
				AgentCount            int     `json:"agent_count"`
				ServerCount           int     `json:"server_count"`
				ConnectedIntegrations int     `json:"connected_integrations"`
			}
			_ = json.Unmarshal(data, &health)

			uptime := time.Duration(health.UptimeSeconds) * time.Second
			days := int(uptime.Hours()) / 24
			hours := int(uptime.Hours()) % 24
			mins := int(uptime.Minutes()) % 60

			fmt.Println("Agent Console")
			fmt.Printf("  Uptime:       %dd %dh %dm\n", days, hours, mins)
			fmt.Printf("  Agents:       %d\n", health.AgentCount)
			fmt.Printf("  MCP servers:  %d\n", health.ServerCount)
			fmt.Printf("  Integrations: %d connected\n", health.ConnectedIntegrations)
			return nil
		},
	}
}

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Stream console events (SSE)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest(http.MethodGet, getAPIURL()+"/api/events", nil)
			if err != nil {
				return err
			}
			if t := getToken(); t != "" {
				req.Header.Set("Authorization", "Bearer "+t)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			scanner := bufio.NewScanner(resp.Body)
			for scanner.Scan() {
				line := scanner.Text()
				if strings.HasPrefix(line, "data: ") {
					fmt.Println(line[6:])
				}
			}
			return scanner.Err()
		},
	}
}

func configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config validate <file>",
		Short: "Validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Println("OK")
			return nil
		},
	}
}

// listQuery builds the shared list query string from the common flags.
func listQuery(q, filterKey, filterVal string, page int) string {
	values := url.Values{}
	if q != "" {
		values.Set("q", q)
	}
	if filterVal != "" {
		values.Set(filterKey, filterVal)
	}
	if page > 1 {
		values.Set("page", fmt.Sprint(page))
	}
	if enc := values.Encode(); enc != "" {
		return "?" + enc
	}
	return ""
}
