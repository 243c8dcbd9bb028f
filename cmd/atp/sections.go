package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func integrationListCmd() *cobra.Command {
	var search, category string
	var connectedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List integrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/integrations" + listQuery(search, "category", category, 1)
			if connectedOnly {
				sep := "?"
				if strings.Contains(path, "?") {
					sep = "&"
				}
				path += sep + "connected=true"
			}
			data, err := apiGet(path)
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var resp struct {
				Items []struct {
					Name      string `json:"name"`
					Category  string `json:"category"`
					Connected bool   `json:"connected"`
				} `json:"items"`
			}
			_ = json.Unmarshal(data, &resp)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tCONNECTED")
			for _, i := range resp.Items {
				fmt.Fprintf(w, "%s\t%s\t%t\n", i.Name, i.Category, i.Connected)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search by name or category")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().BoolVar(&connectedOnly, "connected", false, "show only connected integrations")
	return cmd
}

func integrationConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <name>",
		Short: "Connect an integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiPost("/api/integrations/"+url.PathEscape(args[0])+"/connect", nil)
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}

func integrationDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <name>",
		Short: "Disconnect an integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiPost("/api/integrations/"+url.PathEscape(args[0])+"/disconnect", nil)
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}

func activityCmd() *cobra.Command {
	var search, status, agent string
	var page int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/activity" + listQuery(search, "status", status, page)
			if agent != "" {
				sep := "?"
				if strings.Contains(path, "?") {
					sep = "&"
				}
				path += sep + "agent=" + url.QueryEscape(agent)
			}
			data, err := apiGet(path)
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var resp struct {
				Items []struct {
					CreatedAt  string `json:"created_at"`
					AgentName  string `json:"agent_name"`
					Kind       string `json:"kind"`
					Tool       string `json:"tool"`
					Status     string `json:"status"`
					Message    string `json:"message"`
					DurationMs int64  `json:"duration_ms"`
				} `json:"items"`
			}
			_ = json.Unmarshal(data, &resp)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tAGENT\tKIND\tSTATUS\tDURATION\tMESSAGE")
			for _, e := range resp.Items {
				kind := e.Kind
				if e.Tool != "" {
					kind = e.Kind + "/" + e.Tool
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dms\t%s\n",
					e.CreatedAt, e.AgentName, kind, e.Status, e.DurationMs, e.Message)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search by agent, message, or tool")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (success, error, running)")
	cmd.Flags().StringVar(&agent, "agent", "", "filter by agent ID")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func analyticsCmd() *cobra.Command {
	var rangeParam string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show run analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/analytics/summary?range=" + url.QueryEscape(rangeParam))
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var summary struct {
				TotalRuns   int     `json:"total_runs"`
				Successes   int     `json:"successes"`
				Errors      int     `json:"errors"`
				SuccessRate float64 `json:"success_rate"`
				ByAgent     []struct {
					AgentName     string  `json:"agent_name"`
					Runs          int     `json:"runs"`
					Errors        int     `json:"errors"`
					AvgDurationMs float64 `json:"avg_duration_ms"`
				} `json:"by_agent"`
			}
			_ = json.Unmarshal(data, &summary)

			fmt.Printf("Runs: %d  Success: %d  Errors: %d  Rate: %.1f%%\n\n",
				summary.TotalRuns, summary.Successes, summary.Errors, summary.SuccessRate*100)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "AGENT\tRUNS\tERRORS\tAVG DURATION")
			for _, a := range summary.ByAgent {
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0fms\n", a.AgentName, a.Runs, a.Errors, a.AvgDurationMs)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&rangeParam, "range", "7d", "time range: 24h, 7d, 30d, all")
	return cmd
}

func serverListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List MCP servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/servers")
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var resp struct {
				Items []struct {
					ID        string `json:"id"`
					Name      string `json:"name"`
					Transport string `json:"transport"`
					Status    string `json:"status"`
					Tools     []struct {
						Name string `json:"name"`
					} `json:"tools"`
				} `json:"items"`
			}
			_ = json.Unmarshal(data, &resp)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTRANSPORT\tSTATUS\tTOOLS")
			for _, s := range resp.Items {
				names := make([]string, len(s.Tools))
				for i, t := range s.Tools {
					names[i] = t.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Transport, s.Status, strings.Join(names, ","))
			}
			return w.Flush()
		},
	}
}

func serverAddCmd() *cobra.Command {
	var name, description, transport, endpoint string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || transport == "" {
				return fmt.Errorf("--name and --transport are required")
			}
			resp, err := apiPost("/api/servers", map[string]string{
				"name":        name,
				"description": description,
				"transport":   transport,
				"endpoint":    endpoint,
			})
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "server name")
	cmd.Flags().StringVar(&description, "description", "", "server description")
	cmd.Flags().StringVar(&transport, "transport", "", "transport (stdio, http, sse)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "endpoint URL (http/sse transports)")
	return cmd
}

func serverRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an MCP server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiDelete("/api/servers/" + args[0])
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}

func serverExecuteCmd() *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "execute <server-id> <tool>",
		Short: "Run a tool through the test console",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var toolArgs map[string]any
			if argsJSON != "" {
				if err := json.Unmarshal([]byte(argsJSON), &toolArgs); err != nil {
					return fmt.Errorf("parse --args: %w", err)
				}
			}
			resp, err := apiPost(
				"/api/servers/"+args[0]+"/tools/"+args[1]+"/execute",
				map[string]any{"arguments": toolArgs},
			)
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "", "tool arguments as a JSON object")
	return cmd
}

func teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/team")
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var resp struct {
				Items []struct {
					Name   string `json:"name"`
					Email  string `json:"email"`
					Role   string `json:"role"`
					Status string `json:"status"`
				} `json:"items"`
			}
			_ = json.Unmarshal(data, &resp)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEMAIL\tROLE\tSTATUS")
			for _, m := range resp.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Email, m.Role, m.Status)
			}
			return w.Flush()
		},
	}
}

func orgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "org",
		Short: "Show organization settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/organization")
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var org map[string]any
			if err := json.Unmarshal(data, &org); err != nil {
				return fmt.Errorf("parse organization: %w", err)
			}
			for k, v := range org {
				fmt.Printf("%-16s %v\n", k+":", v)
			}
			return nil
		},
	}
}

func keyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/keys")
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var resp struct {
				Items []struct {
					ID        string `json:"id"`
					Name      string `json:"name"`
					Prefix    string `json:"prefix"`
					CreatedAt string `json:"created_at"`
				} `json:"items"`
			}
			_ = json.Unmarshal(data, &resp)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPREFIX\tCREATED")
			for _, k := range resp.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k.ID, k.Name, k.Prefix, k.CreatedAt)
			}
			return w.Flush()
		},
	}
}

func keyCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			data, err := apiPost("/api/keys", map[string]string{"name": name})
			if err != nil {
				return err
			}
			var key struct {
				ID     string `json:"id"`
				Secret string `json:"secret"`
			}
			if err := json.Unmarshal(data, &key); err != nil {
				return fmt.Errorf("parse key: %w", err)
			}
			fmt.Printf("Created key %s\n", key.ID)
			fmt.Printf("Secret (shown once, store it now): %s\n", key.Secret)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "key name")
	return cmd
}

func keyRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiDelete("/api/keys/" + args[0])
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}
