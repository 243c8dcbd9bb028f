package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func agentListCmd() *cobra.Command {
	var search, status string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/agents" + listQuery(search, "status", status, page))
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var resp struct {
				Items []struct {
					ID       string `json:"id"`
					Name     string `json:"name"`
					Status   string `json:"status"`
					Model    string `json:"model"`
					Schedule string `json:"schedule"`
				} `json:"items"`
				Page       int `json:"page"`
				TotalPages int `json:"total_pages"`
			}
			_ = json.Unmarshal(data, &resp) //nolint:errcheck // non-JSON → empty table is fine
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tMODEL\tSCHEDULE")
			for _, a := range resp.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Status, a.Model, a.Schedule)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if resp.TotalPages > 1 {
				fmt.Printf("\nPage %d of %d\n", resp.Page, resp.TotalPages)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search by name or description")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, paused, draft, error)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func agentInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show detailed agent info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := apiGet("/api/agents/" + args[0])
			if err != nil {
				return err
			}
			if format == "json" {
				fmt.Println(string(data))
				return nil
			}
			var info map[string]any
			if err := json.Unmarshal(data, &info); err != nil {
				return fmt.Errorf("parse agent info: %w", err)
			}
			for k, v := range info {
				fmt.Printf("%-16s %v\n", k+":", v)
			}
			return nil
		},
	}
}

func agentCreateCmd() *cobra.Command {
	var name, description, model, instructions, cron, timezone string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if name == "" {
				fmt.Print("Name: ")
				name, _ = reader.ReadString('\n')
				name = strings.TrimSpace(name)
			}
			if model == "" {
				fmt.Print("Model [claude-sonnet-4-5]: ")
				model, _ = reader.ReadString('\n')
				model = strings.TrimSpace(model)
				if model == "" {
					model = "claude-sonnet-4-5"
				}
			}
			if instructions == "" {
				fmt.Print("Instructions (@mention integrations to connect them): ")
				instructions, _ = reader.ReadString('\n')
				instructions = strings.TrimSpace(instructions)
			}

			payload := map[string]any{
				"name":         name,
				"description":  description,
				"model":        model,
				"instructions": instructions,
				"trigger": map[string]string{
					"cron":     cron,
					"timezone": timezone,
				},
			}

			resp, err := apiPost("/api/agents", payload)
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "agent name")
	cmd.Flags().StringVar(&description, "description", "", "agent description")
	cmd.Flags().StringVar(&model, "model", "", "model identifier")
	cmd.Flags().StringVar(&instructions, "instructions", "", "agent instructions")
	cmd.Flags().StringVar(&cron, "cron", "", "trigger cron expression (e.g. \"0 8 * * 1\")")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "trigger timezone label")
	return cmd
}

func agentPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause <id>",
		Short: "Pause an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiPost("/api/agents/"+args[0]+"/pause", nil)
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}

func agentResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Resume a paused agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiPost("/api/agents/"+args[0]+"/resume", nil)
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}

func agentRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Remove agent %q? [y/N]: ", args[0])
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Cancelled.")
				return nil
			}
			resp, err := apiDelete("/api/agents/" + args[0])
			if err != nil {
				return err
			}
			fmt.Println(string(resp))
			return nil
		},
	}
}
