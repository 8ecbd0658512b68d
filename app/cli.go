package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/biosecret/taskflow/config"
	"github.com/biosecret/taskflow/dashboard"
	"github.com/biosecret/taskflow/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var Version = "dev"

// Execute chạy CLI; không có lệnh con thì chạy server
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "taskflow",
		Short:         "TaskFlow - a per-user task tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(rmCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(themeCmd())

	return rootCmd
}

func loadConfig() (config.Config, error) {
	if err := config.LoadENV(); err != nil {
		return config.Config{}, err
	}
	return config.FromEnv(), nil
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return SetupAndRunApp(cfg)
}

// withDashboard opens the configured storage for one CLI command.
func withDashboard(fn func(d *dashboard.Dashboard) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, kv, err := openDashboard(cfg, nil)
	if err != nil {
		return err
	}
	defer kv.Close()
	return fn(d)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login NAME",
		Short: "Start a session as NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				if err := d.Login(args[0]); err != nil {
					return err
				}
				name, _ := d.User()
				view, err := d.View(models.FilterAll, "")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s! %s\n", name, view.Summary)
				return nil
			})
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session; tasks are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				return d.Logout()
			})
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the session user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				name, ok := d.User()
				if !ok {
					return dashboard.ErrNoSession
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			})
		},
	}
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawFilter, _ := cmd.Flags().GetString("filter")
			search, _ := cmd.Flags().GetString("search")
			filter, err := models.ParseFilter(rawFilter)
			if err != nil {
				return err
			}
			return withDashboard(func(d *dashboard.Dashboard) error {
				view, err := d.View(filter, search)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (all %d, completed %d, pending %d)\n",
					view.Summary, view.Counts.All, view.Counts.Completed, view.Counts.Pending)
				if view.Empty != nil {
					fmt.Fprintf(out, "%s. %s\n", view.Empty.Title, view.Empty.Message)
					return nil
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, item := range view.Tasks {
					mark := " "
					if item.Completed {
						mark = "x"
					}
					fmt.Fprintf(tw, "[%s]\t%s\t%s\t%s\t%s\t%s\n",
						mark, item.ID, item.Title, item.Priority, item.Category, item.DueStatus)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringP("filter", "f", "all", "Filter (all, completed, pending)")
	cmd.Flags().StringP("search", "s", "", "Search title, description and category")

	return cmd
}

func taskFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("description", "d", "", "Task description")
	cmd.Flags().StringP("priority", "p", "medium", "Priority (low, medium, high)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringP("category", "c", "", "Category")
}

func readTaskFlags(cmd *cobra.Command, in dashboard.TaskInput) dashboard.TaskInput {
	if cmd.Flags().Changed("description") {
		in.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("priority") || in.Priority == "" {
		in.Priority, _ = cmd.Flags().GetString("priority")
	}
	if cmd.Flags().Changed("due") {
		in.DueDate, _ = cmd.Flags().GetString("due")
	}
	if cmd.Flags().Changed("category") {
		in.Category, _ = cmd.Flags().GetString("category")
	}
	return in
}

func printTask(w io.Writer, verb string, t models.Task) {
	fmt.Fprintf(w, "%s %s: %s\n", verb, t.ID, t.Title)
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := readTaskFlags(cmd, dashboard.TaskInput{Title: args[0]})
			return withDashboard(func(d *dashboard.Dashboard) error {
				task, err := d.AddTask(in)
				if err != nil {
					return err
				}
				printTask(cmd.OutOrStdout(), "Added", task)
				return nil
			})
		},
	}
	taskFlags(cmd)
	return cmd
}

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				current, err := d.Task(args[0])
				if err != nil {
					return err
				}
				in := dashboard.TaskInput{
					Title:       current.Title,
					Description: current.Description,
					Priority:    string(current.Priority),
					DueDate:     current.DueDate,
					Category:    current.Category,
				}
				if cmd.Flags().Changed("title") {
					in.Title, _ = cmd.Flags().GetString("title")
				}
				task, err := d.UpdateTask(args[0], readTaskFlags(cmd, in))
				if err != nil {
					return err
				}
				printTask(cmd.OutOrStdout(), "Updated", task)
				return nil
			})
		},
	}
	cmd.Flags().StringP("title", "t", "", "Task title")
	taskFlags(cmd)
	return cmd
}

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Mark a task completed or pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				task, err := d.ToggleComplete(args[0])
				if err != nil {
					return err
				}
				verb := "Reopened"
				if task.Completed {
					verb = "Completed"
				}
				printTask(cmd.OutOrStdout(), verb, task)
				return nil
			})
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				if err := d.DeleteTask(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the session user's tasks as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return withDashboard(func(d *dashboard.Dashboard) error {
				tasks, err := d.Tasks()
				if err != nil {
					return err
				}
				return writeTasks(cmd.OutOrStdout(), format, tasks)
			})
		},
	}
	cmd.Flags().String("format", "json", "Output format (json, yaml)")
	return cmd
}

func writeTasks(w io.Writer, format string, tasks []models.Task) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [on|off|toggle]",
		Short:     "Show or change dark mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(d *dashboard.Dashboard) error {
				on := d.DarkMode()
				if len(args) == 1 {
					var err error
					switch args[0] {
					case "on":
						on, err = true, d.SetDarkMode(true)
					case "off":
						on, err = false, d.SetDarkMode(false)
					case "toggle":
						on, err = d.ToggleDarkMode()
					default:
						return fmt.Errorf("unknown theme %q (want on, off or toggle)", args[0])
					}
					if err != nil {
						return err
					}
				}
				if on {
					fmt.Fprintln(cmd.OutOrStdout(), "dark")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "light")
				}
				return nil
			})
		},
	}
}
