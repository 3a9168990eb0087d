package cmd

import (
	"context"
	"fmt"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/bootstrap"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/config"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/tui/addusermodal"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/user"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Open the add-user form",
	Long: `Opens the add-user modal and adds the employee to the directory.

Navigation:
  Tab / Shift+Tab  - next / previous field
  Left / Right     - choose role and department
  Ctrl+R           - show or hide passwords
  Enter            - submit
  Esc              - cancel`,
	RunE: runAddUser,
}

func init() {
	rootCmd.AddCommand(addUserCmd)
}

func runAddUser(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, err := newTUILogger(cfg.App.IsProduction())
	if err != nil {
		printError("logger", err)
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cost := cfg.Auth.BcryptCost
	if bcryptCost > 0 {
		cost = bcryptCost
	}
	svc := user.NewService(user.NewRepository(), cost, logger)

	var created user.UserResponse
	onAddUser := employeeform.AddUserFunc(func(ctx context.Context, payload employeeform.Payload) error {
		res, err := svc.AddUser(ctx, payload)
		if err != nil {
			return err
		}
		created = res
		return nil
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(addusermodal.NewModel(ctx, onAddUser), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		printError("TUI", err)
		return err
	}

	m, ok := final.(addusermodal.Model)
	if !ok || !m.Submitted() {
		fmt.Fprintln(cmd.OutOrStdout(), "cancelled, no user added")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "added %s <%s> as %s in %s (id %s)\n",
		created.FullName, created.Email, created.Role, created.Department, created.ID)
	return nil
}

// newTUILogger keeps log lines off the terminal, which bubbletea owns while
// the form is open: they go to --log-file, or nowhere.
func newTUILogger(production bool) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}
	return bootstrap.NewLogger(logLevel, production, logFile)
}
