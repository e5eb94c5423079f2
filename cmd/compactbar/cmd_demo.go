package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/compactbar/cmd/compactbar/tui"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

var demoGrant string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the bar inside an interactive host emulator",
	Long: "Start a fake multiplexer session with the bar on its first row. Click or scroll " +
		"the bar to switch tabs; host commands are shown in the log below it.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return errors.New("demo needs an interactive terminal")
		}

		grant, err := resolveGrant(demoGrant)
		if err != nil {
			return err
		}

		model, err := tui.NewModel(appConfig, grant, pslog.Ctx(cmd.Context()))
		if err != nil {
			return err
		}
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return nil
		}
		return err
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoGrant, "permissions", "ask", "Answer to the permission request: ask, grant or deny")
}

func resolveGrant(answer string) (bool, error) {
	switch answer {
	case "grant":
		return true, nil
	case "deny":
		return false, nil
	case "ask":
		grant := true
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("The tab bar requests permission to read and change application state").
					Affirmative("Grant").
					Negative("Deny").
					Value(&grant),
			),
		).Run()
		if err != nil {
			return false, err
		}
		return grant, nil
	}
	return false, errors.New("--permissions must be ask, grant or deny")
}
