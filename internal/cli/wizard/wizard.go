package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
)

// Run executes the setup wizard seeded from cfg and returns the selections.
// Each step runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(cat *catalog.Catalog, boards []string, cfg *config.Config) (*Result, error) {
	result := &Result{
		BoardType:   cfg.BoardType,
		ConsoleUART: cfg.ConsoleUART,
		ConsoleUSB:  cfg.ConsoleUSB,
		Debugger:    cfg.Debugger,
		WantVSCode:  cfg.WantsIDE("vscode"),
	}
	theme := newWizardTheme()

	for _, step := range buildSteps(cat, boards, result) {
		if step.skip != nil && step.skip() {
			continue
		}
		form := huh.NewForm(huh.NewGroup(step.field)).
			WithTheme(theme).
			WithAccessible(false)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// ConfirmOverwrite asks whether an existing project may be overwritten.
func ConfirmOverwrite(projectName string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Project %q already exists", projectName)).
			Description("Overwrite the existing build configuration?").
			Affirmative("Overwrite").
			Negative("Cancel").
			Value(&overwrite),
	)).WithTheme(newWizardTheme()).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("wizard error: %w", err)
	}
	return overwrite, nil
}

// step pairs a huh field with an optional skip predicate evaluated right
// before the step would run, once earlier answers are known.
type step struct {
	field huh.Field
	skip  func() bool
}

// buildSteps assembles the wizard steps in presentation order. Fields bind
// directly to the result so later skip predicates see earlier answers.
func buildSteps(cat *catalog.Catalog, boards []string, result *Result) []step {
	boardOpts := make([]huh.Option[string], len(boards))
	for i, b := range boards {
		boardOpts[i] = huh.NewOption(b, b)
	}

	var featureOpts []huh.Option[string]
	for _, d := range cat.Features() {
		featureOpts = append(featureOpts, huh.NewOption(d.DisplayName, d.Key))
	}

	var wirelessOpts []huh.Option[string]
	for _, d := range cat.Wireless() {
		wirelessOpts = append(wirelessOpts, huh.NewOption(d.DisplayName, d.Key))
	}

	debuggerOpts := make([]huh.Option[int], 0, len(cat.Debuggers()))
	for i, d := range cat.Debuggers() {
		debuggerOpts = append(debuggerOpts, huh.NewOption(d.Name, i))
	}

	return []step{
		{field: huh.NewInput().
			Title("Project name").
			Description("Name of the project directory and build target").
			Validate(func(val string) error {
				if strings.TrimSpace(val) == "" {
					return errors.New("project name is required")
				}
				return nil
			}).
			Value(&result.ProjectName)},
		{field: huh.NewSelect[string]().
			Title("Board type").
			Options(boardOpts...).
			Value(&result.BoardType)},
		{field: huh.NewMultiSelect[string]().
			Title("Library options").
			Description("Hardware features to wire into the project").
			Options(featureOpts...).
			Value(&result.Features)},
		{field: huh.NewSelect[string]().
			Title("Wireless options").
			Options(wirelessOpts...).
			Value(&result.Wireless),
			skip: func() bool { return !result.wantsWireless() }},
		{field: huh.NewConfirm().
			Title("Add stdio example code?").
			Value(&result.WantExamples)},
		{field: huh.NewConfirm().
			Title("Console over UART?").
			Value(&result.ConsoleUART)},
		{field: huh.NewConfirm().
			Title("Console over USB?").
			Description("Disables UART spinlock range").
			Value(&result.ConsoleUSB)},
		{field: huh.NewConfirm().
			Title("Run the program from RAM?").
			Value(&result.RunFromRAM)},
		{field: huh.NewConfirm().
			Title("Generate C++ code?").
			Value(&result.UseCPP)},
		{field: huh.NewConfirm().
			Title("Enable C++ exceptions?").
			Value(&result.CPPExceptions),
			skip: func() bool { return !result.UseCPP }},
		{field: huh.NewConfirm().
			Title("Enable C++ RTTI?").
			Value(&result.CPPRTTI),
			skip: func() bool { return !result.UseCPP }},
		{field: huh.NewSelect[int]().
			Title("Debugger").
			Options(debuggerOpts...).
			Value(&result.Debugger)},
		{field: huh.NewConfirm().
			Title("Create VS Code project?").
			Value(&result.WantVSCode)},
		{field: huh.NewConfirm().
			Title("Run build after generation?").
			Value(&result.RunBuild)},
	}
}

// newWizardTheme creates the huh.Theme used by all wizard forms.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#A0243C", Dark: "#E85D75"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
