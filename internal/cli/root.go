package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picotools/picogen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "picogen",
	Short: "Raspberry Pi Pico project generator",
	Long: `picogen generates starter projects for the Raspberry Pi Pico SDK.

Given a project name, a target board and a set of hardware features it
produces a main source file with the right includes and peripheral
initialisation code, a CMakeLists.txt wired to the SDK's library targets,
optional VS Code integration files, and can run the first CMake configure
and build for you.

The SDK is located through the PICO_SDK_PATH environment variable.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("picogen %s\n", version.GetFullVersion()))
}
