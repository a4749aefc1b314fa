package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExtensionPrefix is the prefix of external subcommand executables: "wlt-foo" is run for "wlt foo".
const ExtensionPrefix = "wlt-"

// extensionEnv returns the configuration as environment variables, flags included.
func extensionEnv() []string {
	return []string{
		EnvPrefix + "_HOLDINGS_FILE=" + cfg.HoldingsFile,
		EnvPrefix + "_HOLDINGS_PATH=" + cfg.HoldingsPath,
		EnvPrefix + "_CURRENCY=" + cfg.Currency,
		EnvPrefix + "_STYLE=" + cfg.Style,
		EnvPrefix + "_LOG_FILE=" + cfg.LogFile,
		EnvPrefix + "_LOG_LEVEL=" + cfg.LogLevel,
	}
}

// RunExtension attempts to find and execute an external wlt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath(ExtensionPrefix + subcommand)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// global flags are passed as environment variables, they override the inherited ones.
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}
