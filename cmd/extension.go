package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvInput   = "PPDF_INPUT"
	EnvOutDir  = "PPDF_OUT_DIR"
	EnvConfig  = "PPDF_CONFIG"
	EnvVerbose = "PPDF_VERBOSE"

	// EnvTestingNow freezes the time stamping output files, as "2006-01-02 15:04:05".
	EnvTestingNow = "PPDF_TESTING_NOW"
)

// RunExtension attempts to find and execute an external ppdf-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "ppdf-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved configuration as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvInput+"="+config.Input)
	cmd.Env = append(cmd.Env, EnvOutDir+"="+config.OutDir)
	cmd.Env = append(cmd.Env, EnvConfig+"="+*configFlag)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
