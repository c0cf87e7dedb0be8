// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deptofdefense/dercheck/pkg/checker"
	"github.com/deptofdefense/dercheck/pkg/log"
)

const (
	DercheckVersion = "1.0.0"
)

const (
	envPrefix = "DERCHECK"
	//
	flagLogPath = "log"
)

const (
	defaultProgramName = "dercheck"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// initViper reads configuration from DERCHECK_* environment variables.  The command has no flags.
func initViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	err := v.BindEnv(flagLogPath)
	if err != nil {
		return v, fmt.Errorf("error binding environment variable for %q: %w", flagLogPath, err)
	}
	v.AutomaticEnv()
	return v, nil
}

func checkConfig(v *viper.Viper) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) > 0 && len(strings.TrimSpace(logPath)) == 0 {
		return fmt.Errorf("log path %q is blank", logPath)
	}
	return nil
}

func newTraceID() string {
	traceID, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return traceID.String()
}

// initLogger opens the diagnostic log.  Standard output is never used, it is reserved for the result line.
func initLogger(fs afero.Fs, path string, stderr io.Writer) (*log.SimpleLogger, io.Closer, error) {

	if len(path) == 0 {
		return log.NewDiscardLogger(), nopCloser{}, nil
	}

	if path == "-" {
		return log.NewSimpleLogger(stderr), nopCloser{}, nil
	}

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLogger(f), f, nil
}

// configureLogger returns the diagnostic logger.  Problems with the configuration are reported to stderr
// and disable logging, they never change the result of a check.
func configureLogger(fs afero.Fs, stderr io.Writer) (*log.SimpleLogger, io.Closer) {
	v, err := initViper()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, defaultProgramName+": "+fmt.Errorf("error initializing viper: %w", err).Error())
		return log.NewDiscardLogger(), nopCloser{}
	}
	if errConfig := checkConfig(v); errConfig != nil {
		_, _ = fmt.Fprintln(stderr, defaultProgramName+": "+errConfig.Error())
		return log.NewDiscardLogger(), nopCloser{}
	}
	logger, closer, err := initLogger(fs, v.GetString(flagLogPath), stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, defaultProgramName+": "+fmt.Errorf("error initializing logger: %w", err).Error())
		return log.NewDiscardLogger(), nopCloser{}
	}
	return logger, closer
}

// run executes the command line args, including the program name, and returns the exit code.
// Certificates are read from fs through a read-only view.  Log files are written to fs.
func run(args []string, stdout io.Writer, stderr io.Writer, fs afero.Fs) int {

	program := defaultProgramName
	positional := []string{}
	if len(args) > 0 {
		program = args[0]
		positional = args[1:]
	}

	exitCode := checker.ExitFailure

	rootCommand := &cobra.Command{
		Use:                   defaultProgramName + " certificate-file",
		DisableFlagsInUseLine: true,
		DisableFlagParsing:    true,
		Short:                 "dercheck checks whether a file is a DER encoded X.509 certificate.",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closer := configureLogger(fs, stderr)
			defer func() { _ = closer.Close() }()

			logger = logger.With(map[string]interface{}{
				"dercheck_trace_id": newTraceID(),
				"dercheck_version":  DercheckVersion,
			})

			c := checker.New(afero.NewReadOnlyFs(fs), stdout, logger)
			exitCode = c.Check(program, positional)
			return nil
		},
	}
	// cobra never sees the positionals, so names like __complete cannot select hidden commands.
	rootCommand.SetArgs([]string{})
	rootCommand.SetOut(stderr)
	rootCommand.SetErr(stderr)

	if err := rootCommand.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, defaultProgramName+": "+err.Error())
		return 1
	}
	return exitCode
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, afero.NewOsFs()))
}
