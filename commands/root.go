package commands

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tliron/glsp/server"
	"github.com/tliron/kutil/util"

	"htmljs-lsp/implementation"
)

var (
	verbose int
	logPath string
)

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} %{message}`,
)

func init() {
	rootCommand.PersistentFlags().CountVarP(&verbose, "verbose", "v", "add a log verbosity level (can be used twice)")
	rootCommand.PersistentFlags().StringVarP(&logPath, "log", "l", "", "log to file (defaults to stderr)")
}

var rootCommand = &cobra.Command{
	Use:   implementation.ServerName,
	Short: "Language server for JavaScript embedded in HTML documents",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()
		serve()
	},
}

func Execute() {
	err := rootCommand.Execute()
	util.FailOnError(err)
}

// configureLogging sends logs to stderr or a file; stdout belongs to the
// protocol stream.
func configureLogging() {
	writer := os.Stderr
	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		util.FailOnError(err)
		writer = file
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(writer, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)

	level := logging.WARNING
	switch {
	case verbose >= 2:
		level = logging.DEBUG
	case verbose == 1:
		level = logging.INFO
	}
	leveled.SetLevel(level, "")

	logging.SetBackend(leveled)
}

func serve() {
	server := server.NewServer(&implementation.Handler, implementation.ServerName, verbose > 1)
	server.RunStdio()
}
