package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Stats  StatsCmd  `cmd:"" default:"withargs" help:"Scan C source and print lexical statistics."`
	Watch  WatchCmd  `cmd:"" help:"Rescan a file and reprint its statistics whenever it changes."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging the scanner."`
}
