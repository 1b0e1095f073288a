package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
)

// Build information. Populated at build-time via ldflags.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var short bool

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), buildInfo(), short)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	root.RootCmd.AddCommand(VersionCmd)
}

type info struct {
	version  string
	commit   string
	date     string
	modified bool
}

// buildInfo fills in commit and date from the embedded VCS stamps when the
// binary was built without ldflags.
func buildInfo() info {
	i := info{version: Version, commit: Commit, date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.commit == "" {
				i.commit = s.Value
			}
		case "vcs.time":
			if i.date == "" {
				i.date = s.Value
			}
		case "vcs.modified":
			i.modified = s.Value == "true"
		}
	}
	return i
}

func printVersion(w io.Writer, i info, short bool) {
	if short {
		fmt.Fprintln(w, i.version)
		return
	}

	commit := i.commit
	if commit == "" {
		commit = "unknown"
	} else if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.modified {
		commit += "-dirty"
	}

	fmt.Fprintf(w, "skoda-remote %s (%s", i.version, commit)
	if i.date != "" {
		fmt.Fprintf(w, ", built %s", i.date)
	}
	fmt.Fprintf(w, ") %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
