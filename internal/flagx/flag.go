// Package flagx lets several independent flag sets share one command line:
// each consumer filters os.Args down to the flags it owns before parsing.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigEnvVar names the environment variable consulted when no -c/-config
// flag is given.
const ConfigEnvVar = "SOS_CONFIG"

// FilterArgs returns the subset of args that belongs to the listed flags.
//
// valueFlags take a value, either as "-f value" or "-f=value"; a following
// token that starts with '-' is never taken as the value. boolFlags never
// consume the next token ("-f" or "-f=false"). Order is preserved and the
// result is never nil.
func FilterArgs(args []string, valueFlags []string, boolFlags ...string) []string {
	kind := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, f := range valueFlags {
		kind[f] = true
	}
	for _, f := range boolFlags {
		kind[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		takesValue, known := kind[name]
		if !known {
			continue
		}

		out = append(out, arg)
		if hasValue || !takesValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFileFlag returns the JSON config path given by -c or -config, or the
// value of SOS_CONFIG when neither flag is present. Empty means no file.
func ConfigFileFlag() string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config", "--config"}))

	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	return path
}
