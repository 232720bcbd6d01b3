// Package flagx holds helpers for reading a subset of command-line flags
// without claiming the whole argument list, so several loaders (JSON file,
// env file, regular flags) can each parse only what they own.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags listed in allowedFlags, together with
// their values. Both "-c conf.json" and "-c=conf.json" forms are recognised.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)

		// a value never starts with a dash
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// pathFlag parses os.Args for a single string flag registered under the
// given names. The last occurrence wins; absent flags yield "".
func pathFlag(usage string, names ...string) string {
	allowed := make([]string, 0, len(names))
	for _, n := range names {
		allowed = append(allowed, "-"+n)
	}

	var value string
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	for _, n := range names {
		fs.StringVar(&value, n, "", usage)
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], allowed))

	return value
}

// JsonConfigFlags returns the JSON config path given via -c or -config.
func JsonConfigFlags() string {
	return pathFlag("path to config file", "c", "config")
}

// EnvFileFlags returns the dotenv file path given via -env.
func EnvFileFlags() string {
	return pathFlag("path to .env file", "env")
}
