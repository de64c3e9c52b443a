package wrapit

import (
	"fmt"
	"strings"
)

// OptionReturnCode toggles the caller's return contract and is never
// forwarded to the child process.
const OptionReturnCode = "returncode"

// Option is one keyword-style argument for the wrapped binary. Options
// are passed as an ordered slice so rendered flag lists are
// reproducible.
type Option struct {
	Name  string
	Value any
}

// Flag renders a single option as a command-line flag. Underscores in
// the name become hyphens; single-character names take one leading
// hyphen, longer names take two. Boolean false values render nothing
// and ok is false.
func Flag(name string, value any) (flag string, ok bool) {
	name = strings.ReplaceAll(name, "_", "-")
	dash := "--"
	if len(name) == 1 {
		dash = "-"
	}
	if b, isBool := value.(bool); isBool {
		if !b {
			return "", false
		}
		return dash + name, true
	}
	return fmt.Sprintf("%s%s=%v", dash, name, value), true
}

// Flags renders opts in order, skipping the reserved returncode option
// and boolean-false options.
func Flags(opts []Option) []string {
	flags := make([]string, 0, len(opts))
	for _, opt := range opts {
		if opt.Name == OptionReturnCode {
			continue
		}
		if flag, ok := Flag(opt.Name, opt.Value); ok {
			flags = append(flags, flag)
		}
	}
	return flags
}

// ReturnCode reports whether opts request the child's exit status to be
// returned to the caller.
func ReturnCode(opts []Option) bool {
	for _, opt := range opts {
		if opt.Name != OptionReturnCode {
			continue
		}
		switch v := opt.Value.(type) {
		case bool:
			return v
		case string:
			return v == "true" || v == "1" || v == "yes"
		}
	}
	return false
}
