// Package plugin lets external binaries contribute rule sets to
// lintconflict.
//
// Plugins call Serve from main() to register their RuleSet; the host runs
// each plugin binary with Open and calls Check with the loaded
// configuration. Communication uses net/rpc via HashiCorp's go-plugin
// library.
//
// Example plugin main.go:
//
//	package main
//
//	import (
//	    "github.com/jokarl/lintconflict/lint"
//	    "github.com/jokarl/lintconflict/plugin"
//
//	    "example.com/lintconflict-stylelint/rules"
//	)
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &lint.BuiltinRuleSet{
//	            Name:    "stylelint",
//	            Version: "0.1.0",
//	            Rules:   rules.Rules,
//	        },
//	    })
//	}
package plugin

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/lintconflict/lint"
)

// ServeOpts contains options for serving the plugin.
type ServeOpts struct {
	// RuleSet is the plugin's rule set implementation.
	RuleSet lint.RuleSet
}

// Serve starts the plugin server.
//
// The function blocks until the host disconnects. When invoked directly
// (outside of lintconflict), the plugin prints a summary and returns.
func Serve(opts *ServeOpts) {
	if opts == nil || opts.RuleSet == nil {
		return
	}

	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(os.Stderr, opts.RuleSet)
		return
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "plugin",
		Level:      hclog.Warn,
		Output:     os.Stderr,
		JSONFormat: true,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &RuleSetPlugin{Impl: opts.RuleSet, Logger: logger},
		},
		Logger: logger,
	})
}

// printDirectInvocationMessage describes the plugin when it is run by hand.
func printDirectInvocationMessage(w io.Writer, rs lint.RuleSet) {
	fmt.Fprintf(w, "This is a lintconflict plugin.\n\n")
	fmt.Fprintf(w, "Plugin: %s\n", rs.RuleSetName())
	fmt.Fprintf(w, "Version: %s\n", rs.RuleSetVersion())
	fmt.Fprintf(w, "Rules:\n")
	for _, name := range rs.RuleNames() {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintf(w, "\nTo use this plugin, pass it to lintconflict:\n")
	fmt.Fprintf(w, "  lintconflict --plugin <path> <dir>\n")
}
