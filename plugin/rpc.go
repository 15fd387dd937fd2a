package plugin

import (
	"encoding/json"
	"fmt"
	"net/rpc"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/lintconflict/lint"
	"github.com/jokarl/lintconflict/runner"
	"github.com/jokarl/lintconflict/settings"
)

var _ plugin.Plugin = (*RuleSetPlugin)(nil)

// RuleSetPlugin is the go-plugin Plugin for the RuleSet service.
// This is used by both the host (to create a client) and the plugin (to create a server).
type RuleSetPlugin struct {
	// Impl is the rule set being served. Only used on the plugin side.
	Impl lint.RuleSet
	// Logger receives the plugin's runner logs. Only used on the plugin side.
	Logger hclog.Logger
}

// Server is called on the plugin side.
func (p *RuleSetPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	logger := p.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RPCServer{Impl: p.Impl, Logger: logger}, nil
}

// Client is called on the host side.
func (p *RuleSetPlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RPCClient{client: c}, nil
}

// Info describes a served rule set.
type Info struct {
	Name    string
	Version string
	Rules   []string
}

// CheckRequest carries the configuration a plugin's rules inspect. Input is
// the JSON encoding of runner.Input; Settings is the settings file source.
type CheckRequest struct {
	Input        []byte
	Settings     []byte
	SettingsFile string
}

// Issue is a message emitted by a plugin rule.
type Issue struct {
	Rule    string
	Message lint.Message
}

// CheckResponse holds the issues emitted by every enabled plugin rule.
type CheckResponse struct {
	Issues []Issue
}

// =============================================================================
// RPCServer - Plugin side
// =============================================================================

// RPCServer runs a lint.RuleSet on requests from the host.
type RPCServer struct {
	Impl   lint.RuleSet
	Logger hclog.Logger
}

// Info returns the rule set description.
func (s *RPCServer) Info(_ interface{}, resp *Info) error {
	*resp = Info{
		Name:    s.Impl.RuleSetName(),
		Version: s.Impl.RuleSetVersion(),
		Rules:   s.Impl.RuleNames(),
	}
	return nil
}

// Check runs every enabled rule against the request's configuration.
func (s *RPCServer) Check(req CheckRequest, resp *CheckResponse) error {
	var input runner.Input
	if err := json.Unmarshal(req.Input, &input); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	file := &settings.File{}
	if len(req.Settings) > 0 {
		parsed, err := settings.Parse(req.Settings, req.SettingsFile)
		if err != nil {
			return err
		}
		file = parsed
	}

	r := runner.New(input, file, s.Logger)
	if err := runner.Run(s.Impl, r); err != nil {
		return err
	}

	resp.Issues = make([]Issue, len(r.Issues))
	for i, issue := range r.Issues {
		resp.Issues[i] = Issue{Rule: issue.Rule.Name(), Message: issue.Message}
	}
	return nil
}

// =============================================================================
// RPCClient - Host side
// =============================================================================

// RPCClient calls a plugin's RPCServer.
type RPCClient struct {
	client *rpc.Client
}

// Info returns the plugin's rule set description.
func (c *RPCClient) Info() (*Info, error) {
	var resp Info
	if err := c.client.Call("Plugin.Info", new(interface{}), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Check runs the plugin's rules against input with the given settings.
func (c *RPCClient) Check(input runner.Input, s *settings.File) ([]Issue, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}
	src, name := s.Source()

	var resp CheckResponse
	if err := c.client.Call("Plugin.Check", CheckRequest{Input: data, Settings: src, SettingsFile: name}, &resp); err != nil {
		return nil, err
	}
	return resp.Issues, nil
}

// Collect adds issues to col, keyed by rule name.
func Collect(col *lint.Collector, issues []Issue) {
	for _, issue := range issues {
		col.Add(issue.Rule, issue.Message)
	}
}
