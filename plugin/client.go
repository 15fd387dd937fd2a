package plugin

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

// Open starts the plugin binary at path and returns a client for its rule
// set. The returned function stops the plugin process.
func Open(path string, logger hclog.Logger) (*RPCClient, func(), error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  Handshake,
		Plugins:          PluginMap,
		Cmd:              exec.Command(path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger.Named("plugin"),
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("start plugin %s: %w", path, err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("dispense plugin %s: %w", path, err)
	}

	rs, ok := raw.(*RPCClient)
	if !ok {
		client.Kill()
		return nil, nil, fmt.Errorf("plugin %s: unexpected client type %T", path, raw)
	}
	return rs, client.Kill, nil
}
