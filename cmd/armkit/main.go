// Command armkit decodes, validates and snapshots Azure Resource Manager
// payloads.
package main

import "github.com/rzbill/armkit/pkg/cli/cmd"

func main() {
	cmd.Execute()
}
