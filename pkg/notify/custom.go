package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// customChannel runs a user script for notifications.
type customChannel struct {
	scriptPath string
}

func newCustomChannel(scriptPath string) *customChannel {
	return &customChannel{scriptPath: scriptPath}
}

// send pipes Result as JSON to the script stdin. The status and the comma separated failed
// scenarios are also passed as WTCHECK_STATUS and WTCHECK_FAILED so simple scripts can skip parsing.
func (c *customChannel) send(ctx context.Context, r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.scriptPath) //nolint:gosec // path comes from user config, not user input
	cmd.Stdin = bytes.NewReader(data)
	cmd.Env = append(os.Environ(), "WTCHECK_STATUS="+r.Status, "WTCHECK_FAILED="+strings.Join(r.Failed(), ","))
	cmd.WaitDelay = time.Second // children of a killed script may hold the output pipe

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err = cmd.Run(); err != nil {
		if out := strings.TrimSpace(output.String()); out != "" {
			return fmt.Errorf("script %s: %w, output: %s", c.scriptPath, err, out)
		}
		return fmt.Errorf("script %s: %w", c.scriptPath, err)
	}
	return nil
}
