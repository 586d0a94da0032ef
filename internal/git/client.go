package git

import (
	"fmt"
	"go.uber.org/zap"
	"os/exec"
	"strings"
)

type Client struct {
	log *zap.Logger
}

func NewClient(log *zap.Logger) Client {
	return Client{log: log}
}

// HeadCommit returns the full commit hash of the checkout's HEAD revision in
// the working dir, trimmed of whitespace.
func (c Client) HeadCommit(workingDir string) (string, error) {
	b, err := c.cmdOutput(workingDir, exec.Command("git", "rev-parse", "HEAD"))
	if err != nil {
		return "", err
	}
	commit := strings.TrimSpace(string(b))
	if commit == "" {
		return "", fmt.Errorf("git rev-parse HEAD in %s returned no output", workingDir)
	}
	return commit, nil
}

// cmdOutput runs specified command in the working dir, input is logged and
// output returned
func (c Client) cmdOutput(workingDir string, cmd *exec.Cmd) ([]byte, error) {
	cmd.Dir = workingDir
	c.log.Info(cmd.String())
	b, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", string(b), err)
	}
	return b, nil
}
