package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// GitCli provides git operations by executing real git commands via the git CLI.
type GitCli struct {
	log        *clog.Logger
	timeout    time.Duration
	workingDir string
}

var _ Git = &GitCli{}

// New creates a new GitCli instance that executes git commands in the specified working directory.
func New(workingDir string, timeout time.Duration) Git {
	return &GitCli{
		log:        clog.Default().WithPrefix("git"),
		timeout:    timeout,
		workingDir: workingDir,
	}
}

func (g *GitCli) executeGitCommand(args ...string) (string, error) {
	g.log.Debug("Executing git command", "cmd", "git", "args", args, "workingDir", g.workingDir)

	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.workingDir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			g.log.Warn("git command timed out", "args", args, "timeout", g.timeout, "error", err)
			return "", fmt.Errorf("git %s timed out after %s", strings.Join(args, " "), g.timeout)
		}
		g.log.Warn("Git command failed", "args", args, "stderr", stderr.String(), "error", err)
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, stderr.String())
	}

	output := strings.TrimSpace(stdout.String())
	g.log.Debug("Git command succeeded", "args", args, "output", output)
	return output, nil
}

func (g *GitCli) CurrentBranch() (string, error) {
	output, err := g.executeGitCommand("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return output, nil
}

func (g *GitCli) LastCommitMessage() (string, error) {
	output, err := g.executeGitCommand("log", "-1", "--pretty=%B")
	if err != nil {
		return "", fmt.Errorf("failed to get last commit message: %w", err)
	}
	return output, nil
}

func (g *GitCli) RemoteURL(name string) (string, error) {
	output, err := g.executeGitCommand("config", "--get", "remote."+name+".url")
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s URL: %w", name, err)
	}
	return output, nil
}

// Clone runs git clone without a timeout; clones can legitimately take a
// long time. Output streams straight to the terminal.
func (g *GitCli) Clone(url string) error {
	g.log.Debug("Executing git clone", "url", url, "workingDir", g.workingDir)

	cmd := exec.Command("git", "clone", url)
	cmd.Dir = g.workingDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		g.log.Warn("git clone failed", "url", url, "error", err)
		return fmt.Errorf("git clone %s failed: %w", url, err)
	}
	return nil
}
