package video

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/abhisek/lsftui/internal/logging"
)

// Player plays one video URL.
type Player interface {
	Play(ctx context.Context, url string) error
}

// ExecPlayer runs an external command with the URL as its last argument.
// Command may carry arguments, e.g. "mpv --loop".
type ExecPlayer struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer
}

func (p ExecPlayer) Play(ctx context.Context, url string) error {
	fields := strings.Fields(p.Command)
	if len(fields) == 0 {
		return errors.New("video: no player configured")
	}
	args := append(fields[1:], url)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdout = orDefault(p.Stdout, os.Stdout)
	cmd.Stderr = orDefault(p.Stderr, os.Stderr)

	logging.Logger().Info("playing video", "player", fields[0], "url", url)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", fields[0], err)
	}
	return nil
}

func orDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

// Select lists urls on out, reads an index from in and plays that video.
// Invalid input is reported on out and is not an error.
func Select(ctx context.Context, urls []string, in io.Reader, out io.Writer, player Player) error {
	fmt.Fprintf(out, "%d videos found\n", len(urls))
	if len(urls) == 0 {
		return nil
	}
	for i, u := range urls {
		fmt.Fprintf(out, "[%d] - %s\n", i, u)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read choice: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(out, "Input invalid:", strings.TrimSpace(line))
		return nil
	}
	if n < 0 || n >= len(urls) {
		fmt.Fprintln(out, "Input invalid")
		return nil
	}
	return player.Play(ctx, urls[n])
}
