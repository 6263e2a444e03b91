package docker

import (
	"bufio"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
)

// StreamLogs follows the log stream of a container, starting with the last
// `tail` lines. Lines are decoded into LogEntry values and delivered on the
// returned channel, which is closed when the stream ends or ctx is
// cancelled. No reconnection is attempted.
func (d *Client) StreamLogs(ctx context.Context, id string, tail int) (<-chan LogEntry, error) {
	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
		Timestamps: true,
		Tail:       strconv.Itoa(tail),
	}

	reader, err := d.api.ContainerLogs(ctx, id, options)
	if err != nil {
		return nil, err
	}

	logs := make(chan LogEntry)
	go func() {
		defer close(logs)
		defer reader.Close()

		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if len(line) == 0 {
				continue
			}

			entry := decodeLogLine(line)

			select {
			case <-ctx.Done():
				return
			case logs <- entry:
			}
		}
	}()

	return logs, nil
}

// decodeLogLine strips the Docker multiplexed stream header and the leading
// RFC3339Nano timestamp that Timestamps: true prepends.
func decodeLogLine(line string) LogEntry {
	source := "stdout"
	message := line

	if len(line) > 8 {
		switch line[0] {
		case 1:
			source = "stdout"
			message = line[8:]
		case 2:
			source = "stderr"
			message = line[8:]
		}
	}

	var timestamp time.Time
	if end := strings.IndexByte(message, ' '); end > 0 {
		if parsed, err := time.Parse(time.RFC3339Nano, message[:end]); err == nil {
			timestamp = parsed
			message = message[end+1:]
		}
	}

	return LogEntry{
		Source: source,
		Time:   timestamp,
		Text:   message,
	}
}
