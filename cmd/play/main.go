// Command play is a terminal front end for offline matches against the
// automated opponent and for online matches through the match service.
package main

import (
	"bufio"
	"context"
	"ctchen222/three-in-a-row/internal/bot"
	"ctchen222/three-in-a-row/internal/client"
	"ctchen222/three-in-a-row/internal/config"
	"ctchen222/three-in-a-row/internal/logger"
	"ctchen222/three-in-a-row/internal/match"
	"ctchen222/three-in-a-row/internal/telemetry"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", string(match.ModeOffline), "offline or online")
	size := flag.Int("size", 0, "board size between 3 and 7 (overrides the config)")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if *size != 0 {
		cfg.Client.BoardSize = *size
	}
	// Logs go to stderr so they do not tear the board apart.
	logger.Init(logger.Options{Level: cfg.SlogLevel(), Output: os.Stderr, Otel: cfg.Telemetry.Enabled})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("Failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())

	opts := match.Options{
		Size:            cfg.Client.BoardSize,
		ThinkTime:       cfg.Client.ThinkTime,
		Policy:          bot.NewPolicy(cfg.Client.Difficulty, nil),
		PollInterval:    cfg.Client.PollInterval,
		MaxPollFailures: cfg.Client.MaxPollFailures,
	}
	if match.Mode(*mode) == match.ModeOnline {
		opts.Service = client.New(cfg.Client.ServerURL, cfg.Client.RequestTimeout)
	}

	ctrl, err := match.New(ctx, match.Mode(*mode), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot start:", err)
		os.Exit(1)
	}
	defer ctrl.Close()

	s := &session{ctrl: ctrl, size: cfg.Client.BoardSize, out: os.Stdout}
	s.run(ctx, os.Stdin)
}

// session reads commands and redraws the view whenever it changes.
type session struct {
	ctrl match.Controller
	size int
	out  io.Writer
}

func (s *session) run(ctx context.Context, in io.Reader) {
	fmt.Fprint(s.out, usage)
	last := render(s.ctrl.View())
	fmt.Fprint(s.out, last)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			quit, err := s.exec(ctx, line)
			if err != nil {
				fmt.Fprintln(s.out, "error:", err)
			}
			if quit {
				return
			}
		case <-ticker.C:
		}

		if frame := render(s.ctrl.View()); frame != last {
			last = frame
			fmt.Fprint(s.out, frame)
		}
	}
}

const usage = `commands:
  <row> <col>   play a move (0-indexed)
  restart       start over at the same size
  match [size]  offline: new board; online: find an opponent
  reset         offline: clear stats; online: new device id
  stats         print wins and losses
  quit
`

func (s *session) exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "restart":
		return false, s.ctrl.Restart(ctx)
	case "stats":
		tally := s.ctrl.View().Tally
		fmt.Fprintf(s.out, "wins %d losses %d\n", tally.Wins, tally.Losses)
		return false, nil
	case "match":
		size := s.size
		if len(fields) > 1 {
			if size, err = strconv.Atoi(fields[1]); err != nil {
				return false, fmt.Errorf("bad size %q", fields[1])
			}
		}
		s.size = size
		switch c := s.ctrl.(type) {
		case match.Matchmaker:
			return false, c.RequestMatch(ctx, size)
		case *match.LocalController:
			return false, c.Start(size)
		}
		return false, nil
	case "reset":
		switch c := s.ctrl.(type) {
		case match.Matchmaker:
			return false, c.ResetParticipant(ctx)
		case *match.LocalController:
			c.ResetStats()
		}
		return false, nil
	}

	if len(fields) != 2 {
		return false, errors.New("expected <row> <col>")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return false, fmt.Errorf("bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, fmt.Errorf("bad column %q", fields[1])
	}
	return false, s.ctrl.PlayMove(ctx, row, col)
}
