package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/hris-lite-go/internal/client"
	"github.com/cmlabs-hris/hris-lite-go/internal/config"
	"github.com/cmlabs-hris/hris-lite-go/internal/console"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/logger"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/notify"
)

const usage = `Usage: console [flags] <command> [args]

Commands:
  employees list
  employees add -id EMP001 -name "Jane Doe" -email jane@example.com -department HR
  employees delete [-yes] <employee_id>
  attendance list [-employee EMP001] [-start YYYY-MM-DD] [-end YYYY-MM-DD]
  attendance mark -employee EMP001 [-date YYYY-MM-DD] [-status Present|Absent]
  attendance export [-dir .] [-o attendance.xlsx] [-force] [-summary] [-employee ...] [-start ...] [-end ...]
  dashboard [-local]
  watch [-interval 30s]

Flags:
`

// app is one CLI invocation: the console core plus the streams it talks to.
type app struct {
	console *console.Console
	logger  *slog.Logger
	out     io.Writer
	errOut  io.Writer
	in      io.Reader
}

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("console", flag.ExitOnError)
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "base URL of the HRIS API (API_BASE_URL)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout (API_TIMEOUT)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (LOG_LEVEL)")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel, slog.String("app", "hris-console"))
	hub := notify.NewHub(log)

	api := client.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout}, log)
	a := &app{
		console: console.New(console.NewClientBackend(api), console.Options{Logger: log, Hub: hub}),
		logger:  log,
		out:     os.Stdout,
		errOut:  os.Stderr,
		in:      os.Stdin,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	drained := a.printNotifications()
	err = a.run(ctx, fs.Arg(0), fs.Args()[1:])
	drained()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", client.Message(err, err.Error()))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "employees":
		return a.employees(ctx, args)
	case "attendance":
		return a.attendance(ctx, args)
	case "dashboard":
		return a.dashboard(ctx, args)
	case "watch":
		return a.watch(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// printNotifications echoes hub notifications to errOut. The returned function stops it once
// everything already published has been printed.
func (a *app) printNotifications() func() {
	ch, unsubscribe := a.console.Notifications.Subscribe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for n := range ch {
			fmt.Fprintf(a.errOut, "[%s] %s\n", n.Level, n.Message)
		}
	}()

	return func() {
		unsubscribe()
		<-done
	}
}
