// Package serve hosts a built copy of the web front end. Every path other
// than the root is sent back to the root, except the asset and api prefixes.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"
)

// DefaultExclude lists the path prefixes that are served as-is.
const DefaultExclude = "/api,/_next/static,/_next/image,/favicon.ico"

type Params struct {
	Dir     string `pos:"true" optional:"true" help:"Directory to serve." default:"."`
	Port    int    `short:"p" help:"Port to listen on." default:"8080"`
	Host    string `help:"Host interface to bind to." default:"localhost"`
	Exclude string `short:"x" optional:"true" help:"Comma separated path prefixes that are not redirected to /." default:"/api,/_next/static,/_next/image,/favicon.ico"`
	NoCache bool   `help:"Disable browser caching." default:"false"`
	Open    bool   `short:"o" optional:"true" help:"Open the served page in the default browser."`
	Watch   bool   `short:"w" optional:"true" help:"Log changes to the served files (rebuilds of the front end)."`

	MaxConns int `optional:"true" help:"Maximum simultaneous connections (0 for no limit)." default:"0"`

	ReadTimeoutMillis  int64 `help:"Maximum duration for reading the entire request, including the body (ms)." default:"5000"`
	WriteTimeoutMillis int64 `help:"Maximum duration before timing out writes of the response (ms)." default:"10000"`
	IdleTimeoutMillis  int64 `help:"Maximum amount of time to wait for the next request when keep-alives are enabled (ms)." default:"120000"`
	MaxHeaderBytes     int   `help:"Maximum number of bytes the server will read parsing the request header's keys and values." default:"1048576"` // 1MB
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "serve",
		Short: "Host the web front end with root-only routing",
		Long: `Serve a directory over HTTP.

Only / is a page: any other path is redirected (307) to /, except paths that
start with one of the --exclude prefixes, which are served from the directory.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			common.InitLogging(cmd, false)
			if err := Run(cmd.Context(), params); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "serve: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// ParseExclude splits a comma separated prefix list, dropping blanks.
func ParseExclude(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
}

// ShouldRedirect reports whether path gets sent back to the root.
func ShouldRedirect(path string, exclude []string) bool {
	if path == "/" {
		return false
	}
	return !lo.SomeBy(exclude, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

// Handler serves dir with the root redirect rule applied.
func Handler(dir string, exclude []string, noCache bool) http.Handler {
	fs := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if noCache {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		// Wrap response writer to capture status code
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		if ShouldRedirect(r.URL.Path, exclude) {
			http.Redirect(rw, r, "/", http.StatusTemporaryRedirect)
		} else {
			fs.ServeHTTP(rw, r)
		}

		slog.Info("request", "status", rw.status, "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func Run(ctx context.Context, params *Params) error {
	absDir, err := filepath.Abs(params.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", params.Dir, err)
	}

	if _, err := os.Stat(absDir); os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", absDir)
	}

	exclude := ParseExclude(params.Exclude)
	addr := fmt.Sprintf("%s:%d", params.Host, params.Port)
	server := &http.Server{
		Addr:           addr,
		Handler:        Handler(absDir, exclude, params.NoCache),
		ReadTimeout:    time.Duration(params.ReadTimeoutMillis) * time.Millisecond,
		WriteTimeout:   time.Duration(params.WriteTimeoutMillis) * time.Millisecond,
		IdleTimeout:    time.Duration(params.IdleTimeoutMillis) * time.Millisecond,
		MaxHeaderBytes: params.MaxHeaderBytes,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	if params.MaxConns > 0 {
		ln = netutil.LimitListener(ln, params.MaxConns)
	}

	if params.Watch {
		if err := watchDir(ctx, absDir, slog.Default()); err != nil {
			_ = ln.Close()
			return err
		}
	}

	// Handle graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("Serving %s at http://%s\n", absDir, addr)
		slog.Debug("serving", "dir", absDir, "addr", addr, "exclude", exclude, "maxConns", params.MaxConns)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if params.Open {
		go func() {
			if err := common.OpenURL(ctx, "http://"+addr+"/"); err != nil {
				slog.Warn("could not open browser", "error", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-serverErr:
		return err
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
