package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/rook-computer/glassicon/internal/config"
	"github.com/rook-computer/glassicon/internal/output"
	"github.com/rook-computer/glassicon/internal/preview"
	"github.com/rook-computer/glassicon/internal/render"
	"github.com/rook-computer/glassicon/internal/watch"
	"github.com/rook-computer/glassicon/internal/web"
)

type App struct {
	Config config.Config
	Design render.Design
	Logger Logger
	// Out receives the human-readable progress lines.
	Out io.Writer
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Design: render.DefaultDesign(), Logger: NoopLogger{}, Out: os.Stdout}
}

// Render produces the master image for the current config.
func (app *App) Render() (*image.NRGBA, error) {
	d := app.Design
	d.Antialias = app.Config.Antialias
	return render.Render(d, app.Logger)
}

// Generate renders the logo and writes the master and its variants into
// the configured output directory. It returns the written paths.
func (app *App) Generate(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := app.Config.OutDir
	// Fail before spending time on the render.
	if err := output.CheckDir(dir); err != nil {
		app.Logger.Errorf("app", "output dir: %v", err)
		return nil, err
	}

	master, err := app.Render()
	if err != nil {
		return nil, err
	}

	masterPath, err := output.Write(dir, output.Master(master))
	if err != nil {
		app.Logger.Errorf("output", "write master: %v", err)
		return nil, err
	}
	app.Logger.Infof("output", "wrote %s", masterPath)
	fmt.Fprintf(app.Out, "Logo saved as %s\n", masterPath)

	paths := []string{masterPath}
	variants := output.Variants(master, app.Config.Variants)
	written, err := output.WriteAll(dir, variants)
	paths = append(paths, written...)
	if err != nil {
		app.Logger.Errorf("output", "write variants: %v", err)
		return paths, err
	}
	for _, p := range written {
		app.Logger.Infof("output", "wrote %s", p)
	}

	if len(variants) == 0 {
		fmt.Fprintln(app.Out, "No additional sizes configured")
	} else {
		names := make([]string, 0, len(variants))
		for _, v := range variants {
			names = append(names, v.Name)
		}
		fmt.Fprintf(app.Out, "Additional sizes created: %s\n", strings.Join(names, ", "))
	}
	return paths, nil
}

// Serve renders the logo once and serves it over HTTP until ctx is done.
func (app *App) Serve(ctx context.Context) error {
	master, err := app.Render()
	if err != nil {
		return err
	}
	icons, err := web.NewIconSet(output.Artifacts(master, app.Config.Variants))
	if err != nil {
		return err
	}

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: app.Config.Serve.Listen, DevMode: app.Config.Serve.Dev})
	server.Logger = app.Logger
	server.Handler = web.NewDefaultMux(web.Deps{Icons: icons, Design: app.Design})
	if err := server.Start(ctx); err != nil {
		app.Logger.Errorf("web", "start: %v", err)
		return err
	}

	url := web.BaseURL(server.ListenAddr())
	fmt.Fprintln(app.Out, "glassicon serving on", url)
	if app.Config.Serve.QR {
		qr, err := web.TerminalQRCode(url)
		if err != nil {
			app.Logger.Errorf("web", "qr code: %v", err)
		} else {
			fmt.Fprint(app.Out, qr)
		}
	}

	<-ctx.Done()
	return server.Stop()
}

// Preview renders the logo and shows it on the framebuffer until ctx is
// done or F4 is pressed.
func (app *App) Preview(ctx context.Context) error {
	master, err := app.Render()
	if err != nil {
		return err
	}
	caption := fmt.Sprintf("%s  %dx%d", output.MasterName, master.Bounds().Dx(), master.Bounds().Dy())
	return preview.Run(ctx, preview.Options{Device: app.Config.Preview.Device, Caption: caption, Logger: app.Logger}, master)
}

// Watch generates once, then regenerates every time the file at
// configPath changes. reload is called to re-read configuration before
// each regeneration. Errors after the first generation are logged, not
// returned. Watch returns nil when ctx is cancelled.
func (app *App) Watch(ctx context.Context, configPath string, reload func() (config.Config, error)) error {
	if configPath == "" {
		return errors.New("watch mode needs a config file")
	}
	if _, err := app.Generate(ctx); err != nil {
		return err
	}

	w, err := watch.New(configPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", configPath, err)
	}
	w.Logger = app.Logger
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch %s: %w", configPath, err)
	}
	defer w.Stop()
	app.Logger.Infof("watch", "watching %s", configPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			cfg, err := reload()
			if err != nil {
				app.Logger.Errorf("watch", "reload config: %v", err)
				continue
			}
			app.Config = cfg
			if _, err := app.Generate(ctx); err != nil {
				app.Logger.Errorf("watch", "regenerate: %v", err)
			}
		}
	}
}
