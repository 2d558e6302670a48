package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"FreehandBoard/internal/config"
	applog "FreehandBoard/internal/log"
	"FreehandBoard/internal/state"
	"FreehandBoard/internal/surface"
)

const appID = "io.github.freehandboard"

// NewBoardFromConfig builds a board with the configured initial style.
func NewBoardFromConfig(cfg config.AppConfig) *DrawingBoard {
	var bg color.Color = color.White
	if c, ok := surface.ParseColor(cfg.Canvas.Background); ok {
		bg = c
	}
	return NewDrawingBoard(BoardOptions{
		InitialWidth: cfg.Stroke.InitialWidthString(),
		InitialColor: cfg.Stroke.InitialColor,
		Background:   bg,
		Capture: state.Options{
			AnchorAtDown: cfg.Stroke.AnchorAtDown,
			LogSegments:  cfg.Debug.LogSegments,
		},
	})
}

// RunApp opens the drawing window and blocks until it is closed. It returns
// the mount error if the surface could not be created.
func RunApp(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow("Freehand Board")
	myWindow.Resize(fyne.NewSize(cfg.Canvas.Width, cfg.Canvas.Height))

	board := NewBoardFromConfig(cfg)
	board.Bind(myWindow.Canvas())
	toolbar := NewToolbar(board, myWindow, cfg.Stroke.MinWidth, cfg.Stroke.MaxWidth, cfg.Stroke.Palette)

	board.OnMountError = func(err error) {
		toolbar.Status.SetText("Drawing surface unavailable")
		l.Error("board unusable, quitting", slog.Any("err", err))
		myApp.Quit()
	}

	myWindow.SetContent(container.NewBorder(toolbar.Object(), nil, nil, nil, board))
	l.Info("window ready", slog.String("capture", board.Capture().ID()))
	myWindow.ShowAndRun()

	st := board.Capture().Stats()
	l.Info("window closed", slog.Uint64("strokes", st.Strokes), slog.Uint64("segments", st.Segments))
	return board.MountError()
}
