package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/router"
	"github.com/palemoky/dice-room/internal/sound"
	"github.com/palemoky/dice-room/internal/ui/view"
)

// noticeTTL is how long a notice stays on screen.
const noticeTTL = 3 * time.Second

// App is the root model. It owns the router and forwards everything it does
// not handle itself to the active page.
type App struct {
	router *router.Router[Page]
	page   Page
	deps   Deps

	notice    *view.Notice
	noticeSeq int

	width  int
	height int
}

// NewApp creates the app positioned at initial. An unknown initial path
// falls back to "/".
func NewApp(r *router.Router[Page], deps Deps, initial string) (*App, error) {
	page, err := r.Navigate(initial)
	if err != nil {
		deps.Log.Warn().Err(err).Str("path", initial).Msg("initial route not found, using /")
		if page, err = r.Navigate("/"); err != nil {
			return nil, err
		}
	}
	return &App{router: r, page: page, deps: deps}, nil
}

func (a *App) Init() tea.Cmd {
	return a.page.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.forward(msg)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyEsc:
			return a, a.back()
		}
		return a, a.forward(msg)

	case NavigateMsg:
		page, err := a.router.Navigate(msg.Path)
		if err != nil {
			a.deps.Log.Error().Err(err).Str("path", msg.Path).Msg("navigation failed")
			return a, NotifyError(err)
		}
		a.page = page
		return a, a.page.Init()

	case BackMsg:
		return a, a.back()

	case NotifyMsg:
		a.noticeSeq++
		a.notice = &view.Notice{Text: msg.Text, Error: msg.Error}
		if msg.Error {
			a.deps.play(sound.CueError)
		}
		seq := a.noticeSeq
		return a, tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })

	case clearNoticeMsg:
		if msg.seq == a.noticeSeq {
			a.notice = nil
		}
		return a, nil
	}

	return a, a.forward(msg)
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return cmd
}

func (a *App) back() tea.Cmd {
	page, ok := a.router.Back()
	if !ok {
		return nil
	}
	a.page = page
	return a.page.Init()
}

func (a *App) View() string {
	return view.Render(view.Frame{
		Title:  a.page.Title(),
		Notice: a.notice,
		Body:   a.page.View(),
		Help:   a.page.Help(),
		Path:   a.router.Current(),
		Width:  a.width,
		Height: a.height,
	})
}

// Page returns the active page.
func (a *App) Page() Page { return a.page }

// Path returns the active route.
func (a *App) Path() string { return a.router.Current() }

// Notice returns the visible notice, if any.
func (a *App) Notice() *view.Notice { return a.notice }
