package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dice-room/internal/ui/view"
)

// AboutPage is static.
type AboutPage struct {
	deps Deps
}

func NewAboutPage(deps Deps) *AboutPage { return &AboutPage{deps: deps} }

func (p *AboutPage) Init() tea.Cmd                  { return nil }
func (p *AboutPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }
func (p *AboutPage) View() string                   { return view.About(p.deps.BaseURL, p.deps.CacheLoc, p.deps.LogPath) }
func (p *AboutPage) Title() string                  { return "关于" }
func (p *AboutPage) Help() string                   { return "ESC 返回" }
