// Package ui wires the route table to the page models.
package ui

import (
	"github.com/palemoky/dice-room/internal/router"
	"github.com/palemoky/dice-room/internal/ui/model"
)

// Route paths
const (
	PathHome       = "/"
	PathCreateRoom = "/create-room"
	PathJoinRoom   = "/join-room"
	PathAbout      = "/about"
	PathShowcase   = "/primevue-test"
)

// Routes returns the route table. Pages are constructed on navigation.
func Routes(deps model.Deps) []router.Route[model.Page] {
	return []router.Route[model.Page]{
		{Path: PathHome, Name: "home", Load: func() model.Page { return model.NewHomePage(deps) }},
		{Path: PathCreateRoom, Name: "create-room", Load: func() model.Page { return model.NewCreateRoomPage(deps) }},
		{Path: PathJoinRoom, Name: "join-room", Load: func() model.Page { return model.NewJoinRoomPage(deps) }},
		{Path: PathAbout, Name: "about", Load: func() model.Page { return model.NewAboutPage(deps) }},
		{Path: PathShowcase, Name: "primevue-test", Load: func() model.Page { return model.NewShowcasePage() }},
	}
}

// NewRouter builds the router over Routes.
func NewRouter(deps model.Deps) (*router.Router[model.Page], error) {
	return router.New(Routes(deps)...)
}

// NewApp creates the root model starting at initialPath.
func NewApp(deps model.Deps, initialPath string) (*model.App, error) {
	r, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}
	return model.NewApp(r, deps, initialPath)
}
