package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/100584680-cell/Final-project-Mario-game-and-watch/components"
	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LobbyUI holds the ebitenui interface for the difficulty select. It is the
// mouse path; keyboard navigation lives in systems.UpdateLobby and both share
// the same LobbyData.
type LobbyUI struct {
	UI    *ebitenui.UI
	Lobby *components.LobbyData

	// Callbacks
	OnStart func(id cfg.DifficultyID)
	OnBack  func()

	// Widget references for updates
	cardButtons [cfg.DifficultyCount]*widget.Button
	bestLabels  [cfg.DifficultyCount]*widget.Label
	blurbLabel  *widget.Label
	startButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized  bool
	lastSelected cfg.DifficultyID
}

// NewLobbyUI creates a new difficulty select UI with ebitenui
func NewLobbyUI(lobby *components.LobbyData, onStart func(id cfg.DifficultyID), onBack func()) *LobbyUI {
	lui := &LobbyUI{
		Lobby:   lobby,
		OnStart: onStart,
		OnBack:  onBack,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LobbyUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	// Small fonts to fit the 256x192 screen
	lui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	lui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   9,
	}
	lui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   7,
	}
}

func (lui *LobbyUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered - compact for 256x192
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SELECT DIFFICULTY", &lui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	// Difficulty cards
	cardsContainer := lui.buildCardsContainer()
	contentContainer.AddChild(cardsContainer)

	// Blurb describing the selected difficulty
	lui.blurbLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(lui.blurbLabel)

	// Bottom buttons
	buttonsContainer := lui.buildButtonsContainer()
	contentContainer.AddChild(buttonsContainer)

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (lui *LobbyUI) buildCardsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	for i := 0; i < int(cfg.DifficultyCount); i++ {
		cardRow := lui.buildCardRow(cfg.DifficultyID(i))
		container.AddChild(cardRow)
	}

	return container
}

func (lui *LobbyUI) buildCardRow(id cfg.DifficultyID) *widget.Container {
	padding := widget.Insets{Top: 1, Bottom: 1, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 26, 36, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	// Selecting an already selected card starts the game, like a double click
	selected := id // Capture for closure
	cardButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 16),
		),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text(cfg.Difficulties[id].Name, &lui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.Lobby.Selected == selected {
				if lui.OnStart != nil {
					lui.OnStart(selected)
				}
				return
			}
			lui.Lobby.Selected = selected
			lui.UpdateUI()
		}),
	)
	lui.cardButtons[id] = cardButton
	row.AddChild(cardButton)

	lui.bestLabels[id] = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	row.AddChild(lui.bestLabels[id])

	return row
}

func (lui *LobbyUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	// Back button
	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, 20)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Back", &lui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnBack != nil {
				lui.OnBack()
			}
		}),
	)
	container.AddChild(backButton)

	// Start button
	lui.startButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(72, 20)),
		widget.ButtonOpts.Image(lui.startButtonImage()),
		widget.ButtonOpts.Text("START", &lui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnStart != nil {
				lui.OnStart(lui.Lobby.Selected)
			}
		}),
	)
	container.AddChild(lui.startButton)

	return container
}

func (lui *LobbyUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (lui *LobbyUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect current lobby state
func (lui *LobbyUI) UpdateUI() {
	for i := 0; i < int(cfg.DifficultyCount); i++ {
		id := cfg.DifficultyID(i)
		name := cfg.Difficulties[id].Name

		// Update card text (check for nil to handle uninitialized widgets)
		if lui.cardButtons[id] != nil {
			if textWidget := lui.cardButtons[id].Text(); textWidget != nil {
				if id == lui.Lobby.Selected {
					textWidget.Label = "> " + name
				} else {
					textWidget.Label = name
				}
			}
		}

		// Update best score label
		if lui.bestLabels[id] != nil {
			if best := lui.Lobby.HighScores[name]; best > 0 {
				lui.bestLabels[id].Label = fmt.Sprintf("BEST %d", best)
			} else {
				lui.bestLabels[id].Label = "NO SCORE"
			}
		}
	}

	if lui.blurbLabel != nil {
		lui.blurbLabel.Label = cfg.Difficulties[lui.Lobby.Selected].Blurb
	}
}

// Update calls the UI's Update method
func (lui *LobbyUI) Update() {
	lui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !lui.initialized {
		lui.initialized = true
		lui.lastSelected = lui.Lobby.Selected
		lui.UpdateUI()
		return
	}
	// Keyboard navigation moves the selection without touching widgets
	if lui.Lobby.Selected != lui.lastSelected {
		lui.lastSelected = lui.Lobby.Selected
		lui.UpdateUI()
	}
}
