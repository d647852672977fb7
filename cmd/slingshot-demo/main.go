package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/slingshot/internal/demoui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.slingshot-demo"
	AppName = "Slingshot Demo"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the dense feed theme
	myApp.Settings().SetTheme(demoui.NewFeedTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(demoui.WindowWidth, demoui.WindowHeight))

	// Create and setup UI
	demoui.NewDemoUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
